package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"transferservice/internal/service"
)

// QuoteRequest represents the request body for quote creation
type QuoteRequest struct {
	SellCurrency string  `json:"sellCurrency" example:"AUD"`
	BuyCurrency  string  `json:"buyCurrency" example:"INR"`
	Amount       float64 `json:"amount" example:"1000"`
}

// QuoteResponse represents a created or retrieved quote
type QuoteResponse struct {
	QuoteID         string  `json:"quoteId" example:"123e4567-e89b-12d3-a456-426614174000"`
	OfxRate         float64 `json:"ofxRate" example:"55.2225"`
	InverseOfxRate  float64 `json:"inverseOfxRate" example:"0.01811"`
	ConvertedAmount float64 `json:"convertedAmount" example:"55222.5"`
}

// PayerPayload is the payer section of a transfer request/response
type PayerPayload struct {
	ID             string `json:"id" example:"c96e4a58-cbf0-4ffb-8ec7-a3adbe4653e6"`
	Name           string `json:"name" example:"John Doe"`
	TransferReason string `json:"transferReason" example:"Invoice"`
}

// RecipientPayload is the recipient section of a transfer request/response
type RecipientPayload struct {
	Name          string `json:"name" example:"Maria Garcia"`
	AccountNumber string `json:"accountNumber" example:"1234567890"`
	BankCode      string `json:"bankCode" example:"HSBC123"`
	BankName      string `json:"bankName" example:"HSBC Bank"`
}

// TransferRequest represents the request body for transfer creation
type TransferRequest struct {
	QuoteID   string           `json:"quoteId" example:"123e4567-e89b-12d3-a456-426614174000"`
	Payer     PayerPayload     `json:"payer"`
	Recipient RecipientPayload `json:"recipient"`
}

// TransferDetails nests the resolved references inside a transfer response
type TransferDetails struct {
	QuoteID   string           `json:"quoteId" example:"123e4567-e89b-12d3-a456-426614174000"`
	Payer     PayerPayload     `json:"payer"`
	Recipient RecipientPayload `json:"recipient"`
}

// TransferResponse represents a created or retrieved transfer
type TransferResponse struct {
	TransferID            string          `json:"transferId" example:"5f0e8d3a-41bb-4a17-9c35-8a2d7c6e1f90"`
	Status                string          `json:"status" example:"Created"`
	TransferDetails       TransferDetails `json:"transferDetails"`
	EstimatedDeliveryDate string          `json:"estimatedDeliveryDate" example:"2026-03-16T12:00:00Z"`
}

// HandleCreateQuote godoc
// @Summary Create a currency conversion quote
// @Description Prices a conversion for a supported currency pair: applies the fixed markup to the wholesale rate and persists the quote.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Currency pair and amount in sell currency"
// @Success 201 {object} QuoteResponse "Quote created"
// @Failure 400 {object} ErrorResponse "Validation failure, unsupported pair, or rate unavailable"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /transfers/quote [post]
func HandleCreateQuote(svc service.QuoteServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}

		res, err := svc.CreateQuote(r.Context(), req.SellCurrency, req.BuyCurrency, decimal.NewFromFloat(req.Amount))
		if err != nil {
			writeQuoteError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, quoteResponseFrom(res))
	}
}

// HandleGetQuote godoc
// @Summary Retrieve a quote by ID
// @Description Returns the stored rates and converted amount for a previously created quote.
// @Tags quotes
// @Accept json
// @Produce json
// @Param quoteId path string true "Quote ID (UUID)" format(uuid)
// @Success 200 {object} QuoteResponse "Quote found"
// @Failure 400 {object} ErrorResponse "Invalid quoteId format"
// @Failure 404 {object} ErrorResponse "Unknown quoteId"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /transfers/quote/{quoteId} [get]
func HandleGetQuote(svc service.QuoteServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID := chi.URLParam(r, "quoteId")
		if quoteID == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "quoteId is required"})
			return
		}

		res, err := svc.GetQuote(r.Context(), quoteID)
		if err != nil {
			writeQuoteError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, quoteResponseFrom(res))
	}
}

// HandleCreateTransfer godoc
// @Summary Book a transfer against an accepted quote
// @Description Validates the payer and recipient payloads, resolves the referenced quote/payer/recipient, and creates a transfer in status Created with an estimated delivery date.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Quote reference plus payer and recipient details"
// @Success 201 {object} TransferResponse "Transfer created"
// @Failure 400 {object} ErrorResponse "Missing or invalid fields"
// @Failure 404 {object} ErrorResponse "Quote, payer or recipient not resolvable"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /transfers [post]
func HandleCreateTransfer(svc service.TransferServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}

		res, err := svc.CreateTransfer(r.Context(), service.CreateTransferInput{
			QuoteID: req.QuoteID,
			Payer: service.PayerInput{
				ID:             req.Payer.ID,
				Name:           req.Payer.Name,
				TransferReason: req.Payer.TransferReason,
			},
			Recipient: service.RecipientInput{
				Name:          req.Recipient.Name,
				AccountNumber: req.Recipient.AccountNumber,
				BankCode:      req.Recipient.BankCode,
				BankName:      req.Recipient.BankName,
			},
		})
		if err != nil {
			writeTransferError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, transferResponseFrom(res))
	}
}

// HandleGetTransfer godoc
// @Summary Retrieve a transfer by ID
// @Description Returns the transfer joined with its payer and recipient detail.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transferId path string true "Transfer ID (UUID)" format(uuid)
// @Success 200 {object} TransferResponse "Transfer found"
// @Failure 404 {object} ErrorResponse "Unknown transferId"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /transfers/{transferId} [get]
func HandleGetTransfer(svc service.TransferServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transferID := chi.URLParam(r, "transferId")
		if transferID == "" {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "transferId is required"})
			return
		}

		res, err := svc.GetTransfer(r.Context(), transferID)
		if err != nil {
			writeTransferError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, transferResponseFrom(res))
	}
}

func writeQuoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrSameCurrency),
		errors.Is(err, service.ErrInvalidCurrencyCode),
		errors.Is(err, service.ErrUnsupportedPair),
		errors.Is(err, service.ErrInvalidQuoteID),
		errors.Is(err, service.ErrRateUnavailable):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrQuoteNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func writeTransferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingQuoteID),
		errors.Is(err, service.ErrInvalidQuoteID),
		errors.Is(err, service.ErrMissingPayerFields),
		errors.Is(err, service.ErrMissingRecipientFields):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrQuoteNotFound),
		errors.Is(err, service.ErrPayerNotFound),
		errors.Is(err, service.ErrRecipientNotFound),
		errors.Is(err, service.ErrTransferNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func quoteResponseFrom(res *service.QuoteResult) QuoteResponse {
	return QuoteResponse{
		QuoteID:         res.QuoteID,
		OfxRate:         res.OfxRate.InexactFloat64(),
		InverseOfxRate:  res.InverseOfxRate.InexactFloat64(),
		ConvertedAmount: res.ConvertedAmount.InexactFloat64(),
	}
}

func transferResponseFrom(res *service.TransferResult) TransferResponse {
	return TransferResponse{
		TransferID: res.TransferID,
		Status:     string(res.Status),
		TransferDetails: TransferDetails{
			QuoteID: res.QuoteID,
			Payer: PayerPayload{
				ID:             res.Payer.ID,
				Name:           res.Payer.Name,
				TransferReason: res.Payer.TransferReason,
			},
			Recipient: RecipientPayload{
				Name:          res.Recipient.Name,
				AccountNumber: res.Recipient.AccountNumber,
				BankCode:      res.Recipient.BankCode,
				BankName:      res.Recipient.BankName,
			},
		},
		EstimatedDeliveryDate: res.EstimatedDeliveryDate.UTC().Format(time.RFC3339),
	}
}
