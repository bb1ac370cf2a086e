package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"transferservice/internal/repository"
	"transferservice/internal/service"
)

func testQuoteResult() *service.QuoteResult {
	return &service.QuoteResult{
		QuoteID:         "123e4567-e89b-12d3-a456-426614174000",
		OfxRate:         decimal.RequireFromString("55.2225"),
		InverseOfxRate:  decimal.RequireFromString("0.01811"),
		ConvertedAmount: decimal.RequireFromString("55222.50"),
	}
}

func testTransferResult() *service.TransferResult {
	return &service.TransferResult{
		TransferID: "5f0e8d3a-41bb-4a17-9c35-8a2d7c6e1f90",
		Status:     repository.StatusCreated,
		QuoteID:    "123e4567-e89b-12d3-a456-426614174000",
		Payer: service.PayerInput{
			ID:             "c96e4a58-cbf0-4ffb-8ec7-a3adbe4653e6",
			Name:           "John Doe",
			TransferReason: "Invoice",
		},
		Recipient: service.RecipientInput{
			Name:          "Maria Garcia",
			AccountNumber: "1234567890",
			BankCode:      "HSBC123",
			BankName:      "HSBC Bank",
		},
		EstimatedDeliveryDate: time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandleCreateQuote(t *testing.T) {
	t.Run("valid request returns 201", func(t *testing.T) {
		svc := &mockQuoteService{
			createQuoteFunc: func(ctx context.Context, sell, buy string, amount decimal.Decimal) (*service.QuoteResult, error) {
				if sell != "AUD" || buy != "INR" {
					t.Fatalf("unexpected pair %s/%s", sell, buy)
				}
				if !amount.Equal(decimal.NewFromInt(1000)) {
					t.Fatalf("unexpected amount %s", amount)
				}
				return testQuoteResult(), nil
			},
		}

		body := bytes.NewBufferString(`{"sellCurrency":"AUD","buyCurrency":"INR","amount":1000}`)
		req := httptest.NewRequest(http.MethodPost, "/transfers/quote", body)
		w := httptest.NewRecorder()

		HandleCreateQuote(svc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d", w.Code)
		}

		var resp QuoteResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.QuoteID != "123e4567-e89b-12d3-a456-426614174000" {
			t.Errorf("quoteId = %s", resp.QuoteID)
		}
		if resp.OfxRate != 55.2225 {
			t.Errorf("ofxRate = %v", resp.OfxRate)
		}
		if resp.ConvertedAmount != 55222.5 {
			t.Errorf("convertedAmount = %v", resp.ConvertedAmount)
		}
	})

	t.Run("unsupported pair returns 400", func(t *testing.T) {
		svc := &mockQuoteService{
			createQuoteFunc: func(ctx context.Context, sell, buy string, amount decimal.Decimal) (*service.QuoteResult, error) {
				return nil, service.ErrUnsupportedPair
			},
		}

		body := bytes.NewBufferString(`{"sellCurrency":"AUD","buyCurrency":"JPY","amount":100}`)
		req := httptest.NewRequest(http.MethodPost, "/transfers/quote", body)
		w := httptest.NewRecorder()

		HandleCreateQuote(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}

		var resp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Error != "unsupported currency pair" {
			t.Errorf("error = %q", resp.Error)
		}
	})

	t.Run("rate unavailable returns 400", func(t *testing.T) {
		svc := &mockQuoteService{
			createQuoteFunc: func(ctx context.Context, sell, buy string, amount decimal.Decimal) (*service.QuoteResult, error) {
				return nil, service.ErrRateUnavailable
			},
		}

		body := bytes.NewBufferString(`{"sellCurrency":"AUD","buyCurrency":"USD","amount":100}`)
		req := httptest.NewRequest(http.MethodPost, "/transfers/quote", body)
		w := httptest.NewRecorder()

		HandleCreateQuote(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		svc := &mockQuoteService{}

		body := bytes.NewBufferString(`{`)
		req := httptest.NewRequest(http.MethodPost, "/transfers/quote", body)
		w := httptest.NewRecorder()

		HandleCreateQuote(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("internal error returns 500", func(t *testing.T) {
		svc := &mockQuoteService{
			createQuoteFunc: func(ctx context.Context, sell, buy string, amount decimal.Decimal) (*service.QuoteResult, error) {
				return nil, service.ErrInternal
			},
		}

		body := bytes.NewBufferString(`{"sellCurrency":"AUD","buyCurrency":"USD","amount":100}`)
		req := httptest.NewRequest(http.MethodPost, "/transfers/quote", body)
		w := httptest.NewRecorder()

		HandleCreateQuote(svc).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", w.Code)
		}
	})
}

func TestHandleGetQuote(t *testing.T) {
	withQuoteID := func(req *http.Request, id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("quoteId", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("found returns projection", func(t *testing.T) {
		svc := &mockQuoteService{
			getQuoteFunc: func(ctx context.Context, quoteID string) (*service.QuoteResult, error) {
				return testQuoteResult(), nil
			},
		}

		req := withQuoteID(httptest.NewRequest(http.MethodGet, "/transfers/quote/123e4567-e89b-12d3-a456-426614174000", nil),
			"123e4567-e89b-12d3-a456-426614174000")
		w := httptest.NewRecorder()

		HandleGetQuote(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var resp QuoteResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.InverseOfxRate != 0.01811 {
			t.Errorf("inverseOfxRate = %v", resp.InverseOfxRate)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		svc := &mockQuoteService{
			getQuoteFunc: func(ctx context.Context, quoteID string) (*service.QuoteResult, error) {
				return nil, service.ErrQuoteNotFound
			},
		}

		req := withQuoteID(httptest.NewRequest(http.MethodGet, "/transfers/quote/unknown", nil), "unknown")
		w := httptest.NewRecorder()

		HandleGetQuote(svc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestHandleCreateTransfer(t *testing.T) {
	validBody := `{
		"quoteId": "123e4567-e89b-12d3-a456-426614174000",
		"payer": {"id": "c96e4a58-cbf0-4ffb-8ec7-a3adbe4653e6", "name": "John Doe", "transferReason": "Invoice"},
		"recipient": {"name": "Maria Garcia", "accountNumber": "1234567890", "bankCode": "HSBC123", "bankName": "HSBC Bank"}
	}`

	t.Run("valid request returns 201 with denormalized detail", func(t *testing.T) {
		svc := &mockTransferService{
			createTransferFunc: func(ctx context.Context, in service.CreateTransferInput) (*service.TransferResult, error) {
				if in.QuoteID != "123e4567-e89b-12d3-a456-426614174000" {
					t.Fatalf("unexpected quoteId %s", in.QuoteID)
				}
				if in.Recipient.BankCode != "HSBC123" {
					t.Fatalf("unexpected bankCode %s", in.Recipient.BankCode)
				}
				return testTransferResult(), nil
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewBufferString(validBody))
		w := httptest.NewRecorder()

		HandleCreateTransfer(svc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d", w.Code)
		}

		var resp TransferResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "Created" {
			t.Errorf("status = %s", resp.Status)
		}
		if resp.TransferDetails.Payer.Name != "John Doe" {
			t.Errorf("payer name = %s", resp.TransferDetails.Payer.Name)
		}
		if resp.TransferDetails.Recipient.AccountNumber != "1234567890" {
			t.Errorf("recipient account = %s", resp.TransferDetails.Recipient.AccountNumber)
		}
		if resp.EstimatedDeliveryDate != "2026-03-16T12:00:00Z" {
			t.Errorf("estimatedDeliveryDate = %s", resp.EstimatedDeliveryDate)
		}
	})

	t.Run("missing payer fields returns 400", func(t *testing.T) {
		svc := &mockTransferService{
			createTransferFunc: func(ctx context.Context, in service.CreateTransferInput) (*service.TransferResult, error) {
				return nil, service.ErrMissingPayerFields
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewBufferString(`{"quoteId":"x","payer":{},"recipient":{}}`))
		w := httptest.NewRecorder()

		HandleCreateTransfer(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("unresolvable payer returns 404", func(t *testing.T) {
		svc := &mockTransferService{
			createTransferFunc: func(ctx context.Context, in service.CreateTransferInput) (*service.TransferResult, error) {
				return nil, service.ErrPayerNotFound
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewBufferString(validBody))
		w := httptest.NewRecorder()

		HandleCreateTransfer(svc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}

		var resp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Error != "payer not found" {
			t.Errorf("error = %q", resp.Error)
		}
	})
}

func TestHandleGetTransfer(t *testing.T) {
	router := func(svc service.TransferServiceInterface) http.Handler {
		r := chi.NewRouter()
		r.Get("/transfers/{transferId:[0-9a-f-]{36}}", HandleGetTransfer(svc))
		return r
	}

	t.Run("found returns full shape", func(t *testing.T) {
		svc := &mockTransferService{
			getTransferFunc: func(ctx context.Context, transferID string) (*service.TransferResult, error) {
				return testTransferResult(), nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/transfers/5f0e8d3a-41bb-4a17-9c35-8a2d7c6e1f90", nil)
		w := httptest.NewRecorder()
		router(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var resp TransferResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.TransferID != "5f0e8d3a-41bb-4a17-9c35-8a2d7c6e1f90" {
			t.Errorf("transferId = %s", resp.TransferID)
		}
		if resp.TransferDetails.QuoteID == "" {
			t.Error("expected nested quoteId")
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		svc := &mockTransferService{
			getTransferFunc: func(ctx context.Context, transferID string) (*service.TransferResult, error) {
				return nil, service.ErrTransferNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/transfers/00000000-0000-0000-0000-000000000000", nil)
		w := httptest.NewRecorder()
		router(svc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("id not matching the 36-char token shape does not route", func(t *testing.T) {
		svc := &mockTransferService{
			getTransferFunc: func(ctx context.Context, transferID string) (*service.TransferResult, error) {
				t.Fatal("handler must not be reached for malformed ids")
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/transfers/short-id", nil)
		w := httptest.NewRecorder()
		router(svc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
