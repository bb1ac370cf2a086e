package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"transferservice/internal/repository"
)

// PayerInput is the payer payload accepted on transfer creation.
type PayerInput struct {
	ID             string
	Name           string
	TransferReason string
}

// RecipientInput is the recipient payload accepted on transfer creation.
// Recipients resolve by (AccountNumber, BankCode, BankName); Name is required
// in the payload but not used for matching.
type RecipientInput struct {
	Name          string
	AccountNumber string
	BankCode      string
	BankName      string
}

// CreateTransferInput is the full payload for booking a transfer.
type CreateTransferInput struct {
	QuoteID   string
	Payer     PayerInput
	Recipient RecipientInput
}

// TransferResult is a created or retrieved transfer with denormalized
// payer and recipient detail.
type TransferResult struct {
	TransferID            string
	Status                repository.TransferStatus
	QuoteID               string
	Payer                 PayerInput
	Recipient             RecipientInput
	EstimatedDeliveryDate time.Time
}

// TransferServiceInterface defines the operations available for transfer management.
type TransferServiceInterface interface {
	CreateTransfer(ctx context.Context, in CreateTransferInput) (*TransferResult, error)
	GetTransfer(ctx context.Context, transferID string) (*TransferResult, error)
	UpdateStatus(ctx context.Context, transferID string, next repository.TransferStatus) error
}

// TransferService books transfers against an accepted quote, payer and recipient.
type TransferService struct {
	quotes    repository.QuoteRepository
	parties   repository.PartyRepository
	transfers repository.TransferRepository
	log       *zap.SugaredLogger

	deliveryEstimate time.Duration
	now              func() time.Time
}

// NewTransferService creates a new TransferService.
func NewTransferService(
	quotes repository.QuoteRepository,
	parties repository.PartyRepository,
	transfers repository.TransferRepository,
	logger *zap.SugaredLogger,
	deliveryEstimate time.Duration,
) *TransferService {
	return &TransferService{
		quotes:           quotes,
		parties:          parties,
		transfers:        transfers,
		log:              logger,
		deliveryEstimate: deliveryEstimate,
		now:              time.Now,
	}
}

// CreateTransfer validates the payload, resolves the referenced quote, payer
// and recipient, and persists a new transfer in status Created with an
// estimated delivery date. Resolution failures are reported as typed not-found
// errors; an empty lookup result is never treated as resolved.
func (s *TransferService) CreateTransfer(ctx context.Context, in CreateTransferInput) (*TransferResult, error) {
	if in.QuoteID == "" {
		return nil, ErrMissingQuoteID
	}
	if in.Payer.ID == "" || in.Payer.Name == "" || in.Payer.TransferReason == "" {
		return nil, ErrMissingPayerFields
	}
	if in.Recipient.Name == "" || in.Recipient.AccountNumber == "" ||
		in.Recipient.BankCode == "" || in.Recipient.BankName == "" {
		return nil, ErrMissingRecipientFields
	}
	if _, err := uuid.Parse(in.QuoteID); err != nil {
		return nil, ErrInvalidQuoteID
	}

	quote, err := s.quotes.GetByID(ctx, in.QuoteID)
	if err != nil {
		s.log.Errorw("DB error resolving quote", "quote_id", in.QuoteID, "error", err)
		return nil, ErrInternal
	}
	if quote == nil {
		return nil, ErrQuoteNotFound
	}

	payer, err := s.parties.GetPayerByID(ctx, in.Payer.ID)
	if err != nil {
		s.log.Errorw("DB error resolving payer", "payer_id", in.Payer.ID, "error", err)
		return nil, ErrInternal
	}
	if payer == nil {
		return nil, ErrPayerNotFound
	}

	recipient, err := s.parties.GetRecipientByBankAccount(ctx,
		in.Recipient.AccountNumber, in.Recipient.BankCode, in.Recipient.BankName)
	if err != nil {
		s.log.Errorw("DB error resolving recipient", "bank_code", in.Recipient.BankCode, "error", err)
		return nil, ErrInternal
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	t := &repository.Transfer{
		ID:                    uuid.New().String(),
		QuoteID:               quote.ID,
		PayerID:               payer.ID,
		RecipientID:           recipient.ID,
		Status:                repository.StatusCreated,
		EstimatedDeliveryDate: s.now().Add(s.deliveryEstimate).UTC(),
	}
	if err := s.transfers.Insert(ctx, t); err != nil {
		s.log.Errorw("DB error inserting transfer", "transfer_id", t.ID, "error", err)
		return nil, ErrInternal
	}

	s.log.Infow("Transfer created", "transfer_id", t.ID, "quote_id", quote.ID, "payer_id", payer.ID)
	return &TransferResult{
		TransferID: t.ID,
		Status:     t.Status,
		QuoteID:    t.QuoteID,
		Payer: PayerInput{
			ID:             payer.ID,
			Name:           payer.Name,
			TransferReason: payer.TransferReason,
		},
		Recipient: RecipientInput{
			Name:          recipient.Name,
			AccountNumber: recipient.AccountNumber,
			BankCode:      recipient.BankCode,
			BankName:      recipient.BankName,
		},
		EstimatedDeliveryDate: t.EstimatedDeliveryDate,
	}, nil
}

// GetTransfer retrieves a transfer joined with its payer and recipient detail.
func (s *TransferService) GetTransfer(ctx context.Context, transferID string) (*TransferResult, error) {
	if _, err := uuid.Parse(transferID); err != nil {
		return nil, ErrTransferNotFound
	}
	d, err := s.transfers.GetDetailByID(ctx, transferID)
	if err != nil {
		s.log.Errorw("DB error fetching transfer", "transfer_id", transferID, "error", err)
		return nil, ErrInternal
	}
	if d == nil {
		return nil, ErrTransferNotFound
	}

	return &TransferResult{
		TransferID: d.ID,
		Status:     d.Status,
		QuoteID:    d.QuoteID,
		Payer: PayerInput{
			ID:             d.Payer.ID,
			Name:           d.Payer.Name,
			TransferReason: d.Payer.TransferReason,
		},
		Recipient: RecipientInput{
			Name:          d.Recipient.Name,
			AccountNumber: d.Recipient.AccountNumber,
			BankCode:      d.Recipient.BankCode,
			BankName:      d.Recipient.BankName,
		},
		EstimatedDeliveryDate: d.EstimatedDeliveryDate,
	}, nil
}

// UpdateStatus applies an externally requested status transition. The service
// never initiates transitions itself; this is the trigger interface consumed
// by the settlement worker.
func (s *TransferService) UpdateStatus(ctx context.Context, transferID string, next repository.TransferStatus) error {
	if !next.IsValid() {
		return ErrIllegalTransition
	}
	if _, err := uuid.Parse(transferID); err != nil {
		return ErrTransferNotFound
	}

	t, err := s.transfers.GetByID(ctx, transferID)
	if err != nil {
		s.log.Errorw("DB error fetching transfer for status update", "transfer_id", transferID, "error", err)
		return ErrInternal
	}
	if t == nil {
		return ErrTransferNotFound
	}
	if !t.Status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}

	if err := s.transfers.UpdateStatus(ctx, transferID, t.Status, next); err != nil {
		s.log.Errorw("DB error updating transfer status",
			"transfer_id", transferID, "from", t.Status, "to", next, "error", err)
		return ErrInternal
	}

	s.log.Infow("Transfer status updated", "transfer_id", transferID, "from", t.Status, "to", next)
	return nil
}
