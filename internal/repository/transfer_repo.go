package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// TransferStatus represents the state of a transfer in its settlement lifecycle.
type TransferStatus string

// Transfer lifecycle states. Created is the only state this service ever
// writes on its own; the remaining transitions are requested by an external
// settlement process.
const (
	StatusCreated    TransferStatus = "Created"
	StatusProcessing TransferStatus = "Processing"
	StatusProcessed  TransferStatus = "Processed"
	StatusFailed     TransferStatus = "Failed"
)

// legalTransitions maps each status to the statuses it may move to.
// Processed and Failed are terminal.
var legalTransitions = map[TransferStatus][]TransferStatus{
	StatusCreated:    {StatusProcessing},
	StatusProcessing: {StatusProcessed, StatusFailed},
	StatusProcessed:  {},
	StatusFailed:     {},
}

// IsValid reports whether s is one of the declared transfer states.
func (s TransferStatus) IsValid() bool {
	_, ok := legalTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s TransferStatus) CanTransitionTo(next TransferStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transfer represents a booked money movement referencing a quote, payer and recipient.
type Transfer struct {
	ID                    string
	QuoteID               string
	PayerID               string
	RecipientID           string
	Status                TransferStatus
	EstimatedDeliveryDate time.Time
	CreatedAt             time.Time
}

// TransferDetail is a transfer joined with its payer and recipient records.
type TransferDetail struct {
	Transfer
	Payer     Payer
	Recipient Recipient
}

// TransferRepository defines DB operations for transfers.
type TransferRepository interface {
	Insert(ctx context.Context, t *Transfer) error
	GetByID(ctx context.Context, id string) (*Transfer, error)
	GetDetailByID(ctx context.Context, id string) (*TransferDetail, error)
	UpdateStatus(ctx context.Context, id string, from, to TransferStatus) error
}

// PostgresTransferRepository is an implementation of TransferRepository using PostgreSQL.
type PostgresTransferRepository struct {
	db *sql.DB
}

// NewPostgresTransferRepository creates a new PostgresTransferRepository.
func NewPostgresTransferRepository(db *sql.DB) TransferRepository {
	return &PostgresTransferRepository{db: db}
}

// Insert persists a new transfer and fills in its creation timestamp.
func (r *PostgresTransferRepository) Insert(ctx context.Context, t *Transfer) error {
	query := `INSERT INTO transfers (transfer_id, quote_id, payer_id, recipient_id, status, estimated_delivery_date)
              VALUES ($1::uuid, $2::uuid, $3::uuid, $4::uuid, $5::transfer_status, $6)
              RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.QuoteID, t.PayerID, t.RecipientID, t.Status, t.EstimatedDeliveryDate,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transfer: %w", err)
	}
	return nil
}

// GetByID retrieves a bare transfer row by id, returning (nil, nil) when no row matches.
func (r *PostgresTransferRepository) GetByID(ctx context.Context, id string) (*Transfer, error) {
	query := `SELECT transfer_id::text, quote_id::text, payer_id::text, recipient_id::text,
                     status, estimated_delivery_date, created_at
              FROM transfers
              WHERE transfer_id=$1::uuid`

	var t Transfer
	var statusStr string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.QuoteID, &t.PayerID, &t.RecipientID,
		&statusStr, &t.EstimatedDeliveryDate, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.Status = TransferStatus(statusStr)
	return &t, nil
}

// GetDetailByID retrieves a transfer joined with its payer and recipient,
// returning (nil, nil) when no transfer matches.
func (r *PostgresTransferRepository) GetDetailByID(ctx context.Context, id string) (*TransferDetail, error) {
	query := `SELECT t.transfer_id::text, t.quote_id::text, t.payer_id::text, t.recipient_id::text,
                     t.status, t.estimated_delivery_date, t.created_at,
                     p.payer_id::text, p.name, p.transfer_reason,
                     rec.recipient_id::text, rec.name, rec.account_number, rec.bank_code, rec.bank_name
              FROM transfers t
              JOIN payers p ON p.payer_id = t.payer_id
              JOIN recipients rec ON rec.recipient_id = t.recipient_id
              WHERE t.transfer_id=$1::uuid`

	var d TransferDetail
	var statusStr string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.QuoteID, &d.PayerID, &d.RecipientID,
		&statusStr, &d.EstimatedDeliveryDate, &d.CreatedAt,
		&d.Payer.ID, &d.Payer.Name, &d.Payer.TransferReason,
		&d.Recipient.ID, &d.Recipient.Name, &d.Recipient.AccountNumber,
		&d.Recipient.BankCode, &d.Recipient.BankName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	d.Status = TransferStatus(statusStr)
	return &d, nil
}

// UpdateStatus moves a transfer from one status to another. The WHERE clause
// pins the expected current status so a concurrent transition cannot be
// silently overwritten.
func (r *PostgresTransferRepository) UpdateStatus(ctx context.Context, id string, from, to TransferStatus) error {
	query := `UPDATE transfers
              SET status=$1::transfer_status
              WHERE transfer_id=$2::uuid AND status=$3::transfer_status`

	result, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("transfer %s not found or no longer in status %s", id, from)
	}
	return nil
}
