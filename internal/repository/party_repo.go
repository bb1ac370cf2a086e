package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Payer represents a registered sender of funds.
type Payer struct {
	ID             string
	Name           string
	TransferReason string
}

// Recipient represents a registered receiver of funds. Lookups match on the
// (account number, bank code, bank name) composite key; the name column is
// descriptive only.
type Recipient struct {
	ID            string
	Name          string
	AccountNumber string
	BankCode      string
	BankName      string
}

// PartyRepository defines DB operations for payers and recipients.
type PartyRepository interface {
	GetPayerByID(ctx context.Context, id string) (*Payer, error)
	GetRecipientByBankAccount(ctx context.Context, accountNumber, bankCode, bankName string) (*Recipient, error)
	InsertPayer(ctx context.Context, p *Payer) error
	InsertRecipient(ctx context.Context, rec *Recipient) error
}

// PostgresPartyRepository is an implementation of PartyRepository using PostgreSQL.
type PostgresPartyRepository struct {
	db *sql.DB
}

// NewPostgresPartyRepository creates a new PostgresPartyRepository.
func NewPostgresPartyRepository(db *sql.DB) PartyRepository {
	return &PostgresPartyRepository{db: db}
}

// GetPayerByID retrieves a payer by id, returning (nil, nil) when no row matches.
func (r *PostgresPartyRepository) GetPayerByID(ctx context.Context, id string) (*Payer, error) {
	query := `SELECT payer_id::text, name, transfer_reason
              FROM payers
              WHERE payer_id=$1::uuid`

	var p Payer
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.TransferReason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetRecipientByBankAccount retrieves a recipient by its composite bank account
// key, returning (nil, nil) when no row matches.
func (r *PostgresPartyRepository) GetRecipientByBankAccount(ctx context.Context, accountNumber, bankCode, bankName string) (*Recipient, error) {
	query := `SELECT recipient_id::text, name, account_number, bank_code, bank_name
              FROM recipients
              WHERE account_number=$1 AND bank_code=$2 AND bank_name=$3
              LIMIT 1`

	var rec Recipient
	err := r.db.QueryRowContext(ctx, query, accountNumber, bankCode, bankName).Scan(
		&rec.ID, &rec.Name, &rec.AccountNumber, &rec.BankCode, &rec.BankName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// InsertPayer persists a new payer record.
func (r *PostgresPartyRepository) InsertPayer(ctx context.Context, p *Payer) error {
	query := `INSERT INTO payers (payer_id, name, transfer_reason)
              VALUES ($1::uuid, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.TransferReason); err != nil {
		return fmt.Errorf("failed to insert payer: %w", err)
	}
	return nil
}

// InsertRecipient persists a new recipient record.
func (r *PostgresPartyRepository) InsertRecipient(ctx context.Context, rec *Recipient) error {
	query := `INSERT INTO recipients (recipient_id, name, account_number, bank_code, bank_name)
              VALUES ($1::uuid, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, rec.ID, rec.Name, rec.AccountNumber, rec.BankCode, rec.BankName); err != nil {
		return fmt.Errorf("failed to insert recipient: %w", err)
	}
	return nil
}
