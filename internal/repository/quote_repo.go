package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Quote represents a persisted currency conversion quote.
// Rates are stored rounded: ofx_rate and inverse_ofx_rate to 5 decimal places,
// converted_amount to 2.
type Quote struct {
	ID              string
	SellCurrency    string
	BuyCurrency     string
	Amount          decimal.Decimal
	OfxRate         decimal.Decimal
	InverseOfxRate  decimal.Decimal
	ConvertedAmount decimal.Decimal
	CreatedAt       time.Time
}

// QuoteRepository defines DB operations for quotes.
type QuoteRepository interface {
	Insert(ctx context.Context, q *Quote) error
	GetByID(ctx context.Context, id string) (*Quote, error)
}

// PostgresQuoteRepository is an implementation of QuoteRepository using PostgreSQL.
type PostgresQuoteRepository struct {
	db *sql.DB
}

// NewPostgresQuoteRepository creates a new PostgresQuoteRepository.
func NewPostgresQuoteRepository(db *sql.DB) QuoteRepository {
	return &PostgresQuoteRepository{db: db}
}

// Insert persists a new quote and fills in its creation timestamp.
func (r *PostgresQuoteRepository) Insert(ctx context.Context, q *Quote) error {
	query := `INSERT INTO quotes (quote_id, sell_currency, buy_currency, amount,
                                  ofx_rate, inverse_ofx_rate, converted_amount)
              VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
              RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		q.ID, q.SellCurrency, q.BuyCurrency, q.Amount,
		q.OfxRate, q.InverseOfxRate, q.ConvertedAmount,
	).Scan(&q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	return nil
}

// GetByID retrieves a quote by its id, returning (nil, nil) when no row matches.
func (r *PostgresQuoteRepository) GetByID(ctx context.Context, id string) (*Quote, error) {
	query := `SELECT quote_id::text, sell_currency, buy_currency, amount,
                     ofx_rate, inverse_ofx_rate, converted_amount, created_at
              FROM quotes
              WHERE quote_id=$1::uuid`

	var q Quote
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.SellCurrency, &q.BuyCurrency, &q.Amount,
		&q.OfxRate, &q.InverseOfxRate, &q.ConvertedAmount, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}
