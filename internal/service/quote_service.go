// Package service implements the core business logic for quoting and transfers.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"transferservice/internal/provider"
	"transferservice/internal/repository"
)

// QuoteResult is the four-field projection of a quote returned to callers.
// Sell/buy currency and amount are stored but not echoed back.
type QuoteResult struct {
	QuoteID         string
	OfxRate         decimal.Decimal
	InverseOfxRate  decimal.Decimal
	ConvertedAmount decimal.Decimal
}

// QuoteServiceInterface defines the operations available for quote management.
type QuoteServiceInterface interface {
	CreateQuote(ctx context.Context, sellCurrency, buyCurrency string, amount decimal.Decimal) (*QuoteResult, error)
	GetQuote(ctx context.Context, quoteID string) (*QuoteResult, error)
}

// QuoteService prices currency conversions off the cached wholesale rate.
type QuoteService struct {
	repo  repository.QuoteRepository
	rates provider.RatesProvider
	log   *zap.SugaredLogger
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(repo repository.QuoteRepository, rates provider.RatesProvider, logger *zap.SugaredLogger) *QuoteService {
	return &QuoteService{
		repo:  repo,
		rates: rates,
		log:   logger,
	}
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	markup  = decimal.RequireFromString(markupPercent)
)

// CreateQuote validates the requested pair, applies the markup to the wholesale
// rate and persists the resulting quote. All validation happens before the rate
// cache is consulted.
//
// The converted amount is computed from the unrounded markup-adjusted rate;
// only the stored ofx_rate and inverse_ofx_rate are rounded to 5 decimal
// places. Rounding the rate first would shift the converted amount for large
// notionals, so the order matters.
func (s *QuoteService) CreateQuote(ctx context.Context, sellCurrency, buyCurrency string, amount decimal.Decimal) (*QuoteResult, error) {
	sell, err := normalizeCurrency(sellCurrency)
	if err != nil {
		return nil, err
	}
	buy, err := normalizeCurrency(buyCurrency)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if sell == buy {
		return nil, ErrSameCurrency
	}
	if !IsSupportedPair(sell, buy) {
		return nil, ErrUnsupportedPair
	}

	rate, err := s.rates.GetRate(ctx, sell, buy)
	if err != nil {
		s.log.Errorw("Failed to get exchange rate", "pair", pairKey(sell, buy), "error", err)
		return nil, ErrRateUnavailable
	}

	markupAdjustment := rate.Mul(markup).Div(hundred)
	ofxRate := rate.Sub(markupAdjustment)
	inverseOfxRate := one.Div(ofxRate)
	convertedAmount := amount.Mul(ofxRate).Round(2)

	q := &repository.Quote{
		ID:              uuid.New().String(),
		SellCurrency:    sell,
		BuyCurrency:     buy,
		Amount:          amount,
		OfxRate:         ofxRate.Round(5),
		InverseOfxRate:  inverseOfxRate.Round(5),
		ConvertedAmount: convertedAmount,
	}
	if err := s.repo.Insert(ctx, q); err != nil {
		s.log.Errorw("DB error inserting quote", "quote_id", q.ID, "error", err)
		return nil, ErrInternal
	}

	s.log.Infow("Quote created", "quote_id", q.ID, "pair", pairKey(sell, buy), "ofx_rate", q.OfxRate)
	return quoteResultFromRepo(q), nil
}

// GetQuote retrieves a previously created quote by its id.
func (s *QuoteService) GetQuote(ctx context.Context, quoteID string) (*QuoteResult, error) {
	if _, err := uuid.Parse(quoteID); err != nil {
		return nil, ErrInvalidQuoteID
	}
	q, err := s.repo.GetByID(ctx, quoteID)
	if err != nil {
		s.log.Errorw("DB error fetching quote", "quote_id", quoteID, "error", err)
		return nil, ErrInternal
	}
	if q == nil {
		return nil, ErrQuoteNotFound
	}
	return quoteResultFromRepo(q), nil
}

func quoteResultFromRepo(q *repository.Quote) *QuoteResult {
	return &QuoteResult{
		QuoteID:         q.ID,
		OfxRate:         q.OfxRate,
		InverseOfxRate:  q.InverseOfxRate,
		ConvertedAmount: q.ConvertedAmount,
	}
}
