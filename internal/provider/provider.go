package provider

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoRate indicates the upstream responded but carried no usable rate for the
// requested pair (wrong pair echoed back, or a non-positive rate).
var ErrNoRate = errors.New("no usable rate in provider response")

// RatesProvider defines an interface for fetching wholesale exchange rates.
type RatesProvider interface {
	GetRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error)
}
