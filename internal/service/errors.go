package service

import "errors"

// Validation errors surfaced to the caller as 400-class rejections.
var (
	ErrInvalidAmount          = errors.New("amount must be a positive number")
	ErrSameCurrency           = errors.New("sell and buy currency must be different")
	ErrInvalidCurrencyCode    = errors.New("invalid currency code format")
	ErrUnsupportedPair        = errors.New("unsupported currency pair")
	ErrInvalidQuoteID         = errors.New("invalid quoteId")
	ErrMissingQuoteID         = errors.New("quoteId is required")
	ErrMissingPayerFields     = errors.New("payer must include id, name and transferReason")
	ErrMissingRecipientFields = errors.New("recipient must include name, accountNumber, bankCode and bankName")
)

// ErrRateUnavailable indicates the upstream rate provider could not supply a
// usable wholesale rate. Distinct from validation failures.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// Not-found errors for referenced records.
var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrPayerNotFound     = errors.New("payer not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrTransferNotFound  = errors.New("transfer not found")
)

// ErrIllegalTransition indicates a requested transfer status change is not a
// legal transition from the transfer's current status.
var ErrIllegalTransition = errors.New("illegal transfer status transition")

// ErrInternal indicates an internal persistence or infrastructure error.
var ErrInternal = errors.New("internal error")
