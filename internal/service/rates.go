package service

import "strings"

// markupPercent is the fixed percentage spread subtracted from the wholesale
// rate to derive the customer-facing OFX rate.
const markupPercent = "0.5"

// supportedPairs is the fixed set of sell-buy pairs quotable by this service.
var supportedPairs = map[string]struct{}{
	"AUD-USD": {},
	"AUD-INR": {},
	"AUD-PHP": {},
	"USD-INR": {},
	"USD-PHP": {},
	"EUR-USD": {},
	"EUR-INR": {},
	"EUR-PHP": {},
}

// pairKey forms the canonical "SELL-BUY" key for a currency pair.
func pairKey(sell, buy string) string {
	return sell + "-" + buy
}

// IsSupportedPair reports whether the ordered pair is quotable.
func IsSupportedPair(sell, buy string) bool {
	_, ok := supportedPairs[pairKey(sell, buy)]
	return ok
}

// IsValidCurrencyCode checks whether a string is a valid 3-letter currency code.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	code = strings.ToUpper(code)
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// normalizeCurrency validates a currency code and folds it to upper case.
func normalizeCurrency(code string) (string, error) {
	if !IsValidCurrencyCode(code) {
		return "", ErrInvalidCurrencyCode
	}
	return strings.ToUpper(code), nil
}
