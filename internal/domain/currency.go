package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode identifies one of the supported wallet currencies.
type CurrencyCode string

const (
	BGN CurrencyCode = "BGN"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	USD CurrencyCode = "USD"
)

var validCurrencies = map[CurrencyCode]bool{
	BGN: true,
	EUR: true,
	GBP: true,
	USD: true,
}

// ErrInvalidCurrency is returned for currency codes outside the supported set.
var ErrInvalidCurrency = errors.New("invalid currency code")

// ErrMissingExchangeRate is returned when the rate table has no entry for an
// ordered currency pair. It is a configuration failure, never defaulted.
var ErrMissingExchangeRate = errors.New("no exchange rate for this pair")

// ParseCurrency validates and normalizes a currency code.
func ParseCurrency(s string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !validCurrencies[code] {
		return "", fmt.Errorf("%w: %s", ErrInvalidCurrency, s)
	}

	return code, nil
}

// IsValid reports whether the code belongs to the supported set.
func (c CurrencyCode) IsValid() bool {
	return validCurrencies[c]
}

func (c CurrencyCode) String() string {
	return string(c)
}

// RatePair is an ordered (from, to) currency pair.
type RatePair struct {
	From CurrencyCode
	To   CurrencyCode
}

// Converter converts amounts between currencies using a fixed rate table.
// The table is read-only after construction; rates for (A,B) and (B,A) are
// independent and are not required to be inverse-consistent.
type Converter struct {
	rates map[RatePair]decimal.Decimal
}

// NewConverter creates a Converter over the given rate table.
func NewConverter(rates map[RatePair]decimal.Decimal) *Converter {
	table := make(map[RatePair]decimal.Decimal, len(rates))
	for pair, rate := range rates {
		table[pair] = rate
	}

	return &Converter{rates: table}
}

// DefaultRates returns the built-in rate table.
func DefaultRates() map[RatePair]decimal.Decimal {
	return map[RatePair]decimal.Decimal{
		{From: BGN, To: EUR}: decimal.NewFromFloat(0.51),
		{From: BGN, To: GBP}: decimal.NewFromFloat(0.44),
		{From: BGN, To: USD}: decimal.NewFromFloat(0.57),

		{From: EUR, To: BGN}: decimal.NewFromFloat(1.96),
		{From: EUR, To: GBP}: decimal.NewFromFloat(0.86),
		{From: EUR, To: USD}: decimal.NewFromFloat(1.18),

		{From: GBP, To: BGN}: decimal.NewFromFloat(2.27),
		{From: GBP, To: EUR}: decimal.NewFromFloat(1.16),
		{From: GBP, To: USD}: decimal.NewFromFloat(1.38),

		{From: USD, To: BGN}: decimal.NewFromFloat(1.75),
		{From: USD, To: EUR}: decimal.NewFromFloat(0.85),
		{From: USD, To: GBP}: decimal.NewFromFloat(0.72),
	}
}

// Convert converts amount from one currency to another. Equal currencies
// return the amount unchanged without a table lookup. The multiplication
// keeps full decimal precision; rounding is the caller's concern.
func (c *Converter) Convert(amount decimal.Decimal, from, to CurrencyCode) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	rate, ok := c.rates[RatePair{From: from, To: to}]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s_%s", ErrMissingExchangeRate, from, to)
	}

	return amount.Mul(rate), nil
}
