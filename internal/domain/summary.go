package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntriesSummary aggregates a wallet's entries over a date window. It is
// derived on every query and never persisted.
//
// The field names mirror the per-entry direction semantics: TotalDebit sums
// CREDIT-direction entries and TotalCredit sums DEBIT-direction entries.
// Downstream consumers depend on this exact mapping; do not "fix" it.
type EntriesSummary struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Entries     []*Entry
}

// FilterEntries returns the wallet's entries whose timestamps lie within
// [start, end] inclusive. A nil entry collection is a data integrity failure,
// distinct from an empty one.
func (w *Wallet) FilterEntries(start, end time.Time) ([]*Entry, error) {
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	if w.Entries == nil {
		return nil, ErrMissingEntries
	}

	filtered := make([]*Entry, 0, len(w.Entries))
	for _, e := range w.Entries {
		if e.InRange(start, end) {
			filtered = append(filtered, e)
		}
	}

	return filtered, nil
}

// Summarize computes the entries summary for [start, end]. It never mutates
// entries or balances.
func (w *Wallet) Summarize(start, end time.Time) (*EntriesSummary, error) {
	filtered, err := w.FilterEntries(start, end)
	if err != nil {
		return nil, err
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, e := range filtered {
		switch e.Direction {
		case DirectionCredit:
			totalDebit = totalDebit.Add(e.Amount)
		case DirectionDebit:
			totalCredit = totalCredit.Add(e.Amount)
		}
	}

	return &EntriesSummary{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Entries:     filtered,
	}, nil
}
