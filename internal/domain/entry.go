package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies the event an entry records.
type EntryType string

const (
	EntryTypeDeposit    EntryType = "DEPOSIT"
	EntryTypeWithdrawal EntryType = "WITHDRAWAL"
	EntryTypeTransfer   EntryType = "TRANSFER"
)

// EntryDirection encodes how an entry affects its wallet's balance.
//
// DEBIT increases the balance and CREDIT decreases it. This is the reverse
// of standard accounting terminology and is kept deliberately; changing it
// would silently flip every stored entry and summary.
type EntryDirection string

const (
	DirectionDebit  EntryDirection = "DEBIT"
	DirectionCredit EntryDirection = "CREDIT"
)

// Entry is a single balance-affecting record on one wallet. Amount is always
// positive; the direction carries the sign. Entries are immutable once
// persisted and are never shared between wallets: the two sides of a transfer
// are two independent entries.
type Entry struct {
	CreatedAt    time.Time
	ID           string
	WalletID     string
	Type         EntryType
	Direction    EntryDirection
	FromCurrency CurrencyCode
	ToCurrency   CurrencyCode
	Amount       decimal.Decimal
}

// SignedAmount returns the entry's effect on its wallet's balance.
func (e *Entry) SignedAmount() decimal.Decimal {
	if e.Direction == DirectionCredit {
		return e.Amount.Neg()
	}

	return e.Amount
}

// InRange reports whether the entry's timestamp lies within [start, end],
// inclusive on both ends.
func (e *Entry) InRange(start, end time.Time) bool {
	return !e.CreatedAt.Before(start) && !e.CreatedAt.After(end)
}

// DirectionForType returns the balance direction implied by an entry type.
func DirectionForType(t EntryType) EntryDirection {
	if t == EntryTypeWithdrawal {
		return DirectionCredit
	}

	return DirectionDebit
}
