package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds a balance in a single currency for exactly one user. The
// balance always equals the net effect of its entries applied in creation
// order: +amount for DEBIT-direction entries, -amount for CREDIT-direction.
type Wallet struct {
	ID        string
	UserID    string
	Currency  CurrencyCode
	Balance   decimal.Decimal
	Version   int64
	Entries   []*Entry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateAmount is the shared positive-amount guard applied before any
// balance mutation.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateWithdrawal checks that amount can be withdrawn from the wallet.
func (w *Wallet) ValidateWithdrawal(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	if w.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	return nil
}

// ApplyDeposit returns the balance after a deposit of amount.
func (w *Wallet) ApplyDeposit(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Add(amount)
}

// ApplyWithdrawal returns the balance after a withdrawal of amount.
func (w *Wallet) ApplyWithdrawal(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Sub(amount)
}

// Replay computes the balance implied by the wallet's entries in order.
// It is used for consistency checks, not for serving reads.
func (w *Wallet) Replay() decimal.Decimal {
	total := decimal.Zero
	for _, e := range w.Entries {
		total = total.Add(e.SignedAmount())
	}

	return total
}
