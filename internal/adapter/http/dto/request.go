package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/usecase"
)

// CreateUserRequest represents a request to create a user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateWalletRequest represents a request to create a wallet.
type CreateWalletRequest struct {
	Currency string `json:"currency"`
}

// CreateEntryRequest represents a deposit or withdrawal request.
type CreateEntryRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput(userID, walletID string) usecase.CreateEntryInput {
	return usecase.CreateEntryInput{
		UserID:   userID,
		WalletID: walletID,
		Amount:   r.Amount,
	}
}

// CreateTransferRequest represents a transfer request. The amount is
// expressed in the source wallet's currency.
type CreateTransferRequest struct {
	ReceiverID       string          `json:"receiver_id"`
	ReceiverWalletID string          `json:"receiver_wallet_id"`
	Amount           decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput(userID, walletID string) usecase.CreateTransferInput {
	return usecase.CreateTransferInput{
		SourceUserID:   userID,
		SourceWalletID: walletID,
		DestUserID:     r.ReceiverID,
		DestWalletID:   r.ReceiverWalletID,
		Amount:         r.Amount,
	}
}

const dateOnly = "2006-01-02"

// ParseDateRange parses start/end query values. Date-only values expand to
// the start and end of the day; full RFC3339 timestamps pass through.
func ParseDateRange(start, end string) (time.Time, time.Time, error) {
	startAt, err := parseRangeBound(start, false)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}

	endAt, err := parseRangeBound(end, true)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}

	return startAt, endAt, nil
}

func parseRangeBound(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(dateOnly, value)
	if err != nil {
		return time.Time{}, err
	}

	if endOfDay {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC), nil
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
