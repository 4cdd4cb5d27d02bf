package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// UserResponse represents a user in API responses. The password hash never
// leaves the service.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// WalletResponse represents a wallet in API responses.
type WalletResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletFromDomain converts a domain wallet to a response.
func WalletFromDomain(w *domain.Wallet) *WalletResponse {
	return &WalletResponse{
		ID:        w.ID,
		UserID:    w.UserID,
		Currency:  string(w.Currency),
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// WalletsFromDomain converts domain wallets to responses.
func WalletsFromDomain(wallets []*domain.Wallet) []*WalletResponse {
	result := make([]*WalletResponse, len(wallets))
	for i, w := range wallets {
		result[i] = WalletFromDomain(w)
	}
	return result
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID           string          `json:"id"`
	WalletID     string          `json:"wallet_id"`
	Type         string          `json:"type"`
	Direction    string          `json:"direction"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:           e.ID,
		WalletID:     e.WalletID,
		Type:         string(e.Type),
		Direction:    string(e.Direction),
		FromCurrency: string(e.FromCurrency),
		ToCurrency:   string(e.ToCurrency),
		Amount:       e.Amount,
		CreatedAt:    e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// TransferResponse reports both sides of a completed transfer.
type TransferResponse struct {
	SourceEntry    *EntryResponse  `json:"source_entry"`
	DestEntry      *EntryResponse  `json:"destination_entry"`
	DebitedAmount  decimal.Decimal `json:"debited_amount"`
	CreditedAmount decimal.Decimal `json:"credited_amount"`
}

// TransferFromResult converts a transfer result to a response.
func TransferFromResult(r *usecase.TransferResult) *TransferResponse {
	return &TransferResponse{
		SourceEntry:    EntryFromDomain(r.SourceEntry),
		DestEntry:      EntryFromDomain(r.DestEntry),
		DebitedAmount:  r.DebitedAmount,
		CreditedAmount: r.CreditedAmount,
	}
}

// SummaryResponse represents an entries summary in API responses.
type SummaryResponse struct {
	TotalDebit  decimal.Decimal  `json:"total_debit"`
	TotalCredit decimal.Decimal  `json:"total_credit"`
	Entries     []*EntryResponse `json:"entries"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s *domain.EntriesSummary) *SummaryResponse {
	return &SummaryResponse{
		TotalDebit:  s.TotalDebit,
		TotalCredit: s.TotalCredit,
		Entries:     EntriesFromDomain(s.Entries),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
