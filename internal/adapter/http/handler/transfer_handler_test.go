package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/internal/usecase/mocks"
)

type transferHandlerFixture struct {
	userRepo   *mocks.MockUserRepository
	walletRepo *mocks.MockWalletRepository
	router     chi.Router
}

func newTransferHandlerFixture(t *testing.T) *transferHandlerFixture {
	t.Helper()

	f := &transferHandlerFixture{
		userRepo:   mocks.NewMockUserRepository(),
		walletRepo: mocks.NewMockWalletRepository(),
	}

	transferUC := usecase.NewTransferUseCase(
		mocks.NewMockTransactionManager(),
		f.userRepo,
		f.walletRepo,
		mocks.NewMockEntryRepository(),
		domain.NewConverter(domain.DefaultRates()),
		mocks.NewMockIDGenerator(),
		nil,
		nil,
	)
	h := NewTransferHandler(transferUC)

	f.router = chi.NewRouter()
	f.router.Post("/users/{userID}/wallets/{walletID}/transfer", h.Create)

	return f
}

func (f *transferHandlerFixture) seed(t *testing.T, userID, walletID string, currency domain.CurrencyCode, balance string) {
	t.Helper()

	user := &domain.User{ID: userID, Email: userID + "@example.com", Name: userID}
	require.NoError(t, f.userRepo.Create(context.Background(), user))

	f.walletRepo.Add(&domain.Wallet{
		ID:       walletID,
		UserID:   userID,
		Currency: currency,
		Balance:  decimal.RequireFromString(balance),
		Entries:  []*domain.Entry{},
	})
}

func TestTransferHandler_Create(t *testing.T) {
	f := newTransferHandlerFixture(t)
	f.seed(t, "alice", "wallet-a", domain.BGN, "200.00")
	f.seed(t, "bob", "wallet-b", domain.USD, "100.00")

	body, err := json.Marshal(dto.CreateTransferRequest{
		ReceiverID:       "bob",
		ReceiverWalletID: "wallet-b",
		Amount:           decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/alice/wallets/wallet-a/transfer", bytes.NewReader(body))
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.TransferResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.DebitedAmount.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, resp.CreditedAmount.Equal(decimal.RequireFromString("28.50")))
	assert.Equal(t, "CREDIT", resp.SourceEntry.Direction)
	assert.Equal(t, "DEBIT", resp.DestEntry.Direction)
}

func TestTransferHandler_CreateErrors(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateTransferRequest
		wantStatus int
		wantBody   string
	}{
		{
			name: "same wallet",
			req: dto.CreateTransferRequest{
				ReceiverID:       "alice",
				ReceiverWalletID: "wallet-a",
				Amount:           decimal.NewFromInt(10),
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "same wallet",
		},
		{
			name: "unknown receiver",
			req: dto.CreateTransferRequest{
				ReceiverID:       "nobody",
				ReceiverWalletID: "wallet-b",
				Amount:           decimal.NewFromInt(10),
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "receiver not found",
		},
		{
			name: "unknown receiver wallet",
			req: dto.CreateTransferRequest{
				ReceiverID:       "bob",
				ReceiverWalletID: "missing",
				Amount:           decimal.NewFromInt(10),
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "receiver's wallet not found",
		},
		{
			name: "insufficient funds",
			req: dto.CreateTransferRequest{
				ReceiverID:       "bob",
				ReceiverWalletID: "wallet-b",
				Amount:           decimal.NewFromInt(5000),
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "exceeds the current balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferHandlerFixture(t)
			f.seed(t, "alice", "wallet-a", domain.USD, "200.00")
			f.seed(t, "bob", "wallet-b", domain.USD, "100.00")

			body, err := json.Marshal(tt.req)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/users/alice/wallets/wallet-a/transfer", bytes.NewReader(body))
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
