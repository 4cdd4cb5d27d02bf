package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/internal/usecase/mocks"
)

type transferFixture struct {
	userRepo   *mocks.MockUserRepository
	walletRepo *mocks.MockWalletRepository
	entryRepo  *mocks.MockEntryRepository
	uc         *usecase.TransferUseCase
}

func newTransferFixture(t *testing.T) *transferFixture {
	t.Helper()

	f := &transferFixture{
		userRepo:   mocks.NewMockUserRepository(),
		walletRepo: mocks.NewMockWalletRepository(),
		entryRepo:  mocks.NewMockEntryRepository(),
	}

	f.uc = usecase.NewTransferUseCase(
		mocks.NewMockTransactionManager(),
		f.userRepo,
		f.walletRepo,
		f.entryRepo,
		domain.NewConverter(domain.DefaultRates()),
		mocks.NewMockIDGenerator(),
		nil,
		nil,
	)

	return f
}

func (f *transferFixture) seedWallet(t *testing.T, userID, walletID string, currency domain.CurrencyCode, balance string) *domain.Wallet {
	t.Helper()

	if _, err := f.userRepo.GetByID(context.Background(), userID); errors.Is(err, domain.ErrUserNotFound) {
		user := &domain.User{ID: userID, Email: userID + "@example.com", Name: userID}
		if err := f.userRepo.Create(context.Background(), user); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	wallet := &domain.Wallet{
		ID:       walletID,
		UserID:   userID,
		Currency: currency,
		Balance:  decimal.RequireFromString(balance),
		Entries:  []*domain.Entry{},
	}
	f.walletRepo.Add(wallet)

	return wallet
}

func TestTransferUseCase_SameCurrency(t *testing.T) {
	f := newTransferFixture(t)
	source := f.seedWallet(t, "alice", "wallet-a", domain.USD, "200.00")
	dest := f.seedWallet(t, "bob", "wallet-b", domain.USD, "100.00")

	result, err := f.uc.CreateTransfer(context.Background(), usecase.CreateTransferInput{
		SourceUserID:   "alice",
		SourceWalletID: "wallet-a",
		DestUserID:     "bob",
		DestWalletID:   "wallet-b",
		Amount:         decimal.RequireFromString("50.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !source.Balance.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("expected source balance 150.00, got %s", source.Balance)
	}

	if !dest.Balance.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("expected dest balance 150.00, got %s", dest.Balance)
	}

	if !result.CreditedAmount.Equal(result.DebitedAmount) {
		t.Errorf("same-currency transfer must credit what it debits, got %s vs %s", result.CreditedAmount, result.DebitedAmount)
	}

	entries := f.entryRepo.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}

	if entries[0].Direction != domain.DirectionCredit || entries[0].WalletID != "wallet-a" {
		t.Errorf("first entry must be the source CREDIT, got %s on %s", entries[0].Direction, entries[0].WalletID)
	}

	if entries[1].Direction != domain.DirectionDebit || entries[1].WalletID != "wallet-b" {
		t.Errorf("second entry must be the dest DEBIT, got %s on %s", entries[1].Direction, entries[1].WalletID)
	}
}

func TestTransferUseCase_CrossCurrency(t *testing.T) {
	f := newTransferFixture(t)
	source := f.seedWallet(t, "alice", "wallet-a", domain.BGN, "200.00")
	dest := f.seedWallet(t, "bob", "wallet-b", domain.USD, "100.00")

	result, err := f.uc.CreateTransfer(context.Background(), usecase.CreateTransferInput{
		SourceUserID:   "alice",
		SourceWalletID: "wallet-a",
		DestUserID:     "bob",
		DestWalletID:   "wallet-b",
		Amount:         decimal.RequireFromString("50.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 50.00 BGN at 0.57 credits 28.50 USD.
	if !source.Balance.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("expected source balance 150.00 BGN, got %s", source.Balance)
	}

	if !dest.Balance.Equal(decimal.RequireFromString("128.50")) {
		t.Errorf("expected dest balance 128.50 USD, got %s", dest.Balance)
	}

	if !result.CreditedAmount.Equal(decimal.RequireFromString("28.50")) {
		t.Errorf("expected credited amount 28.50, got %s", result.CreditedAmount)
	}

	for _, e := range f.entryRepo.Entries() {
		if e.FromCurrency != domain.BGN || e.ToCurrency != domain.USD {
			t.Errorf("both entries must record BGN->USD, got %s->%s", e.FromCurrency, e.ToCurrency)
		}
	}
}

func TestTransferUseCase_SameWalletBeforeLookups(t *testing.T) {
	f := newTransferFixture(t)

	f.userRepo.GetByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
		t.Fatal("no user lookup may happen for a same-wallet transfer")
		return nil, nil
	}

	_, err := f.uc.CreateTransfer(context.Background(), usecase.CreateTransferInput{
		SourceUserID:   "alice",
		SourceWalletID: "wallet-a",
		DestUserID:     "bob",
		DestWalletID:   "wallet-a",
		Amount:         decimal.RequireFromString("50.00"),
	})
	if !errors.Is(err, domain.ErrSameWallet) {
		t.Fatalf("expected ErrSameWallet, got %v", err)
	}
}

func TestTransferUseCase_CheckOrder(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateTransferInput
		expectError error
	}{
		{
			name: "non-positive amount",
			input: usecase.CreateTransferInput{
				SourceUserID:   "alice",
				SourceWalletID: "wallet-a",
				DestUserID:     "bob",
				DestWalletID:   "wallet-b",
				Amount:         decimal.Zero,
			},
			expectError: domain.ErrInvalidAmount,
		},
		{
			name: "missing source user",
			input: usecase.CreateTransferInput{
				SourceUserID:   "nobody",
				SourceWalletID: "wallet-a",
				DestUserID:     "bob",
				DestWalletID:   "wallet-b",
				Amount:         decimal.NewFromInt(10),
			},
			expectError: domain.ErrUserNotFound,
		},
		{
			name: "missing source wallet",
			input: usecase.CreateTransferInput{
				SourceUserID:   "alice",
				SourceWalletID: "missing",
				DestUserID:     "bob",
				DestWalletID:   "wallet-b",
				Amount:         decimal.NewFromInt(10),
			},
			expectError: domain.ErrWalletNotFound,
		},
		{
			name: "missing destination user",
			input: usecase.CreateTransferInput{
				SourceUserID:   "alice",
				SourceWalletID: "wallet-a",
				DestUserID:     "nobody",
				DestWalletID:   "wallet-b",
				Amount:         decimal.NewFromInt(10),
			},
			expectError: domain.ErrReceiverNotFound,
		},
		{
			name: "missing destination wallet",
			input: usecase.CreateTransferInput{
				SourceUserID:   "alice",
				SourceWalletID: "wallet-a",
				DestUserID:     "bob",
				DestWalletID:   "missing",
				Amount:         decimal.NewFromInt(10),
			},
			expectError: domain.ErrReceiverWalletNotFound,
		},
		{
			name: "insufficient funds",
			input: usecase.CreateTransferInput{
				SourceUserID:   "alice",
				SourceWalletID: "wallet-a",
				DestUserID:     "bob",
				DestWalletID:   "wallet-b",
				Amount:         decimal.NewFromInt(500),
			},
			expectError: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferFixture(t)
			source := f.seedWallet(t, "alice", "wallet-a", domain.USD, "200.00")
			dest := f.seedWallet(t, "bob", "wallet-b", domain.USD, "100.00")

			_, err := f.uc.CreateTransfer(context.Background(), tt.input)
			if !errors.Is(err, tt.expectError) {
				t.Fatalf("expected error %v, got %v", tt.expectError, err)
			}

			if !source.Balance.Equal(decimal.RequireFromString("200.00")) {
				t.Errorf("source balance mutated on failed transfer: %s", source.Balance)
			}

			if !dest.Balance.Equal(decimal.RequireFromString("100.00")) {
				t.Errorf("dest balance mutated on failed transfer: %s", dest.Balance)
			}

			if len(f.entryRepo.Entries()) != 0 {
				t.Errorf("entries appended on failed transfer")
			}
		})
	}
}

func TestTransferUseCase_MissingRateDebitsNothing(t *testing.T) {
	f := newTransferFixture(t)
	source := f.seedWallet(t, "alice", "wallet-a", domain.BGN, "200.00")
	f.seedWallet(t, "bob", "wallet-b", domain.USD, "100.00")

	// Rebuild the use case with an empty rate table.
	f.uc = usecase.NewTransferUseCase(
		mocks.NewMockTransactionManager(),
		f.userRepo,
		f.walletRepo,
		f.entryRepo,
		domain.NewConverter(nil),
		mocks.NewMockIDGenerator(),
		nil,
		nil,
	)

	_, err := f.uc.CreateTransfer(context.Background(), usecase.CreateTransferInput{
		SourceUserID:   "alice",
		SourceWalletID: "wallet-a",
		DestUserID:     "bob",
		DestWalletID:   "wallet-b",
		Amount:         decimal.RequireFromString("50.00"),
	})
	if !errors.Is(err, domain.ErrMissingExchangeRate) {
		t.Fatalf("expected ErrMissingExchangeRate, got %v", err)
	}

	if !source.Balance.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("source debited despite missing rate: %s", source.Balance)
	}

	if len(f.entryRepo.Entries()) != 0 {
		t.Errorf("entries appended despite missing rate")
	}
}

func TestTransferUseCase_ConverterCalledWithSourcePair(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTransferFixture(t)
	f.seedWallet(t, "alice", "wallet-a", domain.USD, "100.00")
	dest := f.seedWallet(t, "bob", "wallet-b", domain.EUR, "0")

	converter := mocks.NewGoMockConverter(ctrl)
	converter.EXPECT().
		Convert(decimal.RequireFromString("50.00"), domain.USD, domain.EUR).
		Return(decimal.RequireFromString("42.50"), nil)

	uc := usecase.NewTransferUseCase(
		mocks.NewMockTransactionManager(),
		f.userRepo,
		f.walletRepo,
		f.entryRepo,
		converter,
		mocks.NewMockIDGenerator(),
		nil,
		nil,
	)

	result, err := uc.CreateTransfer(context.Background(), usecase.CreateTransferInput{
		SourceUserID:   "alice",
		SourceWalletID: "wallet-a",
		DestUserID:     "bob",
		DestWalletID:   "wallet-b",
		Amount:         decimal.RequireFromString("50.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.CreditedAmount.Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("expected the converter's result to be credited, got %s", result.CreditedAmount)
	}

	if !dest.Balance.Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("expected dest balance 42.50, got %s", dest.Balance)
	}
}
