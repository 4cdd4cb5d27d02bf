package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// EntryUseCase handles deposit/withdrawal entry creation and entry queries.
type EntryUseCase struct {
	txManager  TransactionManager
	userRepo   UserRepository
	walletRepo WalletRepository
	entryRepo  EntryRepository
	idGen      IDGenerator
	cache      Cache
	metrics    *metrics.Metrics
}

// NewEntryUseCase creates a new EntryUseCase. cache and metrics may be nil.
func NewEntryUseCase(
	txManager TransactionManager,
	userRepo UserRepository,
	walletRepo WalletRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	cache Cache,
	metrics *metrics.Metrics,
) *EntryUseCase {
	return &EntryUseCase{
		txManager:  txManager,
		userRepo:   userRepo,
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
		idGen:      idGen,
		cache:      cache,
		metrics:    metrics,
	}
}

// CreateEntryInput represents input for a deposit or withdrawal.
type CreateEntryInput struct {
	UserID   string
	WalletID string
	Amount   decimal.Decimal
}

// CreateDeposit appends a DEBIT-direction deposit entry to the wallet and
// increases its balance.
func (uc *EntryUseCase) CreateDeposit(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	entry, err := uc.createEntry(ctx, input, domain.EntryTypeDeposit)
	if err != nil && uc.metrics != nil {
		uc.metrics.EntryErrors.WithLabelValues(string(domain.EntryTypeDeposit)).Inc()
	}

	return entry, err
}

// CreateWithdrawal appends a CREDIT-direction withdrawal entry to the wallet
// and decreases its balance. The wallet is left untouched when the amount
// exceeds the balance.
func (uc *EntryUseCase) CreateWithdrawal(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	entry, err := uc.createEntry(ctx, input, domain.EntryTypeWithdrawal)
	if err != nil && uc.metrics != nil {
		uc.metrics.EntryErrors.WithLabelValues(string(domain.EntryTypeWithdrawal)).Inc()
	}

	return entry, err
}

func (uc *EntryUseCase) createEntry(ctx context.Context, input CreateEntryInput, entryType domain.EntryType) (*domain.Entry, error) {
	// Resolve the owner before taking any lock.
	if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	wallet, err := uc.walletRepo.GetByIDForUpdate(ctx, tx, input.WalletID)
	if err != nil {
		return nil, err
	}

	if wallet.UserID != input.UserID {
		return nil, domain.ErrWalletNotFound
	}

	now := time.Now().UTC()
	entry := &domain.Entry{
		ID:           uc.idGen.Generate(),
		WalletID:     wallet.ID,
		Type:         entryType,
		Direction:    domain.DirectionForType(entryType),
		FromCurrency: wallet.Currency,
		ToCurrency:   wallet.Currency,
		Amount:       input.Amount,
		CreatedAt:    now,
	}

	if err := domain.ValidateAmount(entry.Amount); err != nil {
		return nil, err
	}

	var newBalance decimal.Decimal

	switch entryType {
	case domain.EntryTypeDeposit:
		newBalance = wallet.ApplyDeposit(entry.Amount)
	case domain.EntryTypeWithdrawal:
		if err := wallet.ValidateWithdrawal(entry.Amount); err != nil {
			return nil, err
		}

		newBalance = wallet.ApplyWithdrawal(entry.Amount)
	default:
		return nil, domain.ErrInvalidAmount
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.walletRepo.UpdateBalance(ctx, tx, wallet.ID, newBalance, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.invalidateWallet(ctx, wallet.ID)

	if uc.metrics != nil {
		uc.metrics.EntriesCreated.WithLabelValues(string(entryType)).Inc()
		uc.metrics.EntryAmount.WithLabelValues(string(entryType)).Observe(entry.Amount.InexactFloat64())
	}

	return entry, nil
}

// EntriesRangeInput represents input for range queries over a wallet's entries.
type EntriesRangeInput struct {
	UserID   string
	WalletID string
	Start    time.Time
	End      time.Time
}

// Summarize computes total debit/credit and the filtered entry list for a
// wallet over [Start, End], inclusive on both ends.
func (uc *EntryUseCase) Summarize(ctx context.Context, input EntriesRangeInput) (*domain.EntriesSummary, error) {
	wallet, err := uc.loadWallet(ctx, input.UserID, input.WalletID)
	if err != nil {
		return nil, err
	}

	return wallet.Summarize(input.Start, input.End)
}

// ListEntries returns a wallet's entries over [Start, End] without
// aggregation, for export.
func (uc *EntryUseCase) ListEntries(ctx context.Context, input EntriesRangeInput) ([]*domain.Entry, error) {
	wallet, err := uc.loadWallet(ctx, input.UserID, input.WalletID)
	if err != nil {
		return nil, err
	}

	return wallet.FilterEntries(input.Start, input.End)
}

func (uc *EntryUseCase) loadWallet(ctx context.Context, userID, walletID string) (*domain.Wallet, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	wallet, err := uc.walletRepo.GetByUserAndID(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}

	wallet.Entries = entries

	return wallet, nil
}

func (uc *EntryUseCase) invalidateWallet(ctx context.Context, walletID string) {
	if uc.cache == nil {
		return
	}

	// Best effort; a stale cache entry expires on its own.
	_ = uc.cache.Delete(ctx, walletCacheKey(walletID))
}

func walletCacheKey(walletID string) string {
	return "wallet:" + walletID
}
