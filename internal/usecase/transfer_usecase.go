package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// TransferUseCase moves value between two wallets, possibly owned by
// different users and denominated in different currencies.
type TransferUseCase struct {
	txManager  TransactionManager
	userRepo   UserRepository
	walletRepo WalletRepository
	entryRepo  EntryRepository
	converter  Converter
	idGen      IDGenerator
	cache      Cache
	metrics    *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase. cache and metrics may be nil.
func NewTransferUseCase(
	txManager TransactionManager,
	userRepo UserRepository,
	walletRepo WalletRepository,
	entryRepo EntryRepository,
	converter Converter,
	idGen IDGenerator,
	cache Cache,
	metrics *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:  txManager,
		userRepo:   userRepo,
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
		converter:  converter,
		idGen:      idGen,
		cache:      cache,
		metrics:    metrics,
	}
}

// CreateTransferInput represents input for a transfer.
type CreateTransferInput struct {
	SourceUserID   string
	SourceWalletID string
	DestUserID     string
	DestWalletID   string
	Amount         decimal.Decimal
}

// TransferResult reports the two entries produced by a transfer.
type TransferResult struct {
	SourceEntry    *domain.Entry
	DestEntry      *domain.Entry
	DebitedAmount  decimal.Decimal
	CreditedAmount decimal.Decimal
}

// CreateTransfer runs the transfer checks in order, short-circuiting on the
// first failure, then applies both entries and both balance updates as one
// atomic unit. The amount is expressed in the source wallet's currency; the
// destination is credited with the converted amount.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error) {
	result, err := uc.createTransfer(ctx, input)
	if err != nil && uc.metrics != nil {
		uc.metrics.TransferErrors.Inc()
	}

	return result, err
}

func (uc *TransferUseCase) createTransfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error) {
	start := time.Now()

	// Checks 1 and 2 need no state at all.
	if input.SourceWalletID == input.DestWalletID {
		return nil, domain.ErrSameWallet
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	// Check 3: resolve both sides before taking any lock, so a missing
	// party fails fast and in a deterministic order.
	if _, err := uc.userRepo.GetByID(ctx, input.SourceUserID); err != nil {
		return nil, err
	}

	if _, err := uc.walletRepo.GetByUserAndID(ctx, input.SourceUserID, input.SourceWalletID); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, input.DestUserID); err != nil {
		return nil, receiverErr(err)
	}

	if _, err := uc.walletRepo.GetByUserAndID(ctx, input.DestUserID, input.DestWalletID); err != nil {
		return nil, receiverErr(err)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock both wallet rows in wallet-ID order, never call order, so two
	// opposite-direction transfers over the same pair cannot deadlock.
	lockIDs := []string{input.SourceWalletID, input.DestWalletID}
	sort.Strings(lockIDs)

	locked, err := uc.walletRepo.GetByIDsForUpdate(ctx, tx, lockIDs)
	if err != nil {
		return nil, err
	}

	wallets := make(map[string]*domain.Wallet, len(locked))
	for _, w := range locked {
		wallets[w.ID] = w
	}

	// Re-verify under lock; either row may have vanished since the
	// unlocked reads.
	source := wallets[input.SourceWalletID]
	if source == nil || source.UserID != input.SourceUserID {
		return nil, domain.ErrWalletNotFound
	}

	dest := wallets[input.DestWalletID]
	if dest == nil || dest.UserID != input.DestUserID {
		return nil, domain.ErrReceiverWalletNotFound
	}

	// Check 4: sufficiency is judged in the source currency, before any
	// conversion.
	if source.Balance.LessThan(input.Amount) {
		return nil, domain.ErrInsufficientFunds
	}

	// Check 5: a missing rate aborts the transfer with nothing debited.
	converted, err := uc.converter.Convert(input.Amount, source.Currency, dest.Currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// Both entries record the same (from, to) pair for traceability.
	sourceEntry := &domain.Entry{
		ID:           uc.idGen.Generate(),
		WalletID:     source.ID,
		Type:         domain.EntryTypeTransfer,
		Direction:    domain.DirectionCredit,
		FromCurrency: source.Currency,
		ToCurrency:   dest.Currency,
		Amount:       input.Amount,
		CreatedAt:    now,
	}

	destEntry := &domain.Entry{
		ID:           uc.idGen.Generate(),
		WalletID:     dest.ID,
		Type:         domain.EntryTypeTransfer,
		Direction:    domain.DirectionDebit,
		FromCurrency: source.Currency,
		ToCurrency:   dest.Currency,
		Amount:       converted,
		CreatedAt:    now,
	}

	if err := uc.entryRepo.Create(ctx, tx, sourceEntry); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, tx, destEntry); err != nil {
		return nil, err
	}

	if err := uc.walletRepo.UpdateBalance(ctx, tx, source.ID, source.ApplyWithdrawal(input.Amount), now); err != nil {
		return nil, err
	}

	if err := uc.walletRepo.UpdateBalance(ctx, tx, dest.ID, dest.ApplyDeposit(converted), now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.invalidateWallets(ctx, source.ID, dest.ID)

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
	}

	return &TransferResult{
		SourceEntry:    sourceEntry,
		DestEntry:      destEntry,
		DebitedAmount:  input.Amount,
		CreditedAmount: converted,
	}, nil
}

// receiverErr maps lookup errors for the destination side to the
// receiver-specific sentinels.
func receiverErr(err error) error {
	switch err {
	case domain.ErrUserNotFound:
		return domain.ErrReceiverNotFound
	case domain.ErrWalletNotFound:
		return domain.ErrReceiverWalletNotFound
	default:
		return err
	}
}

func (uc *TransferUseCase) invalidateWallets(ctx context.Context, walletIDs ...string) {
	if uc.cache == nil {
		return
	}

	for _, id := range walletIDs {
		_ = uc.cache.Delete(ctx, walletCacheKey(id))
	}
}
