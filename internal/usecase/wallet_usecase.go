package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// WalletUseCase handles wallet management.
type WalletUseCase struct {
	userRepo   UserRepository
	walletRepo WalletRepository
	idGen      IDGenerator
	cache      Cache
	metrics    *metrics.Metrics
}

// NewWalletUseCase creates a new WalletUseCase. cache and metrics may be nil.
func NewWalletUseCase(userRepo UserRepository, walletRepo WalletRepository, idGen IDGenerator, cache Cache, metrics *metrics.Metrics) *WalletUseCase {
	return &WalletUseCase{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		idGen:      idGen,
		cache:      cache,
		metrics:    metrics,
	}
}

// CreateWalletInput represents input for creating a wallet.
type CreateWalletInput struct {
	UserID   string
	Currency string
}

// CreateWallet creates an empty wallet for the user.
func (uc *WalletUseCase) CreateWallet(ctx context.Context, input CreateWalletInput) (*domain.Wallet, error) {
	currency, err := domain.ParseCurrency(input.Currency)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	wallet := &domain.Wallet{
		ID:        uc.idGen.Generate(),
		UserID:    input.UserID,
		Currency:  currency,
		Balance:   decimal.Zero,
		Version:   0,
		Entries:   []*domain.Entry{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WalletsCreated.WithLabelValues(string(currency)).Inc()
	}

	return wallet, nil
}

// ListWallets returns the user's wallets in creation order.
func (uc *WalletUseCase) ListWallets(ctx context.Context, userID string) ([]*domain.Wallet, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return uc.walletRepo.GetByUserID(ctx, userID)
}

// GetWallet returns a user's wallet by id, without entries. Reads are served
// from cache when possible; mutations invalidate the cached copy.
func (uc *WalletUseCase) GetWallet(ctx context.Context, userID, walletID string) (*domain.Wallet, error) {
	if cached := uc.cachedWallet(ctx, userID, walletID); cached != nil {
		if uc.metrics != nil {
			uc.metrics.CacheHits.Inc()
		}

		return cached, nil
	}

	if uc.cache != nil && uc.metrics != nil {
		uc.metrics.CacheMisses.Inc()
	}

	wallet, err := uc.walletRepo.GetByUserAndID(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	uc.cacheWallet(ctx, wallet)

	return wallet, nil
}

func (uc *WalletUseCase) cachedWallet(ctx context.Context, userID, walletID string) *domain.Wallet {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, walletCacheKey(walletID))
	if err != nil {
		return nil
	}

	var wallet domain.Wallet
	if err := json.Unmarshal([]byte(raw), &wallet); err != nil {
		return nil
	}

	// The cache is keyed by wallet only; ownership still has to match.
	if wallet.UserID != userID {
		return nil
	}

	return &wallet
}

func (uc *WalletUseCase) cacheWallet(ctx context.Context, wallet *domain.Wallet) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(wallet)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, walletCacheKey(wallet.ID), string(raw), WalletCacheTTL)
}
