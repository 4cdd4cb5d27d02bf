package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/adapter/http/handler"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/auth"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/internal/usecase/mocks"
)

func newRouterConfig(t *testing.T, opts ...func(*RouterConfig)) RouterConfig {
	t.Helper()

	userRepo := mocks.NewMockUserRepository()
	walletRepo := mocks.NewMockWalletRepository()
	entryRepo := mocks.NewMockEntryRepository()
	txManager := mocks.NewMockTransactionManager()
	idGen := mocks.NewMockIDGenerator()

	require.NoError(t, userRepo.Create(context.Background(),
		&domain.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"}))
	walletRepo.Add(&domain.Wallet{
		ID:       "wallet-1",
		UserID:   "user-1",
		Currency: domain.USD,
		Balance:  decimal.NewFromInt(100),
		Entries:  []*domain.Entry{},
	})

	entryUC := usecase.NewEntryUseCase(txManager, userRepo, walletRepo, entryRepo, idGen, nil, nil)
	transferUC := usecase.NewTransferUseCase(txManager, userRepo, walletRepo, entryRepo,
		domain.NewConverter(domain.DefaultRates()), idGen, nil, nil)
	walletUC := usecase.NewWalletUseCase(userRepo, walletRepo, idGen, nil, nil)
	userUC := usecase.NewUserUseCase(userRepo, idGen, nil)

	cfg := RouterConfig{
		UserHandler:     handler.NewUserHandler(userUC),
		WalletHandler:   handler.NewWalletHandler(walletUC),
		EntryHandler:    handler.NewEntryHandler(entryUC),
		TransferHandler: handler.NewTransferHandler(transferUC),
		HealthHandler:   handler.NewHealthHandler(nil, nil),
		Logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterDepositRoute(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	body, err := json.Marshal(dto.CreateEntryRequest{Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/wallets/wallet-1/deposit", bytes.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRouterRateLimiterBlocksExcessRequests(t *testing.T) {
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.RateLimit = 1
		cfg.RateLimitBurst = 1
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	require.Equal(t, http.StatusOK, rec1.Code)

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
}

type stubIdempotencyStore struct {
	stored map[string][]byte
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if existing, ok := s.stored[key]; ok {
		return true, existing, nil
	}
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if s.stored == nil {
		s.stored = make(map[string][]byte)
	}
	s.stored[key] = response
	return nil
}

func TestRouterIdempotentDepositReplays(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body, err := json.Marshal(dto.CreateEntryRequest{Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	rec1 := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/wallets/wallet-1/deposit", bytes.NewReader(body))
	req1.Header.Set("Idempotency-Key", "dep-1")
	router.ServeHTTP(rec1, req1)
	require.Equal(t, http.StatusCreated, rec1.Code, rec1.Body.String())

	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/wallets/wallet-1/deposit", bytes.NewReader(body))
	req2.Header.Set("Idempotency-Key", "dep-1")
	router.ServeHTTP(rec2, req2)

	assert.Equal(t, "true", rec2.Header().Get("X-Idempotency-Replay"))
	assert.JSONEq(t, rec1.Body.String(), rec2.Body.String())
}

func TestRouterAuthGatesMutations(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Minute)
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.JWTManager = jwtManager
	}))

	body, err := json.Marshal(dto.CreateEntryRequest{Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	depositReq := func(token string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/wallets/wallet-1/deposit", bytes.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, depositReq("").Code)

	viewerToken, err := jwtManager.Generate(&domain.User{ID: "user-1", Role: domain.RoleViewer})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, depositReq(viewerToken).Code)

	operatorToken, err := jwtManager.Generate(&domain.User{ID: "user-1", Role: domain.RoleOperator})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, depositReq(operatorToken).Code)

	// Reads stay open to any authenticated caller.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/wallets", nil)
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
