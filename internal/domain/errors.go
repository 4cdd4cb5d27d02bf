package domain

import "errors"

var (
	// Lookup errors. The transfer path reports which side of the operation
	// was missing, so receiver lookups get their own sentinels.
	ErrUserNotFound           = errors.New("user not found")
	ErrWalletNotFound         = errors.New("wallet not found")
	ErrReceiverNotFound       = errors.New("receiver not found")
	ErrReceiverWalletNotFound = errors.New("receiver's wallet not found")

	// Business rule errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("the withdrawal amount exceeds the current balance")
	ErrSameWallet        = errors.New("cannot transfer to the same wallet")

	// Query errors
	ErrInvalidDateRange = errors.New("start date cannot be after end date")
	ErrMissingEntries   = errors.New("wallet entry collection is missing")
)
