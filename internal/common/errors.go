// Package common defines shared constants and sentinel errors used across
// the FinLedger service layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Account errors.
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// Ledger errors.
	ErrStatementNotFound    = errors.New("statement not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidOperationType = errors.New("invalid operation type")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
