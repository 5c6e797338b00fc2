package domain

import "errors"

var (
	// Input validation errors. All are detected before any mutation is
	// attempted, so a rejected call leaves both the balance and the store
	// untouched.
	ErrInvalidAmount  = errors.New("amount must be a non-negative number")
	ErrInvalidDate    = errors.New("date must match the DD-MM-YYYY format")
	ErrInvalidKind    = errors.New("kind must be Income or Expense")
	ErrInvalidBalance = errors.New("balance must be a number")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// Store errors
	ErrStoreFailure = errors.New("ledger store failure")

	// Reporting errors
	ErrNoData = errors.New("no transactions recorded")
)
