package usecase

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	// Create persists a new transaction and returns the id the store
	// assigned to it.
	Create(ctx context.Context, transaction *domain.Transaction) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	// Update overwrites all mutable fields of an existing transaction.
	Update(ctx context.Context, transaction *domain.Transaction) error
	Delete(ctx context.Context, id int64) error
	// List returns every transaction ordered by id ascending.
	List(ctx context.Context) ([]domain.Transaction, error)
}
