package usecase

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// LedgerUseCase is the transactional façade over the ledger. All mutation
// goes through here so the balance and the store stay synchronized: one mutex
// guards every balance-adjust/store-write pair, and a store failure after a
// balance adjustment triggers the compensating reversal.
type LedgerUseCase struct {
	mu              sync.Mutex
	transactionRepo TransactionRepository
	balance         *domain.Balance
}

// NewLedgerUseCase creates a new LedgerUseCase owning the given balance.
func NewLedgerUseCase(transactionRepo TransactionRepository, balance *domain.Balance) *LedgerUseCase {
	return &LedgerUseCase{
		transactionRepo: transactionRepo,
		balance:         balance,
	}
}

// TransactionInput carries the raw string fields of a transaction as entered
// by the presentation layer.
type TransactionInput struct {
	Kind        string
	Amount      string
	Date        string
	Description string
}

func (in TransactionInput) parse() (*domain.Transaction, error) {
	kind, err := domain.ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		Kind:        kind,
		Amount:      amount,
		Date:        date,
		Description: in.Description,
	}, nil
}

// Add validates the input, adjusts the balance for expenses and persists the
// transaction. Validation failures block the operation before any mutation.
func (uc *LedgerUseCase) Add(ctx context.Context, input TransactionInput) (*domain.Transaction, error) {
	transaction, err := input.parse()
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if transaction.Kind == domain.KindExpense {
		uc.balance.ApplyExpense(transaction.Amount)
	}

	id, err := uc.transactionRepo.Create(ctx, transaction)
	if err != nil {
		if transaction.Kind == domain.KindExpense {
			uc.balance.ReverseExpense(transaction.Amount)
		}
		return nil, err
	}

	transaction.ID = id

	return transaction, nil
}

// Edit overwrites an existing transaction. The prior record's balance effect
// is reversed before the new one is applied, so repeated edits cannot drift
// the balance away from the ledger.
func (uc *LedgerUseCase) Edit(ctx context.Context, id int64, input TransactionInput) (*domain.Transaction, error) {
	transaction, err := input.parse()
	if err != nil {
		return nil, err
	}
	transaction.ID = id

	uc.mu.Lock()
	defer uc.mu.Unlock()

	previous, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if previous.Kind == domain.KindExpense {
		uc.balance.ReverseExpense(previous.Amount)
	}
	if transaction.Kind == domain.KindExpense {
		uc.balance.ApplyExpense(transaction.Amount)
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		if transaction.Kind == domain.KindExpense {
			uc.balance.ReverseExpense(transaction.Amount)
		}
		if previous.Kind == domain.KindExpense {
			uc.balance.ApplyExpense(previous.Amount)
		}
		return nil, err
	}

	return transaction, nil
}

// Remove deletes a transaction, reversing its balance effect if it was an
// expense.
func (uc *LedgerUseCase) Remove(ctx context.Context, id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	previous, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if previous.Kind == domain.KindExpense {
		uc.balance.ReverseExpense(previous.Amount)
	}

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		if previous.Kind == domain.KindExpense {
			uc.balance.ApplyExpense(previous.Amount)
		}
		return err
	}

	return nil
}

// List returns every transaction ordered by id ascending.
func (uc *LedgerUseCase) List(ctx context.Context) ([]domain.Transaction, error) {
	return uc.transactionRepo.List(ctx)
}

// SetBalance replaces the tracked balance wholesale.
func (uc *LedgerUseCase) SetBalance(_ context.Context, value string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.balance.Set(value)
}

// Balance returns the current tracked balance.
func (uc *LedgerUseCase) Balance(_ context.Context) decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.balance.Amount()
}
