package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository on a local
// SQLite database. Amounts and dates are stored as text: amounts in decimal
// string form, dates in the ledger's DD-MM-YYYY format.
type TransactionRepository struct {
	db      *sql.DB
	retrier *Retrier
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{
		db:      db,
		retrier: NewRetrier(),
	}
}

// Create persists a new transaction and returns the assigned id.
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (int64, error) {
	var id int64

	err := r.retrier.Retry(ctx, func() error {
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO transactions (kind, amount, date, description) VALUES (?, ?, ?, ?)`,
			string(transaction.Kind),
			transaction.Amount.String(),
			transaction.Date.Format(domain.DateFormat),
			transaction.Description,
		)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, storeErr("insert transaction", err)
	}

	return id, nil
}

// GetByID retrieves a transaction by id.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, kind, amount, date, description FROM transactions WHERE id = ?`, id)

	transaction, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, storeErr("select transaction", err)
	}

	return transaction, nil
}

// Update overwrites all mutable fields of an existing transaction.
func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	err := r.retrier.Retry(ctx, func() error {
		result, err := r.db.ExecContext(ctx,
			`UPDATE transactions SET kind = ?, amount = ?, date = ?, description = ? WHERE id = ?`,
			string(transaction.Kind),
			transaction.Amount.String(),
			transaction.Date.Format(domain.DateFormat),
			transaction.Description,
			transaction.ID,
		)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrTransactionNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return err
		}
		return storeErr("update transaction", err)
	}

	return nil
}

// Delete removes a transaction by id.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	err := r.retrier.Retry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrTransactionNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return err
		}
		return storeErr("delete transaction", err)
	}

	return nil
}

// List returns every transaction ordered by id ascending.
func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, amount, date, description FROM transactions ORDER BY id ASC`)
	if err != nil {
		return nil, storeErr("list transactions", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, storeErr("scan transaction", err)
		}
		transactions = append(transactions, *transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list transactions", err)
	}

	return transactions, nil
}

func scanTransaction(scan func(dest ...any) error) (*domain.Transaction, error) {
	var (
		transaction domain.Transaction
		kind        string
		amount      string
		date        string
	)

	if err := scan(&transaction.ID, &kind, &amount, &date, &transaction.Description); err != nil {
		return nil, err
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("stored amount %q: %w", amount, err)
	}
	parsedDate, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("stored date %q: %w", date, err)
	}

	transaction.Kind = domain.Kind(kind)
	transaction.Amount = parsedAmount
	transaction.Date = parsedDate

	return &transaction, nil
}

// storeErr tags a driver failure with domain.ErrStoreFailure so callers can
// classify it without depending on this package.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStoreFailure, err))
}
