package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
)

func newLedger(opening string) (*usecase.LedgerUseCase, *mocks.MockTransactionRepository) {
	repo := mocks.NewMockTransactionRepository()
	balance := domain.NewBalance(decimal.RequireFromString(opening))
	return usecase.NewLedgerUseCase(repo, balance), repo
}

func TestLedgerUseCase_Add(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.TransactionInput
		wantBalance string
		wantErr     error
	}{
		{
			name:        "expense reduces balance",
			input:       usecase.TransactionInput{Kind: "Expense", Amount: "250.75", Date: "05-03-2024", Description: "Groceries"},
			wantBalance: "749.25",
		},
		{
			name:        "income never moves the balance",
			input:       usecase.TransactionInput{Kind: "Income", Amount: "5000", Date: "06-03-2024", Description: "Bonus"},
			wantBalance: "1000",
		},
		{
			name:        "unparsable amount",
			input:       usecase.TransactionInput{Kind: "Expense", Amount: "abc", Date: "01-01-2024", Description: "x"},
			wantBalance: "1000",
			wantErr:     domain.ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			input:       usecase.TransactionInput{Kind: "Expense", Amount: "-10", Date: "01-01-2024", Description: "x"},
			wantBalance: "1000",
			wantErr:     domain.ErrInvalidAmount,
		},
		{
			name:        "unparsable date",
			input:       usecase.TransactionInput{Kind: "Expense", Amount: "100", Date: "31-13-2024", Description: "x"},
			wantBalance: "1000",
			wantErr:     domain.ErrInvalidDate,
		},
		{
			name:        "unknown kind",
			input:       usecase.TransactionInput{Kind: "Loan", Amount: "100", Date: "01-01-2024", Description: "x"},
			wantBalance: "1000",
			wantErr:     domain.ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newLedger("1000")

			transaction, err := uc.Add(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				stored, _ := repo.List(context.Background())
				if len(stored) != 0 {
					t.Error("rejected input must not reach the store")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if transaction.ID == 0 {
					t.Error("expected a store-assigned id")
				}
			}

			if got := uc.Balance(context.Background()).String(); got != tt.wantBalance {
				t.Errorf("balance: expected %s, got %s", tt.wantBalance, got)
			}
		})
	}
}

func TestLedgerUseCase_Add_StoreFailureCompensates(t *testing.T) {
	uc, repo := newLedger("1000")
	repo.CreateFunc = func(ctx context.Context, transaction *domain.Transaction) (int64, error) {
		return 0, domain.ErrStoreFailure
	}

	_, err := uc.Add(context.Background(), usecase.TransactionInput{
		Kind: "Expense", Amount: "100", Date: "01-01-2024", Description: "x",
	})

	if !errors.Is(err, domain.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}
	if got := uc.Balance(context.Background()).String(); got != "1000" {
		t.Errorf("balance must be restored after a failed write, got %s", got)
	}
}

func TestLedgerUseCase_Edit(t *testing.T) {
	t.Run("changing an expense amount applies the delta", func(t *testing.T) {
		uc, _ := newLedger("1000")
		added, err := uc.Add(context.Background(), usecase.TransactionInput{
			Kind: "Expense", Amount: "250.75", Date: "05-03-2024", Description: "Groceries",
		})
		if err != nil {
			t.Fatal(err)
		}

		_, err = uc.Edit(context.Background(), added.ID, usecase.TransactionInput{
			Kind: "Expense", Amount: "300.00", Date: "05-03-2024", Description: "Groceries",
		})
		if err != nil {
			t.Fatal(err)
		}

		if got := uc.Balance(context.Background()).String(); got != "700" {
			t.Errorf("expected 700 after edit, got %s", got)
		}
	})

	t.Run("expense edited into income releases its balance effect", func(t *testing.T) {
		uc, _ := newLedger("1000")
		added, _ := uc.Add(context.Background(), usecase.TransactionInput{
			Kind: "Expense", Amount: "100", Date: "01-01-2024", Description: "x",
		})

		if _, err := uc.Edit(context.Background(), added.ID, usecase.TransactionInput{
			Kind: "Income", Amount: "100", Date: "01-01-2024", Description: "x",
		}); err != nil {
			t.Fatal(err)
		}

		if got := uc.Balance(context.Background()).String(); got != "1000" {
			t.Errorf("expected 1000 after edit to income, got %s", got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		uc, _ := newLedger("1000")

		_, err := uc.Edit(context.Background(), 42, usecase.TransactionInput{
			Kind: "Expense", Amount: "100", Date: "01-01-2024", Description: "x",
		})

		if !errors.Is(err, domain.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
		if got := uc.Balance(context.Background()).String(); got != "1000" {
			t.Errorf("balance must not move, got %s", got)
		}
	})

	t.Run("store failure restores the prior balance effect", func(t *testing.T) {
		uc, repo := newLedger("1000")
		added, _ := uc.Add(context.Background(), usecase.TransactionInput{
			Kind: "Expense", Amount: "250.75", Date: "05-03-2024", Description: "Groceries",
		})

		repo.UpdateFunc = func(ctx context.Context, transaction *domain.Transaction) error {
			return domain.ErrStoreFailure
		}

		_, err := uc.Edit(context.Background(), added.ID, usecase.TransactionInput{
			Kind: "Expense", Amount: "300.00", Date: "05-03-2024", Description: "Groceries",
		})

		if !errors.Is(err, domain.ErrStoreFailure) {
			t.Fatalf("expected ErrStoreFailure, got %v", err)
		}
		if got := uc.Balance(context.Background()).String(); got != "749.25" {
			t.Errorf("expected 749.25 after failed edit, got %s", got)
		}
	})

	t.Run("invalid input blocks before any mutation", func(t *testing.T) {
		uc, _ := newLedger("1000")
		added, _ := uc.Add(context.Background(), usecase.TransactionInput{
			Kind: "Expense", Amount: "100", Date: "01-01-2024", Description: "x",
		})

		_, err := uc.Edit(context.Background(), added.ID, usecase.TransactionInput{
			Kind: "Expense", Amount: "100", Date: "bad", Description: "x",
		})

		if !errors.Is(err, domain.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
		if got := uc.Balance(context.Background()).String(); got != "900" {
			t.Errorf("balance must not move, got %s", got)
		}
	})
}

func TestLedgerUseCase_Remove(t *testing.T) {
	t.Run("add then remove is balance idempotent", func(t *testing.T) {
		uc, _ := newLedger("1000")
		added, _ := uc.Add(context.Background(), usecase.TransactionInput{
			Kind: "Expense", Amount: "250.75", Date: "05-03-2024", Description: "Groceries",
		})

		if err := uc.Remove(context.Background(), added.ID); err != nil {
			t.Fatal(err)
		}

		if got := uc.Balance(context.Background()).String(); got != "1000" {
			t.Errorf("expected 1000, got %s", got)
		}
	})

	t.Run("removing income leaves the balance alone", func(t *testing.T) {
		uc, _ := newLedger("1000")
		added, _ := uc.Add(context.Background(), usecase.TransactionInput{
			Kind: "Income", Amount: "5000", Date: "01-01-2024", Description: "Salary",
		})

		if err := uc.Remove(context.Background(), added.ID); err != nil {
			t.Fatal(err)
		}

		if got := uc.Balance(context.Background()).String(); got != "1000" {
			t.Errorf("expected 1000, got %s", got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		uc, _ := newLedger("1000")

		err := uc.Remove(context.Background(), 42)

		if !errors.Is(err, domain.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("store failure re-applies the expense", func(t *testing.T) {
		uc, repo := newLedger("1000")
		added, _ := uc.Add(context.Background(), usecase.TransactionInput{
			Kind: "Expense", Amount: "100", Date: "01-01-2024", Description: "x",
		})

		repo.DeleteFunc = func(ctx context.Context, id int64) error {
			return domain.ErrStoreFailure
		}

		err := uc.Remove(context.Background(), added.ID)

		if !errors.Is(err, domain.ErrStoreFailure) {
			t.Fatalf("expected ErrStoreFailure, got %v", err)
		}
		if got := uc.Balance(context.Background()).String(); got != "900" {
			t.Errorf("expected 900 after failed remove, got %s", got)
		}
	})
}

func TestLedgerUseCase_List(t *testing.T) {
	uc, _ := newLedger("1000")

	inputs := []usecase.TransactionInput{
		{Kind: "Expense", Amount: "50", Date: "01-01-2024", Description: "Food"},
		{Kind: "Income", Amount: "200", Date: "02-01-2024", Description: "Salary"},
		{Kind: "Expense", Amount: "30", Date: "03-01-2024", Description: ""},
	}
	for _, input := range inputs {
		if _, err := uc.Add(context.Background(), input); err != nil {
			t.Fatal(err)
		}
	}

	transactions, err := uc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(transactions) != len(inputs) {
		t.Fatalf("expected %d transactions, got %d", len(inputs), len(transactions))
	}
	for i, transaction := range transactions {
		if i > 0 && transactions[i-1].ID >= transaction.ID {
			t.Error("transactions must be ordered by ascending id")
		}
		if string(transaction.Kind) != inputs[i].Kind {
			t.Errorf("kind: expected %s, got %s", inputs[i].Kind, transaction.Kind)
		}
		if transaction.Amount.String() != inputs[i].Amount {
			t.Errorf("amount: expected %s, got %s", inputs[i].Amount, transaction.Amount)
		}
		if transaction.Date.Format(domain.DateFormat) != inputs[i].Date {
			t.Errorf("date: expected %s, got %s", inputs[i].Date, transaction.Date.Format(domain.DateFormat))
		}
		if transaction.Description != inputs[i].Description {
			t.Errorf("description: expected %q, got %q", inputs[i].Description, transaction.Description)
		}
	}
}

func TestLedgerUseCase_SetBalance(t *testing.T) {
	uc, _ := newLedger("1000")

	if err := uc.SetBalance(context.Background(), "-42.50"); err != nil {
		t.Fatal(err)
	}
	if got := uc.Balance(context.Background()).String(); got != "-42.5" {
		t.Errorf("expected -42.5, got %s", got)
	}

	err := uc.SetBalance(context.Background(), "not a number")
	if !errors.Is(err, domain.ErrInvalidBalance) {
		t.Fatalf("expected ErrInvalidBalance, got %v", err)
	}
	if got := uc.Balance(context.Background()).String(); got != "-42.5" {
		t.Errorf("invalid set must not change the balance, got %s", got)
	}
}

// TestLedgerUseCase_Scenario walks the full add/edit/remove sequence against
// a fresh million-unit balance.
func TestLedgerUseCase_Scenario(t *testing.T) {
	uc, _ := newLedger("1000000.00")
	ctx := context.Background()

	expense, err := uc.Add(ctx, usecase.TransactionInput{
		Kind: "Expense", Amount: "250.75", Date: "05-03-2024", Description: "Groceries",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := uc.Balance(ctx).String(); got != "999749.25" {
		t.Fatalf("after expense: expected 999749.25, got %s", got)
	}

	if _, err := uc.Add(ctx, usecase.TransactionInput{
		Kind: "Income", Amount: "5000", Date: "06-03-2024", Description: "Bonus",
	}); err != nil {
		t.Fatal(err)
	}
	if got := uc.Balance(ctx).String(); got != "999749.25" {
		t.Fatalf("after income: expected 999749.25, got %s", got)
	}

	if _, err := uc.Edit(ctx, expense.ID, usecase.TransactionInput{
		Kind: "Expense", Amount: "300.00", Date: "05-03-2024", Description: "Groceries",
	}); err != nil {
		t.Fatal(err)
	}
	if got := uc.Balance(ctx).String(); got != "999700" {
		t.Fatalf("after edit: expected 999700, got %s", got)
	}

	if err := uc.Remove(ctx, expense.ID); err != nil {
		t.Fatal(err)
	}
	if got := uc.Balance(ctx).String(); got != "1000000" {
		t.Fatalf("after remove: expected 1000000, got %s", got)
	}

	remaining, err := uc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].Kind != domain.KindIncome {
		t.Fatalf("income must still be recorded, got %+v", remaining)
	}
}
