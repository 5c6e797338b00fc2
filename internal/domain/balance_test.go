package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBalance_Set(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		want        string
		expectError bool
	}{
		{name: "positive", value: "5000", want: "5000"},
		{name: "decimal", value: "1234.56", want: "1234.56"},
		{name: "negative overdraft", value: "-250.00", want: "-250"},
		{name: "zero", value: "0", want: "0"},
		{name: "not a number", value: "lots", expectError: true},
		{name: "empty", value: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBalance(decimal.NewFromInt(100))

			err := b.Set(tt.value)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidBalance) {
					t.Errorf("expected ErrInvalidBalance, got %v", err)
				}
				if b.Amount().String() != "100" {
					t.Errorf("balance changed on invalid input: %s", b.Amount())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Amount().String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b.Amount())
			}
		})
	}
}

func TestBalance_ApplyReverseExpense(t *testing.T) {
	b := NewBalance(decimal.NewFromInt(1000))

	amount := decimal.RequireFromString("250.75")
	b.ApplyExpense(amount)
	if b.Amount().String() != "749.25" {
		t.Fatalf("expected 749.25 after apply, got %s", b.Amount())
	}

	b.ReverseExpense(amount)
	if b.Amount().String() != "1000" {
		t.Fatalf("expected 1000 after reverse, got %s", b.Amount())
	}
}
