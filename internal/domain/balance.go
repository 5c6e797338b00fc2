package domain

import "github.com/shopspring/decimal"

// Balance holds the single tracked bank balance.
//
// Only Expense transactions move it: Income is recorded in the ledger and
// counted by the reports, but never added here. That asymmetry is the rule of
// the account being modeled (the balance tracks cash available for spending),
// and callers must not "fix" it by crediting income.
//
// Balance performs no locking of its own. The ledger use case owns the
// critical section that pairs every adjustment with the corresponding store
// write.
type Balance struct {
	amount decimal.Decimal
}

// NewBalance creates a Balance starting at the given opening amount.
func NewBalance(opening decimal.Decimal) *Balance {
	return &Balance{amount: opening}
}

// Amount returns the current balance.
func (b *Balance) Amount() decimal.Decimal {
	return b.amount
}

// Set replaces the balance wholesale. Negative values are accepted to
// represent an overdraft.
func (b *Balance) Set(value string) error {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return ErrInvalidBalance
	}
	b.amount = amount
	return nil
}

// ApplyExpense subtracts an expense amount from the balance.
func (b *Balance) ApplyExpense(amount decimal.Decimal) {
	b.amount = b.amount.Sub(amount)
}

// ReverseExpense adds an expense amount back, undoing a prior ApplyExpense.
func (b *Balance) ReverseExpense(amount decimal.Decimal) {
	b.amount = b.amount.Add(amount)
}
