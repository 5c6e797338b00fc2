package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the only layout accepted for transaction dates.
const DateFormat = "02-01-2006"

// Kind classifies a transaction as money coming in or going out.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

// Transaction is a single ledger record. The ID is assigned by the store on
// creation and never changes afterwards.
type Transaction struct {
	ID          int64
	Kind        Kind
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// UncategorizedLabel is the category assigned to expenses with an empty
// description.
const UncategorizedLabel = "Uncategorized"

// Category returns the expense category label for the transaction. The
// description doubles as the category; an empty one maps to UncategorizedLabel.
func (t Transaction) Category() string {
	if t.Description == "" {
		return UncategorizedLabel
	}
	return t.Description
}

// ParseKind parses a transaction kind from its string form.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	default:
		return "", ErrInvalidKind
	}
}

// ParseAmount parses a non-negative decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// ParseDate parses a calendar date in DateFormat. The result carries no time
// component.
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
