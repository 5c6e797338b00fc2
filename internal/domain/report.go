package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ChartMargin is the headroom added above the tallest value when sizing the
// balance chart axis, so an empty ledger never renders a degenerate
// zero-height bar.
var ChartMargin = decimal.NewFromInt(10000)

// Totals holds the ledger-wide income and expense sums.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyPoint is one month of the income/expense time series. Month is the
// first day of the calendar month.
type MonthlyPoint struct {
	Month   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// IncomeExpenseTotals sums transaction amounts by kind. It returns ErrNoData
// when both sums are zero so callers render an explicit empty state instead
// of a chart with undefined proportions.
func IncomeExpenseTotals(transactions []Transaction) (Totals, error) {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range transactions {
		switch t.Kind {
		case KindIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case KindExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	if totals.Income.IsZero() && totals.Expense.IsZero() {
		return totals, ErrNoData
	}
	return totals, nil
}

// ChartUpperBound returns the axis upper bound for the balance chart:
// max(balance, income+expense) plus ChartMargin.
func ChartUpperBound(balance decimal.Decimal, totals Totals) decimal.Decimal {
	upper := totals.Income.Add(totals.Expense)
	if balance.GreaterThan(upper) {
		upper = balance
	}
	return upper.Add(ChartMargin)
}

// MonthlySeries groups transactions by calendar month and sums each kind per
// month, ordered chronologically. Dates are validated at write time, so every
// transaction reaching this point has a usable date.
func MonthlySeries(transactions []Transaction) []MonthlyPoint {
	byMonth := make(map[time.Time]*MonthlyPoint)
	for _, t := range transactions {
		month := time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		point, ok := byMonth[month]
		if !ok {
			point = &MonthlyPoint{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[month] = point
		}
		switch t.Kind {
		case KindIncome:
			point.Income = point.Income.Add(t.Amount)
		case KindExpense:
			point.Expense = point.Expense.Add(t.Amount)
		}
	}

	series := make([]MonthlyPoint, 0, len(byMonth))
	for _, point := range byMonth {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month.Before(series[j].Month)
	})

	return series
}

// CategoryBreakdown sums expense amounts per category. Income transactions do
// not contribute. Iteration order of the result is not significant.
func CategoryBreakdown(transactions []Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Kind != KindExpense {
			continue
		}
		category := t.Category()
		breakdown[category] = breakdown[category].Add(t.Amount)
	}
	return breakdown
}
