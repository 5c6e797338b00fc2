package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// MonthFormat is the layout for month keys in report responses.
const MonthFormat = "01-2006"

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Amount:      t.Amount.String(),
		Date:        t.Date.Format(domain.DateFormat),
		Description: t.Description,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i := range transactions {
		result[i] = TransactionFromDomain(&transactions[i])
	}
	return result
}

// ListTransactionsResponse represents a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// BalanceResponse represents the tracked balance.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// TotalsResponse represents ledger-wide income and expense sums. HasData is
// false when the ledger holds nothing to chart.
type TotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	HasData bool   `json:"has_data"`
}

// TotalsFromDomain converts domain totals to a response.
func TotalsFromDomain(t domain.Totals, hasData bool) TotalsResponse {
	return TotalsResponse{
		Income:  t.Income.String(),
		Expense: t.Expense.String(),
		HasData: hasData,
	}
}

// MonthlyPointResponse represents one month of the income/expense series.
type MonthlyPointResponse struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// MonthlySeriesFromDomain converts the domain series to responses.
func MonthlySeriesFromDomain(series []domain.MonthlyPoint) []MonthlyPointResponse {
	result := make([]MonthlyPointResponse, len(series))
	for i, point := range series {
		result[i] = MonthlyPointResponse{
			Month:   point.Month.Format(MonthFormat),
			Income:  point.Income.String(),
			Expense: point.Expense.String(),
		}
	}
	return result
}

// CategoriesFromDomain converts the breakdown to string amounts.
func CategoriesFromDomain(breakdown map[string]decimal.Decimal) map[string]string {
	result := make(map[string]string, len(breakdown))
	for category, amount := range breakdown {
		result[category] = amount.String()
	}
	return result
}

// DashboardResponse aggregates every report view plus the current balance.
type DashboardResponse struct {
	Balance         string                 `json:"balance"`
	Totals          TotalsResponse         `json:"totals"`
	ChartUpperBound string                 `json:"chart_upper_bound"`
	Monthly         []MonthlyPointResponse `json:"monthly"`
	Categories      map[string]string      `json:"categories"`
}

// DashboardFromUseCase converts the dashboard aggregate to a response.
func DashboardFromUseCase(d *usecase.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Balance:         d.Balance.String(),
		Totals:          TotalsFromDomain(d.Totals, d.HasData),
		ChartUpperBound: d.ChartUpperBound.String(),
		Monthly:         MonthlySeriesFromDomain(d.Monthly),
		Categories:      CategoriesFromDomain(d.Categories),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
