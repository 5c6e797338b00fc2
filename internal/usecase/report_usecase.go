package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// ReportUseCase derives summary views from the current ledger snapshot. It
// never mutates anything; each call reads the store through the repository
// and runs the pure aggregations over the result.
type ReportUseCase struct {
	transactionRepo TransactionRepository
	ledger          *LedgerUseCase
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(transactionRepo TransactionRepository, ledger *LedgerUseCase) *ReportUseCase {
	return &ReportUseCase{
		transactionRepo: transactionRepo,
		ledger:          ledger,
	}
}

// Totals returns the ledger-wide income and expense sums. It propagates
// domain.ErrNoData for an empty ledger.
func (uc *ReportUseCase) Totals(ctx context.Context) (domain.Totals, error) {
	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.IncomeExpenseTotals(transactions)
}

// MonthlySeries returns the per-month income/expense time series in
// chronological order.
func (uc *ReportUseCase) MonthlySeries(ctx context.Context) ([]domain.MonthlyPoint, error) {
	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MonthlySeries(transactions), nil
}

// CategoryBreakdown returns expense totals per category.
func (uc *ReportUseCase) CategoryBreakdown(ctx context.Context) (map[string]decimal.Decimal, error) {
	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CategoryBreakdown(transactions), nil
}

// Dashboard aggregates every report view plus the current balance, the way
// the presentation layer refreshes after each mutation.
type Dashboard struct {
	Balance         decimal.Decimal
	Totals          domain.Totals
	HasData         bool
	ChartUpperBound decimal.Decimal
	Monthly         []domain.MonthlyPoint
	Categories      map[string]decimal.Decimal
}

// Overview computes the full dashboard in one pass over the snapshot. An
// empty ledger yields HasData=false with zero totals rather than an error,
// since the balance chart still renders.
func (uc *ReportUseCase) Overview(ctx context.Context) (*Dashboard, error) {
	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	hasData := true
	totals, err := domain.IncomeExpenseTotals(transactions)
	if err != nil {
		hasData = false
	}

	balance := uc.ledger.Balance(ctx)

	return &Dashboard{
		Balance:         balance,
		Totals:          totals,
		HasData:         hasData,
		ChartUpperBound: domain.ChartUpperBound(balance, totals),
		Monthly:         domain.MonthlySeries(transactions),
		Categories:      domain.CategoryBreakdown(transactions),
	}, nil
}
