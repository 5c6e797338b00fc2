package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Totals(ctx context.Context) (domain.Totals, error)
	MonthlySeries(ctx context.Context) ([]domain.MonthlyPoint, error)
	CategoryBreakdown(ctx context.Context) (map[string]decimal.Decimal, error)
	Overview(ctx context.Context) (*usecase.Dashboard, error)
}

// ReportHandler handles report HTTP requests.
type ReportHandler struct {
	reports ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Totals returns the income vs expense totals. An empty ledger reports
// has_data=false instead of a silently zero chart.
func (h *ReportHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.reports.Totals(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			writeJSON(w, http.StatusOK, dto.TotalsFromDomain(totals, false))
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to compute totals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TotalsFromDomain(totals, true))
}

// Monthly returns the per-month income/expense series.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	series, err := h.reports.MonthlySeries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute monthly series", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlySeriesFromDomain(series))
}

// Categories returns expense totals per category.
func (h *ReportHandler) Categories(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.reports.CategoryBreakdown(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute category breakdown", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(breakdown))
}

// Dashboard returns every report view plus the current balance in one
// response.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reports.Overview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromUseCase(dashboard))
}
