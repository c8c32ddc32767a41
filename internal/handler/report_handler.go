package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService ReportServiceInterface
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func yearParam(r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	return year, err == nil
}

// YearlySummary godoc
// @Summary Yearly financial summary
// @Description Aggregate a year's records into totals and average monthly savings
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Success 200 {object} model.YearlySummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No records for that year"
// @Failure 500 {object} ErrorResponse
// @Router /reports/summary/{year} [get]
func (h *ReportHandler) YearlySummary(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	year, ok := yearParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}

	summary, err := h.reportService.GetYearlySummary(r.Context(), userID, year)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// A year with no recorded months has nothing to summarize.
	if !summary.HasData() {
		respondError(w, http.StatusNotFound, "no records for that year")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// YearlyComparison godoc
// @Summary Year-over-year savings comparison
// @Description Compare a year's savings against the previous year. A year without data yields trend "no_data".
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year path int true "Current year"
// @Success 200 {object} model.TrendComparison
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/comparison/{year} [get]
func (h *ReportHandler) YearlyComparison(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	year, ok := yearParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}

	cmp, err := h.reportService.GetYearlyComparison(r.Context(), userID, year)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cmp)
}

// MonthlyBreakdown godoc
// @Summary Monthly breakdown for a year
// @Description A year's records with derived totals, ordered by month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Success 200 {array} model.MonthlyRecordWithTotals
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/breakdown/{year} [get]
func (h *ReportHandler) MonthlyBreakdown(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	year, ok := yearParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}

	breakdown, err := h.reportService.GetMonthlyBreakdown(r.Context(), userID, year)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, breakdown)
}
