package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ExportHandler struct {
	goalService   GoalServiceInterface
	exportService ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(goalService GoalServiceInterface, exportService ExportServiceInterface) *ExportHandler {
	return &ExportHandler{goalService: goalService, exportService: exportService}
}

func (h *ExportHandler) loadGoal(w http.ResponseWriter, r *http.Request) (*uuid.UUID, bool) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid goal id")
		return nil, false
	}
	return &id, true
}

// PortfolioCSV godoc
// @Summary Export a goal's portfolio as CSV
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {string} string "CSV data"
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id}/export/csv [get]
func (h *ExportHandler) PortfolioCSV(w http.ResponseWriter, r *http.Request) {
	id, ok := h.loadGoal(w, r)
	if !ok {
		return
	}
	userID := GetUserID(r.Context())

	result, err := h.goalService.Get(r.Context(), *id, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	data, err := h.exportService.PortfolioCSV(result.Goal.PortfolioTable)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=portfolio-%s.csv", id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// PortfolioPDF godoc
// @Summary Export a goal's portfolio as PDF
// @Tags export
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {string} string "PDF data"
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id}/export/pdf [get]
func (h *ExportHandler) PortfolioPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := h.loadGoal(w, r)
	if !ok {
		return
	}
	userID := GetUserID(r.Context())

	result, err := h.goalService.Get(r.Context(), *id, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	data, err := h.exportService.PortfolioPDF(&result.Goal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=portfolio-%s.pdf", id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
