package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/service"
)

type RecordHandler struct {
	recordService RecordServiceInterface
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService RecordServiceInterface) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// Create godoc
// @Summary Create a monthly record
// @Description Store income and expenses for one month. One record per (year, month).
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.RecordInput true "Monthly record"
// @Success 201 {object} model.MonthlyRecordWithTotals
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Record for this month already exists"
// @Failure 500 {object} ErrorResponse
// @Router /records [post]
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input service.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.recordService.Create(r.Context(), userID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// List godoc
// @Summary List monthly records
// @Description List the user's records with derived totals, optionally filtered by year
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param year query int false "Filter by year"
// @Success 200 {array} model.MonthlyRecordWithTotals
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var year *int
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = &y
	}

	results, err := h.recordService.List(r.Context(), userID, year)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// Get godoc
// @Summary Get a monthly record
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} model.MonthlyRecordWithTotals
// @Failure 404 {object} ErrorResponse
// @Router /records/{id} [get]
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	result, err := h.recordService.Get(r.Context(), id, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Update godoc
// @Summary Update a monthly record
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param input body service.RecordInput true "Monthly record"
// @Success 200 {object} model.MonthlyRecordWithTotals
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /records/{id} [put]
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	var input service.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.recordService.Update(r.Context(), id, userID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a monthly record
// @Tags records
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /records/{id} [delete]
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := h.recordService.Delete(r.Context(), id, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
