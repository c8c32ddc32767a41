package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/service"
)

type GoalHandler struct {
	goalService GoalServiceInterface
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// Create godoc
// @Summary Create an investment goal
// @Description Submit target corpus, horizon and risk profile to the allocation solver and store the result
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body service.GoalInput true "Goal parameters"
// @Success 201 {object} service.GoalResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Solver unavailable"
// @Failure 500 {object} ErrorResponse
// @Router /goals [post]
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input service.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.goalService.Create(r.Context(), userID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// List godoc
// @Summary List goals
// @Description The user's most recent goals, newest first
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Goal
// @Failure 500 {object} ErrorResponse
// @Router /goals [get]
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	goals, err := h.goalService.List(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

// Get godoc
// @Summary Get a goal
// @Description A stored goal with its portfolio table grouped by asset class
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {object} service.GoalResult
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id} [get]
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	result, err := h.goalService.Get(r.Context(), id, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a goal
// @Tags goals
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if userID == uuid.Nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	if err := h.goalService.Delete(r.Context(), id, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
