// Package server provides the HTTP JSON handlers for review plans, due
// records and statistics.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wrongbook-app/wrongbook/internal/plan"
	"github.com/wrongbook-app/wrongbook/internal/record"
	"github.com/wrongbook-app/wrongbook/internal/review"
)

// PlanHandler serves the review-plan endpoints. Plans arrive and leave as the
// JSON documents the consumers exchange; the handler does not reshape them.
type PlanHandler struct {
	records record.Repository
	plans   record.PlanRepository
	now     func() time.Time
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(records record.Repository, plans record.PlanRepository) *PlanHandler {
	return &PlanHandler{
		records: records,
		plans:   plans,
		now:     time.Now,
	}
}

// Register installs the handler's routes on the mux.
func (h *PlanHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /review-plans", h.savePlan)
	mux.HandleFunc("GET /review-plans/current", h.currentPlan)
	mux.HandleFunc("GET /statistics", h.statistics)
	mux.HandleFunc("GET /records/due", h.dueRecords)
}

func (h *PlanHandler) savePlan(w http.ResponseWriter, r *http.Request) {
	var p plan.ReviewPlan
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode review plan: %w", err))
		return
	}
	if p.PlanID == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("review plan is missing planId"))
		return
	}

	if err := h.plans.Save(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("save review plan: %w", err))
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PlanHandler) currentPlan(w http.ResponseWriter, r *http.Request) {
	p, err := h.plans.FindCurrent(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("find current review plan: %w", err))
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("no review plan has been saved"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PlanHandler) statistics(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("find wrong answers: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, review.GenerateStatistics(records, h.now()))
}

func (h *PlanHandler) dueRecords(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	due, err := h.records.FindDue(r.Context(), now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("find due wrong answers: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, review.SortByPriority(due, now))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
