// Package goals serves savings goals and liabilities with their progress.
package goals

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budzet/internal/http/respond"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/goals", func(r chi.Router) {
		r.Get("/", h.listGoals)
		r.Post("/", h.createGoal)
		r.Delete("/{id}", h.deleteGoal)
	})

	r.Route("/liabilities", func(r chi.Router) {
		r.Get("/", h.listLiabilities)
		r.Post("/", h.createLiability)
		r.Delete("/{id}", h.deleteLiability)
	})
}

type goalResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Target    string `json:"target"`
	Collected string `json:"collected"`
}

func toGoalResponse(g ledger.Goal) goalResponse {
	return goalResponse{
		ID:        g.ID,
		Name:      g.Name,
		Target:    ledger.FormatAmount(g.Target),
		Collected: ledger.FormatAmount(g.Collected),
	}
}

type liabilityResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Total     string `json:"total"`
	Paid      string `json:"paid"`
	Remaining string `json:"remaining"`
	Deadline  string `json:"deadline,omitempty"`
}

func toLiabilityResponse(l ledger.Liability) liabilityResponse {
	resp := liabilityResponse{
		ID:        l.ID,
		Name:      l.Name,
		Total:     ledger.FormatAmount(l.Total),
		Paid:      ledger.FormatAmount(l.Paid),
		Remaining: ledger.FormatAmount(l.Remaining()),
	}

	if l.Deadline != nil {
		resp.Deadline = l.Deadline.Format(ledger.DateLayout)
	}

	return resp
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.Goals(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		resp = append(resp, toGoalResponse(g))
	}

	respond.JSON(w, http.StatusOK, resp)
}

type createGoalRequest struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	target, err := ledger.ParseAmount(req.Target)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	goal, err := h.svc.AddGoal(r.Context(), req.Name, target)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toGoalResponse(*goal))
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listLiabilities(w http.ResponseWriter, r *http.Request) {
	liabilities, err := h.svc.Liabilities(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]liabilityResponse, 0, len(liabilities))
	for _, l := range liabilities {
		resp = append(resp, toLiabilityResponse(l))
	}

	respond.JSON(w, http.StatusOK, resp)
}

type createLiabilityRequest struct {
	Name     string `json:"name"`
	Total    string `json:"total"`
	Deadline string `json:"deadline"`
}

func (h *Handler) createLiability(w http.ResponseWriter, r *http.Request) {
	var req createLiabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	total, err := ledger.ParseAmount(req.Total)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var deadline *time.Time

	if req.Deadline != "" {
		d, err := ledger.ParseDate(req.Deadline)
		if err != nil {
			http.Error(w, "invalid deadline", http.StatusBadRequest)
			return
		}

		deadline = &d
	}

	liability, err := h.svc.AddLiability(r.Context(), req.Name, total, deadline)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toLiabilityResponse(*liability))
}

func (h *Handler) deleteLiability(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteLiability(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}
