// Package locks serves the month locks that freeze past months against edits.
package locks

import (
	"net/http"
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
	r.Get("/", h.list)
	r.Get("/{month}", h.status)
	r.Put("/{month}", h.lock)
	r.Delete("/{month}", h.unlock)
}

type statusResponse struct {
	Month  string `json:"month"`
	Locked bool   `json:"locked"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	months, err := h.svc.LockedMonths(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if months == nil {
		months = []string{}
	}

	respond.JSON(w, http.StatusOK, months)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	month, ok := parseMonth(w, r)
	if !ok {
		return
	}

	locked, err := h.svc.IsMonthLocked(r.Context(), month.Year(), month.Month())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, statusResponse{Month: month.Format(ledger.MonthLayout), Locked: locked})
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	month, ok := parseMonth(w, r)
	if !ok {
		return
	}

	if err := h.svc.LockMonth(r.Context(), month.Year(), month.Month()); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	month, ok := parseMonth(w, r)
	if !ok {
		return
	}

	if err := h.svc.UnlockMonth(r.Context(), month.Year(), month.Month()); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseMonth(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	month, err := time.Parse(ledger.MonthLayout, chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "month must be YYYY-MM", http.StatusBadRequest)
		return time.Time{}, false
	}

	return month, true
}
