// Package catalog serves the named lists the forms choose from: expense
// categories, income people and shops.
package catalog

import (
	"context"
	"encoding/json"
	"net/http"

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
	r.Get("/categories", h.list(h.svc.Categories))
	r.Post("/categories", h.add(h.svc.AddCategory))
	r.Delete("/categories/{name}", h.deleteCategory)

	r.Get("/people", h.list(h.svc.People))
	r.Post("/people", h.add(h.svc.AddPerson))

	r.Get("/shops", h.list(h.svc.Shops))
	r.Post("/shops", h.add(h.svc.AddShop))

	r.Get("/savings-targets", h.list(h.svc.SavingsTargets))
	r.Get("/creditors", h.list(h.svc.HistoricalCreditors))
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) list(fetch func(context.Context) ([]string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := fetch(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		if names == nil {
			names = []string{}
		}

		respond.JSON(w, http.StatusOK, names)
	}
}

func (h *Handler) add(store func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req nameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := store(r.Context(), req.Name); err != nil {
			respond.Error(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteCategory reassigns the category's expenses to the fallback category.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCategory(r.Context(), chi.URLParam(r, "name")); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
