package weekly

import (
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
	r.Get("/config", h.getConfig)
	r.Put("/config", h.putConfig)
	r.Put("/enabled", h.putEnabled)
	r.Get("/setup", h.needsSetup)
	r.Get("/{date}", h.getWeek)
	r.Put("/{date}", h.putWeek)
}

type configBody struct {
	Enabled    bool     `json:"enabled"`
	Amount     string   `json:"amount"`
	Categories []string `json:"categories"`
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.WeeklyConfig(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, configBody{
		Enabled:    cfg.Enabled,
		Amount:     ledger.FormatAmount(cfg.Amount),
		Categories: cfg.Categories,
	})
}

func (h *Handler) putConfig(w http.ResponseWriter, r *http.Request) {
	var req configBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	cfg := ledger.WeeklyConfig{Enabled: req.Enabled, Amount: amount, Categories: selection(req.Categories)}
	if err := h.svc.SaveWeeklyConfig(r.Context(), cfg); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type enabledBody struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) putEnabled(w http.ResponseWriter, r *http.Request) {
	var req enabledBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetWeeklyEnabled(r.Context(), req.Enabled); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type setupResponse struct {
	NeedsSetup bool `json:"needs_setup"`
}

// needsSetup tells clients to prompt for the current week's limit.
func (h *Handler) needsSetup(w http.ResponseWriter, r *http.Request) {
	needs, err := h.svc.NeedsWeekSetup(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, setupResponse{NeedsSetup: needs})
}

// selection turns a missing category list into an empty one. Over the API an
// omitted list means nothing was picked, never "every category".
func selection(categories []string) []string {
	if categories == nil {
		return []string{}
	}

	return categories
}

type weekBody struct {
	Enabled    bool     `json:"enabled"`
	Monday     string   `json:"monday"`
	Amount     string   `json:"amount"`
	Categories []string `json:"categories"`
	Configured bool     `json:"configured"`
}

// getWeek returns the settings of the week containing {date}. Weeks without
// a record come back seeded from the defaults with configured=false.
func (h *Handler) getWeek(w http.ResponseWriter, r *http.Request) {
	date, err := ledger.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	settings, err := h.svc.WeekSettings(r.Context(), date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, weekBody{
		Enabled:    settings.Enabled,
		Monday:     settings.Monday.Format(ledger.DateLayout),
		Amount:     ledger.FormatAmount(settings.Amount),
		Categories: settings.Categories,
		Configured: settings.Configured,
	})
}

// weekUpdate leaves the weekly switch alone when enabled is omitted.
type weekUpdate struct {
	Enabled    *bool    `json:"enabled"`
	Amount     string   `json:"amount"`
	Categories []string `json:"categories"`
}

func (h *Handler) putWeek(w http.ResponseWriter, r *http.Request) {
	date, err := ledger.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	var req weekUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if req.Enabled == nil {
		err = h.svc.SetWeeklyLimit(r.Context(), date, amount, selection(req.Categories))
	} else {
		err = h.svc.SaveWeekSettings(r.Context(), ledger.WeekSettings{
			Enabled:    *req.Enabled,
			Monday:     ledger.MondayOf(date),
			Amount:     amount,
			Categories: selection(req.Categories),
		})
	}

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
