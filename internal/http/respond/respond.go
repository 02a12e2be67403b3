// Package respond holds the JSON and error writers shared by the handlers.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
	"github.com/MrJamesThe3rd/budzet/internal/shopping"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps domain errors onto status codes. Anything unknown is logged and
// reported as an internal error without details.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, shopping.ErrNotFound),
		errors.Is(err, shopping.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ledger.ErrDuplicateName),
		errors.Is(err, shopping.ErrListClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ledger.ErrMonthLocked):
		http.Error(w, err.Error(), http.StatusLocked)
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidKind),
		errors.Is(err, ledger.ErrProtectedCategory),
		errors.Is(err, ledger.ErrEmptyName),
		errors.Is(err, shopping.ErrEmptyName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
