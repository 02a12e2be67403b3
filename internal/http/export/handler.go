package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budzet/internal/export"
	"github.com/MrJamesThe3rd/budzet/internal/http/respond"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type Handler struct {
	svc        *export.Service
	monthNames [12]string
	currency   string
}

// NewHandler serves reports for svc. monthNames label the text summaries.
func NewHandler(svc *export.Service, monthNames [12]string, currency string) *Handler {
	return &Handler{svc: svc, monthNames: monthNames, currency: currency}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/report", h.report)
	r.Get("/chart", h.chart)
	r.Get("/summary", h.summary)
	r.Get("/csv", h.csv)
}

// report returns the year report, or the month report when month is given.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year is required", http.StatusBadRequest)
		return
	}

	var (
		buf  bytes.Buffer
		name string
	)

	if raw := r.URL.Query().Get("month"); raw != "" {
		month, ok := parseMonth(w, raw)
		if !ok {
			return
		}

		name = export.MonthReportName(year, month)
		err = h.svc.MonthReport(r.Context(), year, month, &buf)
	} else {
		name = export.YearReportName(year)
		err = h.svc.YearReport(r.Context(), year, &buf)
	}

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	attachment(w, "application/pdf", name, buf.Bytes())
}

func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonth(w, r)
	if !ok {
		return
	}

	png, err := h.svc.MonthChart(r.Context(), year, month)
	if errors.Is(err, export.ErrNoChartData) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")

	if _, err := w.Write(png); err != nil {
		slog.Error("failed to write chart", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonth(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.MonthSummary(r.Context(), year, month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := w.Write([]byte(summary.Text(fmt.Sprintf("%s %d", h.monthNames[month-1], year), h.currency))); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}

func (h *Handler) csv(w http.ResponseWriter, r *http.Request) {
	start, err := ledger.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}

	end, err := ledger.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		http.Error(w, "invalid end_date", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.CSV(r.Context(), start, end, &buf); err != nil {
		respond.Error(w, r, err)
		return
	}

	name := export.CSVName(start, end)
	attachment(w, "text/csv; charset=utf-8", name, buf.Bytes())
}

func attachment(w http.ResponseWriter, contentType, name string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write export", "error", err, "file", name)
	}
}

func yearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year is required", http.StatusBadRequest)
		return 0, 0, false
	}

	month, ok := parseMonth(w, r.URL.Query().Get("month"))

	return year, month, ok
}

func parseMonth(w http.ResponseWriter, raw string) (time.Month, bool) {
	m, err := strconv.Atoi(raw)
	if err != nil || m < 1 || m > 12 {
		http.Error(w, "month must be 1-12", http.StatusBadRequest)
		return 0, false
	}

	return time.Month(m), true
}
