package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/http/respond"
)

type Handler struct {
	agg *aggregate.Aggregator
	now func() time.Time
}

func NewHandler(agg *aggregate.Aggregator) *Handler {
	return &Handler{agg: agg, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.dashboard)
	r.Get("/month", h.month)
	r.Get("/week", h.week)
	r.Get("/reservation", h.reservation)
}

// period reads year and month, defaulting to the current month.
func (h *Handler) period(r *http.Request) (int, time.Month, bool) {
	now := h.now()
	year, month := now.Year(), now.Month()

	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 {
			return 0, 0, false
		}

		year = y
	}

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}

		month = time.Month(m)
	}

	return year, month, true
}

func intParam(r *http.Request, name string) (int, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, true
	}

	n, err := strconv.Atoi(s)

	return n, err == nil
}

func (h *Handler) month(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.period(r)
	if !ok {
		http.Error(w, "invalid year or month", http.StatusBadRequest)
		return
	}

	view, err := h.agg.Month(r.Context(), aggregate.MonthRequest{
		Year:     year,
		Month:    month,
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toMonthResponse(view))
}

func (h *Handler) week(w http.ResponseWriter, r *http.Request) {
	offset, ok := intParam(r, "offset")
	if !ok {
		http.Error(w, "invalid offset", http.StatusBadRequest)
		return
	}

	view, err := h.agg.Week(r.Context(), aggregate.WeekRequest{
		Offset:   offset,
		Category: r.URL.Query().Get("category"),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toWeekResponse(view))
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.period(r)
	if !ok {
		http.Error(w, "invalid year or month", http.StatusBadRequest)
		return
	}

	offset, ok := intParam(r, "week_offset")
	if !ok {
		http.Error(w, "invalid week_offset", http.StatusBadRequest)
		return
	}

	weekView, _ := strconv.ParseBool(r.URL.Query().Get("week"))

	d, err := h.agg.Dashboard(r.Context(), aggregate.DashboardRequest{
		Year:         year,
		Month:        month,
		Category:     r.URL.Query().Get("category"),
		Search:       r.URL.Query().Get("search"),
		WeekView:     weekView,
		WeekOffset:   offset,
		WeekCategory: r.URL.Query().Get("week_category"),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDashboardResponse(d))
}

type reservationResponse struct {
	Reserved string `json:"reserved"`
}

func (h *Handler) reservation(w http.ResponseWriter, r *http.Request) {
	reserved, err := h.agg.Reservation(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, reservationResponse{Reserved: amount(reserved)})
}
