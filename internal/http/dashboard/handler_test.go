package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/http/dashboard"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func newRouter(repo *ledger.MockRepository) http.Handler {
	agg := aggregate.New(repo, aggregate.DefaultConfig(), aggregate.WithClock(func() time.Time { return day(time.June, 13) }))

	r := chi.NewRouter()
	dashboard.NewHandler(agg).Routes(r)

	return r
}

func TestHandler_Month(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().AllTransactions(gomock.Any()).Return([]*ledger.Transaction{
		{ID: 2, Date: day(time.June, 5), Kind: ledger.KindExpense, Category: "Zakupy", Amount: decimal.NewFromInt(300)},
		{ID: 1, Date: day(time.June, 1), Kind: ledger.KindIncome, Category: "Mąż", Amount: decimal.NewFromInt(3000)},
	}, nil)
	repo.EXPECT().NetBalanceBefore(gomock.Any(), day(time.June, 1)).Return(decimal.NewFromInt(500), nil)
	repo.EXPECT().TotalCashSavings(gomock.Any()).Return(decimal.Zero, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/month?year=2024&month=6", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Name              string `json:"name"`
		ClosingBalance    string `json:"closing_balance"`
		ExpenseByCategory []struct {
			Label  string `json:"label"`
			Amount string `json:"amount"`
		} `json:"expense_by_category"`
		Rows []json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Czerwiec", body.Name)
	assert.Equal(t, "3200.00", body.ClosingBalance)
	require.Len(t, body.ExpenseByCategory, 1)
	assert.Equal(t, "300.00", body.ExpenseByCategory[0].Amount)
	assert.Len(t, body.Rows, 2)
}

func TestHandler_WeekDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().IsWeeklySystemEnabled(gomock.Any()).Return(false, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/week", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"disabled"`)
}

func TestHandler_BadParams(t *testing.T) {
	type testCase struct {
		name string
		path string
	}

	tests := []testCase{
		{name: "Month", path: "/month?month=13"},
		{name: "Year", path: "/?year=abc"},
		{name: "Offset", path: "/week?offset=x"},
		{name: "WeekOffset", path: "/?week_offset=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rec := httptest.NewRecorder()
			newRouter(ledger.NewMockRepository(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
