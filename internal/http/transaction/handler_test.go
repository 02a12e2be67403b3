package transaction_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budzet/internal/http/transaction"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

var labels = ledger.Labels{CashSavings: "Oszczędności gotówka", Fallback: "Inne", Currency: "PLN"}

func newRouter(repo ledger.Repository) http.Handler {
	r := chi.NewRouter()
	transaction.NewHandler(ledger.NewService(repo, labels)).Routes(r)

	return r
}

func TestHandler(t *testing.T) {
	june3 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		method    string
		path      string
		body      string
		setupMock func(m *ledger.MockRepository)
		wantCode  int
		wantBody  string
	}

	tests := []testCase{
		{
			name:   "CreateSuccess",
			method: http.MethodPost,
			path:   "/",
			body:   `{"date":"2024-06-03","kind":"expense","category":"Zakupy","description":"Lidl","amount":"12,50"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().IsMonthLocked(gomock.Any(), "2024-06").Return(false, nil)
				m.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, p ledger.CreateParams) (int64, error) {
					assert.True(t, decimal.RequireFromString("12.5").Equal(p.Amount))
					return 42, nil
				})
			},
			wantCode: http.StatusCreated,
			wantBody: `"id":42`,
		},
		{
			name:      "CreateInvalidAmount",
			method:    http.MethodPost,
			path:      "/",
			body:      `{"date":"2024-06-03","kind":"expense","amount":"dwa"}`,
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "CreateInvalidDate",
			method:    http.MethodPost,
			path:      "/",
			body:      `{"date":"03.06.2024","kind":"expense","amount":"2"}`,
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "CreateLockedMonth",
			method: http.MethodPost,
			path:   "/",
			body:   `{"date":"2024-06-03","kind":"income","category":"Mąż","amount":"100"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().IsMonthLocked(gomock.Any(), "2024-06").Return(true, nil)
			},
			wantCode: http.StatusLocked,
		},
		{
			name:   "GetNotFound",
			method: http.MethodGet,
			path:   "/9",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetTransaction(gomock.Any(), int64(9)).Return(nil, ledger.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "GetInvalidID",
			method:    http.MethodGet,
			path:      "/abc",
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "ListRange",
			method: http.MethodGet,
			path:   "/?start_date=2024-06-01&end_date=2024-06-30",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().TransactionsBetween(gomock.Any(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)).
					Return([]*ledger.Transaction{{ID: 1, Date: june3, Kind: ledger.KindExpense, Amount: decimal.RequireFromString("19.5")}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"amount":"19.50"`,
		},
		{
			name:   "UpdateMissingIsNoop",
			method: http.MethodPut,
			path:   "/5",
			body:   `{"date":"2024-06-03","category":"Zakupy","description":"x","amount":"3"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetTransaction(gomock.Any(), int64(5)).Return(nil, ledger.ErrNotFound)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "DeleteMany",
			method: http.MethodPost,
			path:   "/delete",
			body:   `{"ids":[1,2]}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetTransaction(gomock.Any(), int64(1)).Return(&ledger.Transaction{ID: 1, Date: june3}, nil)
				m.EXPECT().GetTransaction(gomock.Any(), int64(2)).Return(nil, ledger.ErrNotFound)
				m.EXPECT().IsMonthLocked(gomock.Any(), "2024-06").Return(false, nil)
				m.EXPECT().DeleteTransactions(gomock.Any(), []int64{1}).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			newRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
