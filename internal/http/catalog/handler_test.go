package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budzet/internal/http/catalog"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func TestHandler(t *testing.T) {
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
			name:   "ListCategories",
			method: http.MethodGet,
			path:   "/categories",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().Categories(gomock.Any()).Return([]string{"Inne", "Jedzenie"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `["Inne","Jedzenie"]`,
		},
		{
			name:   "ListShopsEmpty",
			method: http.MethodGet,
			path:   "/shops",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().Shops(gomock.Any()).Return(nil, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:   "AddPersonTrimmed",
			method: http.MethodPost,
			path:   "/people",
			body:   `{"name":"  Żona "}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().AddPerson(gomock.Any(), "Żona").Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:      "AddBlankShopIgnored",
			method:    http.MethodPost,
			path:      "/shops",
			body:      `{"name":"   "}`,
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusNoContent,
		},
		{
			name:      "AddInvalidBody",
			method:    http.MethodPost,
			path:      "/categories",
			body:      `{`,
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "DeleteFallbackRejected",
			method:    http.MethodDelete,
			path:      "/categories/Inne",
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "DeleteCategory",
			method: http.MethodDelete,
			path:   "/categories/Paliwo",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().DeleteCategory(gomock.Any(), "Paliwo").Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "SavingsTargetsStartWithCash",
			method: http.MethodGet,
			path:   "/savings-targets",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().Goals(gomock.Any()).Return([]ledger.Goal{{ID: 1, Name: "Wakacje"}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `["Gotówka","Wakacje"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			r := chi.NewRouter()
			catalog.NewHandler(ledger.NewService(repo, ledger.Labels{CashSavings: "Gotówka", Fallback: "Inne"})).Routes(r)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
