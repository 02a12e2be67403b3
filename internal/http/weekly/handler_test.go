package weekly_test

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

	"github.com/MrJamesThe3rd/budzet/internal/http/weekly"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func newRouter(repo ledger.Repository) http.Handler {
	r := chi.NewRouter()
	svc := ledger.NewService(repo, ledger.Labels{Fallback: "Inne"})
	weekly.NewHandler(svc).Routes(r)

	return r
}

func TestHandler(t *testing.T) {
	monday := time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	defaults := ledger.WeeklyConfig{Enabled: true, Amount: decimal.NewFromInt(400), Categories: []string{"Jedzenie"}}

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
			name:   "GetUnconfiguredWeek",
			method: http.MethodGet,
			path:   "/2026-06-10",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().WeeklyConfig(gomock.Any()).Return(defaults, nil)
				m.EXPECT().WeeklyLimitForWeek(gomock.Any(), monday).Return(ledger.WeeklyLimit{}, false, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"enabled":true,"monday":"2026-06-08","amount":"0.00","categories":["Jedzenie"],"configured":false}`,
		},
		{
			name:   "GetConfiguredWeek",
			method: http.MethodGet,
			path:   "/2026-06-14",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().WeeklyConfig(gomock.Any()).Return(defaults, nil)
				m.EXPECT().WeeklyLimitForWeek(gomock.Any(), monday).
					Return(ledger.WeeklyLimit{Monday: monday, Amount: decimal.NewFromInt(350), Categories: []string{"Chemia"}}, true, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"amount":"350.00","categories":["Chemia"],"configured":true`,
		},
		{
			name:      "GetInvalidDate",
			method:    http.MethodGet,
			path:      "/10.06.2026",
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "PutWeekStoresLimitOnMonday",
			method: http.MethodPut,
			path:   "/2026-06-12",
			body:   `{"enabled":true,"amount":"300,00","categories":["Jedzenie"]}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().SetWeeklySystemEnabled(gomock.Any(), true).Return(nil)
				m.EXPECT().SetWeeklyLimitForWeek(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, l ledger.WeeklyLimit) error {
					assert.Equal(t, monday, l.Monday)
					assert.True(t, decimal.NewFromInt(300).Equal(l.Amount))
					return nil
				})
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "PutWeekWithoutEnabledKeepsSwitch",
			method: http.MethodPut,
			path:   "/2026-06-12",
			body:   `{"amount":"250","categories":["Chemia"]}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().SetWeeklySystemEnabled(gomock.Any(), gomock.Any()).Times(0)
				m.EXPECT().SetWeeklyLimitForWeek(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, l ledger.WeeklyLimit) error {
					assert.Equal(t, monday, l.Monday)
					assert.True(t, decimal.NewFromInt(250).Equal(l.Amount))
					assert.Equal(t, []string{"Chemia"}, l.Categories)
					return nil
				})
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "PutWeekWithoutCategoriesStoresEmptySelection",
			method: http.MethodPut,
			path:   "/2026-06-12",
			body:   `{"enabled":true,"amount":"250"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().SetWeeklySystemEnabled(gomock.Any(), true).Return(nil)
				m.EXPECT().SetWeeklyLimitForWeek(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, l ledger.WeeklyLimit) error {
					assert.NotNil(t, l.Categories)
					assert.Empty(t, l.Categories)
					return nil
				})
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "PutWeekDisabledSkipsLimit",
			method: http.MethodPut,
			path:   "/2026-06-12",
			body:   `{"enabled":false,"amount":"0"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().SetWeeklySystemEnabled(gomock.Any(), false).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:      "PutWeekInvalidAmount",
			method:    http.MethodPut,
			path:      "/2026-06-12",
			body:      `{"enabled":true,"amount":"dużo"}`,
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "GetConfig",
			method: http.MethodGet,
			path:   "/config",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().WeeklyConfig(gomock.Any()).Return(defaults, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"amount":"400.00"`,
		},
		{
			name:   "PutConfig",
			method: http.MethodPut,
			path:   "/config",
			body:   `{"enabled":true,"amount":"450","categories":["Jedzenie","Chemia"]}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().SaveWeeklyConfig(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cfg ledger.WeeklyConfig) error {
					assert.True(t, cfg.Enabled)
					assert.Equal(t, []string{"Jedzenie", "Chemia"}, cfg.Categories)
					return nil
				})
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "PutConfigWithoutCategoriesStoresEmptySelection",
			method: http.MethodPut,
			path:   "/config",
			body:   `{"enabled":true,"amount":"450"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().SaveWeeklyConfig(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cfg ledger.WeeklyConfig) error {
					assert.NotNil(t, cfg.Categories)
					assert.Empty(t, cfg.Categories)
					return nil
				})
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "PutEnabled",
			method: http.MethodPut,
			path:   "/enabled",
			body:   `{"enabled":false}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().SetWeeklySystemEnabled(gomock.Any(), false).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "SetupNotNeededWhenDisabled",
			method: http.MethodGet,
			path:   "/setup",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().IsWeeklySystemEnabled(gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"needs_setup":false}`,
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
