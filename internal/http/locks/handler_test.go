package locks_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budzet/internal/http/locks"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func TestHandler(t *testing.T) {
	type testCase struct {
		name      string
		method    string
		path      string
		setupMock func(m *ledger.MockRepository)
		wantCode  int
		wantBody  string
	}

	tests := []testCase{
		{
			name:   "List",
			method: http.MethodGet,
			path:   "/",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().LockedMonths(gomock.Any()).Return([]string{"2026-01", "2026-02"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `["2026-01","2026-02"]`,
		},
		{
			name:   "Status",
			method: http.MethodGet,
			path:   "/2026-03",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().IsMonthLocked(gomock.Any(), "2026-03").Return(true, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"month":"2026-03","locked":true}`,
		},
		{
			name:   "Lock",
			method: http.MethodPut,
			path:   "/2026-03",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().LockMonth(gomock.Any(), "2026-03").Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "Unlock",
			method: http.MethodDelete,
			path:   "/2026-03",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().UnlockMonth(gomock.Any(), "2026-03").Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:      "InvalidMonth",
			method:    http.MethodPut,
			path:      "/2026-13",
			setupMock: func(m *ledger.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			r := chi.NewRouter()
			locks.NewHandler(ledger.NewService(repo, ledger.Labels{Fallback: "Inne"})).Routes(r)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
