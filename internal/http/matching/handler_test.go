package matching_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	httpmatching "github.com/MrJamesThe3rd/budzet/internal/http/matching"
	"github.com/MrJamesThe3rd/budzet/internal/matching"
)

func TestHandler(t *testing.T) {
	type testCase struct {
		name      string
		method    string
		path      string
		body      string
		setupMock func(m *matching.MockRepository)
		wantCode  int
		wantBody  string
	}

	tests := []testCase{
		{
			name:   "Suggest",
			method: http.MethodGet,
			path:   "/suggest?description=Karta+BIEDRONKA+123",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().Mappings(gomock.Any()).Return([]matching.Mapping{
					{ID: 1, RawPattern: "biedronka", Category: "Jedzenie"},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"category":"Jedzenie"`,
		},
		{
			name:      "SuggestMissingDescription",
			method:    http.MethodGet,
			path:      "/suggest",
			setupMock: func(m *matching.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "SuggestStoreFailure",
			method: http.MethodGet,
			path:   "/suggest?description=x",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().Mappings(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "Learn",
			method: http.MethodPost,
			path:   "/",
			body:   `{"raw_pattern":"ORLEN","category":"Samochód"}`,
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().CreateMapping(gomock.Any(), "ORLEN", "Samochód").Return(nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "LearnMissingCategory",
			method:    http.MethodPost,
			path:      "/",
			body:      `{"raw_pattern":"ORLEN"}`,
			setupMock: func(m *matching.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "List",
			method: http.MethodGet,
			path:   "/",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().Mappings(gomock.Any()).Return([]matching.Mapping{{ID: 3, RawPattern: "żabka", Category: "Zakupy"}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"raw_pattern":"żabka"`,
		},
		{
			name:   "Forget",
			method: http.MethodDelete,
			path:   "/3",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().DeleteMapping(gomock.Any(), int64(3)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := matching.NewMockRepository(ctrl)
			tt.setupMock(repo)

			r := chi.NewRouter()
			httpmatching.NewHandler(matching.NewService(repo)).Routes(r)

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
