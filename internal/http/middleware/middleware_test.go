package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budzet/internal/http/middleware"
)

func TestRequestID(t *testing.T) {
	var seen string

	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = chimw.GetReqID(r.Context())
	}))

	t.Run("Generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "abc", seen)
	})
}

func TestAuth(t *testing.T) {
	auth := middleware.NewAuth("sekret", "budzet")
	now := time.Now()

	valid, err := auth.Issue("dom", time.Hour, now)
	require.NoError(t, err)

	expired, err := auth.Issue("dom", time.Minute, now.Add(-time.Hour))
	require.NoError(t, err)

	foreign, err := middleware.NewAuth("inny", "budzet").Issue("dom", time.Hour, now)
	require.NoError(t, err)

	otherIssuer, err := middleware.NewAuth("sekret", "ktos").Issue("dom", time.Hour, now)
	require.NoError(t, err)

	var subject string

	h := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = middleware.Subject(r.Context())
	}))

	type testCase struct {
		name   string
		header string
		want   int
	}

	tests := []testCase{
		{name: "Valid", header: "Bearer " + valid, want: http.StatusOK},
		{name: "Missing", header: "", want: http.StatusUnauthorized},
		{name: "NotBearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "Expired", header: "Bearer " + expired, want: http.StatusUnauthorized},
		{name: "WrongSecret", header: "Bearer " + foreign, want: http.StatusUnauthorized},
		{name: "WrongIssuer", header: "Bearer " + otherIssuer, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject = ""

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)

			if tt.want == http.StatusOK {
				assert.Equal(t, "dom", subject)
			}
		})
	}
}
