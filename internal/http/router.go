package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/budzet/internal/http/catalog"
	"github.com/MrJamesThe3rd/budzet/internal/http/dashboard"
	"github.com/MrJamesThe3rd/budzet/internal/http/export"
	"github.com/MrJamesThe3rd/budzet/internal/http/goals"
	"github.com/MrJamesThe3rd/budzet/internal/http/importcsv"
	"github.com/MrJamesThe3rd/budzet/internal/http/locks"
	"github.com/MrJamesThe3rd/budzet/internal/http/matching"
	mw "github.com/MrJamesThe3rd/budzet/internal/http/middleware"
	"github.com/MrJamesThe3rd/budzet/internal/http/shopping"
	"github.com/MrJamesThe3rd/budzet/internal/http/transaction"
	"github.com/MrJamesThe3rd/budzet/internal/http/weekly"
)

// Handlers are the v1 resource handlers mounted under /api/v1.
type Handlers struct {
	Transactions *transaction.Handler
	Dashboard    *dashboard.Handler
	Weekly       *weekly.Handler
	Catalog      *catalog.Handler
	Goals        *goals.Handler
	Locks        *locks.Handler
	Import       *importcsv.Handler
	Matching     *matching.Handler
	Export       *export.Handler
	Shopping     *shopping.Handler
}

type Options struct {
	AllowedOrigins []string
	// Auth, when set, requires a bearer token on every API route.
	Auth *mw.Auth
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", mw.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", mw.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Auth != nil {
			r.Use(opts.Auth.Middleware)
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/transactions", h.Transactions.Routes)
			r.Route("/weekly", h.Weekly.Routes)
			r.Route("/locks", h.Locks.Routes)
			r.Route("/matching", h.Matching.Routes)
			r.Route("/shopping", h.Shopping.Routes)

			h.Catalog.Routes(r)
			h.Goals.Routes(r)
		})

		r.Route("/dashboard", h.Dashboard.Routes)
		r.Route("/import", h.Import.Routes)
		r.Route("/export", h.Export.Routes)
	})

	return router
}
