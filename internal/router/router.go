package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vidarbha-bioenergy/contact-api/internal/middleware"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware/metrics"
	"github.com/vidarbha-bioenergy/contact-api/internal/setup"
)

// New creates the router with all routes. The sanitizer runs for every
// request before any handler decodes input.
func New(deps *setup.Dependencies) *chi.Mux {
	cfg := deps.Config
	h := deps.Handler

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.SecurityHeadersWithCSP(cfg.Public.SecureCookies, middleware.APIContentSecurityPolicy))
	r.Use(middleware.Sanitize(cfg.MaxBodyBytes()))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.With(
			middleware.RateLimit(deps.LoginLimiter, middleware.LoginLimitMessage, middleware.GetIP),
			middleware.GlobalRateLimit(deps.GlobalLimiter),
		).Post("/admin-login", h.AdminLogin)

		r.Post("/contact", h.CreateContact)
		r.Post("/inquiry", h.CreateInquiry)

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.NeedAuth())
			r.Get("/contacts", h.ListContacts)
			r.Get("/inquiries", h.ListInquiries)
		})
	})

	return r
}

// NewMetrics serves /metrics for the internal listener. It is never mounted on
// the public router.
func NewMetrics() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Handle("/metrics", metrics.Handler())
	return r
}
