package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", HealthHandler)

	r.Get("/", h.Home)
	r.Get("/products", h.ProductIndex)
	r.Get("/products/{category}", h.Category)
	r.Get("/products/{category}/{product}", h.Product)
	r.Get("/products/{category}/{product}/analysis.svg", h.AnalysisChart)
	r.Get("/contact", h.ContactPage)
	r.Post("/contact", h.ContactSubmit)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.APIProducts)
		r.Get("/products/{category}/{product}/analysis", h.APIAnalysis)
		r.Post("/contact", h.APIContact)
	})

	r.NotFound(h.NotFound)
	return r
}
