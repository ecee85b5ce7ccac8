// Package api exposes the contact store over JSON/HTTP.
package api

import (
	"net/http"

	"github.com/dmitrijs2005/contacto/internal/logging"
	"github.com/dmitrijs2005/contacto/internal/server/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter returns the HTTP handler serving /contacto.
func NewRouter(s store.Store, logger logging.Logger) http.Handler {
	h := &Handler{store: s, logger: logger.With("module", "api")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Route("/contacto", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
