package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization: registration, login bootstrap, and the
	// requester half of login-with-device (authenticated by the access code)
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/prelogin", h.prelogin)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/policy", h.policy)
		r.Post("/api/auth-requests", h.createAuthRequest)
		r.Post("/api/auth-requests/{id}/poll", h.pollAuthRequest)
	})

	// routes behind a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth-requests", h.listAuthRequests)
		r.Put("/api/auth-requests/{id}", h.answerAuthRequest)
		r.Post("/api/devices/trust", h.trustDevice)
		r.Get("/api/devices", h.listDevices)
	})

	return router
}
