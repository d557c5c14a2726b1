package http

import (
	"net/http"

	"github.com/authkit/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(authHandler *AuthHandler, userHandler *UserHandler, signer ports.TokenSigner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(signer))

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", userHandler.GetMe)
		})
	})

	return r
}
