// internal/app/features/auth/routes.go
package auth

import (
	systemauth "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth endpoints under the base path
// (typically "/api/auth" from bootstrap).
func Routes(h *Handler, mw *systemauth.Middleware) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(mw.RequireSignedIn)
		pr.Get("/me", h.HandleMe)
	})

	return r
}
