// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the organization directory endpoints under the base path
// (typically "/api/organizations" from bootstrap).
func Routes(h *Handler, mw *auth.Middleware) chi.Router {
	r := chi.NewRouter()

	// Public directory
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	// Writes require the organization or admin role; the handlers still
	// check ownership for updates and deletes.
	r.Group(func(pr chi.Router) {
		pr.Use(mw.RequireSignedIn)
		pr.Use(mw.RequireRole("organization", "admin"))
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
