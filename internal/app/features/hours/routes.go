// internal/app/features/hours/routes.go
package hours

import (
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the volunteer-hour endpoints under the base path
// (typically "/api/hours" from bootstrap). Everything requires a signed-in
// user; the coarse role gates here mirror the fine-grained checks the
// policy re-applies per record.
func Routes(h *Handler, mw *auth.Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(mw.RequireSignedIn)

	// LIST (role-filtered) and CREATE (volunteers only)
	r.Get("/", h.ServeList)
	r.With(mw.RequireRole("volunteer")).Post("/", h.HandleCreate)

	// VIEW and UPDATE (owner, owning org, admin; checked per record)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)

	// DELETE (owning volunteer while pending, admin always)
	r.With(mw.RequireRole("volunteer", "admin")).Delete("/{id}", h.HandleDelete)

	// AUDIT TRAIL (admin only)
	r.With(mw.RequireRole("admin")).Get("/{id}/audit", h.ServeAudit)

	return r
}
