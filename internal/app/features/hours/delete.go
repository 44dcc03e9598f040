// internal/app/features/hours/delete.go
package hours

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/policy/hourpolicy"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/hours"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleDelete processes DELETE /api/hours/{id}. Volunteers may delete their
// own pending records; admins may delete anything.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := authz.ActorCtx(r)
	if !ok {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to access this route"))
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apperr.Render(w, nil, "", apperr.NotFound("Volunteer hour record not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := hourstore.New(h.DB)
	rec, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apperr.Render(w, nil, "", apperr.NotFound("Volunteer hour record not found"))
			return
		}
		apperr.Render(w, h.Log, "hours: fetch for delete", err)
		return
	}

	if err := hourpolicy.ValidateDelete(actor, rec); err != nil {
		apperr.Render(w, nil, "", err)
		return
	}

	if _, err := store.Delete(ctx, id); err != nil {
		apperr.Render(w, h.Log, "hours: delete", err)
		return
	}

	h.Audit.HourDeleted(ctx, r, actor.ID, string(actor.Role), rec.ID, rec.OrganizationID)

	respond.Empty(w)
}
