// internal/app/features/organizations/delete.go
package organizations

import (
	"context"
	"errors"
	"net/http"

	hourstore "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/hours"
	organizationstore "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/organizations"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDelete processes DELETE /api/organizations/{id}.
// Only the owner or an admin may delete. Hour records that reference the
// organization are left in place; reads resolve the missing name to "".
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := authz.ActorCtx(r)
	if !ok {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to access this route"))
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apperr.Render(w, nil, "", apperr.NotFound("Organization not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := organizationstore.New(h.DB)
	org, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apperr.Render(w, nil, "", apperr.NotFound("Organization not found"))
			return
		}
		apperr.Render(w, h.Log, "organizations: fetch for delete", err)
		return
	}

	if org.OwnerID != actor.ID && actor.Role != authz.RoleAdmin {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to delete this organization"))
		return
	}

	if _, err := store.Delete(ctx, id); err != nil {
		apperr.Render(w, h.Log, "organizations: delete", err)
		return
	}

	if orphaned, err := hourstore.New(h.DB).CountByOrg(ctx, id); err == nil && orphaned > 0 {
		h.Log.Info("organization deleted with hour records still referencing it",
			zap.String("organization_id", id.Hex()),
			zap.Int64("records", orphaned))
	}

	respond.Empty(w)
}
