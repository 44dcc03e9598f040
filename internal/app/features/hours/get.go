// internal/app/features/hours/get.go
package hours

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/policy/hourpolicy"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/organizations"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/queries/hourqueries"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeGet returns a single enriched record if the caller may read it.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
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

	rec, err := hourqueries.GetEnriched(ctx, h.DB, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apperr.Render(w, nil, "", apperr.NotFound("Volunteer hour record not found"))
			return
		}
		apperr.Render(w, h.Log, "hours: get", err)
		return
	}

	org, err := h.recordOrg(ctx, rec.VolunteerHour)
	if err != nil {
		apperr.Render(w, h.Log, "hours: resolve organization", err)
		return
	}

	if !hourpolicy.CanRead(actor, rec.VolunteerHour, org) {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to access this record"))
		return
	}

	respond.Data(w, http.StatusOK, rec)
}

// recordOrg resolves the record's organization for ownership checks.
// A missing organization is not an error; the policy treats nil as
// "unresolvable" and denies organization-role access.
func (h *Handler) recordOrg(ctx context.Context, rec models.VolunteerHour) (*models.Organization, error) {
	org, err := organizationstore.New(h.DB).GetByID(ctx, rec.OrganizationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}
