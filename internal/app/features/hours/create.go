// internal/app/features/hours/create.go
package hours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/policy/hourpolicy"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/hours"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/organizations"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/textsanitize"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCreate processes POST /api/hours. Only volunteers log hours; the
// record is stamped with the caller's ID and starts out pending regardless
// of what the payload says.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := authz.ActorCtx(r)
	if !ok {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to access this route"))
		return
	}
	if !hourpolicy.CanCreate(actor) {
		apperr.Render(w, nil, "",
			apperr.NotAuthorized("User role "+string(actor.Role)+" is not authorized to access this route"))
		return
	}

	var in hourInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apperr.Render(w, nil, "", apperr.InvalidInput("Invalid request body"))
		return
	}

	description := textsanitize.Clean(in.Description)
	if err := hourpolicy.ValidateNew(description, in.Hours); err != nil {
		apperr.Render(w, nil, "", err)
		return
	}

	orgID, err := primitive.ObjectIDFromHex(in.Organization)
	if err != nil {
		apperr.Render(w, nil, "", apperr.NotFound("Organization not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := organizationstore.New(h.DB).GetByID(ctx, orgID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apperr.Render(w, nil, "", apperr.NotFound("Organization not found"))
			return
		}
		apperr.Render(w, h.Log, "hours: resolve organization", err)
		return
	}

	rec := models.VolunteerHour{
		Description:    description,
		Hours:          in.Hours,
		Date:           in.Date.Time,
		Status:         models.StatusPending,
		UserID:         actor.ID,
		OrganizationID: orgID,
	}
	created, err := hourstore.New(h.DB).Create(ctx, rec)
	if err != nil {
		apperr.Render(w, h.Log, "hours: create", err)
		return
	}

	respond.Data(w, http.StatusCreated, created)
}
