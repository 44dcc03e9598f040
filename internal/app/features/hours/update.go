// internal/app/features/hours/update.go
package hours

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/policy/hourpolicy"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/hours"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// rejectNonStatusKeys rejects a payload proposing anything besides status.
// The typed decoder drops keys it does not know, so the raw payload is
// checked instead of the decoded struct. approvedBy/approvedAt are tolerated
// because clients echo them back; they are stamped server-side regardless.
func rejectNonStatusKeys(body []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apperr.InvalidInput("Invalid request body")
	}
	for key := range raw {
		switch key {
		case "status", "approvedBy", "approvedAt", "approved_by", "approved_at":
		default:
			return apperr.InvalidInput("Organizations can only update the status field")
		}
	}
	return nil
}

// HandleUpdate processes PUT /api/hours/{id}. The policy decides who may
// change what; the handler stamps or clears approval fields per its
// decision and persists everything in one atomic update.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	body, err := io.ReadAll(r.Body)
	if err != nil {
		apperr.Render(w, nil, "", apperr.InvalidInput("Invalid request body"))
		return
	}
	var in hourUpdateInput
	if err := json.Unmarshal(body, &in); err != nil {
		apperr.Render(w, nil, "", apperr.InvalidInput("Invalid request body"))
		return
	}
	if actor.Role == authz.RoleOrganization {
		if err := rejectNonStatusKeys(body); err != nil {
			apperr.Render(w, nil, "", err)
			return
		}
	}
	ch := in.changes()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := hourstore.New(h.DB)
	rec, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apperr.Render(w, nil, "", apperr.NotFound("Volunteer hour record not found"))
			return
		}
		apperr.Render(w, h.Log, "hours: fetch for update", err)
		return
	}

	org, err := h.recordOrg(ctx, rec)
	if err != nil {
		apperr.Render(w, h.Log, "hours: resolve organization", err)
		return
	}

	decision, err := hourpolicy.ValidateUpdate(actor, rec, org, ch)
	if err != nil {
		apperr.Render(w, nil, "", err)
		return
	}

	if ch.Empty() {
		respond.Data(w, http.StatusOK, rec)
		return
	}

	set := bson.M{}
	var unset []string
	if ch.Description != nil {
		set["description"] = *ch.Description
	}
	if ch.Hours != nil {
		set["hours"] = *ch.Hours
	}
	if ch.Date != nil {
		set["date"] = *ch.Date
	}
	if ch.Status != nil {
		set["status"] = *ch.Status
	}
	switch {
	case decision.StampApproval:
		set["approved_by"] = actor.ID
		set["approved_at"] = time.Now().UTC()
	case decision.ClearApproval:
		unset = append(unset, "approved_by", "approved_at")
	}

	updated, err := store.ApplyUpdate(ctx, id, set, unset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apperr.Render(w, nil, "", apperr.NotFound("Volunteer hour record not found"))
			return
		}
		apperr.Render(w, h.Log, "hours: update", err)
		return
	}

	if ch.Status != nil && *ch.Status != rec.Status {
		switch *ch.Status {
		case models.StatusApproved:
			h.Audit.HourDecision(ctx, r, actor.ID, string(actor.Role), rec.ID, rec.OrganizationID, true)
		case models.StatusRejected:
			h.Audit.HourDecision(ctx, r, actor.ID, string(actor.Role), rec.ID, rec.OrganizationID, false)
		}
	}

	respond.Data(w, http.StatusOK, updated)
}
