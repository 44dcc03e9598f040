// internal/app/features/organizations/edit.go
package organizations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	organizationstore "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/organizations"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/textsanitize"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// orgUpdateInput uses pointers so absent fields stay untouched.
type orgUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
}

// HandleUpdate processes PUT /api/organizations/{id}.
// Only the owner or an admin may update; ownership itself never changes.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var in orgUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apperr.Render(w, nil, "", apperr.InvalidInput("Invalid request body"))
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
		apperr.Render(w, h.Log, "organizations: fetch for update", err)
		return
	}

	if org.OwnerID != actor.ID && actor.Role != authz.RoleAdmin {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to update this organization"))
		return
	}

	set := bson.M{}
	if in.Name != nil {
		name := textsanitize.Clean(*in.Name)
		if name == "" {
			apperr.Render(w, nil, "", apperr.InvalidInput("Please add an organization name"))
			return
		}
		if len(name) > maxOrgNameLen {
			apperr.Render(w, nil, "", apperr.InvalidInput("Organization name can not be more than 100 characters"))
			return
		}
		set["name"] = name
	}
	if in.Description != nil {
		set["description"] = textsanitize.Clean(*in.Description)
	}
	if in.Address != nil {
		set["address"] = textsanitize.Clean(*in.Address)
	}
	if in.Email != nil {
		set["email"] = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		set["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Website != nil {
		set["website"] = strings.TrimSpace(*in.Website)
	}
	if len(set) == 0 {
		respond.Data(w, http.StatusOK, org)
		return
	}

	updated, err := store.UpdateInfo(ctx, id, set)
	if err != nil {
		if errors.Is(err, organizationstore.ErrDuplicateOrganization) {
			apperr.Render(w, nil, "", apperr.InvalidInput("An organization with that name already exists"))
			return
		}
		apperr.Render(w, h.Log, "organizations: update", err)
		return
	}

	respond.Data(w, http.StatusOK, updated)
}
