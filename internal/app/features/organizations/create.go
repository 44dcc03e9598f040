// internal/app/features/organizations/create.go
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
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
)

// orgInput is the create/update payload for an organization profile.
type orgInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
}

const maxOrgNameLen = 100

// HandleCreate processes POST /api/organizations.
// Authorization: RequireRole("organization", "admin") in routes.go.
// The acting user becomes the owner regardless of payload content.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := authz.ActorCtx(r)
	if !ok {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to access this route"))
		return
	}

	var in orgInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apperr.Render(w, nil, "", apperr.InvalidInput("Invalid request body"))
		return
	}

	name := textsanitize.Clean(in.Name)
	if name == "" {
		apperr.Render(w, nil, "", apperr.InvalidInput("Please add an organization name"))
		return
	}
	if len(name) > maxOrgNameLen {
		apperr.Render(w, nil, "", apperr.InvalidInput("Organization name can not be more than 100 characters"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := organizationstore.New(h.DB).Create(ctx, models.Organization{
		Name:        name,
		Description: textsanitize.Clean(in.Description),
		Address:     textsanitize.Clean(in.Address),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Website:     strings.TrimSpace(in.Website),
		OwnerID:     actor.ID,
	})
	if err != nil {
		if errors.Is(err, organizationstore.ErrDuplicateOrganization) {
			apperr.Render(w, nil, "", apperr.InvalidInput("An organization with that name already exists"))
			return
		}
		apperr.Render(w, h.Log, "organizations: create", err)
		return
	}

	respond.Data(w, http.StatusCreated, org)
}
