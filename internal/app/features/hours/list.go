// internal/app/features/hours/list.go
package hours

import (
	"context"
	"net/http"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/organizations"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/queries/hourqueries"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
)

// ServeList returns the hour records visible to the caller, newest first:
// volunteers see their own, organization owners see records logged against
// their organizations, admins see everything.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	actor, ok := authz.ActorCtx(r)
	if !ok {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to access this route"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var filter bson.M
	switch actor.Role {
	case authz.RoleAdmin:
		filter = bson.M{}
	case authz.RoleVolunteer:
		filter = bson.M{"user_id": actor.ID}
	case authz.RoleOrganization:
		ids, err := organizationstore.New(h.DB).IDsByOwner(ctx, actor.ID)
		if err != nil {
			apperr.Render(w, h.Log, "hours: resolve owned organizations", err)
			return
		}
		filter = bson.M{"organization_id": bson.M{"$in": ids}}
	default:
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to access this route"))
		return
	}

	records, err := hourqueries.ListEnriched(ctx, h.DB, filter)
	if err != nil {
		apperr.Render(w, h.Log, "hours: list", err)
		return
	}

	respond.List(w, len(records), records)
}
