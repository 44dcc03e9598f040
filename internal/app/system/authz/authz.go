// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor is the request-scoped authenticated principal. It is what handlers
// and policies receive; there is no ambient session state anywhere else.
type Actor struct {
	ID   primitive.ObjectID
	Name string
	Role Role
}

// ActorCtx returns the authenticated actor for the request and a found flag.
// If no user is present in context, the user ID is malformed, or the role is
// unknown, it returns ok=false. ok=true therefore guarantees a valid actor
// with a valid ObjectID and a known role.
func ActorCtx(r *http.Request) (Actor, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return Actor{}, false
	}
	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		// Malformed user ID in token - fail closed.
		return Actor{}, false
	}
	role, ok := ParseRole(u.Role)
	if !ok {
		return Actor{}, false
	}
	return Actor{ID: id, Name: u.Name, Role: role}, true
}
