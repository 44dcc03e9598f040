// internal/app/system/authz/roles.go
package authz

import "strings"

// Role is the closed set of account roles. Roles are mutually exclusive,
// assigned at registration, and immutable through this service. Keeping the
// type closed means every policy switch handles all three values explicitly
// and fails closed on anything else.
type Role string

const (
	RoleVolunteer    Role = "volunteer"
	RoleOrganization Role = "organization"
	RoleAdmin        Role = "admin"
)

// ParseRole normalizes a stored role string to a Role.
// Unknown values return ok=false; callers must fail closed.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleVolunteer:
		return RoleVolunteer, true
	case RoleOrganization:
		return RoleOrganization, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// Registerable reports whether a role may be chosen at self-registration.
// Admin accounts are provisioned out of band, never self-assigned.
func (r Role) Registerable() bool {
	return r == RoleVolunteer || r == RoleOrganization
}

func (r Role) String() string { return string(r) }
