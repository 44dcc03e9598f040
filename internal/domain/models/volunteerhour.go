// internal/domain/models/volunteerhour.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Approval status values for a volunteer-hour record. A record is created
// pending and, through the normal update path, transitions only to approved
// or rejected. Admins may force any transition.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Hour limits enforced on create and update.
const (
	// MinHours is the smallest loggable amount of work (15 minutes).
	MinHours = 0.25
	// MaxDescriptionLen caps the free-text description.
	MaxDescriptionLen = 200
)

// VolunteerHour is a record of volunteer work performed for an organization.
//
// UserID and OrganizationID are set once at creation and never change.
// ApprovedBy/ApprovedAt are populated only while Status == approved; they are
// stamped server-side on the approving update and cleared when an admin
// moves the record out of approved.
type VolunteerHour struct {
	ID             primitive.ObjectID  `bson:"_id" json:"id"`
	Description    string              `bson:"description" json:"description"`
	Hours          float64             `bson:"hours" json:"hours"`
	Date           time.Time           `bson:"date" json:"date"`
	Status         string              `bson:"status" json:"status"`
	UserID         primitive.ObjectID  `bson:"user_id" json:"user_id"`
	OrganizationID primitive.ObjectID  `bson:"organization_id" json:"organization_id"`
	ApprovedBy     *primitive.ObjectID `bson:"approved_by,omitempty" json:"approved_by,omitempty"`
	ApprovedAt     *time.Time          `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}
