// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents volunteers, organization owners, and admins.
//
// NOTE:
//   - Role is stored lowercase ("volunteer" | "organization" | "admin") and
//     is assigned at registration; it never changes through this service.
//   - PasswordHash is a bcrypt hash and must never be serialized to clients
//     (json:"-").
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"` // volunteer | organization | admin

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
