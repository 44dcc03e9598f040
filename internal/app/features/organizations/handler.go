// internal/app/features/organizations/handler.go

// Package organizations implements the organization CRUD endpoints.
//
// Listing and fetching are public. Creating requires the organization or
// admin role; the creator becomes the owner. Updating and deleting require
// ownership or the admin role.
package organizations

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for organization endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs an organizations Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}
