// internal/app/features/auth/handler.go

// Package auth implements account registration and token-based login.
//
// Register and login both issue a bearer token; the client keeps it and
// sends it on every API call. Admin accounts cannot be self-registered.
package auth

import (
	systemauth "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auth"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the auth endpoints.
type Handler struct {
	DB         *mongo.Database
	Tokens     *systemauth.TokenManager
	Audit      *auditlog.Logger
	BcryptCost int
	Log        *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(db *mongo.Database, tokens *systemauth.TokenManager, audit *auditlog.Logger, bcryptCost int, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Tokens:     tokens,
		Audit:      audit,
		BcryptCost: bcryptCost,
		Log:        logger,
	}
}
