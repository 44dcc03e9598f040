// internal/app/features/hours/handler.go

// Package hours implements the volunteer-hour record endpoints: volunteers
// log and manage their own hours, organization owners approve or reject
// hours logged against their organizations, admins bypass both.
package hours

import (
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB    *mongo.Database
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Audit: audit, Log: logger}
}
