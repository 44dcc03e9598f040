// internal/app/features/hours/audit.go
package hours

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/audit"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/hours"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const auditTrailLimit = 50

// ServeAudit returns the recent audit trail for one record, newest first.
// Admin only (gated in routes.go). The record itself must exist; events for
// already-deleted records are reachable through the collection, not the API.
func (h *Handler) ServeAudit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apperr.Render(w, nil, "", apperr.NotFound("Volunteer hour record not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := hourstore.New(h.DB).GetByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apperr.Render(w, nil, "", apperr.NotFound("Volunteer hour record not found"))
			return
		}
		apperr.Render(w, h.Log, "hours: fetch for audit", err)
		return
	}

	events, err := audit.New(h.DB).RecentForRecord(ctx, id, auditTrailLimit)
	if err != nil {
		apperr.Render(w, h.Log, "hours: audit trail", err)
		return
	}

	respond.List(w, len(events), events)
}
