// Package hourpolicy decides who may do what to a volunteer-hour record.
//
// All functions are pure: callers fetch the record and its organization and
// pass them in, the policy only decides. Role handling switches over the
// closed authz.Role set and fails closed on anything unexpected.
//
// Authorization rules:
//   - Volunteers own their records and may change them only while pending.
//   - Organization owners may only change the status of records logged
//     against their organization.
//   - Admins bypass both the field restriction and the state machine.
package hourpolicy

import (
	"time"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
)

// Changes is the proposed update to a record. Nil means "field not present
// in the request". System-assigned fields (user, organization, approvedBy,
// approvedAt, timestamps) are not representable here: clients cannot propose
// them and the service stamps them itself.
type Changes struct {
	Description *string
	Hours       *float64
	Date        *time.Time
	Status      *string
}

// HasNonStatus reports whether any field other than Status is present.
func (c Changes) HasNonStatus() bool {
	return c.Description != nil || c.Hours != nil || c.Date != nil
}

// Empty reports whether the change set proposes nothing at all.
func (c Changes) Empty() bool {
	return !c.HasNonStatus() && c.Status == nil
}

// Decision tells the service what to stamp alongside a permitted update.
type Decision struct {
	// StampApproval: set approved_by to the acting user and approved_at to
	// now. True exactly when the update moves the record into approved.
	StampApproval bool
	// ClearApproval: unset approved_by/approved_at. True when the update
	// moves the record to a non-approved status; approval fields are only
	// meaningful while the record is approved.
	ClearApproval bool
}

// CanRead reports whether actor may read rec. org is the record's
// organization, or nil when it no longer resolves.
func CanRead(actor authz.Actor, rec models.VolunteerHour, org *models.Organization) bool {
	if actor.ID == rec.UserID {
		return true
	}
	switch actor.Role {
	case authz.RoleAdmin:
		return true
	case authz.RoleOrganization:
		return org != nil && org.OwnerID == actor.ID
	case authz.RoleVolunteer:
		return false
	}
	return false
}

// CanCreate reports whether actor may log new hours. Only volunteers do.
func CanCreate(actor authz.Actor) bool {
	return actor.Role == authz.RoleVolunteer
}

// CanDelete reports whether actor may delete rec: admins always, the owning
// volunteer only while the record is still pending.
func CanDelete(actor authz.Actor, rec models.VolunteerHour) bool {
	if actor.Role == authz.RoleAdmin {
		return true
	}
	return actor.ID == rec.UserID && rec.Status == models.StatusPending
}

// ValidateDelete is CanDelete with the reason split out: a non-owner gets
// NotAuthorized, the owner of a finalized record gets InvalidState.
func ValidateDelete(actor authz.Actor, rec models.VolunteerHour) error {
	if actor.Role == authz.RoleAdmin {
		return nil
	}
	if actor.ID != rec.UserID {
		return apperr.NotAuthorized("Not authorized to delete this record")
	}
	if rec.Status != models.StatusPending {
		return apperr.InvalidState("Cannot delete hours that have been approved or rejected")
	}
	return nil
}

// ValidateUpdate is the central decision point for updates. It enforces the
// per-role rules, then validates any proposed field values, and returns what
// the service must stamp before persisting.
//
// Note: a volunteer may include status in an update to their own pending
// record (any field is permitted while pending). That mirrors the original
// system and is deliberately preserved; integrators who consider
// self-approval a loophole should gate status at the boundary.
func ValidateUpdate(actor authz.Actor, rec models.VolunteerHour, org *models.Organization, ch Changes) (Decision, error) {
	switch actor.Role {
	case authz.RoleVolunteer:
		if rec.UserID != actor.ID {
			return Decision{}, apperr.NotAuthorized("Not authorized to update this record")
		}
		if rec.Status != models.StatusPending {
			return Decision{}, apperr.InvalidState("Cannot update hours that have been approved or rejected")
		}
	case authz.RoleOrganization:
		if org == nil || org.OwnerID != actor.ID {
			return Decision{}, apperr.NotAuthorized("Not authorized to update this record")
		}
		if ch.HasNonStatus() {
			return Decision{}, apperr.InvalidInput("Organizations can only update the status field")
		}
		if ch.Status != nil && rec.Status != models.StatusPending {
			return Decision{}, apperr.InvalidState("Cannot change the status of hours that have been approved or rejected")
		}
	case authz.RoleAdmin:
		// No field restriction, no state-machine restriction.
	default:
		return Decision{}, apperr.NotAuthorized("Not authorized to update this record")
	}

	if err := validateFields(ch); err != nil {
		return Decision{}, err
	}

	var d Decision
	if ch.Status != nil {
		if *ch.Status == models.StatusApproved {
			d.StampApproval = true
		} else {
			d.ClearApproval = true
		}
	}
	return d, nil
}

// ValidateNew checks field constraints for a record being created.
// Description and hours are required; date defaults at the store layer.
func ValidateNew(description string, hours float64) error {
	if description == "" {
		return apperr.InvalidInput("Please add a description of the volunteer work")
	}
	if len(description) > models.MaxDescriptionLen {
		return apperr.InvalidInput("Description can not be more than 200 characters")
	}
	if hours < models.MinHours {
		return apperr.InvalidInput("Hours must be at least 15 minutes (0.25 hours)")
	}
	return nil
}

func validateFields(ch Changes) error {
	if ch.Description != nil {
		if *ch.Description == "" {
			return apperr.InvalidInput("Please add a description of the volunteer work")
		}
		if len(*ch.Description) > models.MaxDescriptionLen {
			return apperr.InvalidInput("Description can not be more than 200 characters")
		}
	}
	if ch.Hours != nil && *ch.Hours < models.MinHours {
		return apperr.InvalidInput("Hours must be at least 15 minutes (0.25 hours)")
	}
	if ch.Status != nil && !models.ValidStatus(*ch.Status) {
		return apperr.InvalidInput("Status must be pending, approved, or rejected")
	}
	return nil
}
