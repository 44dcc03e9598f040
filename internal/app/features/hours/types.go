// internal/app/features/hours/types.go
package hours

import (
	"encoding/json"
	"time"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/policy/hourpolicy"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/textsanitize"
)

// jsonDate decodes both RFC 3339 timestamps and bare "YYYY-MM-DD" dates.
// Browser clients submit the latter straight from a date input.
type jsonDate struct {
	time.Time
}

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	if err != nil {
		return err
	}
	d.Time = t.UTC()
	return nil
}

// hourInput is the create payload. Organization is the target org's hex ID.
// User, status, and approval fields are not accepted from clients; the
// handler stamps them.
type hourInput struct {
	Description  string   `json:"description"`
	Hours        float64  `json:"hours"`
	Date         jsonDate `json:"date"`
	Organization string   `json:"organization"`
}

// hourUpdateInput is the update payload. Pointer fields distinguish "absent"
// from "zero". The decoder drops keys it does not recognize, so organization
// actors get the raw payload checked separately (see HandleUpdate).
type hourUpdateInput struct {
	Description *string   `json:"description"`
	Hours       *float64  `json:"hours"`
	Date        *jsonDate `json:"date"`
	Status      *string   `json:"status"`
}

// changes converts the payload into the policy's change set, sanitizing
// free text on the way in.
func (in hourUpdateInput) changes() hourpolicy.Changes {
	ch := hourpolicy.Changes{
		Hours:  in.Hours,
		Status: in.Status,
	}
	if in.Date != nil {
		t := in.Date.Time
		ch.Date = &t
	}
	if in.Description != nil {
		clean := textsanitize.Clean(*in.Description)
		ch.Description = &clean
	}
	return ch
}
