package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"go.uber.org/zap"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *apperr.Error
		status int
	}{
		{apperr.NotFound("missing"), http.StatusNotFound},
		{apperr.NotAuthorized("nope"), http.StatusUnauthorized},
		{apperr.InvalidState("finalized"), http.StatusBadRequest},
		{apperr.InvalidInput("bad field"), http.StatusBadRequest},
	}
	for _, c := range cases {
		if got := c.err.Status(); got != c.status {
			t.Errorf("Status() for %q = %d, want %d", c.err.Message, got, c.status)
		}
	}
}

func TestRender_TaxonomyError(t *testing.T) {
	rec := httptest.NewRecorder()
	apperr.Render(rec, zap.NewNop(), "test", apperr.NotFound("Volunteer hour record not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if body.Error != "Volunteer hour record not found" {
		t.Errorf("error: got %q", body.Error)
	}
}

func TestRender_WrappedTaxonomyError(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("fetch record: %w", apperr.NotAuthorized("Not authorized to access this record"))
	apperr.Render(rec, zap.NewNop(), "test", wrapped)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRender_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	apperr.Render(rec, zap.NewNop(), "test", errors.New("connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Error != "Server error" {
		t.Errorf("internal detail leaked: %q", body.Error)
	}
}
