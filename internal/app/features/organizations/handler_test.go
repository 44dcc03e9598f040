package organizations_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	organizationsfeature "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/features/organizations"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/indexes"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*organizationsfeature.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := organizationsfeature.NewHandler(db, zap.NewNop())
	return handler, testutil.NewFixtures(t, db)
}

func asUser(u models.User) testutil.TestUser {
	return testutil.TestUser{ID: u.ID.Hex(), Name: u.Name, Email: u.Email, Role: u.Role}
}

func TestServeList_Public(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Owner", "owner@test.com", "organization")
	fixtures.CreateOrganization(ctx, "Alpha", owner.ID)
	fixtures.CreateOrganization(ctx, "Beta", owner.ID)

	// No user in context: the listing is public
	rec := httptest.NewRecorder()
	handler.ServeList(rec, httptest.NewRequest("GET", "/api/organizations", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool              `json:"success"`
		Count   int               `json:"count"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Count != 2 || len(resp.Data) != 2 {
		t.Errorf("count: got %d (len %d), want 2", resp.Count, len(resp.Data))
	}
}

func TestServeGet_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/organizations/nonsense", nil)
	req = testutil.WithChiURLParam(req, "id", "nonsense")
	rec := httptest.NewRecorder()
	handler.ServeGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestHandleCreate_OwnerIsActor(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Owner", "owner@test.com", "organization")

	body := `{"name":"Food Bank","description":"<i>Meals</i> for all","email":"fb@test.org"}`
	req := testutil.NewAuthenticatedRequest("POST", "/api/organizations", strings.NewReader(body), asUser(owner))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}

	var stored models.Organization
	if err := fixtures.DB().Collection("organizations").FindOne(ctx, bson.M{"name": "Food Bank"}).Decode(&stored); err != nil {
		t.Fatalf("failed to find created organization: %v", err)
	}
	if stored.OwnerID != owner.ID {
		t.Errorf("owner: got %s, want %s", stored.OwnerID.Hex(), owner.ID.Hex())
	}
	if stored.Description != "Meals for all" {
		t.Errorf("markup should be stripped, got %q", stored.Description)
	}
}

func TestHandleCreate_DuplicateName(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Duplicate detection relies on the unique name_ci index
	if err := indexes.EnsureAll(ctx, fixtures.DB()); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	owner := fixtures.CreateUser(ctx, "Owner", "owner@test.com", "organization")

	post := func() *httptest.ResponseRecorder {
		body := `{"name":"Food Bank"}`
		req := testutil.NewAuthenticatedRequest("POST", "/api/organizations", strings.NewReader(body), asUser(owner))
		rec := httptest.NewRecorder()
		handler.HandleCreate(rec, req)
		return rec
	}

	if rec := post(); rec.Code != http.StatusCreated {
		t.Fatalf("first create: got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec := post(); rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate create: got %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
}

func TestHandleUpdate_OwnershipEnforced(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Owner", "owner@test.com", "organization")
	other := fixtures.CreateUser(ctx, "Other", "other@test.com", "organization")
	admin := fixtures.CreateUser(ctx, "Admin", "admin@test.com", "admin")
	org := fixtures.CreateOrganization(ctx, "Food Bank", owner.ID)

	put := func(u models.User, body string) *httptest.ResponseRecorder {
		req := testutil.NewAuthenticatedRequest("PUT", "/api/organizations/"+org.ID.Hex(), strings.NewReader(body), asUser(u))
		req = testutil.WithChiURLParam(req, "id", org.ID.Hex())
		rec := httptest.NewRecorder()
		handler.HandleUpdate(rec, req)
		return rec
	}

	if rec := put(other, `{"description":"hijacked"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("non-owner: got %d, want 401", rec.Code)
	}
	if rec := put(owner, `{"description":"Updated"}`); rec.Code != http.StatusOK {
		t.Errorf("owner: got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec := put(admin, `{"address":"1 Admin Way"}`); rec.Code != http.StatusOK {
		t.Errorf("admin: got %d (%s)", rec.Code, rec.Body.String())
	}

	var stored models.Organization
	if err := fixtures.DB().Collection("organizations").FindOne(ctx, bson.M{"_id": org.ID}).Decode(&stored); err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if stored.Description != "Updated" || stored.Address != "1 Admin Way" {
		t.Errorf("partial updates should accumulate: %+v", stored)
	}
	if stored.OwnerID != owner.ID {
		t.Error("ownership must never change on update")
	}
}

func TestHandleDelete_OwnershipEnforced(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Owner", "owner@test.com", "organization")
	other := fixtures.CreateUser(ctx, "Other", "other@test.com", "organization")
	org := fixtures.CreateOrganization(ctx, "Food Bank", owner.ID)

	del := func(u models.User) *httptest.ResponseRecorder {
		req := testutil.NewAuthenticatedRequest("DELETE", "/api/organizations/"+org.ID.Hex(), nil, asUser(u))
		req = testutil.WithChiURLParam(req, "id", org.ID.Hex())
		rec := httptest.NewRecorder()
		handler.HandleDelete(rec, req)
		return rec
	}

	if rec := del(other); rec.Code != http.StatusUnauthorized {
		t.Errorf("non-owner: got %d, want 401", rec.Code)
	}
	if rec := del(owner); rec.Code != http.StatusOK {
		t.Errorf("owner: got %d (%s)", rec.Code, rec.Body.String())
	}

	n, err := fixtures.DB().Collection("organizations").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 organizations, got %d", n)
	}
}
