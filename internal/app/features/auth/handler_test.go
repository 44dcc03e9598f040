package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authfeature "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/features/auth"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/audit"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auditlog"
	systemauth "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auth"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/indexes"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) (*authfeature.Handler, *testutil.Fixtures, *systemauth.TokenManager) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	tokens, err := systemauth.NewTokenManager("test-signing-key-0123456789", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	auditLogger := auditlog.New(audit.New(db), logger, auditlog.Config{Auth: "off", Hours: "off"})
	handler := authfeature.NewHandler(db, tokens, auditLogger, bcrypt.MinCost, logger)
	return handler, testutil.NewFixtures(t, db), tokens
}

type tokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Error   string `json:"error"`
}

func decodeToken(t *testing.T, rec *httptest.ResponseRecorder) tokenResponse {
	t.Helper()
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return resp
}

func TestHandleRegister_Success(t *testing.T) {
	handler, fixtures, tokens := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body := `{"name":"Jane Vol","email":"Jane@Example.com","password":"secret1","role":"volunteer"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	resp := decodeToken(t, rec)
	if !resp.Success || resp.Token == "" {
		t.Fatalf("expected a token, got %+v", resp)
	}

	claims, err := tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Role != "volunteer" || claims.Name != "Jane Vol" {
		t.Errorf("claims: got %+v", claims)
	}

	// Email is stored normalized and the password is not stored in the clear
	var stored bson.M
	err = fixtures.DB().Collection("users").FindOne(ctx, bson.M{"email": "jane@example.com"}).Decode(&stored)
	if err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}
	if stored["password_hash"] == "secret1" {
		t.Error("password stored in the clear")
	}
}

func TestHandleRegister_AdminRoleRejected(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	body := `{"name":"Mallory","email":"m@example.com","password":"secret1","role":"admin"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	handler, fixtures, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Duplicate detection relies on the unique email index
	if err := indexes.EnsureAll(ctx, fixtures.DB()); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}

	body := `{"name":"First","email":"dup@example.com","password":"secret1","role":"volunteer"}`
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: got %d (%s)", rec.Code, rec.Body.String())
	}

	body = `{"name":"Second","email":"DUP@example.com","password":"secret2","role":"organization"}`
	rec = httptest.NewRecorder()
	handler.HandleRegister(rec, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate register: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleRegister_Validation(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	cases := []string{
		`{"email":"a@b.c","password":"secret1","role":"volunteer"}`,           // no name
		`{"name":"A","email":"not-an-email","password":"secret1","role":"volunteer"}`, // bad email
		`{"name":"A","email":"a@b.c","password":"short","role":"volunteer"}`,  // short password
		`{"name":"A","email":"a@b.c","password":"secret1","role":"wizard"}`,   // unknown role
	}
	for _, body := range cases {
		rec := httptest.NewRecorder()
		handler.HandleRegister(rec, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: got %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHandleLogin_Success(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	body := `{"name":"Log In","email":"login@example.com","password":"secret1","role":"volunteer"}`
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.HandleLogin(rec, httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"login@example.com","password":"secret1"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("login: got %d (%s)", rec.Code, rec.Body.String())
	}
	if resp := decodeToken(t, rec); !resp.Success || resp.Token == "" {
		t.Errorf("expected a token, got %+v", resp)
	}
}

func TestHandleLogin_WrongPasswordAndUnknownEmailLookIdentical(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	body := `{"name":"Log In","email":"known@example.com","password":"secret1","role":"volunteer"}`
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got %d", rec.Code)
	}

	wrongPass := httptest.NewRecorder()
	handler.HandleLogin(wrongPass, httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"known@example.com","password":"wrong"}`)))

	unknownEmail := httptest.NewRecorder()
	handler.HandleLogin(unknownEmail, httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"secret1"}`)))

	if wrongPass.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknownEmail.Code)
	}
	if wrongPass.Body.String() != unknownEmail.Body.String() {
		t.Errorf("responses differ: %s vs %s", wrongPass.Body.String(), unknownEmail.Body.String())
	}
}

func TestHandleMe(t *testing.T) {
	handler, fixtures, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Me User", "me@example.com", "volunteer")

	req := testutil.NewAuthenticatedRequest("GET", "/api/auth/me", nil, testutil.TestUser{
		ID: user.ID.Hex(), Name: user.Name, Role: user.Role,
	})
	rec := httptest.NewRecorder()
	handler.HandleMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Email        string `json:"email"`
			PasswordHash string `json:"password_hash"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Data.Email != "me@example.com" {
		t.Errorf("email: got %q", resp.Data.Email)
	}
	if resp.Data.PasswordHash != "" {
		t.Error("password hash must never be serialized")
	}
}

func TestHandleMe_Unauthenticated(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleMe(rec, httptest.NewRequest("GET", "/api/auth/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
