package auth_test

import (
	"testing"
	"time"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	tm, err := auth.NewTokenManager("test-signing-key-0123456789", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	userID := primitive.NewObjectID().Hex()
	token, err := tm.Issue(userID, "Test Volunteer", "volunteer")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != userID {
		t.Errorf("subject: got %q, want %q", claims.Subject, userID)
	}
	if claims.Name != "Test Volunteer" || claims.Role != "volunteer" {
		t.Errorf("claims: got %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected a jti")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	issuer, _ := auth.NewTokenManager("key-one-0123456789abcdef", time.Hour)
	verifier, _ := auth.NewTokenManager("key-two-0123456789abcdef", time.Hour)

	token, err := issuer.Issue(primitive.NewObjectID().Hex(), "V", "volunteer")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Error("token signed with a different key should not verify")
	}
}

func TestVerify_Expired(t *testing.T) {
	tm, _ := auth.NewTokenManager("test-signing-key-0123456789", time.Nanosecond)

	token, err := tm.Issue(primitive.NewObjectID().Hex(), "V", "volunteer")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := tm.Verify(token); err == nil {
		t.Error("expired token should not verify")
	}
}

func TestVerify_Garbage(t *testing.T) {
	tm, _ := auth.NewTokenManager("test-signing-key-0123456789", time.Hour)
	if _, err := tm.Verify("not.a.token"); err == nil {
		t.Error("garbage should not verify")
	}
}

func TestNewTokenManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewTokenManager("", time.Hour); err == nil {
		t.Error("empty signing key should be rejected")
	}
}
