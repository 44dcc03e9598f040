// internal/app/features/auth/login.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	userstore "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/users"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin processes POST /api/auth/login.
// The response to a wrong email and a wrong password is identical.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apperr.Render(w, nil, "", apperr.InvalidInput("Invalid request body"))
		return
	}
	if in.Email == "" || in.Password == "" {
		apperr.Render(w, nil, "", apperr.InvalidInput("Please provide an email and password"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users := userstore.New(h.DB)
	user, err := users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.Audit.LoginFailed(ctx, r, nil, "user not found")
			apperr.Render(w, nil, "", apperr.NotAuthorized("Invalid credentials"))
			return
		}
		apperr.Render(w, h.Log, "login: lookup user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		h.Audit.LoginFailed(ctx, r, &user.ID, "wrong password")
		apperr.Render(w, nil, "", apperr.NotAuthorized("Invalid credentials"))
		return
	}

	token, err := h.Tokens.Issue(user.ID.Hex(), user.Name, user.Role)
	if err != nil {
		apperr.Render(w, h.Log, "login: issue token", err)
		return
	}

	h.Audit.LoginSuccess(ctx, r, user.ID, user.Role)
	respond.Token(w, http.StatusOK, token)
}

// HandleMe processes GET /api/auth/me, returning the authenticated user.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := authz.ActorCtx(r)
	if !ok {
		apperr.Render(w, nil, "", apperr.NotAuthorized("Not authorized to access this route"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users := userstore.New(h.DB)
	user, err := users.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apperr.Render(w, nil, "", apperr.NotFound("User not found"))
			return
		}
		apperr.Render(w, h.Log, "me: lookup user", err)
		return
	}

	respond.Data(w, http.StatusOK, user)
}
