// internal/app/features/auth/register.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/store/users"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/apperr"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/authz"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/respond"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/textsanitize"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/timeouts"
	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HandleRegister processes POST /api/auth/register.
//
// Creates an account with role volunteer or organization (admin is never
// self-assignable) and returns a bearer token so the client is signed in
// immediately.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apperr.Render(w, h.Log, "register: decode body", apperr.InvalidInput("Invalid request body"))
		return
	}

	name := textsanitize.Clean(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		apperr.Render(w, nil, "", apperr.InvalidInput("Please add a name"))
		return
	}
	if email == "" || !strings.Contains(email, "@") {
		apperr.Render(w, nil, "", apperr.InvalidInput("Please add a valid email"))
		return
	}
	if len(in.Password) < 6 {
		apperr.Render(w, nil, "", apperr.InvalidInput("Password must be at least 6 characters"))
		return
	}
	role, ok := authz.ParseRole(in.Role)
	if !ok || !role.Registerable() {
		apperr.Render(w, nil, "", apperr.InvalidInput("Role must be volunteer or organization"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), h.BcryptCost)
	if err != nil {
		apperr.Render(w, h.Log, "register: hash password", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users := userstore.New(h.DB)
	user, err := users.Create(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role.String(),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			apperr.Render(w, nil, "", apperr.InvalidInput("A user with this email already exists"))
			return
		}
		apperr.Render(w, h.Log, "register: create user", err)
		return
	}

	token, err := h.Tokens.Issue(user.ID.Hex(), user.Name, user.Role)
	if err != nil {
		apperr.Render(w, h.Log, "register: issue token", err)
		return
	}

	h.Audit.RegisterSuccess(ctx, r, user.ID, user.Role)
	h.Log.Info("user registered",
		zap.String("user_id", user.ID.Hex()),
		zap.String("role", user.Role))

	respond.Token(w, http.StatusCreated, token)
}
