package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"repairdesk/app/dto"
	jwtutil "repairdesk/app/jwt"
	"repairdesk/app/middleware"
	"repairdesk/app/services"
	"repairdesk/global"
)

// TokenRevoker marks a bearer token invalid for the given remaining lifetime.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

type AuthController struct {
	Users   *services.UserService
	Signer  *jwtutil.Signer
	Revoked TokenRevoker
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer, revoked TokenRevoker) *AuthController {
	return &AuthController{Users: users, Signer: signer, Revoked: revoked}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if err := c.Users.Register(req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		global.Logger.Error().Err(err).Msg("register")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeMessage(w, http.StatusCreated, "User registered successfully")
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	u, err := c.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Role)
	if err != nil {
		global.Logger.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{Token: token, Role: u.Role})
}

// Logout revokes the presented token until its natural expiry. Without a
// configured denylist this is a no-op acknowledgement.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	claims := middleware.GetClaims(r.Context())
	if c.Revoked != nil && claims != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := c.Revoked.Revoke(r.Context(), token, ttl); err != nil {
			global.Logger.Error().Err(err).Msg("revoke token")
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
	}
	writeMessage(w, http.StatusOK, "Logged out")
}
