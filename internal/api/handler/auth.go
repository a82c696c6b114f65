// internal/api/handler/auth.go
package handler

import (
	"log/slog"
	"net/http"

	"rentpay/internal/api/types"
	"rentpay/internal/domain"
	"rentpay/internal/service"
	"rentpay/internal/util"
)

// AuthHandler handles registration, login and identity requests.
type AuthHandler struct {
	responder
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// Register creates an account.
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.Credentials
	if err := decodeJSON(r, &req, false); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, user)
}

// Login exchanges credentials for a bearer token.
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.Credentials
	if err := decodeJSON(r, &req, false); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, types.LoginResponse{
		UserID:   token.UserID,
		Username: token.Username,
		Token:    token.Token,
	})
}

// Me describes the caller. It must be mounted behind the auth middleware.
// GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		h.respondWithError(w, r, util.Unauthorized("Missing bearer token", nil))
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		h.respondWithError(w, r, util.Unauthorized("Invalid or expired token", err))
		return
	}

	resp := types.MeResponse{UserID: userID, Username: claims.Username}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	h.respondWithJSON(w, http.StatusOK, resp)
}
