// internal/api/middleware.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"rentpay/internal/api/handler"
	"rentpay/internal/api/types"
	"rentpay/internal/service"
	"rentpay/internal/util"
)

// RequireAuth rejects requests without a valid bearer token and stores the verified claims in
// the request context for handler.ClaimsFromContext.
func RequireAuth(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				unauthorized(w, "Missing bearer token")
				return
			}

			claims, err := authService.Authenticate(strings.TrimSpace(token))
			if err != nil {
				message := "Invalid or expired token"
				var appErr *util.Error
				if errors.As(err, &appErr) {
					message = appErr.Message
				}
				unauthorized(w, message)
				return
			}
			next.ServeHTTP(w, r.WithContext(handler.WithClaims(r.Context(), claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: message})
}
