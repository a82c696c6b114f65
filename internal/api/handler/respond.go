// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"rentpay/internal/api/types"
	"rentpay/internal/util"
)

// DefaultTimeout bounds the handling of a single request.
const DefaultTimeout = 5 * time.Second

const msgInvalidBody = "Invalid request body"

// responder holds the JSON helpers shared by all handlers.
type responder struct {
	logger *slog.Logger
}

// Helper function to send JSON responses.
func (h responder) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps err to a status code. Only *util.Error messages reach the client;
// anything else is reported as an internal error and logged.
func (h responder) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *util.Error
	if !errors.As(err, &appErr) {
		appErr = util.Internal(err)
	}
	if appErr.Kind == util.KindInternal {
		h.logger.Error("Unhandled service error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	h.respondWithJSON(w, appErr.Kind.HTTPStatus(), types.ErrorResponse{Error: appErr.Message})
}

// decodeJSON reads the request body into dst. An empty body is accepted when optional is set.
func decodeJSON(r *http.Request, dst interface{}, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return nil
	}
	return util.InvalidInput(msgInvalidBody, err)
}
