package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fintrack-server/src/apperr"
	"fintrack-server/src/middleware"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

const maxBodyBytes = 1 << 20

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slog.Warn("Failed to decode request body", "path", r.URL.Path, "error", err)
		util.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// decodeOptional is decode for bodies the client may leave out entirely,
// whether sent with a zero length or as an empty chunked stream.
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	slog.Warn("Failed to decode request body", "path", r.URL.Path, "error", err)
	util.WriteDetail(w, http.StatusBadRequest, "invalid request body")
	return false
}

func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		util.WriteDetail(w, http.StatusUnauthorized, "Not authenticated")
	}
	return user, ok
}

// fail writes the HTTP form of a service error. Unexpected errors are logged
// and hidden behind a generic message.
func fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	kinds := []struct {
		kind   error
		status int
	}{
		{apperr.ErrInvalidRequest, http.StatusBadRequest},
		{apperr.ErrUnauthenticated, http.StatusUnauthorized},
		{apperr.ErrNotFound, http.StatusNotFound},
		{apperr.ErrConflict, http.StatusConflict},
	}
	for _, k := range kinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		slog.Warn("Failed to "+action, "path", r.URL.Path, "status", k.status, "error", err)
		util.WriteDetail(w, k.status, detail(err, k.kind))
		return
	}
	slog.Error("Failed to "+action, "path", r.URL.Path, "error", err)
	util.WriteDetail(w, http.StatusInternalServerError, "internal error")
}

func detail(err, kind error) string {
	msg := err.Error()
	i := strings.Index(msg, kind.Error()+": ")
	if i < 0 {
		return msg
	}
	rest := msg[i+len(kind.Error())+2:]
	if kind == apperr.ErrNotFound && rest != "" {
		return strings.ToUpper(rest[:1]) + rest[1:] + " not found"
	}
	return rest
}

func message(w http.ResponseWriter, msg string) {
	util.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
