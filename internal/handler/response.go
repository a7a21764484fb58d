package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mediatrack/mediatrack-go/internal/model"
	"github.com/mediatrack/mediatrack-go/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// errorsBody is the {"errors":[...]} shape used for validation and
// credential failures.
type errorsBody struct {
	Errors []service.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.MessageResponse{Msg: msg})
}

func writeErrors(w http.ResponseWriter, status int, errs ...service.FieldError) {
	writeJSON(w, status, errorsBody{Errors: errs})
}

// writeInternal logs err with the request ID and sends an opaque 500.
func writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"request_id", chimw.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeMsg(w, http.StatusInternalServerError, "Server error")
}

// decodeJSON reads a size-limited JSON body into dst. On failure it writes the
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMsg(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
