package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mediatrack/mediatrack-go/internal/middleware"
	"github.com/mediatrack/mediatrack-go/internal/model"
	"github.com/mediatrack/mediatrack-go/internal/service"
)

// MediaHandler handles HTTP requests for media item operations.
type MediaHandler struct {
	service *service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(svc *service.MediaService) *MediaHandler {
	return &MediaHandler{service: svc}
}

// HandleCreate handles POST /api/medias requests.
func (h *MediaHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.CreateMediaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleList handles GET /api/medias requests.
func (h *MediaHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	items, err := h.service.List(r.Context())
	if err != nil {
		writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// HandleGet handles GET /api/medias/{id} requests.
func (h *MediaHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/medias/{id} requests.
func (h *MediaHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.UpdateMediaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/medias/{id} requests.
func (h *MediaHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeMsg(w, http.StatusOK, "Media removed")
}

func (h *MediaHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeErrors(w, http.StatusBadRequest, verrs...)
	case errors.Is(err, service.ErrMediaNotFound):
		writeMsg(w, http.StatusNotFound, "Media not found")
	case errors.Is(err, service.ErrForbidden):
		writeMsg(w, http.StatusUnauthorized, "User not authorized")
	case errors.Is(err, service.ErrOwnerNotFound):
		writeMsg(w, http.StatusUnauthorized, "Token is not valid, authorization denied")
	default:
		writeInternal(w, r, err)
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Token is not valid, authorization denied")
	}
	return userID, ok
}
