package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// TagHandler handles HTTP requests for the tag vocabulary.
type TagHandler struct {
	svc ports.TagService
}

// NewTagHandler creates a new TagHandler with the given service port.
func NewTagHandler(svc ports.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// ListTags handles GET /api/v1/tags.
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTagListResponse(tags))
}

// CreateTag handles POST /api/v1/tags.
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req dto.TagRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTag(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTagResponse(created))
}

// RenameTag handles PATCH /api/v1/tags/{id}.
func (h *TagHandler) RenameTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.TagRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	renamed, err := h.svc.RenameTag(r.Context(), id, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTagResponse(renamed))
}

// DeleteTag handles DELETE /api/v1/tags/{id}.
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTag(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
