package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// CollaborationHandler handles comments and time logs nested under a task.
type CollaborationHandler struct {
	svc ports.CollaborationService
}

// NewCollaborationHandler creates a new CollaborationHandler with the given
// service port.
func NewCollaborationHandler(svc ports.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{svc: svc}
}

// ListComments handles GET /api/v1/tasks/{id}/comments.
func (h *CollaborationHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.svc.ListComments(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCommentListResponse(comments))
}

// AddComment handles POST /api/v1/tasks/{id}/comments.
func (h *CollaborationHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), taskID, req.Content)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCommentResponse(c))
}

// ListTimeLogs handles GET /api/v1/tasks/{id}/time-logs. The response
// carries the task total alongside the entries.
func (h *CollaborationHandler) ListTimeLogs(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	logs, err := h.svc.ListTimeLogs(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTimeLogListResponse(logs))
}

// LogTime handles POST /api/v1/tasks/{id}/time-logs.
func (h *CollaborationHandler) LogTime(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.TimeLogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	d, err := req.Duration()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.LogTime(r.Context(), taskID, d, req.Comment)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTimeLogResponse(l))
}
