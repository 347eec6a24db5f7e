// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// TaskHandler handles HTTP requests for tasks, their lifecycle and their
// audit trail.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTaskFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	in, err := req.ToNewTask()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.svc.CreateTask(r.Context(), in)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	h.respondTask(w, r, h.svc.GetTask)
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeStatus handles POST /api/v1/tasks/{id}/status.
func (h *TaskHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.ChangeStatus(r.Context(), id, task.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// AssignTask handles POST /api/v1/tasks/{id}/assign.
func (h *TaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AssignRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.AssignTask(r.Context(), id, req.AssigneeID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// UnassignTask handles POST /api/v1/tasks/{id}/unassign.
func (h *TaskHandler) UnassignTask(w http.ResponseWriter, r *http.Request) {
	h.respondTask(w, r, h.svc.UnassignTask)
}

// ArchiveTask handles POST /api/v1/tasks/{id}/archive.
func (h *TaskHandler) ArchiveTask(w http.ResponseWriter, r *http.Request) {
	h.respondTask(w, r, h.svc.ArchiveTask)
}

// UnarchiveTask handles POST /api/v1/tasks/{id}/unarchive.
func (h *TaskHandler) UnarchiveTask(w http.ResponseWriter, r *http.Request) {
	h.respondTask(w, r, h.svc.UnarchiveTask)
}

// BulkChangeStatus handles POST /api/v1/tasks/bulk/status. Per-task
// failures are reported in the body with a 200.
func (h *TaskHandler) BulkChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.BulkChangeStatus(r.Context(), req.TaskIDs, task.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkStatusResponse(result))
}

// ListActivity handles GET /api/v1/tasks/{id}/activity.
func (h *TaskHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	acts, err := h.svc.ListActivity(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActivityListResponse(acts))
}

// Transitions handles GET /api/v1/tasks/{id}/transitions.
func (h *TaskHandler) Transitions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTransitionsResponse(t))
}

// respondTask runs a single-id operation and writes the resulting task.
func (h *TaskHandler) respondTask(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id int64) (*task.Task, error),
) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	t, err := op(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}
