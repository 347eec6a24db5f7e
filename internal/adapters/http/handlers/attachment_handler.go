package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

const (
	uploadField = "file"

	// multipartOverhead covers boundaries and part headers on top of the
	// file itself.
	multipartOverhead = 1 << 20

	multipartMemory = 8 << 20
)

// AttachmentHandler handles file uploads and downloads.
type AttachmentHandler struct {
	svc      ports.AttachmentService
	maxBytes int64
}

// NewAttachmentHandler creates a new AttachmentHandler. maxBytes bounds the
// request body read for an upload; the service applies its own limit on
// the file.
func NewAttachmentHandler(svc ports.AttachmentService, maxBytes int64) *AttachmentHandler {
	return &AttachmentHandler{svc: svc, maxBytes: maxBytes}
}

// ListAttachments handles GET /api/v1/tasks/{id}/attachments.
func (h *AttachmentHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	as, err := h.svc.ListAttachments(r.Context(), taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAttachmentListResponse(as))
}

// UploadAttachment handles POST /api/v1/tasks/{id}/attachments as a
// multipart form with a single "file" part.
func (h *AttachmentHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			dto.WriteErrorResponse(w, r, &domain.FileSizeExceededError{Size: r.ContentLength, Max: h.maxBytes})
			return
		}
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid multipart form"))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to remove multipart temp files", slog.Any("error", err))
		}
	}()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError(uploadField, domain.MsgRequired))
		return
	}
	defer file.Close()

	a, err := h.svc.UploadAttachment(r.Context(), ports.NewAttachment{
		TaskID:      taskID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToAttachmentResponse(a))
}

// GetAttachment handles GET /api/v1/attachments/{id}.
func (h *AttachmentHandler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.svc.GetAttachment(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAttachmentResponse(a))
}

// DownloadAttachment handles GET /api/v1/attachments/{id}/content.
func (h *AttachmentHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	a, body, err := h.svc.OpenAttachment(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer body.Close()

	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(a.SizeBytes, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename}))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	// Stream past the timeout middleware's buffer.
	if err := http.NewResponseController(w).Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "attachment download not started",
			slog.Int64("attachment_id", id),
			slog.Any("error", err),
		)
		return
	}

	if _, err := io.Copy(w, body); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "attachment download interrupted",
			slog.Int64("attachment_id", id),
			slog.Any("error", err),
		)
	}
}

// DeleteAttachment handles DELETE /api/v1/attachments/{id}.
func (h *AttachmentHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteAttachment(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
