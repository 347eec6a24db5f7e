package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/task-tracker/internal/app/context"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/domain/attachment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time check that AttachmentService implements ports.AttachmentService.
var _ ports.AttachmentService = (*AttachmentService)(nil)

// AttachmentDeps groups the ports AttachmentService depends on. Publisher
// and Metrics may be nil.
type AttachmentDeps struct {
	Tasks       ports.TaskRepository
	Attachments ports.AttachmentRepository
	Blobs       ports.BlobStore
	Activities  ports.ActivityRepository
	Publisher   ports.ActivityPublisher
	Metrics     ports.DomainMetrics
}

// AttachmentService implements ports.AttachmentService. Bytes go to the
// blob store before the metadata row is written, and are removed again if
// that write fails.
type AttachmentService struct {
	tasks       ports.TaskRepository
	attachments ports.AttachmentRepository
	blobs       ports.BlobStore
	recorder    *activityRecorder
	metrics     ports.DomainMetrics
	logger      *slog.Logger
	now         func() time.Time
}

// NewAttachmentService creates an AttachmentService. A nil logger discards
// output.
func NewAttachmentService(deps AttachmentDeps, logger *slog.Logger) *AttachmentService {
	logger = orDiscard(logger)
	return &AttachmentService{
		tasks:       deps.Tasks,
		attachments: deps.Attachments,
		blobs:       deps.Blobs,
		recorder:    newActivityRecorder(deps.Activities, deps.Publisher, logger),
		metrics:     orNopMetrics(deps.Metrics),
		logger:      logger,
		now:         utcNow,
	}
}

// UploadAttachment admits the file against the task's capacity and the
// file rules, stores the bytes and records the metadata.
func (s *AttachmentService) UploadAttachment(ctx context.Context, in ports.NewAttachment) (*attachment.Attachment, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "uploading attachment",
		slog.Int64("task_id", in.TaskID),
		slog.String("filename", in.Filename),
		slog.Int64("size_bytes", in.Size),
	)

	rc := appctx.FromContext(ctx)
	t, err := loadTask(rc, s.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}
	if !task.CanEdit(actor.UserID, t, actor.IsAdmin) {
		return nil, &domain.UnauthorizedTaskEditError{TaskID: t.ID, UserID: actor.UserID}
	}
	if t.IsArchived() {
		return nil, &domain.TaskAlreadyArchivedError{TaskID: t.ID}
	}

	count, err := s.attachments.CountByTask(ctx, in.TaskID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count attachments",
			slog.String("operation", "UploadAttachment"),
			slog.Int64("task_id", in.TaskID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("counting attachments: %w", err)
	}

	a, err := attachment.Admit(attachment.Upload{
		TaskID:      in.TaskID,
		UploaderID:  actor.UserID,
		Filename:    in.Filename,
		ContentType: in.ContentType,
		SizeBytes:   in.Size,
	}, count, s.now())
	if err != nil {
		return nil, err
	}

	blob := &storeBlobAction{
		store: s.blobs,
		obj: ports.BlobObject{
			Prefix:      fmt.Sprintf("tasks/%d", a.TaskID),
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        a.SizeBytes,
		},
		body: in.Body,
	}
	insert := newAttachmentInsert(s.attachments, a, blob)
	batch := s.recorder.batch()
	if err := rc.AddAction(blob); err != nil {
		return nil, err
	}
	if err := rc.AddAction(insert); err != nil {
		return nil, err
	}
	if err := batch.stage(rc, func() activity.Activity { return activity.AttachmentAdded(insert.created) }); err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to upload attachment",
			slog.String("operation", "UploadAttachment"),
			slog.Int64("task_id", in.TaskID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("uploading attachment: %w", err)
	}
	batch.publish(rc)
	s.metrics.AttachmentUploaded(ctx, insert.created.SizeBytes)

	return insert.created, nil
}

// GetAttachment returns attachment metadata by ID.
func (s *AttachmentService) GetAttachment(ctx context.Context, id int64) (*attachment.Attachment, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "fetching attachment", slog.Int64("attachment_id", id))

	a, err := s.attachments.GetAttachment(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch attachment",
			slog.String("operation", "GetAttachment"),
			slog.Int64("attachment_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return a, nil
}

// ListAttachments returns the metadata of every file on the task.
func (s *AttachmentService) ListAttachments(ctx context.Context, taskID int64) ([]attachment.Attachment, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "listing attachments", slog.Int64("task_id", taskID))

	if _, err := loadTask(appctx.FromContext(ctx), s.tasks, taskID); err != nil {
		return nil, err
	}

	atts, err := s.attachments.ListAttachments(ctx, taskID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list attachments",
			slog.String("operation", "ListAttachments"),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return atts, nil
}

// OpenAttachment returns the metadata and a reader for the stored bytes.
func (s *AttachmentService) OpenAttachment(ctx context.Context, id int64) (*attachment.Attachment, io.ReadCloser, error) {
	a, err := s.GetAttachment(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.blobs.Open(ctx, a.StoragePath)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to open attachment content",
			slog.String("operation", "OpenAttachment"),
			slog.Int64("attachment_id", id),
			slog.Any("error", err),
		)
		return nil, nil, fmt.Errorf("opening attachment %d: %w", id, err)
	}
	return a, body, nil
}

// DeleteAttachment removes the metadata, then the bytes.
func (s *AttachmentService) DeleteAttachment(ctx context.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "deleting attachment", slog.Int64("attachment_id", id))

	a, err := s.attachments.GetAttachment(ctx, id)
	if err != nil {
		return err
	}
	rc := appctx.FromContext(ctx)
	t, err := loadTask(rc, s.tasks, a.TaskID)
	if err != nil {
		return err
	}
	if !a.CanRemove(actor.UserID, task.CanDelete(actor.UserID, t, actor.IsAdmin)) {
		return &domain.PermissionDeniedError{Action: "delete", Resource: fmt.Sprintf("attachment %d", id)}
	}
	if t.IsArchived() {
		return &domain.TaskAlreadyArchivedError{TaskID: t.ID}
	}

	now := s.now()
	batch := s.recorder.batch()
	if err := batch.stage(rc, func() activity.Activity {
		return activity.AttachmentDeleted(a, actor.UserID, now)
	}); err != nil {
		return err
	}
	if err := rc.AddAction(&insertAction[struct{}]{
		desc: fmt.Sprintf("delete attachment %d", id),
		insert: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.attachments.DeleteAttachment(ctx, id)
		},
		remove: func(context.Context, struct{}) error { return errIrreversible },
	}); err != nil {
		return err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete attachment",
			slog.String("operation", "DeleteAttachment"),
			slog.Int64("attachment_id", id),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting attachment: %w", err)
	}
	batch.publish(rc)

	if err := rc.Execute(&deleteBlobAction{store: s.blobs, path: a.StoragePath}); err != nil {
		s.logger.WarnContext(ctx, "failed to delete attachment blob",
			slog.String("operation", "DeleteAttachment"),
			slog.Int64("attachment_id", id),
			slog.Any("error", err),
		)
	}
	return nil
}
