package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/domain/attachment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/comment"
	"github.com/jsamuelsen11/task-tracker/internal/domain/timelog"
)

// CreateTimeLog implements ports.TimeLogRepository.
func (s *Store) CreateTimeLog(ctx context.Context, l *timelog.TimeLog) (*timelog.TimeLog, error) {
	rec := timeLogToRecord(l)
	rec.ID = 0
	if err := s.conn(ctx).Create(&rec).Error; err != nil {
		return nil, translate(err, nil)
	}
	out, err := rec.toDomain()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTimeLog implements ports.TimeLogRepository.
func (s *Store) DeleteTimeLog(ctx context.Context, id int64) error {
	return requireAffected(s.conn(ctx).Delete(&timeLogRecord{}, id), notFound("time log", id))
}

// ListTimeLogs implements ports.TimeLogRepository.
func (s *Store) ListTimeLogs(ctx context.Context, taskID int64) ([]timelog.TimeLog, error) {
	var recs []timeLogRecord
	err := s.conn(ctx).Where("task_id = ?", taskID).Order("logged_at").Order("id").Find(&recs).Error
	if err != nil {
		return nil, translate(err, nil)
	}

	logs := make([]timelog.TimeLog, 0, len(recs))
	for _, r := range recs {
		l, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}

// CreateComment implements ports.CommentRepository.
func (s *Store) CreateComment(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	rec := commentToRecord(c)
	rec.ID = 0
	if err := s.conn(ctx).Create(&rec).Error; err != nil {
		return nil, translate(err, nil)
	}
	out := rec.toDomain()
	return &out, nil
}

// DeleteComment implements ports.CommentRepository.
func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	return requireAffected(s.conn(ctx).Delete(&commentRecord{}, id), notFound("comment", id))
}

// ListComments implements ports.CommentRepository.
func (s *Store) ListComments(ctx context.Context, taskID int64) ([]comment.Comment, error) {
	var recs []commentRecord
	err := s.conn(ctx).Where("task_id = ?", taskID).Order("created_at").Order("id").Find(&recs).Error
	if err != nil {
		return nil, translate(err, nil)
	}

	comments := make([]comment.Comment, len(recs))
	for i, r := range recs {
		comments[i] = r.toDomain()
	}
	return comments, nil
}

// GetAttachment implements ports.AttachmentRepository.
func (s *Store) GetAttachment(ctx context.Context, id int64) (*attachment.Attachment, error) {
	var rec attachmentRecord
	if err := s.conn(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err, notFound("attachment", id))
	}
	out := rec.toDomain()
	return &out, nil
}

// ListAttachments implements ports.AttachmentRepository.
func (s *Store) ListAttachments(ctx context.Context, taskID int64) ([]attachment.Attachment, error) {
	var recs []attachmentRecord
	err := s.conn(ctx).Where("task_id = ?", taskID).Order("uploaded_at").Order("id").Find(&recs).Error
	if err != nil {
		return nil, translate(err, nil)
	}

	out := make([]attachment.Attachment, len(recs))
	for i, r := range recs {
		out[i] = r.toDomain()
	}
	return out, nil
}

// CountByTask implements ports.AttachmentRepository.
func (s *Store) CountByTask(ctx context.Context, taskID int64) (int, error) {
	var n int64
	if err := s.conn(ctx).Model(&attachmentRecord{}).Where("task_id = ?", taskID).Count(&n).Error; err != nil {
		return 0, translate(err, nil)
	}
	return int(n), nil
}

// CreateAttachment implements ports.AttachmentRepository. The per-task cap
// is counted again inside the insert's transaction.
func (s *Store) CreateAttachment(ctx context.Context, a *attachment.Attachment) (*attachment.Attachment, error) {
	rec := attachmentToRecord(a)
	rec.ID = 0

	err := s.tx(ctx, func(db *gorm.DB) error {
		var n int64
		if err := db.Model(&attachmentRecord{}).Where("task_id = ?", rec.TaskID).Count(&n).Error; err != nil {
			return translate(err, nil)
		}
		if err := attachment.CheckCapacity(rec.TaskID, int(n)); err != nil {
			return err
		}
		return translate(db.Create(&rec).Error, nil)
	})
	if err != nil {
		return nil, err
	}
	out := rec.toDomain()
	return &out, nil
}

// DeleteAttachment implements ports.AttachmentRepository.
func (s *Store) DeleteAttachment(ctx context.Context, id int64) error {
	return requireAffected(s.conn(ctx).Delete(&attachmentRecord{}, id), notFound("attachment", id))
}

// AppendActivity implements ports.ActivityRepository.
func (s *Store) AppendActivity(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
	rec := activityToRecord(a)
	rec.ID = 0
	if err := s.conn(ctx).Create(&rec).Error; err != nil {
		return nil, translate(err, nil)
	}
	out := rec.toDomain()
	return &out, nil
}

// DeleteActivity implements ports.ActivityRepository.
func (s *Store) DeleteActivity(ctx context.Context, id int64) error {
	return requireAffected(s.conn(ctx).Delete(&activityRecord{}, id), notFound("activity", id))
}

// ListActivity implements ports.ActivityRepository.
func (s *Store) ListActivity(ctx context.Context, taskID int64) ([]activity.Activity, error) {
	var recs []activityRecord
	err := s.conn(ctx).Where("task_id = ?", taskID).Order("created_at").Order("id").Find(&recs).Error
	if err != nil {
		return nil, translate(err, nil)
	}

	out := make([]activity.Activity, len(recs))
	for i, r := range recs {
		out[i] = r.toDomain()
	}
	return out, nil
}
