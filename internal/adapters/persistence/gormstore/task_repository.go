package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
)

// GetTask implements ports.TaskRepository.
func (s *Store) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	db := s.conn(ctx)

	var rec taskRecord
	if err := db.First(&rec, id).Error; err != nil {
		return nil, translate(err, taskNotFound(id))
	}

	tags, err := loadTagIDs(db, []int64{id})
	if err != nil {
		return nil, err
	}
	return rec.toDomain(tags[id])
}

// ListTasks implements ports.TaskRepository. A zero Limit returns every
// match.
func (s *Store) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	db := s.conn(ctx)

	q := db.Model(&taskRecord{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.CreatorID != 0 {
		q = q.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.AssigneeID != 0 {
		q = q.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.TagID != 0 {
		q = q.Where("id IN (?)", db.Model(&taskTagRecord{}).Select("task_id").Where("tag_id = ?", filter.TagID))
	}
	if !filter.IncludeArchived {
		q = q.Where("archived_at IS NULL")
	}
	q = q.Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var recs []taskRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, translate(err, nil)
	}

	ids := make([]int64, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	tags, err := loadTagIDs(db, ids)
	if err != nil {
		return nil, err
	}

	tasks := make([]task.Task, 0, len(recs))
	for _, r := range recs {
		t, err := r.toDomain(tags[r.ID])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

// CreateTask implements ports.TaskRepository.
func (s *Store) CreateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	rec := taskToRecord(t)
	rec.ID = 0
	rec.Version = 1

	err := s.tx(ctx, func(db *gorm.DB) error {
		if err := db.Create(&rec).Error; err != nil {
			return translate(err, nil)
		}
		return replaceTaskTags(db, rec.ID, t.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	return rec.toDomain(cloneIDs(t.TagIDs))
}

// UpdateTask implements ports.TaskRepository. The write only lands when
// t.Version matches the stored row; a stale version is a conflict.
func (s *Store) UpdateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	rec := taskToRecord(t)
	rec.Version = t.Version + 1

	err := s.tx(ctx, func(db *gorm.DB) error {
		// Select("*") writes zero values too, so clearing the assignee or a
		// deadline sticks.
		res := db.Model(&taskRecord{ID: rec.ID}).
			Where("version = ?", t.Version).
			Select("*").Omit("id", "created_at").
			Updates(&rec)
		if res.Error != nil {
			return translate(res.Error, taskNotFound(rec.ID))
		}
		if res.RowsAffected == 0 {
			return staleTask(db, rec.ID, t.Version)
		}
		return replaceTaskTags(db, rec.ID, t.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTask(ctx, rec.ID)
}

// DeleteTask implements ports.TaskRepository. Activity rows survive.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	return s.tx(ctx, func(db *gorm.DB) error {
		res := db.Delete(&taskRecord{}, id)
		if err := requireAffected(res, taskNotFound(id)); err != nil {
			return err
		}
		for _, model := range []any{&taskTagRecord{}, &commentRecord{}, &timeLogRecord{}, &attachmentRecord{}} {
			if err := db.Where("task_id = ?", id).Delete(model).Error; err != nil {
				return translate(err, nil)
			}
		}
		return nil
	})
}

// staleTask explains why a versioned update touched nothing.
func staleTask(db *gorm.DB, id, version int64) error {
	var n int64
	if err := db.Model(&taskRecord{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return translate(err, nil)
	}
	if n == 0 {
		return taskNotFound(id)()
	}
	return fmt.Errorf("task %d changed since version %d: %w", id, version, domain.ErrConflict)
}

func replaceTaskTags(db *gorm.DB, taskID int64, tagIDs []int64) error {
	if err := db.Where("task_id = ?", taskID).Delete(&taskTagRecord{}).Error; err != nil {
		return translate(err, nil)
	}
	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]taskTagRecord, 0, len(tagIDs))
	seen := make(map[int64]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, taskTagRecord{TaskID: taskID, TagID: id})
	}
	if err := db.Create(&links).Error; err != nil {
		return translate(err, nil)
	}
	return nil
}

// loadTagIDs fetches tag links for many tasks in one query.
func loadTagIDs(db *gorm.DB, taskIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return out, nil
	}

	var links []taskTagRecord
	err := db.Where("task_id IN ?", taskIDs).Order("task_id").Order("tag_id").Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("loading task tags: %w", translate(err, nil))
	}
	for _, l := range links {
		out[l.TaskID] = append(out[l.TaskID], l.TagID)
	}
	return out, nil
}

func cloneIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	return append([]int64(nil), ids...)
}
