package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-tracker/internal/domain/tag"
)

// GetTag implements ports.TagRepository.
func (s *Store) GetTag(ctx context.Context, id int64) (*tag.Tag, error) {
	var rec tagRecord
	if err := s.conn(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err, notFound("tag", id))
	}
	out := rec.toDomain()
	return &out, nil
}

// ListTags implements ports.TagRepository. Tags are ordered by name.
func (s *Store) ListTags(ctx context.Context) ([]tag.Tag, error) {
	var recs []tagRecord
	if err := s.conn(ctx).Order("name").Find(&recs).Error; err != nil {
		return nil, translate(err, nil)
	}
	return tagsToDomain(recs), nil
}

// FindTags implements ports.TagRepository.
func (s *Store) FindTags(ctx context.Context, ids []int64) ([]tag.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recs []tagRecord
	if err := s.conn(ctx).Where("id IN ?", ids).Order("id").Find(&recs).Error; err != nil {
		return nil, translate(err, nil)
	}
	return tagsToDomain(recs), nil
}

// CreateTag implements ports.TagRepository.
func (s *Store) CreateTag(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	rec := tagToRecord(t)
	rec.ID = 0
	if err := s.conn(ctx).Create(&rec).Error; err != nil {
		return nil, translate(err, nil)
	}
	out := rec.toDomain()
	return &out, nil
}

// UpdateTag implements ports.TagRepository.
func (s *Store) UpdateTag(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	rec := tagToRecord(t)
	res := s.conn(ctx).Model(&tagRecord{ID: rec.ID}).Select("name", "updated_at").Updates(&rec)
	if err := requireAffected(res, notFound("tag", rec.ID)); err != nil {
		return nil, err
	}
	return s.GetTag(ctx, rec.ID)
}

// DeleteTag implements ports.TagRepository. Links to tasks go with it.
func (s *Store) DeleteTag(ctx context.Context, id int64) error {
	return s.tx(ctx, func(db *gorm.DB) error {
		if err := requireAffected(db.Delete(&tagRecord{}, id), notFound("tag", id)); err != nil {
			return err
		}
		if err := db.Where("tag_id = ?", id).Delete(&taskTagRecord{}).Error; err != nil {
			return translate(err, nil)
		}
		return nil
	})
}

func tagsToDomain(recs []tagRecord) []tag.Tag {
	out := make([]tag.Tag, len(recs))
	for i, r := range recs {
		out[i] = r.toDomain()
	}
	return out
}
