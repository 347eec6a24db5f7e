package gormstore

import (
	"context"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
)

// GetUser implements ports.UserRepository.
func (s *Store) GetUser(ctx context.Context, id int64) (*user.User, error) {
	var rec userRecord
	if err := s.conn(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err, notFound("user", id))
	}
	return rec.toDomain()
}

// GetUserByUsername implements ports.UserRepository.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	var rec userRecord
	err := s.conn(ctx).Where("username = ?", username).First(&rec).Error
	if err != nil {
		return nil, translate(err, func() error {
			return &domain.NotFoundError{Resource: "user"}
		})
	}
	return rec.toDomain()
}

// ListUsers implements ports.UserRepository.
func (s *Store) ListUsers(ctx context.Context, limit, offset int) ([]user.User, error) {
	q := s.conn(ctx).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var recs []userRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, translate(err, nil)
	}

	users := make([]user.User, 0, len(recs))
	for _, r := range recs {
		u, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

// CreateUser implements ports.UserRepository.
func (s *Store) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	rec := userToRecord(u)
	rec.ID = 0
	if err := s.conn(ctx).Create(&rec).Error; err != nil {
		return nil, translate(err, nil)
	}
	return rec.toDomain()
}

// UpdateUser implements ports.UserRepository.
func (s *Store) UpdateUser(ctx context.Context, u *user.User) (*user.User, error) {
	rec := userToRecord(u)
	res := s.conn(ctx).Model(&userRecord{ID: rec.ID}).Select("*").Omit("id", "created_at").Updates(&rec)
	if err := requireAffected(res, notFound("user", rec.ID)); err != nil {
		return nil, err
	}
	return s.GetUser(ctx, rec.ID)
}
