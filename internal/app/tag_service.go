package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/tag"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// Compile-time check that TagService implements ports.TagService.
var _ ports.TagService = (*TagService)(nil)

// TagService implements ports.TagService.
type TagService struct {
	tags   ports.TagRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewTagService creates a TagService. A nil logger discards output.
func NewTagService(tags ports.TagRepository, logger *slog.Logger) *TagService {
	return &TagService{tags: tags, logger: orDiscard(logger), now: utcNow}
}

// CreateTag adds a tag to the shared vocabulary.
func (s *TagService) CreateTag(ctx context.Context, name string) (*tag.Tag, error) {
	if err := requireAdmin(ctx, "create", "tag"); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "creating tag", slog.String("name", name))

	t, err := tag.New(name, s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.tags.CreateTag(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create tag",
			slog.String("operation", "CreateTag"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// ListTags returns every tag ordered by name.
func (s *TagService) ListTags(ctx context.Context) ([]tag.Tag, error) {
	if _, err := actorFrom(ctx); err != nil {
		return nil, err
	}

	tags, err := s.tags.ListTags(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tags",
			slog.String("operation", "ListTags"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tags, nil
}

// RenameTag replaces a tag's name.
func (s *TagService) RenameTag(ctx context.Context, id int64, name string) (*tag.Tag, error) {
	if err := requireAdmin(ctx, "rename", "tag"); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "renaming tag", slog.Int64("tag_id", id))

	t, err := s.tags.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.Rename(name, s.now()); err != nil {
		return nil, err
	}

	updated, err := s.tags.UpdateTag(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to rename tag",
			slog.String("operation", "RenameTag"),
			slog.Int64("tag_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteTag removes the tag and its links to tasks.
func (s *TagService) DeleteTag(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx, "delete", "tag"); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "deleting tag", slog.Int64("tag_id", id))

	if err := s.tags.DeleteTag(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete tag",
			slog.String("operation", "DeleteTag"),
			slog.Int64("tag_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func requireAdmin(ctx context.Context, action, resource string) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	if !actor.IsAdmin {
		return &domain.PermissionDeniedError{Action: action, Resource: resource}
	}
	return nil
}
