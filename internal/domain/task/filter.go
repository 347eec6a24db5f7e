package task

import (
	"fmt"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// Listing bounds.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Filter narrows a task listing. Zero-valued fields match everything.
type Filter struct {
	Status          Status
	CreatorID       int64
	AssigneeID      int64
	TagID           int64
	IncludeArchived bool
	Limit           int
	Offset          int
}

// Validate checks the filter fields and returns a *domain.ValidationError
// for the ones that are out of range.
func (f Filter) Validate() error {
	fields := make(map[string]string)

	if f.Status != "" && !f.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", f.Status)
	}
	if f.CreatorID < 0 {
		fields["creator_id"] = "must not be negative"
	}
	if f.AssigneeID < 0 {
		fields["assignee_id"] = "must not be negative"
	}
	if f.TagID < 0 {
		fields["tag_id"] = "must not be negative"
	}
	if f.Limit < 0 || f.Limit > MaxLimit {
		fields["limit"] = fmt.Sprintf("must be 0-%d, got %d", MaxLimit, f.Limit)
	}
	if f.Offset < 0 {
		fields["offset"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// EffectiveLimit returns Limit, or DefaultLimit when unset.
func (f Filter) EffectiveLimit() int {
	if f.Limit == 0 {
		return DefaultLimit
	}
	return f.Limit
}
