package task

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

func TestFilter_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		filter     Filter
		wantFields []string
	}{
		{name: "zero value", filter: Filter{}},
		{name: "fully populated", filter: Filter{Status: StatusPaused, CreatorID: 1, AssigneeID: 2, TagID: 3, Limit: MaxLimit, Offset: 10}},
		{name: "unknown status", filter: Filter{Status: "done"}, wantFields: []string{"status"}},
		{name: "negative ids", filter: Filter{CreatorID: -1, AssigneeID: -1, TagID: -1}, wantFields: []string{"creator_id", "assignee_id", "tag_id"}},
		{name: "limit too large", filter: Filter{Limit: MaxLimit + 1}, wantFields: []string{"limit"}},
		{name: "negative paging", filter: Filter{Limit: -1, Offset: -1}, wantFields: []string{"limit", "offset"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.filter.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want keys %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q", f)
				}
			}
		})
	}
}

func TestFilter_EffectiveLimit(t *testing.T) {
	t.Parallel()

	if got := (Filter{}).EffectiveLimit(); got != DefaultLimit {
		t.Errorf("EffectiveLimit() = %d, want %d", got, DefaultLimit)
	}
	if got := (Filter{Limit: 5}).EffectiveLimit(); got != 5 {
		t.Errorf("EffectiveLimit() = %d, want 5", got)
	}
}
