package tag

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

var testNow = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "backend", want: "backend"},
		{name: "trimmed", input: "  urgent ", want: "urgent"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "too long", input: strings.Repeat("x", MaxNameLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tg, err := New(tt.input, testNow)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("New(%q) error = %v, want ErrValidation", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) unexpected error: %v", tt.input, err)
			}
			if tg.Name != tt.want {
				t.Errorf("Name = %q, want %q", tg.Name, tt.want)
			}
		})
	}
}

func TestTag_Rename(t *testing.T) {
	t.Parallel()

	tg, _ := New("old", testNow)
	later := testNow.Add(time.Minute)

	if err := tg.Rename("", later); err == nil {
		t.Fatal("Rename(\"\") error = nil")
	}
	if tg.Name != "old" || !tg.UpdatedAt.Equal(testNow) {
		t.Errorf("failed Rename mutated tag: %+v", tg)
	}
	if err := tg.Rename("new", later); err != nil {
		t.Fatalf("Rename() error: %v", err)
	}
	if tg.Name != "new" || !tg.UpdatedAt.Equal(later) {
		t.Errorf("tag = %+v", tg)
	}
}
