package timelog

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

func TestNewDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds int64
		wantErr bool
	}{
		{name: "zero", seconds: 0},
		{name: "one hour", seconds: 3600},
		{name: "ceiling", seconds: MaxDurationSeconds},
		{name: "negative", seconds: -1, wantErr: true},
		{name: "above ceiling", seconds: MaxDurationSeconds + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := NewDuration(tt.seconds)
			if tt.wantErr {
				var derr *domain.InvalidDurationError
				if !errors.As(err, &derr) {
					t.Fatalf("NewDuration(%d) error = %v, want *InvalidDurationError", tt.seconds, err)
				}
				if derr.Seconds != tt.seconds {
					t.Errorf("error Seconds = %d, want %d", derr.Seconds, tt.seconds)
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("error does not wrap ErrValidation")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDuration(%d) unexpected error: %v", tt.seconds, err)
			}
			if d.Seconds() != tt.seconds {
				t.Errorf("Seconds() = %d, want %d", d.Seconds(), tt.seconds)
			}
		})
	}
}

func TestDuration_Conversions(t *testing.T) {
	t.Parallel()

	d, _ := NewDuration(5400)
	if d.Minutes() != 90 {
		t.Errorf("Minutes() = %v, want 90", d.Minutes())
	}
	if d.Hours() != 1.5 {
		t.Errorf("Hours() = %v, want 1.5", d.Hours())
	}
}

func TestDuration_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{150, "2.5m"},
		{5400, "1.50h"},
	}

	for _, tt := range tests {
		d, _ := NewDuration(tt.seconds)
		if got := d.String(); got != tt.want {
			t.Errorf("Duration(%d).String() = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestDuration_Add(t *testing.T) {
	t.Parallel()

	a, _ := NewDuration(MaxDurationSeconds - 10)
	b, _ := NewDuration(10)
	sum, err := a.Add(b)
	if err != nil || sum.Seconds() != MaxDurationSeconds {
		t.Fatalf("Add() = %d, %v; want %d, nil", sum.Seconds(), err, MaxDurationSeconds)
	}

	one, _ := NewDuration(1)
	if _, err := sum.Add(one); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Add() past ceiling error = %v, want ErrValidation", err)
	}
}

func TestNew_And_TotalSeconds(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	d1, _ := NewDuration(MaxDurationSeconds)
	d2, _ := NewDuration(60)

	l1, err := New(1, 2, d1, "  long day  ", at)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if l1.Comment != "long day" {
		t.Errorf("Comment = %q, want trimmed", l1.Comment)
	}
	l2, _ := New(1, 2, d2, "", at)

	if got := TotalSeconds([]TimeLog{*l1, *l2}); got != MaxDurationSeconds+60 {
		t.Errorf("TotalSeconds() = %d, want %d", got, MaxDurationSeconds+60)
	}
	if got := TotalSeconds(nil); got != 0 {
		t.Errorf("TotalSeconds(nil) = %d, want 0", got)
	}

	if _, err := New(0, 0, d2, "", at); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("New(0, 0) error = %v, want ErrValidation", err)
	}
}
