package task

// Status is a task's position in its lifecycle.
type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every lifecycle state in declaration order.
func Statuses() []Status {
	return []Status{StatusCreated, StatusInProgress, StatusPaused, StatusCompleted, StatusCancelled}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusInProgress, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
