package task

import "github.com/jsamuelsen11/task-tracker/internal/domain"

// CanTransition reports whether the lifecycle allows moving from one status
// to another. Staying in the same status is never a transition.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusCreated:
		return to == StatusInProgress || to == StatusCancelled
	case StatusInProgress:
		return to == StatusPaused || to == StatusCompleted || to == StatusCancelled
	case StatusPaused:
		return to == StatusInProgress || to == StatusCancelled
	default:
		return false
	}
}

// AllowedTransitions returns the statuses reachable from s in one step.
// Terminal and unknown statuses yield an empty slice.
func AllowedTransitions(from Status) []Status {
	allowed := make([]Status, 0, 3)
	for _, to := range Statuses() {
		if CanTransition(from, to) {
			allowed = append(allowed, to)
		}
	}
	return allowed
}

// ValidateTransition returns a *domain.InvalidTaskStatusTransitionError when
// t may not move to the target status.
func ValidateTransition(t *Task, to Status) error {
	if CanTransition(t.Status, to) {
		return nil
	}
	return &domain.InvalidTaskStatusTransitionError{
		TaskID: t.ID,
		From:   t.Status.String(),
		To:     to.String(),
	}
}
