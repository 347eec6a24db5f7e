package task

// CanEdit reports whether userID may modify t: the creator, the current
// assignee, or any admin.
func CanEdit(userID int64, t *Task, isAdmin bool) bool {
	if isAdmin || userID == t.CreatorID {
		return true
	}
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// CanDelete reports whether userID may delete or archive t.
func CanDelete(userID int64, t *Task, isAdmin bool) bool {
	return isAdmin || userID == t.CreatorID
}

// CanChangeAssignee reports whether userID may assign or unassign t.
func CanChangeAssignee(userID int64, t *Task, isAdmin bool) bool {
	return isAdmin || userID == t.CreatorID
}
