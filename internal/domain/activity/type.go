package activity

// Type classifies an activity record.
type Type string

const (
	TypeTaskCreated       Type = "task_created"
	TypeTaskUpdated       Type = "task_updated"
	TypeTaskDeleted       Type = "task_deleted"
	TypeTaskAssigned      Type = "task_assigned"
	TypeTaskUnassigned    Type = "task_unassigned"
	TypeTaskStatusChanged Type = "task_status_changed"
	TypeTaskArchived      Type = "task_archived"
	TypeTaskUnarchived    Type = "task_unarchived"
	TypeCommentAdded      Type = "comment_added"
	TypeCommentUpdated    Type = "comment_updated"
	TypeCommentDeleted    Type = "comment_deleted"
	TypeAttachmentAdded   Type = "attachment_added"
	TypeAttachmentDeleted Type = "attachment_deleted"
	TypeTimeLogAdded      Type = "time_log_added"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeTaskCreated, TypeTaskUpdated, TypeTaskDeleted,
		TypeTaskAssigned, TypeTaskUnassigned, TypeTaskStatusChanged,
		TypeTaskArchived, TypeTaskUnarchived,
		TypeCommentAdded, TypeCommentUpdated, TypeCommentDeleted,
		TypeAttachmentAdded, TypeAttachmentDeleted, TypeTimeLogAdded:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
