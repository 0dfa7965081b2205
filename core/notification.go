package core

import "context"

// Notifier pushes "schedule updated" notices to subscribed devices.
// Sends are fire-and-forget: failures are logged by callers, never retried.
type Notifier interface {
	SendToGroup(ctx context.Context, groupID int64) error
	SendToTeacher(ctx context.Context, teacherID int64) error
}
