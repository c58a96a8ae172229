package reminder

import (
	"context"

	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/user"
)

// NotificationEvent describes a tier that fired and was committed. Events
// are published after the store transition, fire-and-forget; they never
// participate in the at-most-once guarantees.
type NotificationEvent struct {
	ReminderID ID
	UserID     user.ID
	Tier       Tier
	Title      string
	FiredAt    dt.UTC
}

type EventPublisher interface {
	PublishNotification(ctx context.Context, event NotificationEvent) error
}
