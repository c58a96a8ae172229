// Package event holds scheduled calendar events. An event is a plain
// record; the lifecycle machinery (notices, completion) lives entirely on
// the reminder that gets linked to it at creation time.
package event

import (
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/user"
)

type ID int64

type ScheduledEvent struct {
	ID        ID
	UserID    user.ID
	Type      string
	Title     string
	StartsAt  dt.Naive
	CreatedAt dt.Naive
}

func (ev *ScheduledEvent) Validate() error {
	if ev.Title == "" {
		return e.NewInvalidStateError("event title must not be empty")
	}
	if ev.StartsAt.IsZero() {
		return e.NewInvalidStateError("event start instant must be set")
	}
	return nil
}
