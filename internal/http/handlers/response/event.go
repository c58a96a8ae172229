package response

import (
	"time"

	"assistant/internal/core/domain/event"
)

type ScheduledEvent struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"starts_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *ScheduledEvent) FromDomainType(de event.ScheduledEvent) {
	e.ID = int64(de.ID)
	e.UserID = string(de.UserID)
	e.Type = de.Type
	e.Title = de.Title
	e.StartsAt = asTime(de.StartsAt)
	e.CreatedAt = asTime(de.CreatedAt)
}
