package response

import (
	"time"

	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/reminder"
)

type Reminder struct {
	ID                int64      `json:"id"`
	UserID            string     `json:"user_id"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	DueAt             time.Time  `json:"due_at"`
	Priority          string     `json:"priority"`
	Tags              []string   `json:"tags"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	LastReminded      *time.Time `json:"last_reminded"`
	ImmediateNotified bool       `json:"immediate_notified"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = int64(dr.ID)
	r.UserID = string(dr.UserID)
	r.Title = dr.Title
	if dr.Description.IsPresent {
		description := dr.Description.Value
		r.Description = &description
	}
	r.DueAt = asTime(dr.DueAt)
	r.Priority = dr.Priority.String()
	r.Tags = dr.Tags
	if r.Tags == nil {
		r.Tags = []string{}
	}
	r.Status = dr.Status.String()
	r.CreatedAt = asTime(dr.CreatedAt)
	r.UpdatedAt = asTime(dr.UpdatedAt)
	if dr.CompletedAt.IsPresent {
		completedAt := asTime(dr.CompletedAt.Value)
		r.CompletedAt = &completedAt
	}
	if dr.LastReminded.IsPresent {
		lastReminded := asTime(dr.LastReminded.Value)
		r.LastReminded = &lastReminded
	}
	r.ImmediateNotified = dr.ImmediateNotified
}

func asTime(n dt.Naive) time.Time {
	return n.AsUTC().Std()
}
