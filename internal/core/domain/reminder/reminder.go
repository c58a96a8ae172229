package reminder

import (
	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/user"
)

type ID int64

type Reminder struct {
	ID                ID
	UserID            user.ID
	Title             string
	Description       c.Optional[string]
	DueAt             dt.Naive
	Priority          Priority
	Tags              []string
	Status            Status
	CreatedAt         dt.Naive
	UpdatedAt         dt.Naive
	CompletedAt       c.Optional[dt.Naive]
	LastReminded      c.Optional[dt.Naive]
	ImmediateNotified bool
}

func (r *Reminder) Validate() error {
	if r.Title == "" {
		return e.NewInvalidStateError("reminder title must not be empty")
	}
	if r.DueAt.IsZero() {
		return e.NewInvalidStateError("reminder due instant must be set")
	}
	if r.Status == StatusUnknown {
		return e.NewInvalidStateError("reminder status is not valid")
	}
	if r.Priority == PriorityUnknown {
		return e.NewInvalidStateError("reminder priority is not valid")
	}
	if r.CompletedAt.IsPresent && r.Status != StatusCompleted {
		return e.NewInvalidStateError("CompletedAt must only be set for completed reminders")
	}
	if r.Status == StatusCompleted && !r.CompletedAt.IsPresent {
		return e.NewInvalidStateError("CompletedAt must be set for completed reminders")
	}
	return nil
}
