package reminder

import (
	"context"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/user"
)

type CreateInput struct {
	UserID      user.ID
	Title       string
	Description c.Optional[string]
	DueAt       dt.Naive
	Priority    Priority
	Tags        []string
	CreatedAt   dt.Naive
}

// ReadOptions is a conjunction of equality and range filters over the
// reminder collection. Due-instant bounds follow the scan queries of the
// notification tiers: DueAfter is strict, DueAtOrBefore is inclusive.
type ReadOptions struct {
	UserIDEquals            c.Optional[user.ID]
	StatusEquals            c.Optional[Status]
	DueAfter                c.Optional[dt.Naive]
	DueAtOrBefore           c.Optional[dt.Naive]
	LastRemindedIsNull      bool
	ImmediateNotifiedEquals c.Optional[bool]
	OrderBy                 OrderBy
	Limit                   c.Optional[uint]
}

type SetStatusInput struct {
	ID     ID
	Status Status
	At     dt.Naive
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	GetByID(ctx context.Context, id ID) (Reminder, error)
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)

	// SetStatus updates the status and keeps the CompletedAt invariant:
	// the transition to completed stamps CompletedAt, any other transition
	// clears it. Returns ErrReminderDoesNotExist for an unknown id.
	SetStatus(ctx context.Context, input SetStatusInput) (Reminder, error)

	// MarkReminded sets LastReminded if and only if it is still unset.
	// The condition is evaluated atomically by the store so the approaching
	// and overdue tiers fire at most once even with concurrent pollers.
	MarkReminded(ctx context.Context, id ID, at dt.Naive) (bool, error)

	// CompleteAfterFinalNotice performs the final-tier transition
	// (completed + CompletedAt + both guard fields) if and only if the
	// reminder is still pending and the final notice was never sent.
	CompleteAfterFinalNotice(ctx context.Context, id ID, at dt.Naive) (bool, error)
}
