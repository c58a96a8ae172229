package event

import (
	"context"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/user"
)

type CreateInput struct {
	UserID    user.ID
	Type      string
	Title     string
	StartsAt  dt.Naive
	CreatedAt dt.Naive
}

type ReadOptions struct {
	UserIDEquals   c.Optional[user.ID]
	StartsAfter    c.Optional[dt.Naive]
	Limit          c.Optional[uint]
	OrderByStartAt bool
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (ScheduledEvent, error)
	Read(ctx context.Context, options ReadOptions) ([]ScheduledEvent, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
}
