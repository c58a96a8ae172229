package listuserreminders

import (
	"context"

	c "assistant/internal/core/domain/common"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"
)

const DEFAULT_LIMIT = 100

type Input struct {
	UserID       user.ID
	StatusEquals c.Optional[reminder.Status]
	Limit        c.Optional[uint]
}

type Result struct {
	Reminders  []reminder.Reminder
	TotalCount uint
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	limit := c.NewOptional[uint](DEFAULT_LIMIT, true)
	if input.Limit.IsPresent {
		limit.Value = input.Limit.Value
	}

	readOptions := reminder.ReadOptions{
		UserIDEquals: c.NewOptional(input.UserID, true),
		StatusEquals: input.StatusEquals,
		OrderBy:      reminder.OrderByDueAtAsc,
		Limit:        limit,
	}
	reminders, err := s.reminderRepository.Read(ctx, readOptions)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	totalCount, err := s.reminderRepository.Count(ctx, readOptions)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"User reminders successfully read.",
		logging.Entry("userID", input.UserID),
		logging.Entry("count", len(reminders)),
		logging.Entry("totalCount", totalCount),
	)
	result.Reminders = reminders
	result.TotalCount = totalCount
	return result, nil
}
