package createreminder

import (
	"context"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"
)

type Input struct {
	UserID      user.ID
	Title       string
	Description c.Optional[string]
	DueAt       dt.Naive
	Priority    reminder.Priority
	Tags        []string
}

func (i Input) Validate() error {
	if i.Title == "" {
		return e.NewInvalidStateError("reminder title must not be empty")
	}
	if i.DueAt.IsZero() {
		return e.NewInvalidStateError("reminder due instant must be set")
	}
	return nil
}

func (i Input) GetRateLimitKey() string {
	return "create-reminder::" + string(i.UserID)
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	clock              *dt.Clock
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	clock *dt.Clock,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		clock:              clock,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err = input.Validate(); err != nil {
		return result, err
	}

	priority := input.Priority
	if priority == reminder.PriorityUnknown {
		priority = reminder.PriorityMedium
	}

	// A past due instant is accepted. The overdue tier picks such
	// reminders up on the next scan.
	createdReminder, err := s.reminderRepository.Create(ctx, reminder.CreateInput{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Priority:    priority,
		Tags:        input.Tags,
		CreatedAt:   s.clock.NowUTC().Strip(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully created.",
		logging.Entry("reminderID", createdReminder.ID),
		logging.Entry("userID", createdReminder.UserID),
		logging.Entry("dueAt", createdReminder.DueAt),
	)
	result.Reminder = createdReminder
	return result, nil
}
