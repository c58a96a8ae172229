package updatereminderstatus

import (
	"context"
	"errors"

	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/services"
)

type Input struct {
	ReminderID reminder.ID
	Status     reminder.Status
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
	if input.Status == reminder.StatusUnknown {
		return result, e.NewInvalidStateError("reminder status is not valid")
	}

	updatedReminder, err := s.reminderRepository.SetStatus(ctx, reminder.SetStatusInput{
		ID:     input.ReminderID,
		Status: input.Status,
		At:     s.clock.NowUTC().Strip(),
	})
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			s.log.Info(
				ctx,
				"Reminder does not exist.",
				logging.Entry("reminderID", input.ReminderID),
			)
		default:
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder status successfully updated.",
		logging.Entry("reminderID", updatedReminder.ID),
		logging.Entry("status", updatedReminder.Status),
	)
	result.Reminder = updatedReminder
	return result, nil
}
