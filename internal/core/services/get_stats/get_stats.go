package getstats

import (
	"context"

	c "assistant/internal/core/domain/common"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/event"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/services"
)

type Input struct{}

type Result struct {
	TotalReminders   uint
	PendingReminders uint
	TotalEvents      uint
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	eventRepository    event.Repository
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	eventRepository event.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		eventRepository:    eventRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result.TotalReminders, err = s.reminderRepository.Count(ctx, reminder.ReadOptions{})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.PendingReminders, err = s.reminderRepository.Count(ctx, reminder.ReadOptions{
		StatusEquals: c.NewOptional(reminder.StatusPending, true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.TotalEvents, err = s.eventRepository.Count(ctx, event.ReadOptions{})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return result, nil
}
