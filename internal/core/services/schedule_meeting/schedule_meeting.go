package schedulemeeting

import (
	"context"
	"errors"
	"time"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/event"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"
	createreminder "assistant/internal/core/services/create_reminder"
)

// ReminderLeadTime is how far ahead of the meeting the linked reminder
// is due.
const ReminderLeadTime = 15 * time.Minute

const EventTypeMeeting = "meeting"

type Input struct {
	UserID user.ID
	Text   string
	Day    string
	Time   string
}

func (i Input) GetRateLimitKey() string {
	return "schedule-meeting::" + string(i.UserID)
}

type Result struct {
	Event    event.ScheduledEvent
	Reminder reminder.Reminder
}

type service struct {
	log             logging.Logger
	resolver        reminder.NaturalTimeResolver
	parser          reminder.MessageParser
	eventRepository event.Repository
	clock           *dt.Clock
	createService   services.Service[createreminder.Input, createreminder.Result]
}

func New(
	log logging.Logger,
	resolver reminder.NaturalTimeResolver,
	parser reminder.MessageParser,
	eventRepository event.Repository,
	clock *dt.Clock,
	createService services.Service[createreminder.Input, createreminder.Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if resolver == nil {
		panic(e.NewNilArgumentError("resolver"))
	}
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if eventRepository == nil {
		panic(e.NewNilArgumentError("eventRepository"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	if createService == nil {
		panic(e.NewNilArgumentError("createService"))
	}
	return &service{
		log:             log,
		resolver:        resolver,
		parser:          parser,
		eventRepository: eventRepository,
		clock:           clock,
		createService:   createService,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	phrase := input.Day + " a las " + input.Time
	startsAt, err := s.resolver.Resolve(ctx, phrase, s.clock.NowLocal())
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrNaturalTimeParsing):
			s.log.Info(
				ctx,
				"Could not resolve the meeting instant.",
				logging.Entry("userID", input.UserID),
				logging.Entry("phrase", phrase),
			)
		default:
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	title := s.parser.MeetingTitle(ctx, input.Text)

	createdEvent, err := s.eventRepository.Create(ctx, event.CreateInput{
		UserID:    input.UserID,
		Type:      EventTypeMeeting,
		Title:     title,
		StartsAt:  startsAt,
		CreatedAt: s.clock.NowUTC().Strip(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	reminderResult, err := s.createService.Run(ctx, createreminder.Input{
		UserID:      input.UserID,
		Title:       "Reunión: " + title,
		Description: c.NewOptional("Reunión programada: "+input.Text, true),
		DueAt:       dt.NaiveFromStorage(startsAt.AsUTC().Std().Add(-ReminderLeadTime)),
		Priority:    reminder.PriorityMedium,
		Tags:        []string{"reunión", "automático"},
	})
	if err != nil {
		return result, err
	}

	s.log.Info(
		ctx,
		"Meeting scheduled with a linked reminder.",
		logging.Entry("eventID", createdEvent.ID),
		logging.Entry("reminderID", reminderResult.Reminder.ID),
		logging.Entry("startsAt", createdEvent.StartsAt),
	)
	result.Event = createdEvent
	result.Reminder = reminderResult.Reminder
	return result, nil
}
