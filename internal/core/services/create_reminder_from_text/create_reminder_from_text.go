package createreminderfromtext

import (
	"context"
	"errors"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"
	createreminder "assistant/internal/core/services/create_reminder"
)

type Input struct {
	UserID user.ID
	Text   string
}

func (i Input) GetRateLimitKey() string {
	return "create-reminder-from-text::" + string(i.UserID)
}

type service struct {
	log           logging.Logger
	resolver      reminder.NaturalTimeResolver
	parser        reminder.MessageParser
	clock         *dt.Clock
	createService services.Service[createreminder.Input, createreminder.Result]
}

func New(
	log logging.Logger,
	resolver reminder.NaturalTimeResolver,
	parser reminder.MessageParser,
	clock *dt.Clock,
	createService services.Service[createreminder.Input, createreminder.Result],
) services.Service[Input, createreminder.Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if resolver == nil {
		panic(e.NewNilArgumentError("resolver"))
	}
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	if createService == nil {
		panic(e.NewNilArgumentError("createService"))
	}
	return &service{
		log:           log,
		resolver:      resolver,
		parser:        parser,
		clock:         clock,
		createService: createService,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result createreminder.Result, err error) {
	dueAt, err := s.resolver.Resolve(ctx, input.Text, s.clock.NowLocal())
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrNaturalTimeParsing):
			s.log.Info(
				ctx,
				"Could not resolve a due instant from the message.",
				logging.Entry("userID", input.UserID),
				logging.Entry("text", input.Text),
			)
		default:
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	parsed := s.parser.Parse(ctx, input.Text)
	s.log.Info(
		ctx,
		"Reminder attributes parsed from the message.",
		logging.Entry("userID", input.UserID),
		logging.Entry("title", parsed.Title),
		logging.Entry("dueAt", dueAt),
	)

	return s.createService.Run(ctx, createreminder.Input{
		UserID:      input.UserID,
		Title:       parsed.Title,
		Description: c.NewOptional(input.Text, true),
		DueAt:       dueAt,
		Priority:    parsed.Priority,
		Tags:        parsed.Tags,
	})
}
