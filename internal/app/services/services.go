package services

import (
	"assistant/internal/app/deps"
	drl "assistant/internal/core/domain/rate_limiter"
	"assistant/internal/core/services"
	checkdue "assistant/internal/core/services/check_due_reminders"
	createreminder "assistant/internal/core/services/create_reminder"
	createreminderfromtext "assistant/internal/core/services/create_reminder_from_text"
	getstats "assistant/internal/core/services/get_stats"
	"assistant/internal/core/services/interact"
	listuserreminders "assistant/internal/core/services/list_user_reminders"
	ratelimiting "assistant/internal/core/services/rate_limiting"
	schedulemeeting "assistant/internal/core/services/schedule_meeting"
	updatereminderstatus "assistant/internal/core/services/update_reminder_status"
)

type Services struct {
	Interact               services.Service[interact.Input, interact.Result]
	CreateReminder         services.Service[createreminder.Input, createreminder.Result]
	CreateReminderFromText services.Service[createreminderfromtext.Input, createreminder.Result]
	ScheduleMeeting        services.Service[schedulemeeting.Input, schedulemeeting.Result]
	ListUserReminders      services.Service[listuserreminders.Input, listuserreminders.Result]
	UpdateReminderStatus   services.Service[updatereminderstatus.Input, updatereminderstatus.Result]
	CheckDueReminders      services.Service[checkdue.Input, checkdue.Result]
	GetStats               services.Service[getstats.Input, getstats.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	createReminder := createreminder.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Clock,
	)
	s.CreateReminder = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 30},
		createReminder,
	)
	s.CreateReminderFromText = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 30},
		createreminderfromtext.New(
			deps.Logger,
			deps.NaturalTimeResolver,
			deps.MessageParser,
			deps.Clock,
			createReminder,
		),
	)
	s.ScheduleMeeting = schedulemeeting.New(
		deps.Logger,
		deps.NaturalTimeResolver,
		deps.MessageParser,
		deps.EventRepository,
		deps.Clock,
		createReminder,
	)
	s.Interact = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 60},
		interact.New(
			deps.Logger,
			deps.InteractionAnalyzer,
			deps.Clock,
			createreminderfromtext.New(
				deps.Logger,
				deps.NaturalTimeResolver,
				deps.MessageParser,
				deps.Clock,
				createReminder,
			),
			s.ScheduleMeeting,
		),
	)
	s.ListUserReminders = listuserreminders.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.UpdateReminderStatus = updatereminderstatus.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Clock,
	)
	s.CheckDueReminders = checkdue.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.MessageSender,
		deps.EventPublisher,
		deps.Clock,
	)
	s.GetStats = getstats.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.EventRepository,
	)

	return s
}
