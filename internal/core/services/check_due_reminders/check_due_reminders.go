package checkduereminders

import (
	"context"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/services"
)

type Input struct{}

type Result struct {
	ApproachingSent int
	FinalCompleted  int
	OverdueSent     int
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	sender             reminder.Sender
	publisher          reminder.EventPublisher
	clock              *dt.Clock
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	sender reminder.Sender,
	publisher reminder.EventPublisher,
	clock *dt.Clock,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		sender:             sender,
		publisher:          publisher,
		clock:              clock,
	}
}

// Run walks the three notification tiers in order. The scan windows
// overlap and EvaluateTier decides what actually fires. A reminder due in
// exactly one minute gets the approaching notice first. The final scan
// then reads back the committed LastReminded stamp, so EvaluateTier
// resolves the same reminder to the final tier within one cycle.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.clock.NowUTC()

	result.ApproachingSent, err = s.checkApproaching(ctx, now)
	if err != nil {
		return result, err
	}
	result.FinalCompleted, err = s.checkFinal(ctx, now)
	if err != nil {
		return result, err
	}
	result.OverdueSent, err = s.checkOverdue(ctx, now)
	if err != nil {
		return result, err
	}

	if result.ApproachingSent+result.FinalCompleted+result.OverdueSent > 0 {
		s.log.Info(
			ctx,
			"Due reminders processed.",
			logging.Entry("approachingSent", result.ApproachingSent),
			logging.Entry("finalCompleted", result.FinalCompleted),
			logging.Entry("overdueSent", result.OverdueSent),
		)
	}
	return result, nil
}

func (s *service) checkApproaching(ctx context.Context, now dt.UTC) (sent int, err error) {
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		StatusEquals:       c.NewOptional(reminder.StatusPending, true),
		DueAfter:           c.NewOptional(now.Strip(), true),
		DueAtOrBefore:      c.NewOptional(now.Add(reminder.ApproachingScanWindow).Strip(), true),
		LastRemindedIsNull: true,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return sent, err
	}

	for _, r := range reminders {
		if reminder.EvaluateTier(r, now) != reminder.TierApproaching {
			continue
		}
		if !s.send(ctx, r, reminder.TierApproaching, now) {
			continue
		}
		marked, err := s.reminderRepository.MarkReminded(ctx, r.ID, now.Strip())
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", r.ID))
			return sent, err
		}
		if marked {
			sent++
			s.publish(ctx, r, reminder.TierApproaching, now)
		}
	}
	return sent, nil
}

func (s *service) checkFinal(ctx context.Context, now dt.UTC) (completed int, err error) {
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		StatusEquals:            c.NewOptional(reminder.StatusPending, true),
		DueAfter:                c.NewOptional(now.Strip(), true),
		DueAtOrBefore:           c.NewOptional(now.Add(reminder.FinalScanWindow).Strip(), true),
		ImmediateNotifiedEquals: c.NewOptional(false, true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return completed, err
	}

	for _, r := range reminders {
		if reminder.EvaluateTier(r, now) != reminder.TierFinal {
			continue
		}
		if !s.send(ctx, r, reminder.TierFinal, now) {
			continue
		}
		done, err := s.reminderRepository.CompleteAfterFinalNotice(ctx, r.ID, now.Strip())
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", r.ID))
			return completed, err
		}
		if done {
			completed++
			s.publish(ctx, r, reminder.TierFinal, now)
		}
	}
	return completed, nil
}

func (s *service) checkOverdue(ctx context.Context, now dt.UTC) (sent int, err error) {
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		StatusEquals:       c.NewOptional(reminder.StatusPending, true),
		DueAtOrBefore:      c.NewOptional(now.Strip(), true),
		LastRemindedIsNull: true,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return sent, err
	}

	for _, r := range reminders {
		if reminder.EvaluateTier(r, now) != reminder.TierOverdue {
			continue
		}
		if !s.send(ctx, r, reminder.TierOverdue, now) {
			continue
		}
		// The reminder stays pending, only the guard is stamped.
		marked, err := s.reminderRepository.MarkReminded(ctx, r.ID, now.Strip())
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", r.ID))
			return sent, err
		}
		if marked {
			sent++
			s.publish(ctx, r, reminder.TierOverdue, now)
		}
	}
	return sent, nil
}

// send delivers the notification text. A failed delivery is logged and
// reported as false so the caller leaves the reminder untouched and the
// next cycle retries it.
func (s *service) send(ctx context.Context, r reminder.Reminder, tier reminder.Tier, now dt.UTC) bool {
	text := reminder.FormatNotification(r, tier, s.clock, now)
	if err := s.sender.Send(ctx, text); err != nil {
		s.log.Warning(
			ctx,
			"Could not send a reminder notification.",
			logging.Entry("reminderID", r.ID),
			logging.Entry("tier", tier),
			logging.Entry("err", err),
		)
		return false
	}
	return true
}

func (s *service) publish(ctx context.Context, r reminder.Reminder, tier reminder.Tier, now dt.UTC) {
	err := s.publisher.PublishNotification(ctx, reminder.NotificationEvent{
		ReminderID: r.ID,
		UserID:     r.UserID,
		Tier:       tier,
		Title:      r.Title,
		FiredAt:    now,
	})
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not publish a notification event.",
			logging.Entry("reminderID", r.ID),
			logging.Entry("err", err),
		)
	}
}
