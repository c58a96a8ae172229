package reminder

import (
	"time"

	dt "assistant/internal/core/domain/datetime"
)

// Scan windows for the per-tier store queries. The approaching window is
// wider than the firing range: the query casts a net, the tier evaluation
// decides.
const (
	ApproachingScanWindow = 5 * time.Minute
	FinalScanWindow       = time.Minute
)

type Tier struct {
	v string
}

func (t Tier) String() string {
	return t.v
}

var (
	TierNone        = Tier{}
	TierApproaching = Tier{v: "approaching"}
	TierFinal       = Tier{v: "final"}
	TierOverdue     = Tier{v: "overdue"}
)

// EvaluateTier decides which notification tier, if any, fires for the
// reminder at the given instant. Evaluation order is fixed: approaching,
// then final, then overdue. Only the first qualifying tier fires per poll
// cycle and the guard fields suppress the rest on later cycles.
//
// The overdue tier leaves the status pending: a reminder that
// already received its approaching notice and then slipped past its due
// instant never re-notifies and never auto-completes. Completed is reserved
// for reminders whose final notice was actually delivered.
func EvaluateTier(r Reminder, now dt.UTC) Tier {
	if r.Status != StatusPending {
		return TierNone
	}

	due := r.DueAt.AsUTC()
	until := due.Sub(now)

	minutesUntil := int(until.Minutes())
	if minutesUntil >= 1 && minutesUntil <= 2 && !r.LastReminded.IsPresent {
		return TierApproaching
	}

	secondsUntil := int(until.Seconds())
	if secondsUntil >= 0 && secondsUntil <= 60 && !r.ImmediateNotified {
		return TierFinal
	}

	if !now.Before(due) && !r.LastReminded.IsPresent {
		return TierOverdue
	}

	return TierNone
}
