package reminder

import (
	"testing"
	"time"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

func pendingDueIn(until time.Duration, now dt.UTC) Reminder {
	return Reminder{
		ID:       ID(1),
		UserID:   user.ID("u-1"),
		Title:    "llamar a Juan",
		DueAt:    now.Add(until).Strip(),
		Priority: PriorityMedium,
		Status:   StatusPending,
	}
}

func testNow(t *testing.T) dt.UTC {
	t.Helper()
	clock, err := dt.NewFixedClock("America/Caracas", time.Date(2023, time.March, 10, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return clock.NowUTC()
}

func TestEvaluateTier(t *testing.T) {
	now := testNow(t)
	reminded := c.NewOptional(now.Add(-time.Minute).Strip(), true)

	cases := []struct {
		id       string
		reminder func() Reminder
		expected Tier
	}{
		{
			id:       "three minutes out is too early",
			reminder: func() Reminder { return pendingDueIn(3*time.Minute, now) },
			expected: TierNone,
		},
		{
			id:       "two minutes out fires approaching",
			reminder: func() Reminder { return pendingDueIn(2*time.Minute, now) },
			expected: TierApproaching,
		},
		{
			id:       "one minute out fires approaching before final",
			reminder: func() Reminder { return pendingDueIn(time.Minute, now) },
			expected: TierApproaching,
		},
		{
			id: "one minute out with approaching already sent falls to final",
			reminder: func() Reminder {
				r := pendingDueIn(time.Minute, now)
				r.LastReminded = reminded
				return r
			},
			expected: TierFinal,
		},
		{
			id:       "thirty seconds out fires final",
			reminder: func() Reminder { return pendingDueIn(30*time.Second, now) },
			expected: TierFinal,
		},
		{
			id:       "exactly due fires final",
			reminder: func() Reminder { return pendingDueIn(0, now) },
			expected: TierFinal,
		},
		{
			id: "final already sent suppresses final",
			reminder: func() Reminder {
				r := pendingDueIn(30*time.Second, now)
				r.ImmediateNotified = true
				return r
			},
			expected: TierNone,
		},
		{
			id:       "past due with no notice fires overdue",
			reminder: func() Reminder { return pendingDueIn(-10*time.Minute, now) },
			expected: TierOverdue,
		},
		{
			id: "past due but already reminded stays silent",
			reminder: func() Reminder {
				r := pendingDueIn(-10*time.Minute, now)
				r.LastReminded = reminded
				return r
			},
			expected: TierNone,
		},
		{
			id: "completed reminders are never evaluated",
			reminder: func() Reminder {
				r := pendingDueIn(30*time.Second, now)
				r.Status = StatusCompleted
				r.CompletedAt = reminded
				return r
			},
			expected: TierNone,
		},
		{
			id: "cancelled reminders are never evaluated",
			reminder: func() Reminder {
				r := pendingDueIn(-time.Minute, now)
				r.Status = StatusCancelled
				return r
			},
			expected: TierNone,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			require.Equal(t, testcase.expected, EvaluateTier(testcase.reminder(), now))
		})
	}
}

func TestApproachingFiresAtMostOncePerReminder(t *testing.T) {
	now := testNow(t)
	r := pendingDueIn(4*time.Minute, now)

	var approachingCount int
	for _, offset := range []time.Duration{time.Minute, 2 * time.Minute, 3 * time.Minute, 3*time.Minute + 30*time.Second} {
		at := now.Add(offset)
		tier := EvaluateTier(r, at)
		if tier == TierApproaching {
			approachingCount++
			r.LastReminded = c.NewOptional(at.Strip(), true)
		}
	}
	require.Equal(t, 1, approachingCount)
}
