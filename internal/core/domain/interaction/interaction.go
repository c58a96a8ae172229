// Package interaction models a single free-text exchange with the
// assistant. An intent is detected from keywords, entities are the scraps
// of structure (day, time, event type) pulled out alongside it.
package interaction

import (
	"context"

	c "assistant/internal/core/domain/common"
)

type Intent struct {
	v string
}

var (
	IntentUnknown         = Intent{}
	IntentGreeting        = Intent{v: "greeting"}
	IntentScheduleMeeting = Intent{v: "schedule_meeting"}
	IntentCreateReminder  = Intent{v: "create_reminder"}
	IntentCreateTask      = Intent{v: "create_task"}
	IntentAskHelp         = Intent{v: "ask_help"}
	IntentThankYou        = Intent{v: "thank_you"}
)

func (i Intent) String() string {
	if i.v == "" {
		return "unknown"
	}
	return i.v
}

type Entities struct {
	Time      c.Optional[string]
	Day       c.Optional[string]
	EventType c.Optional[string]
}

type Analyzer interface {
	Classify(ctx context.Context, text string) Intent
	Extract(ctx context.Context, text string) Entities
}
