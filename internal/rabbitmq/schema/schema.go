// Package schema holds the wire form of AMQP messages. Domain types never
// cross the broker directly.
package schema

import (
	"encoding/json"
	"time"
)

type Notification struct {
	ReminderID int64
	UserID     string
	Tier       string
	Title      string
	FiredAt    time.Time
}

func (n *Notification) Marshal() ([]byte, error) {
	return json.Marshal(n)
}

func (n *Notification) Unmarshal(data []byte) error {
	return json.Unmarshal(data, n)
}
