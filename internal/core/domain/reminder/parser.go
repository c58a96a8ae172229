package reminder

import "context"

// ParsedMessage holds the reminder attributes extracted from a free-form
// Spanish message, everything except the due instant.
type ParsedMessage struct {
	Title    string
	Priority Priority
	Tags     []string
}

type MessageParser interface {
	Parse(ctx context.Context, text string) ParsedMessage

	// MeetingTitle extracts the subject of a meeting request, with the
	// time words and the meeting keyword itself removed.
	MeetingTitle(ctx context.Context, text string) string
}
