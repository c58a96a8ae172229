package reminder

import "context"

// Sender delivers a formatted text message to the configured destination.
// Delivery is synchronous and timeout-bounded. An error means the tier
// transition must not be committed this cycle.
type Sender interface {
	Send(ctx context.Context, text string) error
}
