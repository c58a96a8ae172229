package notificationbroadcaster

import (
	"context"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/rabbitmq/schema"

	"github.com/r3labs/sse/v2"
)

// SSE forwards consumed notifications to the user's SSE stream. Publishing
// to a stream nobody subscribed to is a no-op.
type SSE struct {
	log       logging.Logger
	sseServer *sse.Server
}

func NewSSE(log logging.Logger, sseServer *sse.Server) *SSE {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSE{log: log, sseServer: sseServer}
}

func (b *SSE) Broadcast(notification schema.Notification) {
	body, err := notification.Marshal()
	if err != nil {
		logging.Error(context.Background(), b.log, err)
		return
	}
	b.sseServer.Publish(notification.UserID, &sse.Event{
		Event: []byte("notification"),
		Data:  body,
	})
}
