package events

import (
	"net/http"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/http/handlers/response"

	"github.com/r3labs/sse/v2"
)

// Handler subscribes a client to its notification stream. Streams are
// per-user; the consumer publishes every committed notification to the
// stream named after the user ID.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	streamID := r.URL.Query().Get("stream")
	if streamID == "" {
		response.RenderError(rw, "stream query parameter must be set", http.StatusBadRequest)
		return
	}

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(
			r.Context(),
			"Unsubscribed from notification events.",
			logging.Entry("stream", streamID),
		)
		h.sseServer.RemoveStream(streamID)
	}()

	h.sseServer.CreateStream(streamID)
	h.log.Info(
		r.Context(),
		"Subscribed to notification events.",
		logging.Entry("stream", streamID),
	)
	h.sseServer.ServeHTTP(rw, r)
}
