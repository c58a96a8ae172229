package health

import (
	"net/http"
	"time"

	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/http/handlers/response"
)

type Handler struct {
	clock *dt.Clock
}

func New(clock *dt.Clock) *Handler {
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &Handler{clock: clock}
}

type Result struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	response.Render(rw, Result{
		Status:    "healthy",
		Timestamp: h.clock.NowUTC().Std(),
	}, http.StatusOK)
}
