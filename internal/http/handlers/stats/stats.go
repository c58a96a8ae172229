package stats

import (
	"net/http"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/services"
	service "assistant/internal/core/services/get_stats"
	"assistant/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	TotalReminders   uint `json:"total_reminders"`
	PendingReminders uint `json:"pending_reminders"`
	TotalEvents      uint `json:"total_events"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{
		TotalReminders:   result.TotalReminders,
		PendingReminders: result.PendingReminders,
		TotalEvents:      result.TotalEvents,
	}, http.StatusOK)
}
