package listuserreminders

import (
	"fmt"
	"net/http"
	"strconv"

	c "assistant/internal/core/domain/common"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"
	service "assistant/internal/core/services/list_user_reminders"
	"assistant/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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
	Reminders  []response.Reminder `json:"reminders"`
	TotalCount uint                `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.RenderError(rw, "user ID must not be empty", http.StatusBadRequest)
		return
	}

	rawStatus := r.URL.Query().Get("status")
	status, err := parseStatus(rawStatus)
	if err != nil {
		response.RenderError(rw, "invalid status query parameter", http.StatusBadRequest)
		return
	}

	rawLimit := r.URL.Query().Get("limit")
	limit, err := parseLimit(rawLimit)
	if err != nil {
		response.RenderError(rw, "invalid limit query parameter", http.StatusBadRequest)
		return
	}

	input := service.Input{
		UserID:       user.ID(userID),
		StatusEquals: status,
		Limit:        limit,
	}
	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respReminders := make([]response.Reminder, 0, len(result.Reminders))
	for _, rem := range result.Reminders {
		respReminder := response.Reminder{}
		respReminder.FromDomainType(rem)
		respReminders = append(respReminders, respReminder)
	}
	response.Render(rw, Result{Reminders: respReminders, TotalCount: result.TotalCount}, http.StatusOK)
}

func parseStatus(raw string) (result c.Optional[reminder.Status], err error) {
	if raw == "" {
		return result, nil
	}
	status, err := reminder.ParseStatus(raw)
	if err != nil {
		return result, err
	}
	return c.NewOptional(status, true), nil
}

func parseLimit(raw string) (limit c.Optional[uint], err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if l > service.DEFAULT_LIMIT {
		return limit, fmt.Errorf("limit must be less than or equal to %v", service.DEFAULT_LIMIT)
	}
	return c.NewOptional(uint(l), true), nil
}
