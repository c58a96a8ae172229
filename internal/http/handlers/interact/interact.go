package interact

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "assistant/internal/core/domain/errors"
	ratelimiter "assistant/internal/core/domain/rate_limiter"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"
	service "assistant/internal/core/services/interact"
	"assistant/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type Result struct {
	Intent   string                   `json:"intent"`
	Response string                   `json:"response"`
	Reminder *response.Reminder       `json:"reminder,omitempty"`
	Event    *response.ScheduledEvent `json:"event,omitempty"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Message, validation.Required, validation.Length(1, 2048)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{UserID: user.ID(input.UserID), Text: input.Message},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{
		Intent:   result.Intent.String(),
		Response: result.Response,
	}
	if result.Reminder.IsPresent {
		rem := &response.Reminder{}
		rem.FromDomainType(result.Reminder.Value)
		res.Reminder = rem
	}
	if result.Event.IsPresent {
		ev := &response.ScheduledEvent{}
		ev.FromDomainType(result.Event.Value)
		res.Event = ev
	}
	response.Render(rw, res, http.StatusOK)
}
