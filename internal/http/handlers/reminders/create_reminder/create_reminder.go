package createreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	ratelimiter "assistant/internal/core/domain/rate_limiter"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"
	service "assistant/internal/core/services/create_reminder"
	fromtext "assistant/internal/core/services/create_reminder_from_text"
	"assistant/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service         services.Service[service.Input, service.Result]
	fromTextService services.Service[fromtext.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
	fromTextService services.Service[fromtext.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if fromTextService == nil {
		panic(e.NewNilArgumentError("fromTextService"))
	}
	return &Handler{service: service, fromTextService: fromTextService}
}

// Input accepts two shapes. With text set, the title, due instant, priority
// and tags are all extracted from the free-form message. Otherwise title and
// due_at are required and taken as given.
type Input struct {
	UserID      string    `json:"user_id"`
	Text        string    `json:"text"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueAt       time.Time `json:"due_at"`
	Priority    string    `json:"priority"`
	Tags        []string  `json:"tags"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	if i.Text != "" {
		return validation.ValidateStruct(&i,
			validation.Field(&i.UserID, validation.Required, validation.Length(1, 256)),
			validation.Field(&i.Text, validation.Length(1, 2048)),
		)
	}
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Title, validation.Required, validation.Length(1, 512)),
		validation.Field(&i.DueAt, validation.Required),
		validation.Field(&i.Tags, validation.Length(0, 20)),
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

	var result service.Result
	var err error
	if input.Text != "" {
		result, err = h.fromTextService.Run(
			r.Context(),
			fromtext.Input{UserID: user.ID(input.UserID), Text: input.Text},
		)
	} else {
		priority := reminder.PriorityUnknown
		if input.Priority != "" {
			priority, err = reminder.ParsePriority(input.Priority)
			if err != nil {
				response.RenderError(rw, err.Error(), http.StatusBadRequest)
				return
			}
		}
		result, err = h.createFromFields(r, input, priority)
	}
	if err != nil {
		var invalidState *e.InvalidStateError
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, reminder.ErrNaturalTimeParsing):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		case errors.As(err, &invalidState):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}

func (h *Handler) createFromFields(
	r *http.Request,
	input Input,
	priority reminder.Priority,
) (service.Result, error) {
	var description c.Optional[string]
	if input.Description != nil {
		description = c.NewOptional(*input.Description, true)
	}

	return h.service.Run(
		r.Context(),
		service.Input{
			UserID:      user.ID(input.UserID),
			Title:       input.Title,
			Description: description,
			DueAt:       dt.NaiveFromStorage(input.DueAt.UTC()),
			Priority:    priority,
			Tags:        input.Tags,
		},
	)
}
