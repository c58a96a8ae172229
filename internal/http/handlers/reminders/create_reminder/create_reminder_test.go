package createreminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	service "assistant/internal/core/services/create_reminder"
	fromtext "assistant/internal/core/services/create_reminder_from_text"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2023, time.March, 10, 14, 0, 0, 0, time.UTC)

type stubService struct {
	input  service.Input
	result service.Result
	err    error
	wasRun bool
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.wasRun = true
	s.input = input
	return s.result, s.err
}

type stubFromTextService struct {
	input  fromtext.Input
	result service.Result
	err    error
	wasRun bool
}

func (s *stubFromTextService) Run(ctx context.Context, input fromtext.Input) (service.Result, error) {
	s.wasRun = true
	s.input = input
	return s.result, s.err
}

func createdReminder(title string) reminder.Reminder {
	return reminder.Reminder{
		ID:        reminder.ID(1),
		UserID:    user.ID("user-1"),
		Title:     title,
		DueAt:     dt.NaiveFromStorage(now.Add(time.Hour)),
		Priority:  reminder.PriorityMedium,
		Status:    reminder.StatusPending,
		CreatedAt: dt.NaiveFromStorage(now),
		UpdatedAt: dt.NaiveFromStorage(now),
	}
}

func TestCreateFromFields(t *testing.T) {
	stub := &stubService{result: service.Result{Reminder: createdReminder("llamar al doctor")}}
	handler := New(stub, &stubFromTextService{})

	body := `{
		"user_id": "user-1",
		"title": "llamar al doctor",
		"due_at": "2023-03-10T15:00:00Z",
		"priority": "high",
		"tags": ["salud"]
	}`
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, stub.wasRun)
	assert.Equal(t, user.ID("user-1"), stub.input.UserID)
	assert.Equal(t, "llamar al doctor", stub.input.Title)
	assert.Equal(t, reminder.PriorityHigh, stub.input.Priority)
	assert.Equal(t, []string{"salud"}, stub.input.Tags)
	assert.Contains(t, recorder.Body.String(), `"llamar al doctor"`)
}

func TestCreateFromText(t *testing.T) {
	fromText := &stubFromTextService{result: service.Result{Reminder: createdReminder("llamar a Juan")}}
	fieldService := &stubService{}
	handler := New(fieldService, fromText)

	body := `{"user_id": "user-1", "text": "recordarme llamar a Juan mañana a las 10"}`
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.True(t, fromText.wasRun)
	assert.False(t, fieldService.wasRun)
	assert.Equal(t, user.ID("user-1"), fromText.input.UserID)
	assert.Equal(t, "recordarme llamar a Juan mañana a las 10", fromText.input.Text)
}

func TestCreateFromTextUnresolvablePhrase(t *testing.T) {
	fromText := &stubFromTextService{err: reminder.ErrNaturalTimeParsing}
	handler := New(&stubService{}, fromText)

	body := `{"user_id": "user-1", "text": "recordarme algo"}`
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(body)))

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestCreateBadRequests(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "not json", body: `due tomorrow`},
		{id: "missing user", body: `{"title": "algo", "due_at": "2023-03-10T15:00:00Z"}`},
		{id: "missing title and text", body: `{"user_id": "user-1", "due_at": "2023-03-10T15:00:00Z"}`},
		{id: "missing due instant", body: `{"user_id": "user-1", "title": "algo"}`},
		{
			id:   "invalid priority",
			body: `{"user_id": "user-1", "title": "algo", "due_at": "2023-03-10T15:00:00Z", "priority": "critical"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			fieldService := &stubService{}
			fromText := &stubFromTextService{}
			handler := New(fieldService, fromText)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(
				recorder,
				httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(testcase.body)),
			)

			require.Equal(t, http.StatusBadRequest, recorder.Code)
			require.False(t, fieldService.wasRun)
			require.False(t, fromText.wasRun)
		})
	}
}
