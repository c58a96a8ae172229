package interact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assistant/internal/core/domain/interaction"
	ratelimiter "assistant/internal/core/domain/rate_limiter"
	"assistant/internal/core/domain/user"
	service "assistant/internal/core/services/interact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	result service.Result
	err    error
	input  *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	if s.err != nil {
		return service.Result{}, s.err
	}
	s.input = &input
	return s.result, nil
}

func TestInteractHandler(t *testing.T) {
	stub := &stubService{
		result: service.Result{
			Intent:   interaction.IntentGreeting,
			Response: "¡Hola! 👋 Soy tu asistente personal.",
		},
	}
	handler := New(stub)

	body, err := json.Marshal(map[string]string{
		"user_id": "user-1",
		"message": "hola",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/interact", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, stub.input)
	assert.Equal(t, user.ID("user-1"), stub.input.UserID)
	assert.Equal(t, "hola", stub.input.Text)

	result := Result{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "greeting", result.Intent)
	assert.Equal(t, "¡Hola! 👋 Soy tu asistente personal.", result.Response)
	assert.Nil(t, result.Reminder)
	assert.Nil(t, result.Event)
}

func TestInteractHandlerValidation(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "empty body", body: `{}`},
		{id: "missing message", body: `{"user_id": "user-1"}`},
		{id: "missing user", body: `{"message": "hola"}`},
		{id: "not json", body: `hola`},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			handler := New(stub)

			req := httptest.NewRequest("POST", "/interact", bytes.NewReader([]byte(testcase.body)))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Nil(t, stub.input)
		})
	}
}

func TestInteractHandlerRateLimited(t *testing.T) {
	stub := &stubService{err: ratelimiter.ErrRateLimitExceeded}
	handler := New(stub)

	body := []byte(`{"user_id": "user-1", "message": "hola"}`)
	req := httptest.NewRequest("POST", "/interact", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
