package getstats

import (
	"context"
	"testing"
	"time"

	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/event"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2023, time.March, 10, 14, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	reminderRepository *reminder.FakeRepository
	eventRepository    *event.FakeRepository
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.reminderRepository = reminder.NewFakeRepository()
	suite.eventRepository = event.NewFakeRepository()
	suite.service = New(logging.NewFakeLogger(), suite.reminderRepository, suite.eventRepository)
}

func TestGetStatsService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCounts() {
	ctx := context.Background()
	first, err := s.reminderRepository.Create(ctx, reminder.CreateInput{
		UserID:    user.ID("user-1"),
		Title:     "uno",
		DueAt:     dt.NaiveFromStorage(Now.Add(time.Hour)),
		Priority:  reminder.PriorityMedium,
		CreatedAt: dt.NaiveFromStorage(Now),
	})
	s.Require().NoError(err)
	_, err = s.reminderRepository.Create(ctx, reminder.CreateInput{
		UserID:    user.ID("user-1"),
		Title:     "dos",
		DueAt:     dt.NaiveFromStorage(Now.Add(2 * time.Hour)),
		Priority:  reminder.PriorityMedium,
		CreatedAt: dt.NaiveFromStorage(Now),
	})
	s.Require().NoError(err)
	_, err = s.reminderRepository.SetStatus(ctx, reminder.SetStatusInput{
		ID:     first.ID,
		Status: reminder.StatusCompleted,
		At:     dt.NaiveFromStorage(Now),
	})
	s.Require().NoError(err)
	_, err = s.eventRepository.Create(ctx, event.CreateInput{
		UserID:    user.ID("user-1"),
		Type:      "meeting",
		Title:     "con el equipo",
		StartsAt:  dt.NaiveFromStorage(Now.Add(3 * time.Hour)),
		CreatedAt: dt.NaiveFromStorage(Now),
	})
	s.Require().NoError(err)

	result, err := s.service.Run(ctx, Input{})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(Result{TotalReminders: 2, PendingReminders: 1, TotalEvents: 1}, result)
}
