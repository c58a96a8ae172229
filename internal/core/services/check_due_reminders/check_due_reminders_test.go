package checkduereminders

import (
	"context"
	"errors"
	"testing"
	"time"

	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const USER_ID = user.ID("user-1")

var Now = time.Date(2023, time.March, 10, 14, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger             *logging.FakeLogger
	reminderRepository *reminder.FakeRepository
	sender             *reminder.FakeSender
	publisher          *reminder.FakeEventPublisher
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.reminderRepository = reminder.NewFakeRepository()
	suite.sender = reminder.NewFakeSender()
	suite.publisher = reminder.NewFakeEventPublisher()
	clock, err := dt.NewFixedClock("America/Caracas", Now)
	suite.Require().NoError(err)
	suite.service = New(suite.logger, suite.reminderRepository, suite.sender, suite.publisher, clock)
}

func TestCheckDueRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createDueIn(dueIn time.Duration) reminder.Reminder {
	created, err := s.reminderRepository.Create(context.Background(), reminder.CreateInput{
		UserID:    USER_ID,
		Title:     "revisar el horno",
		DueAt:     dt.NaiveFromStorage(Now.Add(dueIn)),
		Priority:  reminder.PriorityMedium,
		CreatedAt: dt.NaiveFromStorage(Now.Add(-time.Hour)),
	})
	s.Require().NoError(err)
	return created
}

func (s *testSuite) reminderByID(id reminder.ID) reminder.Reminder {
	stored, err := s.reminderRepository.GetByID(context.Background(), id)
	s.Require().NoError(err)
	return stored
}

func (s *testSuite) TestApproachingNotice() {
	created := s.createDueIn(2 * time.Minute)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(1, result.ApproachingSent)
	assert.Equal(0, result.FinalCompleted)
	assert.Equal(0, result.OverdueSent)
	assert.Len(s.sender.Sent, 1)
	assert.Contains(s.sender.Sent[0], "RECORDATORIO PRÓXIMO")

	stored := s.reminderByID(created.ID)
	assert.True(stored.LastReminded.IsPresent)
	assert.Equal(reminder.StatusPending, stored.Status)
	assert.False(stored.ImmediateNotified)

	assert.Len(s.publisher.Published, 1)
	assert.Equal(reminder.TierApproaching, s.publisher.Published[0].Tier)
}

func (s *testSuite) TestApproachingFiresOnlyOnce() {
	s.createDueIn(2 * time.Minute)

	first, err := s.service.Run(context.Background(), Input{})
	s.Require().NoError(err)
	second, err := s.service.Run(context.Background(), Input{})
	s.Require().NoError(err)

	assert := s.Require()
	assert.Equal(1, first.ApproachingSent)
	assert.Equal(0, second.ApproachingSent)
	assert.Len(s.sender.Sent, 1)
}

func (s *testSuite) TestFinalNoticeCompletes() {
	created := s.createDueIn(30 * time.Second)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(0, result.ApproachingSent)
	assert.Equal(1, result.FinalCompleted)
	assert.Len(s.sender.Sent, 1)
	assert.Contains(s.sender.Sent[0], "RECORDATORIO INMEDIATO")
	assert.Contains(s.sender.Sent[0], "completado automáticamente")

	stored := s.reminderByID(created.ID)
	assert.Equal(reminder.StatusCompleted, stored.Status)
	assert.True(stored.CompletedAt.IsPresent)
	assert.True(stored.LastReminded.IsPresent)
	assert.True(stored.ImmediateNotified)
}

func (s *testSuite) TestOverdueNotice() {
	created := s.createDueIn(-10 * time.Minute)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(1, result.OverdueSent)
	assert.Len(s.sender.Sent, 1)
	assert.Contains(s.sender.Sent[0], "RECORDATORIO VENCIDO")

	stored := s.reminderByID(created.ID)
	assert.Equal(reminder.StatusPending, stored.Status)
	assert.True(stored.LastReminded.IsPresent)
	assert.False(stored.ImmediateNotified)
}

func (s *testSuite) TestDueInOneMinuteGetsBothNotices() {
	created := s.createDueIn(time.Minute)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(1, result.ApproachingSent)
	assert.Equal(1, result.FinalCompleted)
	assert.Len(s.sender.Sent, 2)
	assert.Equal(reminder.StatusCompleted, s.reminderByID(created.ID).Status)
}

func (s *testSuite) TestSendFailureLeavesReminderUntouched() {
	created := s.createDueIn(30 * time.Second)
	s.sender.SendError = errors.New("telegram is down")

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(0, result.FinalCompleted)

	stored := s.reminderByID(created.ID)
	assert.Equal(reminder.StatusPending, stored.Status)
	assert.False(stored.ImmediateNotified)
	assert.False(stored.LastReminded.IsPresent)
	assert.Empty(s.publisher.Published)
}

func (s *testSuite) TestPublishFailureDoesNotFailTheCycle() {
	created := s.createDueIn(30 * time.Second)
	s.publisher.PublishError = errors.New("broker is down")

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(1, result.FinalCompleted)
	assert.Equal(reminder.StatusCompleted, s.reminderByID(created.ID).Status)
}

func (s *testSuite) TestTooEarlyReminderIsSilent() {
	s.createDueIn(4 * time.Minute)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(Result{}, result)
	assert.Empty(s.sender.Sent)
}

func (s *testSuite) TestReadErrorStopsTheCycle() {
	s.reminderRepository.ReadError = context.DeadlineExceeded

	_, err := s.service.Run(context.Background(), Input{})

	s.Require().ErrorIs(err, context.DeadlineExceeded)
}
