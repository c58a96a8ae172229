package schedulemeeting

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
	createreminder "assistant/internal/core/services/create_reminder"

	"github.com/stretchr/testify/suite"
)

const USER_ID = user.ID("user-1")

var Now = time.Date(2023, time.March, 10, 14, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger             *logging.FakeLogger
	resolver           *reminder.FakeResolver
	parser             *reminder.FakeMessageParser
	eventRepository    *event.FakeRepository
	reminderRepository *reminder.FakeRepository
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.resolver = reminder.NewFakeResolver()
	suite.parser = reminder.NewFakeMessageParser()
	suite.eventRepository = event.NewFakeRepository()
	suite.reminderRepository = reminder.NewFakeRepository()
	clock, err := dt.NewFixedClock("America/Caracas", Now)
	suite.Require().NoError(err)
	suite.service = New(
		suite.logger,
		suite.resolver,
		suite.parser,
		suite.eventRepository,
		clock,
		createreminder.New(suite.logger, suite.reminderRepository, clock),
	)
}

func TestScheduleMeetingService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestScheduleSuccess() {
	startsAt := dt.NaiveFromStorage(Now.Add(24 * time.Hour))
	s.resolver.Result = startsAt
	s.parser.Meeting = "con el equipo de ventas"

	result, err := s.service.Run(context.Background(), Input{
		UserID: USER_ID,
		Text:   "programar reunión con el equipo de ventas mañana a las 10 am",
		Day:    "mañana",
		Time:   "10:00",
	})

	assert := s.Require()
	assert.NoError(err)

	assert.Equal(USER_ID, result.Event.UserID)
	assert.Equal(EventTypeMeeting, result.Event.Type)
	assert.Equal("con el equipo de ventas", result.Event.Title)
	assert.True(startsAt.Equal(result.Event.StartsAt))
	assert.Equal([]string{"mañana a las 10:00"}, s.resolver.ResolvedPhrases)

	assert.Equal("Reunión: con el equipo de ventas", result.Reminder.Title)
	assert.Equal(reminder.PriorityMedium, result.Reminder.Priority)
	assert.Equal([]string{"reunión", "automático"}, result.Reminder.Tags)
	expectedDue := dt.NaiveFromStorage(Now.Add(24*time.Hour - ReminderLeadTime))
	assert.True(expectedDue.Equal(result.Reminder.DueAt))
	assert.Len(s.reminderRepository.Reminders, 1)
}

func (s *testSuite) TestResolutionFailure() {
	s.resolver.ResolveError = reminder.ErrNaturalTimeParsing

	_, err := s.service.Run(context.Background(), Input{
		UserID: USER_ID,
		Text:   "reunión en algún momento",
		Day:    "algún día",
		Time:   "luego",
	})

	assert := s.Require()
	assert.ErrorIs(err, reminder.ErrNaturalTimeParsing)
	assert.Len(s.eventRepository.Events, 0)
	assert.Len(s.reminderRepository.Reminders, 0)
}

func (s *testSuite) TestEventRepositoryError() {
	s.resolver.Result = dt.NaiveFromStorage(Now.Add(time.Hour))
	s.eventRepository.CreateError = context.DeadlineExceeded

	_, err := s.service.Run(context.Background(), Input{
		UserID: USER_ID,
		Text:   "reunión hoy a las 3 pm",
		Day:    "hoy",
		Time:   "15:00",
	})

	assert := s.Require()
	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.Len(s.reminderRepository.Reminders, 0)
}
