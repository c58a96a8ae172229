package createreminderfromtext

import (
	"context"
	"testing"
	"time"

	dt "assistant/internal/core/domain/datetime"
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
	reminderRepository *reminder.FakeRepository
	service            services.Service[Input, createreminder.Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.resolver = reminder.NewFakeResolver()
	suite.parser = reminder.NewFakeMessageParser()
	suite.reminderRepository = reminder.NewFakeRepository()
	clock, err := dt.NewFixedClock("America/Caracas", Now)
	suite.Require().NoError(err)
	suite.service = New(
		suite.logger,
		suite.resolver,
		suite.parser,
		clock,
		createreminder.New(suite.logger, suite.reminderRepository, clock),
	)
}

func TestCreateReminderFromTextService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateSuccess() {
	dueAt := dt.NaiveFromStorage(Now.Add(time.Hour))
	s.resolver.Result = dueAt
	s.parser.Parsed = reminder.ParsedMessage{
		Title:    "llamar a Juan",
		Priority: reminder.PriorityUrgent,
		Tags:     []string{"trabajo"},
	}

	result, err := s.service.Run(context.Background(), Input{
		UserID: USER_ID,
		Text:   "recordarme llamar a Juan urgente mañana a las 10 am",
	})

	assert := s.Require()
	assert.NoError(err)
	assert.Equal(USER_ID, result.Reminder.UserID)
	assert.Equal("llamar a Juan", result.Reminder.Title)
	assert.Equal(reminder.PriorityUrgent, result.Reminder.Priority)
	assert.Equal([]string{"trabajo"}, result.Reminder.Tags)
	assert.True(dueAt.Equal(result.Reminder.DueAt))
	assert.True(result.Reminder.Description.IsPresent)
	assert.Equal([]string{"recordarme llamar a Juan urgente mañana a las 10 am"}, s.resolver.ResolvedPhrases)
}

func (s *testSuite) TestResolutionFailure() {
	s.resolver.ResolveError = reminder.ErrNaturalTimeParsing

	_, err := s.service.Run(context.Background(), Input{UserID: USER_ID, Text: "recordarme algo"})

	assert := s.Require()
	assert.ErrorIs(err, reminder.ErrNaturalTimeParsing)
	assert.Len(s.reminderRepository.Reminders, 0)
	assert.Empty(s.parser.ParsedTexts)
}
