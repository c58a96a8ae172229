package reminder

import "errors"

var (
	ErrReminderDoesNotExist = errors.New("reminder does not exist")
	ErrNaturalTimeParsing   = errors.New("could not understand the date and time")
)
