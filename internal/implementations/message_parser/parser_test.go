package messageparser

import (
	"context"
	"testing"

	"assistant/internal/core/domain/reminder"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	parser := New()

	cases := []struct {
		id       string
		text     string
		title    string
		priority reminder.Priority
		tags     []string
	}{
		{
			// Keyword removal is plain substring surgery, "am" also bites
			// into "llamar". Faithful to how the extraction always worked.
			id:       "plain reminder",
			text:     "llamar a Juan mañana a las 10",
			title:    "llar a Juan 10",
			priority: reminder.PriorityMedium,
			tags:     []string{},
		},
		{
			id:       "urgent work reminder",
			text:     "enviar el proyecto al cliente urgente hoy a las 5 pm",
			title:    "enviar el proyecto al cliente urgente 5",
			priority: reminder.PriorityUrgent,
			tags:     []string{"trabajo"},
		},
		{
			id:       "low priority shopping",
			text:     "comprar café cuando puedas",
			title:    "comprar café cuando puedas",
			priority: reminder.PriorityLow,
			tags:     []string{"compras"},
		},
		{
			id:       "health tag",
			text:     "cita con el doctor el viernes a las 9 am",
			priority: reminder.PriorityMedium,
			title:    "cita con el doctor el 9",
			tags:     []string{"personal", "salud"},
		},
		{
			id:       "meeting text gets the meeting tag",
			text:     "reunión con el jefe mañana",
			title:    "reunión con el jefe",
			priority: reminder.PriorityMedium,
			tags:     []string{"trabajo", "reunión"},
		},
		{
			id:       "only time words falls back",
			text:     "mañana",
			title:    "Recordatorio importante",
			priority: reminder.PriorityMedium,
			tags:     []string{},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			parsed := parser.Parse(context.Background(), testcase.text)
			require.Equal(t, testcase.title, parsed.Title)
			require.Equal(t, testcase.priority, parsed.Priority)
			require.Equal(t, testcase.tags, parsed.Tags)
		})
	}
}

func TestMeetingTitle(t *testing.T) {
	parser := New()

	require.Equal(
		t,
		"con el equipo de ventas 10",
		parser.MeetingTitle(context.Background(), "reunión con el equipo de ventas mañana a las 10"),
	)
	require.Equal(
		t,
		"Reunión importante",
		parser.MeetingTitle(context.Background(), "reunión mañana"),
	)
}
