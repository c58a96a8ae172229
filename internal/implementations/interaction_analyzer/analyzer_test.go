package interactionanalyzer

import (
	"context"
	"testing"

	"assistant/internal/core/domain/interaction"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	analyzer := New()

	cases := []struct {
		text     string
		expected interaction.Intent
	}{
		{text: "Hola, ¿cómo estás?", expected: interaction.IntentGreeting},
		{text: "programar reunión con el equipo", expected: interaction.IntentScheduleMeeting},
		{text: "recordarme llamar a Juan", expected: interaction.IntentCreateReminder},
		{text: "no olvidar pagar el alquiler", expected: interaction.IntentCreateReminder},
		{text: "agregar tarea pendiente", expected: interaction.IntentCreateTask},
		{text: "¿qué puedes hacer?", expected: interaction.IntentAskHelp},
		{text: "muchas gracias", expected: interaction.IntentThankYou},
		{text: "asdf qwerty", expected: interaction.IntentUnknown},
		// Greeting outranks everything else in the table.
		{text: "hola, recordarme algo", expected: interaction.IntentGreeting},
	}

	for _, testcase := range cases {
		t.Run(testcase.text, func(t *testing.T) {
			require.Equal(t, testcase.expected, analyzer.Classify(context.Background(), testcase.text))
		})
	}
}

func TestExtract(t *testing.T) {
	analyzer := New()

	entities := analyzer.Extract(context.Background(), "Reunión el viernes a las 3 pm")
	require.True(t, entities.Time.IsPresent)
	require.Equal(t, "3:00", entities.Time.Value)
	require.True(t, entities.Day.IsPresent)
	require.Equal(t, "viernes", entities.Day.Value)
	require.True(t, entities.EventType.IsPresent)
	require.Equal(t, "meeting", entities.EventType.Value)

	empty := analyzer.Extract(context.Background(), "algo sin estructura")
	require.False(t, empty.Time.IsPresent)
	require.False(t, empty.Day.IsPresent)
	require.False(t, empty.EventType.IsPresent)
}
