// Package interactionanalyzer detects what the user wants from a message
// with ordered keyword tables, plus the loose scraps of structure (a day
// word, an hour, an event type) the conversational flow needs.
package interactionanalyzer

import (
	"context"
	"regexp"
	"strings"

	c "assistant/internal/core/domain/common"
	"assistant/internal/core/domain/interaction"
)

var intentTable = []struct {
	intent   interaction.Intent
	keywords []string
}{
	{intent: interaction.IntentGreeting, keywords: []string{"hola", "hi", "buenos días", "buenas tardes"}},
	{intent: interaction.IntentScheduleMeeting, keywords: []string{"reunión", "reunion", "meeting", "programar reunión"}},
	{intent: interaction.IntentCreateReminder, keywords: []string{"recordar", "recordatorio", "reminder", "no olvidar"}},
	{intent: interaction.IntentCreateTask, keywords: []string{"tarea", "task", "pendiente", "por hacer"}},
	{intent: interaction.IntentAskHelp, keywords: []string{"ayuda", "help", "qué puedes hacer"}},
	{intent: interaction.IntentThankYou, keywords: []string{"gracias", "thanks", "thank you"}},
}

var dayKeywords = []string{
	"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo", "hoy", "mañana",
}

var eventTypeTable = []struct {
	keyword   string
	eventType string
}{
	{keyword: "reunión", eventType: "meeting"},
	{keyword: "reunion", eventType: "meeting"},
	{keyword: "llamada", eventType: "call"},
	{keyword: "tarea", eventType: "task"},
	{keyword: "recordatorio", eventType: "reminder"},
	{keyword: "evento", eventType: "event"},
}

var timePattern = regexp.MustCompile(`(\d{1,2}):?(\d{2})?\s*(am|pm|hrs)?`)

type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Classify(ctx context.Context, text string) interaction.Intent {
	lower := strings.ToLower(text)
	for _, entry := range intentTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.intent
			}
		}
	}
	return interaction.IntentUnknown
}

func (a *Analyzer) Extract(ctx context.Context, text string) (entities interaction.Entities) {
	lower := strings.ToLower(text)

	if match := timePattern.FindStringSubmatch(lower); match != nil {
		entities.Time = c.NewOptional(match[1]+":00", true)
	}
	for _, day := range dayKeywords {
		if strings.Contains(lower, day) {
			entities.Day = c.NewOptional(day, true)
			break
		}
	}
	for _, entry := range eventTypeTable {
		if strings.Contains(lower, entry.keyword) {
			entities.EventType = c.NewOptional(entry.eventType, true)
			break
		}
	}
	return entities
}
