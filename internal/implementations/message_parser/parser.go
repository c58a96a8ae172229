// Package messageparser extracts reminder attributes from Spanish
// free-form messages with keyword tables. Titles are what remains of the
// message once the time words are cut out.
package messageparser

import (
	"context"
	"strings"

	"assistant/internal/core/domain/reminder"
)

var timeKeywords = []string{
	"mañana", "hoy", "lunes", "martes", "miércoles", "jueves", "viernes",
	"sábado", "domingo", "a las", "las", "pm", "am", "hrs", "horas",
}

var urgentKeywords = []string{"urgente", "importante", "crítico", "inmediato"}
var highKeywords = []string{"alto", "prioridad", "esencial"}
var lowKeywords = []string{"bajo", "cuando puedas", "sin prisa"}

var tagCategories = []struct {
	tag      string
	keywords []string
}{
	{tag: "trabajo", keywords: []string{"reunión", "oficina", "proyecto", "cliente", "jefe"}},
	{tag: "personal", keywords: []string{"casa", "familia", "amigos", "personal", "cita"}},
	{tag: "salud", keywords: []string{"doctor", "médico", "ejercicio", "gimnasio", "salud"}},
	{tag: "compras", keywords: []string{"comprar", "supermercado", "tienda", "mercado"}},
}

var meetingKeywords = []string{"reunión", "reunion", "meeting"}

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx context.Context, text string) reminder.ParsedMessage {
	return reminder.ParsedMessage{
		Title:    extractTitle(text, timeKeywords, "Recordatorio importante"),
		Priority: detectPriority(text),
		Tags:     extractTags(text),
	}
}

func (p *Parser) MeetingTitle(ctx context.Context, text string) string {
	keywords := append([]string{}, timeKeywords...)
	keywords = append(keywords, "reunión", "reunion")
	return extractTitle(text, keywords, "Reunión importante")
}

func extractTitle(text string, keywords []string, fallback string) string {
	title := text
	for _, keyword := range keywords {
		title = strings.ReplaceAll(title, keyword, "")
	}
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return fallback
	}
	return title
}

func detectPriority(text string) reminder.Priority {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, urgentKeywords):
		return reminder.PriorityUrgent
	case containsAny(lower, highKeywords):
		return reminder.PriorityHigh
	case containsAny(lower, lowKeywords):
		return reminder.PriorityLow
	default:
		return reminder.PriorityMedium
	}
}

func extractTags(text string) []string {
	lower := strings.ToLower(text)
	tags := []string{}
	for _, category := range tagCategories {
		if containsAny(lower, category.keywords) {
			tags = append(tags, category.tag)
		}
	}
	if containsAny(lower, meetingKeywords) {
		tags = append(tags, "reunión")
	}
	return tags
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
