package interact

import (
	"context"
	"errors"
	"fmt"
	"time"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/event"
	"assistant/internal/core/domain/interaction"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"
	"assistant/internal/core/services"
	createreminder "assistant/internal/core/services/create_reminder"
	createreminderfromtext "assistant/internal/core/services/create_reminder_from_text"
	schedulemeeting "assistant/internal/core/services/schedule_meeting"
)

const localTimeLayout = "02/01/2006 a las 15:04"

type Input struct {
	UserID user.ID
	Text   string
}

func (i Input) GetRateLimitKey() string {
	return "interact::" + string(i.UserID)
}

type Result struct {
	Intent   interaction.Intent
	Response string
	Reminder c.Optional[reminder.Reminder]
	Event    c.Optional[event.ScheduledEvent]
}

type service struct {
	log                    logging.Logger
	analyzer               interaction.Analyzer
	clock                  *dt.Clock
	createFromTextService  services.Service[createreminderfromtext.Input, createreminder.Result]
	scheduleMeetingService services.Service[schedulemeeting.Input, schedulemeeting.Result]
}

func New(
	log logging.Logger,
	analyzer interaction.Analyzer,
	clock *dt.Clock,
	createFromTextService services.Service[createreminderfromtext.Input, createreminder.Result],
	scheduleMeetingService services.Service[schedulemeeting.Input, schedulemeeting.Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if analyzer == nil {
		panic(e.NewNilArgumentError("analyzer"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	if createFromTextService == nil {
		panic(e.NewNilArgumentError("createFromTextService"))
	}
	if scheduleMeetingService == nil {
		panic(e.NewNilArgumentError("scheduleMeetingService"))
	}
	return &service{
		log:                    log,
		analyzer:               analyzer,
		clock:                  clock,
		createFromTextService:  createFromTextService,
		scheduleMeetingService: scheduleMeetingService,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	intent := s.analyzer.Classify(ctx, input.Text)
	entities := s.analyzer.Extract(ctx, input.Text)
	s.log.Info(
		ctx,
		"Interaction analyzed.",
		logging.Entry("userID", input.UserID),
		logging.Entry("intent", intent),
		logging.Entry("entities", entities),
	)

	result.Intent = intent
	switch intent {
	case interaction.IntentGreeting:
		result.Response = "¡Hola! Soy tu asistente inteligente. Puedo ayudarte a programar reuniones, " +
			"crear recordatorios, y aprender de tus rutinas. ¿En qué te puedo ayudar hoy?"
	case interaction.IntentCreateReminder:
		return s.createReminder(ctx, input, result)
	case interaction.IntentScheduleMeeting:
		return s.scheduleMeeting(ctx, input, entities, result)
	case interaction.IntentCreateTask:
		result.Response = "📝 Anotado! He agregado esta tarea a tu lista. ¿Tiene alguna fecha límite específica?"
	case interaction.IntentAskHelp:
		result.Response = "🤖 **Puedo ayudarte con:**\n" +
			"• 📅 Programar reuniones y eventos\n" +
			"• 🔔 Crear recordatorios inteligentes\n" +
			"• 📝 Gestionar tus tareas pendientes\n" +
			"• 🧠 Aprender de tus rutinas de trabajo\n" +
			"• ⏰ Predecir tus necesidades futuras\n\n" +
			"Solo dime qué necesitas en lenguaje natural!"
	case interaction.IntentThankYou:
		result.Response = "¡De nada! Estoy aquí para hacer tu día más productivo. ¿Hay algo más en lo que pueda ayudarte?"
	default:
		result.Response = "🤔 Interesante! Todavía estoy aprendiendo a entender solicitudes como esta. " +
			"¿Podrías reformularlo de otra manera? Por ejemplo: " +
			"'Programar reunión mañana a las 3 PM' o 'Recordarme llamar a Juan'."
	}
	return result, nil
}

func (s *service) createReminder(ctx context.Context, input Input, result Result) (Result, error) {
	created, err := s.createFromTextService.Run(ctx, createreminderfromtext.Input{
		UserID: input.UserID,
		Text:   input.Text,
	})
	if err != nil {
		if errors.Is(err, reminder.ErrNaturalTimeParsing) {
			result.Response = "❌ No pude entender la fecha y hora. ¿Podrías ser más específico? " +
				"Ej: 'mañana a las 10 AM' o 'en 2 horas'"
			return result, nil
		}
		return result, err
	}

	due := created.Reminder.DueAt.AsUTC()
	dueLocal := s.clock.ToLocal(due).Std().Format(localTimeLayout)
	result.Reminder = c.NewOptional(created.Reminder, true)
	result.Response = fmt.Sprintf(
		"🔔 **Recordatorio creado:** '%s' para el %s (%s). ¡Te avisaré y se completará automáticamente!",
		created.Reminder.Title,
		dueLocal,
		timeUntilText(due.Sub(s.clock.NowUTC())),
	)
	return result, nil
}

func (s *service) scheduleMeeting(
	ctx context.Context,
	input Input,
	entities interaction.Entities,
	result Result,
) (Result, error) {
	switch {
	case entities.Day.IsPresent && entities.Time.IsPresent:
	case entities.Time.IsPresent:
		result.Response = fmt.Sprintf(
			"🕐 Entendido, programar reunión a las %s. ¿Para qué día sería?",
			entities.Time.Value,
		)
		return result, nil
	case entities.Day.IsPresent:
		result.Response = fmt.Sprintf("📅 Reunión programada para el %s. ¿A qué hora?", entities.Day.Value)
		return result, nil
	default:
		result.Response = "📅 Veo que quieres programar una reunión. ¿Para qué día y hora te gustaría?\n\n" +
			"**Ejemplos:**\n- 'Mañana a las 10 AM'\n- 'El viernes a las 3 PM'\n- 'Hoy a las 2 de la tarde'"
		return result, nil
	}

	scheduled, err := s.scheduleMeetingService.Run(ctx, schedulemeeting.Input{
		UserID: input.UserID,
		Text:   input.Text,
		Day:    entities.Day.Value,
		Time:   entities.Time.Value,
	})
	if err != nil {
		if errors.Is(err, reminder.ErrNaturalTimeParsing) {
			result.Response = fmt.Sprintf(
				"❌ No pude entender la fecha y hora '%s a las %s'. ¿Podrías ser más específico? Ej: 'mañana a las 10 AM'",
				entities.Day.Value,
				entities.Time.Value,
			)
			return result, nil
		}
		return result, err
	}

	startsAtLocal := s.clock.ToLocal(scheduled.Event.StartsAt.AsUTC()).Std()
	reminderAtLocal := s.clock.ToLocal(scheduled.Reminder.DueAt.AsUTC()).Std()
	result.Event = c.NewOptional(scheduled.Event, true)
	result.Reminder = c.NewOptional(scheduled.Reminder, true)
	result.Response = fmt.Sprintf(
		"✅ **¡Reunión programada!**\n\n📅 **%s**\n🕐 **Cuándo:** %s\n🔔 **Recordatorio:** %s (15 minutos antes)\n\n"+
			"¡El recordatorio ya está en tu lista!",
		scheduled.Event.Title,
		startsAtLocal.Format("Monday 02 de January a las 15:04"),
		reminderAtLocal.Format("15:04"),
	)
	return result, nil
}

func timeUntilText(until time.Duration) string {
	seconds := until.Seconds()
	switch {
	case seconds < 60:
		return "en menos de 1 minuto"
	case seconds < 3600:
		return fmt.Sprintf("en %d minutos", int(seconds/60))
	case seconds < 86400:
		return fmt.Sprintf("en %d horas", int(seconds/3600))
	default:
		return fmt.Sprintf("en %d días", int(seconds/86400))
	}
}
