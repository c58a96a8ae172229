package app

import (
	"net/http"

	"assistant/internal/app/deps"
	"assistant/internal/app/services"
	handlerEvents "assistant/internal/http/handlers/events"
	handlerHealth "assistant/internal/http/handlers/health"
	handlerInteract "assistant/internal/http/handlers/interact"
	createreminder "assistant/internal/http/handlers/reminders/create_reminder"
	listuserreminders "assistant/internal/http/handlers/reminders/list_user_reminders"
	updatereminderstatus "assistant/internal/http/handlers/reminders/update_reminder_status"
	handlerStats "assistant/internal/http/handlers/stats"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder, s.CreateReminderFromText))
	reminderRouter.Method(
		http.MethodPut,
		"/{reminderID:[0-9]+}/status",
		updatereminderstatus.New(s.UpdateReminderStatus),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Method(http.MethodPost, "/interact", handlerInteract.New(s.Interact))
	router.Method(http.MethodGet, "/users/{userID}/reminders", listuserreminders.New(s.ListUserReminders))
	router.Mount("/reminders", reminderRouter)
	router.Method(http.MethodGet, "/events", handlerEvents.New(deps.Logger, deps.SseServer))
	router.Method(http.MethodGet, "/stats", handlerStats.New(s.GetStats))
	router.Method(http.MethodGet, "/health", handlerHealth.New(deps.Clock))

	return &http.Server{
		Handler: router,
		Addr:    deps.Config.HTTPAddress,
	}
}
