package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assistant/internal/app/deps"
	"assistant/internal/app/services"
	"assistant/internal/core/domain/logging"
	checkduereminders "assistant/internal/core/services/check_due_reminders"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.RemindersCheckPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic reminder checker.",
		logging.Entry("periodSeconds", (deps.Config.RemindersCheckPeriod).Seconds()),
	)
	if err := deps.MessageSender.Send(
		context.Background(),
		"🤖 <b>Asistente iniciado</b>\nEl verificador de recordatorios está activo.",
	); err != nil {
		log.Warning(context.Background(), "Could not send the startup notice.", logging.Entry("err", err))
	}

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic reminder checker.")
			break loop
		case <-ticker.C:
			log.Info(context.Background(), "Launching due reminders check.")
			result, err := services.CheckDueReminders.Run(context.Background(), checkduereminders.Input{})
			if err != nil {
				log.Error(context.Background(), "Check service returned an error.", logging.Entry("err", err))
				// Back off so a struggling database is not hammered every tick.
				select {
				case <-stopCh:
					log.Info(context.Background(), "Stopping periodic reminder checker.")
					break loop
				case <-time.After(deps.Config.RemindersCheckBackoff):
				}
				continue
			}
			log.Info(
				context.Background(),
				"Due reminders check finished.",
				logging.Entry("approachingSent", result.ApproachingSent),
				logging.Entry("finalCompleted", result.FinalCompleted),
				logging.Entry("overdueSent", result.OverdueSent),
			)
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
