package reminder

import (
	"fmt"
	"strings"

	dt "assistant/internal/core/domain/datetime"
)

const localTimeLayout = "02/01/2006 a las 15:04"

// FormatNotification renders the Telegram message for a fired tier. Due
// instants are shown in the user's local timezone; the stored form is never
// displayed directly.
func FormatNotification(r Reminder, tier Tier, clock *dt.Clock, now dt.UTC) string {
	due := r.DueAt.AsUTC()
	dueLocal := clock.ToLocal(due).Std().Format(localTimeLayout)

	var b strings.Builder
	switch tier {
	case TierApproaching:
		minutesUntil := int(due.Sub(now).Minutes())
		b.WriteString("🔔 <b>RECORDATORIO PRÓXIMO</b>\n\n")
		b.WriteString(fmt.Sprintf("<b>%s</b>\n", r.Title))
		if r.Description.IsPresent {
			b.WriteString(fmt.Sprintf("📝 %s\n", r.Description.Value))
		}
		b.WriteString(fmt.Sprintf("\n⏰ <b>Hora:</b> %s\n", dueLocal))
		b.WriteString(fmt.Sprintf("⏳ <i>Faltan %d minutos</i>", minutesUntil))
	case TierFinal:
		b.WriteString("⏰ <b>RECORDATORIO INMEDIATO</b>\n\n")
		b.WriteString(fmt.Sprintf("<b>%s</b>\n", r.Title))
		if r.Description.IsPresent {
			b.WriteString(fmt.Sprintf("📝 %s\n", r.Description.Value))
		}
		b.WriteString(fmt.Sprintf("\n🕐 <b>Es ahora:</b> %s", dueLocal))
		b.WriteString("\n\n✅ <i>Este recordatorio se ha completado automáticamente</i>")
	case TierOverdue:
		b.WriteString("🔔 <b>RECORDATORIO VENCIDO</b>\n\n")
		b.WriteString(fmt.Sprintf("<b>%s</b>\n", r.Title))
		if r.Description.IsPresent {
			b.WriteString(fmt.Sprintf("%s\n", r.Description.Value))
		}
		b.WriteString("\n⏰ <i>¡Este recordatorio ya venció!</i>")
	}
	return b.String()
}
