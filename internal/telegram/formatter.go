package telegram

import (
	"fmt"
	"strings"

	"github.com/dieortin/escultoide-bot/internal/event"
)

// FormatEvent formats a calendar event as a Telegram HTML message
func FormatEvent(evt *event.Event) string {
	var msg strings.Builder

	// Title, underlined and bold
	msg.WriteString(fmt.Sprintf("<u><b>%s</b></u>\n", evt.Title))

	// Date description in Spanish
	msg.WriteString(fmt.Sprintf("⏱ %s\n", evt.Date))

	// Location
	msg.WriteString(fmt.Sprintf("📌 %s\n", evt.Location))

	// Participant count, only when someone signed up
	if evt.Participants > 0 {
		msg.WriteString(fmt.Sprintf("👼 <b>%d</b> educandos\n", evt.Participants))
	}

	// Attending scouters, with the noun pluralized by count
	word := "scouters"
	if len(evt.Scouters) == 1 {
		word = "scouter"
	}
	msg.WriteString(fmt.Sprintf("🧙 <b>%d</b> %s", len(evt.Scouters), word))
	if len(evt.Scouters) > 0 {
		msg.WriteString(fmt.Sprintf(": <i>%s</i>", strings.Join(evt.Scouters, ", ")))
	} else {
		msg.WriteString(": <i>Ninguno</i>")
	}
	msg.WriteString("\n")

	// Link back to the calendar entry
	msg.WriteString(fmt.Sprintf("<a href=\"%s\">Ver en Notion</a>", evt.URL))

	return msg.String()
}
