package bot

import (
	"context"
	"fmt"

	"github.com/dieortin/escultoide-bot/internal/event"
	"github.com/dieortin/escultoide-bot/internal/telegram"
)

// Registered command names
const (
	CommandEcho      = "echo"
	CommandNextEvent = "proximo"
)

// Sender delivers replies to a Telegram chat
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendHTML(ctx context.Context, chatID int64, text string) error
}

// EventSource returns the next upcoming calendar event
type EventSource interface {
	NextEvent(ctx context.Context) (*event.Event, error)
}

// RegisterCommands registers the bot's command set: the public echo command
// and the restricted next-event command.
func RegisterCommands(d *Dispatcher, sender Sender, source EventSource) {
	d.Register(CommandEcho, false, EchoHandler(sender))
	d.Register(CommandNextEvent, true, NextEventHandler(sender, source))
}

// EchoHandler replies with the sender, the chat and the original text
func EchoHandler(sender Sender) HandlerFunc {
	return func(ctx context.Context, upd *Update) error {
		reply := fmt.Sprintf("Received message from %s in chat %d:\n%s",
			upd.Username, upd.ChatID, upd.Text)
		return sender.SendMessage(ctx, upd.ChatID, reply)
	}
}

// NextEventHandler fetches the next calendar event and sends it to the chat
// as a formatted HTML message. Failures propagate to the dispatcher's
// execute boundary.
func NextEventHandler(sender Sender, source EventSource) HandlerFunc {
	return func(ctx context.Context, upd *Update) error {
		evt, err := source.NextEvent(ctx)
		if err != nil {
			return fmt.Errorf("fetching next event: %w", err)
		}
		return sender.SendHTML(ctx, upd.ChatID, telegram.FormatEvent(evt))
	}
}
