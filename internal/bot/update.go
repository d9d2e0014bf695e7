package bot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrBadPayload is returned when an inbound body is not a recognizable
// Telegram update.
var ErrBadPayload = errors.New("payload is not a recognized telegram update")

// Update is one parsed inbound update. Command is empty when the update
// carries no message or the message text addresses no command.
type Update struct {
	ID       int64
	ChatID   int64
	Username string
	Text     string
	Command  string
}

// Wire shapes of the Telegram update payload. UpdateID is a pointer so a
// body without the field can be told apart from update id 0.
type wireUpdate struct {
	UpdateID *int64       `json:"update_id"`
	Message  *wireMessage `json:"message"`
}

type wireMessage struct {
	MessageID int64        `json:"message_id"`
	From      *wireUser    `json:"from"`
	Chat      *wireChat    `json:"chat"`
	Text      string       `json:"text"`
	Entities  []wireEntity `json:"entities"`
}

type wireUser struct {
	Username string `json:"username"`
}

type wireChat struct {
	ID int64 `json:"id"`
}

type wireEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// ParseUpdate converts a raw webhook body into an Update. Bodies that are
// not JSON or lack the update shape fail with ErrBadPayload; an update
// without a message parses fine and simply addresses no command.
func ParseUpdate(payload []byte) (*Update, error) {
	var wire wireUpdate
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if wire.UpdateID == nil {
		return nil, fmt.Errorf("%w: missing update_id", ErrBadPayload)
	}

	upd := &Update{ID: *wire.UpdateID}
	if wire.Message == nil {
		return upd, nil
	}

	upd.Text = wire.Message.Text
	if wire.Message.Chat != nil {
		upd.ChatID = wire.Message.Chat.ID
	}
	if wire.Message.From != nil {
		upd.Username = wire.Message.From.Username
	}
	upd.Command = commandName(wire.Message.Text, wire.Message.Entities)

	return upd, nil
}

// commandName extracts the command a message addresses, or "" when there is
// none. Telegram marks commands with a bot_command entity at offset 0; the
// leading slash prefix works as a fallback for payloads without entity
// metadata. A "@botname" suffix is stripped either way.
func commandName(text string, entities []wireEntity) string {
	name := ""
	for _, entity := range entities {
		if entity.Type == "bot_command" && entity.Offset == 0 && entity.Length <= len(text) {
			name = text[:entity.Length]
			break
		}
	}
	if name == "" && strings.HasPrefix(text, "/") {
		name, _, _ = strings.Cut(text, " ")
	}
	if !strings.HasPrefix(name, "/") {
		return ""
	}

	name = strings.TrimPrefix(name, "/")
	name, _, _ = strings.Cut(name, "@")
	return name
}
