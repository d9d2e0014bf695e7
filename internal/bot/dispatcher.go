package bot

import (
	"context"

	"go.uber.org/zap"
)

// HandlerFunc processes one parsed update addressed to its command
type HandlerFunc func(ctx context.Context, upd *Update) error

type command struct {
	name       string
	restricted bool
	handler    HandlerFunc
}

// Dispatcher routes parsed updates to registered command handlers, applying
// the allow-list gate before restricted handlers run. The command set is
// fixed after registration; dispatching keeps no state across updates.
type Dispatcher struct {
	commands  map[string]command
	allowlist Allowlist
	log       *zap.Logger
}

// NewDispatcher creates a dispatcher with no registered commands
func NewDispatcher(allowlist Allowlist, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		commands:  make(map[string]command),
		allowlist: allowlist,
		log:       log,
	}
}

// Register binds a command name to a handler. Restricted commands only run
// for allow-listed senders.
func (d *Dispatcher) Register(name string, restricted bool, handler HandlerFunc) {
	d.commands[name] = command{name: name, restricted: restricted, handler: handler}
}

// Dispatch runs the full cycle for one inbound webhook body and returns its
// outcome. The handler is invoked at most once; any error it returns is
// logged here and collapsed into an internal-error outcome, never into the
// response.
func (d *Dispatcher) Dispatch(ctx context.Context, payload []byte) Outcome {
	upd, err := ParseUpdate(payload)
	if err != nil {
		d.log.Warn("discarding unparsable update", zap.Error(err))
		return OutcomeBadRequest
	}

	if upd.Command == "" {
		// Plain messages and non-message updates are acknowledged without
		// running anything.
		return OutcomeSuccess
	}

	cmd, ok := d.commands[upd.Command]
	if !ok {
		d.log.Debug("ignoring unregistered command",
			zap.String("command", upd.Command),
			zap.Int64("chat_id", upd.ChatID))
		return OutcomeSuccess
	}

	if cmd.restricted && !d.allowlist.Allows(upd.Username) {
		d.log.Warn("rejected unauthorized command",
			zap.String("username", upd.Username),
			zap.String("command", cmd.name))
		return OutcomeUnauthorized
	}

	if err := cmd.handler(ctx, upd); err != nil {
		d.log.Error("command handler failed",
			zap.String("command", cmd.name),
			zap.Error(err))
		return OutcomeInternalError
	}

	return OutcomeSuccess
}
