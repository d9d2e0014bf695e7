// Package bot implements the update processing pipeline: parsing inbound
// Telegram webhook payloads, authorizing senders against the allow-list and
// dispatching commands to their registered handlers.
//
// Every update runs the same cycle: parse, authorize, execute, respond.
// There is no state shared between updates; each one concludes with exactly
// one outcome that maps to a bounded HTTP status code.
package bot
