// Package telegram provides the Telegram Bot API integration: sending
// replies to a chat, formatting event messages and managing the webhook
// registration.
//
// Messages use HTML parse mode with link previews disabled. Authentication
// requires a bot token (from @BotFather).
package telegram
