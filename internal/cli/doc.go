// Package cli defines the command line interface: running the webhook
// server, printing the next calendar event and managing the Telegram
// webhook registration.
package cli
