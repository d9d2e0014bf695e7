package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escultoide-bot",
		Short: "Telegram bot answering questions about the group's Notion calendar",
		Long: `Telegram bot for the scout group. It serves Telegram webhook updates,
answers the /proximo command with the next event from the Notion calendar
and offers maintenance commands for the webhook registration.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newNextCmd())
	cmd.AddCommand(newWebhookCmd())

	return cmd
}
