package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dieortin/escultoide-bot/internal/config"
	"github.com/dieortin/escultoide-bot/internal/telegram"
)

var flagWebhookURL string

func newWebhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage the Telegram webhook registration",
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Point the Telegram webhook at this bot's endpoint",
		RunE:  runWebhookSet,
	}
	set.Flags().StringVar(&flagWebhookURL, "url", "", "Public URL of the webhook endpoint (required)")
	set.MarkFlagRequired("url") //nolint:errcheck

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove the Telegram webhook registration",
		RunE:  runWebhookClear,
	}

	cmd.AddCommand(set)
	cmd.AddCommand(clear)

	return cmd
}

func webhookClient() (*telegram.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ValidateTelegram(); err != nil {
		return nil, err
	}
	return telegram.NewClient(cfg.Telegram.Token)
}

func runWebhookSet(cmd *cobra.Command, args []string) error {
	client, err := webhookClient()
	if err != nil {
		return err
	}
	if err := client.SetWebhook(cmd.Context(), flagWebhookURL); err != nil {
		return fmt.Errorf("setting webhook: %w", err)
	}
	fmt.Printf("Webhook set to %s\n", flagWebhookURL)
	return nil
}

func runWebhookClear(cmd *cobra.Command, args []string) error {
	client, err := webhookClient()
	if err != nil {
		return err
	}
	if err := client.ClearWebhook(cmd.Context()); err != nil {
		return fmt.Errorf("clearing webhook: %w", err)
	}
	fmt.Println("Webhook cleared")
	return nil
}
