package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dieortin/escultoide-bot/internal/config"
	"github.com/dieortin/escultoide-bot/internal/event"
	"github.com/dieortin/escultoide-bot/internal/notion"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Print the next upcoming calendar event",
		RunE:  runNext,
	}
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ValidateNotion(); err != nil {
		return err
	}

	client := notion.NewClient(cfg.Notion.Token, cfg.Notion.CalendarID)
	evt, err := client.NextEvent(cmd.Context())
	if errors.Is(err, notion.ErrNoUpcomingEvent) {
		fmt.Println("No upcoming events in the calendar")
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetching next event: %w", err)
	}

	fmt.Printf("%s, en %s el %s\n", evt.Title, evt.Location, event.Describe(evt.Date.Start()))
	return nil
}
