package cli

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/dieortin/escultoide-bot/internal/bot"
	"github.com/dieortin/escultoide-bot/internal/config"
	"github.com/dieortin/escultoide-bot/internal/logger"
	"github.com/dieortin/escultoide-bot/internal/notion"
	"github.com/dieortin/escultoide-bot/internal/server"
	"github.com/dieortin/escultoide-bot/internal/telegram"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the webhook server processing Telegram updates",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ValidateTelegram(); err != nil {
		return err
	}
	if err := cfg.ValidateNotion(); err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	sender, err := telegram.NewClient(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("initializing telegram client: %w", err)
	}
	source := notion.NewClient(cfg.Notion.Token, cfg.Notion.CalendarID)

	dispatcher := bot.NewDispatcher(bot.NewAllowlist(cfg.AllowedUsers), log)
	bot.RegisterCommands(dispatcher, sender, source)

	router := server.Router(log, dispatcher)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env,
		"allowed_users", len(cfg.AllowedUsers))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
