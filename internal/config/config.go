// Package config loads the process-wide configuration from the environment
// (optionally seeded from a .env file). It is read once at startup and
// treated as immutable for the process lifetime.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the full process configuration
type Config struct {
	Env  string
	Port int

	Log      LogConfig
	Telegram TelegramConfig
	Notion   NotionConfig

	// AllowedUsers is the comma-separated ALLOWED_USERS variable, split
	// and trimmed. Only these usernames may run restricted commands.
	AllowedUsers []string
}

type LogConfig struct {
	Level  string
	Format string
}

type TelegramConfig struct {
	Token string
}

type NotionConfig struct {
	Token      string
	CalendarID string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present; real environment variables
// always win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:  v.GetString("ENV"),
		Port: v.GetInt("PORT"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Telegram: TelegramConfig{
			Token: v.GetString("TELEGRAM_TOKEN"),
		},
		Notion: NotionConfig{
			Token:      v.GetString("NOTION_TOKEN"),
			CalendarID: v.GetString("NOTION_CALENDAR_ID"),
		},
		AllowedUsers: splitList(v.GetString("ALLOWED_USERS")),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// ValidateTelegram checks that the Telegram credential is present
func (c *Config) ValidateTelegram() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	return nil
}

// ValidateNotion checks that the Notion credential and calendar id are present
func (c *Config) ValidateNotion() error {
	if c.Notion.Token == "" {
		return fmt.Errorf("NOTION_TOKEN is required")
	}
	if c.Notion.CalendarID == "" {
		return fmt.Errorf("NOTION_CALENDAR_ID is required")
	}
	return nil
}
