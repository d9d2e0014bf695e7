package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json defaults", cfg.Log)
	}
	if len(cfg.AllowedUsers) != 0 {
		t.Errorf("AllowedUsers = %v, want empty", cfg.AllowedUsers)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("PORT", "9000")
	t.Setenv("TELEGRAM_TOKEN", "tg-token")
	t.Setenv("NOTION_TOKEN", "notion-token")
	t.Setenv("NOTION_CALENDAR_ID", "cal123")
	t.Setenv("ALLOWED_USERS", "alice, bob,,carol")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.Telegram.Token != "tg-token" {
		t.Errorf("Telegram.Token = %q", cfg.Telegram.Token)
	}
	if cfg.Notion.Token != "notion-token" || cfg.Notion.CalendarID != "cal123" {
		t.Errorf("Notion = %+v", cfg.Notion)
	}

	want := []string{"alice", "bob", "carol"}
	if len(cfg.AllowedUsers) != len(want) {
		t.Fatalf("AllowedUsers = %v, want %v", cfg.AllowedUsers, want)
	}
	for i, username := range want {
		if cfg.AllowedUsers[i] != username {
			t.Errorf("AllowedUsers[%d] = %q, want %q", i, cfg.AllowedUsers[i], username)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ValidateTelegram(); err == nil {
		t.Error("ValidateTelegram() with no token expected error")
	}
	if err := cfg.ValidateNotion(); err == nil {
		t.Error("ValidateNotion() with no credentials expected error")
	}

	cfg.Telegram.Token = "t"
	cfg.Notion.Token = "n"
	if err := cfg.ValidateTelegram(); err != nil {
		t.Errorf("ValidateTelegram() unexpected error: %v", err)
	}
	if err := cfg.ValidateNotion(); err == nil {
		t.Error("ValidateNotion() without calendar id expected error")
	}

	cfg.Notion.CalendarID = "c"
	if err := cfg.ValidateNotion(); err != nil {
		t.Errorf("ValidateNotion() unexpected error: %v", err)
	}
}
