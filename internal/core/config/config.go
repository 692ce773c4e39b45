package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BIGSISTER_"

// Config represents the top-level application config.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Logging    LoggingConfig    `koanf:"logging"`
	Directory  DirectoryConfig  `koanf:"directory"`
	Privacy    PrivacyConfig    `koanf:"privacy"`
	Ingestion  IngestionConfig  `koanf:"ingestion"`
	Escalation EscalationConfig `koanf:"escalation"`
	Notify     NotifyConfig     `koanf:"notify"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Type         string        `koanf:"type"` // postgres | badger
	DSN          string        `koanf:"dsn"`
	BadgerPath   string        `koanf:"badger_path"` // empty runs badger in memory
	MaxOpenConns int           `koanf:"max_open_conns"`
	MaxIdleConns int           `koanf:"max_idle_conns"`
	AutoMigrate  bool          `koanf:"auto_migrate"`
	OpTimeout    time.Duration `koanf:"op_timeout"`
}

type LoggingConfig struct {
	Level string `koanf:"level"`
}

type DirectoryConfig struct {
	Path string `koanf:"path"`
}

type PrivacyConfig struct {
	// DeniedChannels are never searched by phrase queries.
	DeniedChannels []int64 `koanf:"denied_channels"`
}

type IngestionConfig struct {
	GuildID       int64 `koanf:"guild_id"` // 0 accepts every guild
	DeriveModlogs bool  `koanf:"derive_modlogs"`
}

type EscalationConfig struct {
	Every          int `koanf:"every"`
	LookbackMonths int `koanf:"lookback_months"`
}

type NotifyConfig struct {
	Type string `koanf:"type"` // log | telegram

	// Timeout bounds one escalation delivery, including the Telegram HTTP call.
	Timeout  time.Duration  `koanf:"timeout"`
	Telegram TelegramConfig `koanf:"telegram"`
}

type TelegramConfig struct {
	Token   string `koanf:"token"`
	ChatID  int64  `koanf:"chat_id"`
	Mention string `koanf:"mention"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Database.Type {
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	case "badger":
	default:
		return fmt.Errorf("unsupported database.type %q (must be postgres or badger)", c.Database.Type)
	}
	if c.Database.OpTimeout <= 0 {
		return fmt.Errorf("database.op_timeout must be > 0")
	}

	if !logLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging.level %q (must be debug, info, warn or error)", c.Logging.Level)
	}
	if strings.TrimSpace(c.Directory.Path) == "" {
		return fmt.Errorf("directory.path is required")
	}
	if c.Ingestion.GuildID < 0 {
		return fmt.Errorf("ingestion.guild_id must be >= 0")
	}
	for _, id := range c.Privacy.DeniedChannels {
		if id <= 0 {
			return fmt.Errorf("privacy.denied_channels contains invalid id %d", id)
		}
	}

	if c.Escalation.Every <= 0 {
		return fmt.Errorf("escalation.every must be > 0")
	}
	if c.Escalation.LookbackMonths <= 0 {
		return fmt.Errorf("escalation.lookback_months must be > 0")
	}

	if c.Notify.Timeout <= 0 {
		return fmt.Errorf("notify.timeout must be > 0")
	}
	switch c.Notify.Type {
	case "log":
	case "telegram":
		if strings.TrimSpace(c.Notify.Telegram.Token) == "" {
			return fmt.Errorf("notify.telegram.token is required")
		}
		if c.Notify.Telegram.ChatID == 0 {
			return fmt.Errorf("notify.telegram.chat_id is required")
		}
	default:
		return fmt.Errorf("unsupported notify.type %q (must be log or telegram)", c.Notify.Type)
	}

	return nil
}

// Load parses config from defaults, file and env, then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                8080,
		"server.host":                "0.0.0.0",
		"server.max_body_size_mb":    1,
		"server.mode":                "release",
		"database.type":              "postgres",
		"database.dsn":               "postgres://localhost:5432/bigsister?sslmode=disable",
		"database.badger_path":       "",
		"database.max_open_conns":    25,
		"database.max_idle_conns":    25,
		"database.auto_migrate":      true,
		"database.op_timeout":        "10s",
		"logging.level":              "info",
		"directory.path":             "./config/directory.yaml",
		"privacy.denied_channels":    []int64{},
		"ingestion.guild_id":         0,
		"ingestion.derive_modlogs":   false,
		"escalation.every":           5,
		"escalation.lookback_months": 6,
		"notify.type":                "log",
		"notify.timeout":             "10s",
		"notify.telegram.mention":    "@mods",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
