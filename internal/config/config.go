package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string         `yaml:"environment"`
	Server      ServerConfig   `yaml:"server"`
	Hypixel     HypixelConfig  `yaml:"hypixel"`
	Postgres    PostgresConfig `yaml:"postgres"`
	Log         LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port              string        `yaml:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`

	// LookupsPerMinute caps profile lookups per API key; 0 disables the cap.
	LookupsPerMinute int `yaml:"lookups_per_minute"`
	LookupBurst      int `yaml:"lookup_burst"`
}

type HypixelConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// PostgresConfig is optional. An empty DSN runs the service without the
// leaderboard.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Environment: "development",
		Server: ServerConfig{
			Port:              "9281",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			LookupsPerMinute:  60,
			LookupBurst:       10,
		},
		Hypixel: HypixelConfig{
			BaseURL:   "https://api.hypixel.net",
			Timeout:   10 * time.Second,
			UserAgent: "skyblock-facade",
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig reads the YAML file over the defaults, then applies environment
// overrides. A missing file is not an error; the service then runs on
// defaults and environment alone.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %s: %w", filename, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("LOOKUPS_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LOOKUPS_PER_MINUTE value: %w", err)
		}
		cfg.Server.LookupsPerMinute = n
	}
	if v := os.Getenv("HYPIXEL_BASE_URL"); v != "" {
		cfg.Hypixel.BaseURL = v
	}
	if v := os.Getenv("HYPIXEL_USER_AGENT"); v != "" {
		cfg.Hypixel.UserAgent = v
	}
	if v := os.Getenv("HYPIXEL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid HYPIXEL_TIMEOUT value: %w", err)
		}
		cfg.Hypixel.Timeout = d
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// SlogLevel maps the configured level name, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
