package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/misterclayt0n/liftlog/internal/utils"
)

type Config struct {
	DB  DBConfig  `toml:"database"`
	Log LogConfig `toml:"log"`
	App AppConfig `toml:"app"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type LogConfig struct {
	Level    string `toml:"level"`
	File     string `toml:"file"`
	ToStdout bool   `toml:"to_stdout"`
	JSON     bool   `toml:"json"`
}

type AppConfig struct {
	WriteDelayMs int     `toml:"write_delay_ms"`
	UndoWindowMs int     `toml:"undo_window_ms"`
	BarWeight    float64 `toml:"bar_weight"`
}

func (a AppConfig) WriteDelay() time.Duration {
	return time.Duration(a.WriteDelayMs) * time.Millisecond
}

func (a AppConfig) UndoWindow() time.Duration {
	return time.Duration(a.UndoWindowMs) * time.Millisecond
}

func Default() *Config {
	dbPath, err := utils.DefaultDatabasePath()
	if err != nil {
		dbPath = "liftlog.db"
	}
	return &Config{
		DB:  DBConfig{ConnectionString: "file:" + dbPath},
		Log: LogConfig{Level: "warn"},
		App: AppConfig{
			WriteDelayMs: 500,
			UndoWindowMs: 4000,
			BarWeight:    45,
		},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from path, or the default location when path
// is empty. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// An optional .env in the working directory feeds the overrides below.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if url := os.Getenv("LIFTLOG_DB_URL"); url != "" {
		cfg.DB.ConnectionString = url
	}
	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}
	if lvl := os.Getenv("LIFTLOG_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}

	if cfg.App.WriteDelayMs < 0 {
		cfg.App.WriteDelayMs = 0
	}
	if cfg.App.UndoWindowMs <= 0 {
		cfg.App.UndoWindowMs = 4000
	}
	if cfg.App.BarWeight <= 0 {
		cfg.App.BarWeight = 45
	}
	return cfg, nil
}

// Save writes cfg as TOML to path, creating the directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
