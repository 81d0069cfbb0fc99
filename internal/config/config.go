package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/spf13/viper"
)

// Defaults used when neither the config file nor the environment sets a value.
const (
	DefaultDatabasePath = "$HOME/.local/share/txnview/txnview.db"
	DefaultLogFile      = "$HOME/.local/share/txnview/txnview.log"
	DefaultPageSize     = 5
)

// Config holds the resolved application configuration.
type Config struct {
	DatabasePath string
	LogLevel     string
	LogFormat    string
	LogFile      string
	FetchDelay   time.Duration
	PageSize     int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("fetch.page_size", DefaultPageSize)
	v.SetDefault("fetch.delay", "0s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", DefaultLogFile)
}

// Load resolves configuration from v. Paths are expanded and values validated.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		DatabasePath: ExpandPath(v.GetString("database.path")),
		PageSize:     v.GetInt("fetch.page_size"),
		FetchDelay:   v.GetDuration("fetch.delay"),
		LogLevel:     v.GetString("logging.level"),
		LogFormat:    v.GetString("logging.format"),
		LogFile:      ExpandPath(v.GetString("logging.file")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database.path is empty", common.ErrInvalidConfig)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: fetch.page_size must be positive, got %d", common.ErrInvalidConfig, c.PageSize)
	}
	if c.FetchDelay < 0 {
		return fmt.Errorf("%w: fetch.delay cannot be negative", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
