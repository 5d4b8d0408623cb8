package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings and flags.
type Config struct {
	DSN         string        `env:"DSN"`
	LogFile     string        `env:"LOG"`
	Listen      string        `env:"LISTEN" envDefault:":8080"`
	Ephemeral   bool          `env:"EPHEMERAL"`
	NoIntro     bool          `env:"NO_INTRO"`
	PeakDelay   time.Duration `env:"PEAK_DELAY" envDefault:"450ms"`
	SettleDelay time.Duration `env:"SETTLE_DELAY" envDefault:"450ms"`
	SplashHold  time.Duration `env:"SPLASH_HOLD" envDefault:"2500ms"`
}

const envPrefix = "SMALLHEATH_"

// DataDir is where the default database and log file live.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".smallheath"
	}
	return filepath.Join(home, ".smallheath")
}

// Load builds a Config from defaults and SMALLHEATH_* environment variables.
// Flags are applied by the caller on top of the result.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DSN == "" {
		cfg.DSN = "sqlite3://" + filepath.Join(DataDir(), "ledger.db")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(DataDir(), "smallheath.log")
	}
	return cfg, nil
}

// Validate checks the settings the rest of the program relies on.
func (c Config) Validate() error {
	if !c.Ephemeral {
		if _, _, err := SplitDSN(c.DSN); err != nil {
			return err
		}
	}
	if c.PeakDelay <= 0 || c.SettleDelay <= 0 {
		return fmt.Errorf("transition delays must be positive")
	}
	if c.SplashHold < 0 {
		return fmt.Errorf("splash hold must not be negative")
	}
	return nil
}

// SplitDSN returns the driver name and the driver-specific address for dsn.
// Postgres DSNs are passed through whole; sqlite3:// DSNs yield a file path.
func SplitDSN(dsn string) (driver, addr string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", dsn, nil
	case strings.HasPrefix(dsn, "sqlite3://"):
		path := strings.TrimPrefix(dsn, "sqlite3://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite3 DSN has no path")
		}
		return "sqlite3", path, nil
	case dsn == "":
		return "", "", fmt.Errorf("missing DSN")
	default:
		return "", "", fmt.Errorf("unsupported DSN %q: use postgres:// or sqlite3://", dsn)
	}
}
