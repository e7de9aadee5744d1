package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from GAMELIB_* variables.
type Config struct {
	DataDir      string `env:"DATA_DIR"`
	StoreFile    string `env:"STORE_FILE" envDefault:"games_config.json"`
	SettingsFile string `env:"SETTINGS_FILE" envDefault:"config.json"`

	TileSize        float32       `env:"TILE_SIZE" envDefault:"150"`
	MaxColumns      int           `env:"MAX_COLUMNS" envDefault:"20"`
	MarqueeWidth    int           `env:"MARQUEE_WIDTH" envDefault:"16"`
	MarqueeInterval time.Duration `env:"MARQUEE_INTERVAL" envDefault:"300ms"`

	ScanExtensions []string `env:"SCAN_EXTENSIONS" envDefault:".exe" envSeparator:","`

	Runner  string `env:"RUNNER" envDefault:"umu-run"`
	Proton  string `env:"PROTON"`
	Artwork bool   `env:"ARTWORK" envDefault:"true"`
	Watch   bool   `env:"WATCH" envDefault:"true"`
}

const envPrefix = "GAMELIB_"

// Load parses the environment and fills in the data directory.
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := executableDir()
		if err != nil {
			return nil, fmt.Errorf("locate data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("data dir is empty"))
	}
	if c.StoreFile == "" {
		errs = append(errs, errors.New("store file is empty"))
	}
	if c.SettingsFile == "" {
		errs = append(errs, errors.New("settings file is empty"))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %v", c.TileSize))
	}
	if c.MaxColumns < 1 {
		errs = append(errs, fmt.Errorf("max columns must be at least 1, got %d", c.MaxColumns))
	}
	if c.MarqueeWidth < 1 {
		errs = append(errs, fmt.Errorf("marquee width must be at least 1, got %d", c.MarqueeWidth))
	}
	if c.MarqueeInterval <= 0 {
		errs = append(errs, fmt.Errorf("marquee interval must be positive, got %v", c.MarqueeInterval))
	}
	if len(c.ScanExtensions) == 0 {
		errs = append(errs, errors.New("no scan extensions"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) StorePath() string {
	return c.resolve(c.StoreFile)
}

func (c *Config) SettingsPath() string {
	return c.resolve(c.SettingsFile)
}

// ImagesDir holds cached artwork and the copied background image.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.DataDir, "images")
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
