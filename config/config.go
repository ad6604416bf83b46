package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"loa/game"
	"loa/meta"
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "loa/config.json"
)

type PlayerKind string

const (
	Human  PlayerKind = "human"
	Random PlayerKind = "random"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Config struct {
	MoveLimit   int        `json:"move_limit"` // Moves per side before a draw
	Black       PlayerKind `json:"black"`
	White       PlayerKind `json:"white"`
	Seed        uint64     `json:"seed"`
	MaxAttempts int        `json:"max_attempts"`
	Games       int        `json:"games"` // Games per self-play run
	LogLevel    string     `json:"log_level"`
	MetricsDir  string     `json:"metrics_dir"` // Empty disables metrics output
}

var DefaultConfig = Config{
	MoveLimit:   game.DefaultMoveLimit,
	Black:       Human,
	White:       Random,
	Seed:        meta.DEFAULT_SEED,
	MaxAttempts: meta.MAX_ATTEMPTS,
	Games:       meta.SELF_PLAY_GAMES,
	LogLevel:    "info",
}

// InitConfig loads the user's config file if there is one, falling back to defaults.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the config at path over the defaults. The file must exist.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.MoveLimit <= 0 {
		return &InvalidConfig{fmt.Sprintf("move limit must be positive, got %d", c.MoveLimit)}
	}
	for _, kind := range []PlayerKind{c.Black, c.White} {
		if kind != Human && kind != Random {
			return &InvalidConfig{fmt.Sprintf("unknown player kind %q", kind)}
		}
	}
	if c.MaxAttempts <= 0 {
		return &InvalidConfig{fmt.Sprintf("max attempts must be positive, got %d", c.MaxAttempts)}
	}
	if c.Games <= 0 {
		return &InvalidConfig{fmt.Sprintf("games must be positive, got %d", c.Games)}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("bad log level %q", c.LogLevel)}
	}
	return nil
}

// Level is the configured log level. Call Validate first.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Save writes c to the user's config directory and returns the path written.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("failed to locate config file: %w", err)
	}
	return absPath, SaveTo(absPath, c)
}

// SaveTo writes c to path as indented JSON.
func SaveTo(path string, c *Config) error {
	return saveCfgFile(path, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
