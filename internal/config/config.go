package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/platter/internal/nav"
)

// Config holds the portal's runtime settings.
type Config struct {
	StartPage     nav.Page
	LogFile       string
	LogLevel      string
	ActivityLines int
	ActivityPoll  time.Duration
}

const (
	defaultConfigPath    = "~/.config/platter/config.toml"
	defaultLogFile       = "~/.local/state/platter/platter.log"
	defaultLogLevel      = "info"
	defaultActivityLines = 200
	defaultActivityPoll  = 2 * time.Second

	// logFileOff as log_file disables the session log.
	logFileOff = "off"
)

type rawConfig struct {
	StartPage           string `toml:"start_page"`
	LogFile             string `toml:"log_file"`
	LogLevel            string `toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	ActivityLines       int    `toml:"activity_lines" validate:"gte=0,lte=10000"`
	ActivityPollSeconds int    `toml:"activity_poll_seconds" validate:"gte=0,lte=3600"`
}

var validate = validator.New()

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		StartPage:     nav.Home,
		LogFile:       mustExpand(defaultLogFile),
		LogLevel:      defaultLogLevel,
		ActivityLines: defaultActivityLines,
		ActivityPoll:  defaultActivityPoll,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	raw.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	if err := validate.Struct(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if page := strings.TrimSpace(raw.StartPage); page != "" {
		p, ok := nav.Parse(page)
		if !ok {
			return Config{}, fmt.Errorf("invalid config: unknown start_page %q", page)
		}
		cfg.StartPage = p
	}
	switch logFile := strings.TrimSpace(raw.LogFile); {
	case strings.EqualFold(logFile, logFileOff):
		cfg.LogFile = ""
	case logFile != "":
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}
	if raw.ActivityLines > 0 {
		cfg.ActivityLines = raw.ActivityLines
	}
	if raw.ActivityPollSeconds > 0 {
		cfg.ActivityPoll = time.Duration(raw.ActivityPollSeconds) * time.Second
	}
	return cfg, nil
}

// DefaultPath returns the config file consulted when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
