package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const appName = "terminalboard"

// Config holds application-level configuration.
type Config struct {
	BaseURL        string        `mapstructure:"base_url"`        // e.g. "http://localhost:8080"
	TokenPath      string        `mapstructure:"token"`           // Optional bearer token file
	LogFile        string        `mapstructure:"log_file"`        // Empty disables logging
	LogLevel       string        `mapstructure:"log_level"`       // logrus level name
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // Per request
	StateDir       string        `mapstructure:"state_dir"`
	UIStatePath    string        `mapstructure:"-"`
}

// UIState is the small set of preferences remembered between runs.
type UIState struct {
	SearchType string `json:"search_type,omitempty"`
}

// Load reads configuration from an optional config.yaml and the environment.
// Environment variables win over the file.
//
//	TERMINALBOARD_BASE_URL         board backend URL (default: http://localhost:8080)
//	TERMINALBOARD_TOKEN            path to a bearer token file (optional)
//	TERMINALBOARD_LOG_FILE         log file path (default: <state dir>/terminalboard.log)
//	TERMINALBOARD_LOG_LEVEL        debug, info, warn, error (default: info)
//	TERMINALBOARD_REQUEST_TIMEOUT  per-request timeout (default: 10s)
//	TERMINALBOARD_STATE_DIR        where UI state is kept (default: ~/.config/terminalboard)
//	TERMINALBOARD_CONFIG_DIR       where config.yaml is looked up (default: ~/.config/terminalboard)
func Load() (Config, error) {
	configDir, err := defaultDir("TERMINALBOARD_CONFIG_DIR")
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("TERMINALBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("token", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("state_dir", configDir)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	base, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return Config{}, err
	}
	cfg.BaseURL = base

	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid TERMINALBOARD_REQUEST_TIMEOUT: must be positive")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.StateDir, appName+".log")
	}
	cfg.UIStatePath = filepath.Join(cfg.StateDir, "ui_state.json")
	return cfg, nil
}

func normalizeBaseURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid TERMINALBOARD_BASE_URL: must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid TERMINALBOARD_BASE_URL: only http and https are allowed")
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func defaultDir(envKey string) (string, error) {
	if dir := strings.TrimSpace(os.Getenv(envKey)); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// LoadUIState reads persisted UI state. A missing file yields the zero state.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return UIState{}, nil
	}
	if err != nil {
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parsing ui state: %w", err)
	}
	return st, nil
}

// SaveUIState writes UI state, creating the parent directory if needed.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
