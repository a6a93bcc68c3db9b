package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields marquee reads from its config file.
type Config struct {
	APIBind   string // deck API host:port
	StatePath string // snapshot file; empty uses the persist default
	Theme     string
	FPS       int    // frame rate for the animation clock
	LogFile   string // debug log destination; empty disables logging
	Autoplay  *bool  // forces autoplay on or off; nil leaves settings alone
}

const (
	defaultConfigPath = "~/.config/marquee/config.toml"
	defaultAPIBind    = "127.0.0.1:7363"
	defaultTheme      = "dark"
	defaultFPS        = 30
)

// Load locates and parses the marquee config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBind: defaultAPIBind, Theme: defaultTheme, FPS: defaultFPS}

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

	var raw struct {
		APIBind   string `toml:"api_bind"`
		StatePath string `toml:"state_path"`
		Theme     string `toml:"theme"`
		FPS       int    `toml:"fps"`
		LogFile   string `toml:"log_file"`
		Autoplay  *bool  `toml:"autoplay"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBind); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(raw.StatePath); v != "" {
		cfg.StatePath = v
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if raw.FPS > 0 {
		cfg.FPS = raw.FPS
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = v
	}
	cfg.Autoplay = raw.Autoplay

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
