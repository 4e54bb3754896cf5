package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the refresher settings. Heights are in terminal rows.
type Config struct {
	HeaderHeight   float64
	FooterHeight   float64
	TriggerPercent float64
	AutoRefresh    bool
	Animation      time.Duration
	FeedURL        string
	PageSize       int
	MaxPages       int
	Latency        time.Duration
	LogFile        string
}

const (
	defaultConfigPath     = "~/.config/refresher/config.toml"
	defaultHeaderHeight   = 3
	defaultFooterHeight   = 1
	defaultTriggerPercent = 1.0
	defaultAnimationMS    = 250
	defaultPageSize       = 20
	defaultMaxPages       = 5
	defaultLatencyMS      = 600
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		HeaderHeight:   defaultHeaderHeight,
		FooterHeight:   defaultFooterHeight,
		TriggerPercent: defaultTriggerPercent,
		AutoRefresh:    true,
		Animation:      defaultAnimationMS * time.Millisecond,
		PageSize:       defaultPageSize,
		MaxPages:       defaultMaxPages,
		Latency:        defaultLatencyMS * time.Millisecond,
	}
}

// Load locates and parses the refresher config, falling back to defaults when missing.
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

	var raw struct {
		HeaderHeight   float64 `toml:"header_height"`
		FooterHeight   float64 `toml:"footer_height"`
		TriggerPercent float64 `toml:"trigger_percent"`
		AutoRefresh    *bool   `toml:"auto_refresh"`
		AnimationMS    int     `toml:"animation_ms"`
		FeedURL        string  `toml:"feed_url"`
		PageSize       int     `toml:"page_size"`
		MaxPages       int     `toml:"max_pages"`
		LatencyMS      *int    `toml:"latency_ms"`
		LogFile        string  `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.HeaderHeight > 0 {
		cfg.HeaderHeight = raw.HeaderHeight
	}
	if raw.FooterHeight > 0 {
		cfg.FooterHeight = raw.FooterHeight
	}
	if raw.TriggerPercent > 0 {
		cfg.TriggerPercent = raw.TriggerPercent
	}
	if raw.AutoRefresh != nil {
		cfg.AutoRefresh = *raw.AutoRefresh
	}
	if raw.AnimationMS > 0 {
		cfg.Animation = time.Duration(raw.AnimationMS) * time.Millisecond
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.MaxPages > 0 {
		cfg.MaxPages = raw.MaxPages
	}
	if raw.LatencyMS != nil && *raw.LatencyMS >= 0 {
		cfg.Latency = time.Duration(*raw.LatencyMS) * time.Millisecond
	}
	cfg.FeedURL = strings.TrimSpace(raw.FeedURL)

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile, err = expandPath(logFile)
		if err != nil {
			return Config{}, fmt.Errorf("log_file: %w", err)
		}
	}

	return cfg, nil
}

// Synthetic reports whether the feed comes from the built-in generator.
func (c Config) Synthetic() bool {
	return strings.TrimSpace(c.FeedURL) == ""
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
