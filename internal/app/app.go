package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/refresher/internal/config"
	"github.com/five82/refresher/internal/feed"
	"github.com/five82/refresher/internal/prefs"
	"github.com/five82/refresher/internal/state"
	"github.com/five82/refresher/internal/ui"
)

// Options configure the refresher application. Non-empty FeedURL and
// LogFile override the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/refresher/prefs.toml
	FeedURL    string
	LogFile    string
}

// Run boots the refresher TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}
	log.Printf("refresher starting (feed %s, page size %d)", describeFeed(cfg), cfg.PageSize)

	return ui.Run(ui.Options{
		Context:   ctx,
		Fetcher:   fetcher,
		Store:     &state.Store{},
		Config:    cfg,
		Prefs:     prefs.Load(opts.PrefsPath),
		PrefsPath: opts.PrefsPath,
	})
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if url := strings.TrimSpace(opts.FeedURL); url != "" {
		cfg.FeedURL = url
	}
	if path := strings.TrimSpace(opts.LogFile); path != "" {
		resolved, err := config.ExpandPath(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = resolved
	}
	return cfg, nil
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty; anything written to the terminal would corrupt the alt screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "refresher")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func newFetcher(cfg config.Config) (feed.Fetcher, error) {
	if cfg.Synthetic() {
		return feed.NewGenerator(cfg.MaxPages, cfg.Latency), nil
	}
	client, err := feed.NewClient(cfg.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("init feed client: %w", err)
	}
	return newRetryFetcher(client, defaultAttempts, defaultBackoff), nil
}

func describeFeed(cfg config.Config) string {
	if cfg.Synthetic() {
		return "synthetic"
	}
	return cfg.FeedURL
}
