package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/anim"
	"github.com/marquee-tui/marquee/internal/choreo"
	"github.com/marquee-tui/marquee/internal/config"
	"github.com/marquee-tui/marquee/internal/deck"
	"github.com/marquee-tui/marquee/internal/engine"
	"github.com/marquee-tui/marquee/internal/persist"
	"github.com/marquee-tui/marquee/internal/preset"
	"github.com/marquee-tui/marquee/internal/slider"
	"github.com/marquee-tui/marquee/internal/ui"
)

// Options configure the marquee application.
type Options struct {
	ConfigPath string
	APIBind    string // overrides the config value when set
	NoPersist  bool   // disable snapshot persistence
}

// Run boots the marquee TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBind != "" {
		cfg.APIBind = opts.APIBind
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := deck.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init deck client: %w", err)
	}

	var snapshots *persist.Store
	if !opts.NoPersist {
		snapshots = persist.NewStore(cfg.StatePath, logger)
	}

	store := slider.New(slider.Options{
		Fetcher: client,
		Persist: snapshots,
		Logger:  logger,
	})
	defer store.Close()

	if cfg.Autoplay != nil {
		store.UpdateSettings(deck.SettingsPatch{
			Autoplay: &deck.AutoplayPatch{Enabled: cfg.Autoplay},
		})
	}

	// Fetch the deck in the background; the UI shows the loading state
	// until the store settles one way or the other.
	StartFetcher(ctx, store, logger)

	registry := preset.NewRegistry()
	manager := anim.NewManager(registry, logger)
	orchestrator := choreo.New(manager, logger, choreo.DefaultSettleDelay)
	carousel := engine.New(store, logger)

	return ui.Run(ui.Options{
		Context:      ctx,
		Store:        store,
		Carousel:     carousel,
		Manager:      manager,
		Orchestrator: orchestrator,
		Logger:       logger,
		ThemeName:    cfg.Theme,
		FPS:          cfg.FPS,
	})
}

// newLogger builds the application logger. Without a log file the output
// is discarded: the TUI owns the terminal and stray writes would corrupt
// the screen.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		Prefix:          "marquee",
	})
	return logger, func() { _ = file.Close() }, nil
}
