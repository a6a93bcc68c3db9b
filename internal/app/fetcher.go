package app

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/slider"
)

// StartFetcher launches the one-shot background deck fetch. It returns
// immediately; a failed fetch leaves the store on its persisted or default
// state with the loading flag cleared.
func StartFetcher(ctx context.Context, store *slider.Store, logger *log.Logger) {
	go func() {
		if err := store.Refresh(ctx); err != nil {
			logger.Warn("initial deck fetch failed", "err", err)
		}
	}()
}
