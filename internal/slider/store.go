package slider

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/deck"
	"github.com/marquee-tui/marquee/internal/persist"
)

const defaultDebounceWindow = 500 * time.Millisecond

// Options configure the Store.
type Options struct {
	Fetcher        deck.Fetcher   // optional remote deck source
	Persist        *persist.Store // optional snapshot persistence
	Logger         *log.Logger
	DebounceWindow time.Duration // snapshot save window; zero uses default
	ViewportWidth  int           // initial viewport for breakpoint matching
}

// Store is the shared slider state: slide list, current index, loading
// flag, and settings. All mutation goes through its methods; consumers get
// defensive copies. Settings are kept twice: the base (defaults merged
// with persisted and fetched values, what gets persisted) and the
// effective view with the active breakpoint override applied on top, which
// is what Settings returns. Recomputing effective from base on every
// viewport change keeps breakpoint application idempotent.
type Store struct {
	mu             sync.Mutex
	logger         *log.Logger
	fetcher        deck.Fetcher
	slides         []deck.Slide
	current        int
	loading        bool
	base           deck.Settings
	effective      deck.Settings
	breakpoints    []deck.Breakpoint
	viewport       int
	listeners      map[string]map[int]Listener
	nextListenerID int

	afterCh   chan Event
	done      chan struct{}
	closeOnce sync.Once

	saver *persist.Debouncer
}

// New builds a Store, hydrating synchronously from the persistence store
// when one is given. Remote data is not fetched here; callers run Refresh
// in the background once the store is wired up.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		logger:    logger,
		fetcher:   opts.Fetcher,
		base:      deck.DefaultSettings(),
		viewport:  opts.ViewportWidth,
		listeners: make(map[string]map[int]Listener),
		afterCh:   make(chan Event, 64),
		done:      make(chan struct{}),
	}
	if opts.Persist != nil {
		if st, ok := opts.Persist.LoadState(); ok {
			s.base = st.Settings
			s.current = st.CurrentSlide
		}
		window := opts.DebounceWindow
		if window <= 0 {
			window = defaultDebounceWindow
		}
		store := opts.Persist
		s.saver = persist.NewDebouncer(func(st persist.State) {
			store.SaveState(st)
		}, window)
	}
	s.effective = s.base
	s.loading = opts.Fetcher != nil
	go s.dispatchLoop()
	return s
}

// Close flushes any pending snapshot save and stops the dispatch loop and
// timers. The store must not be used afterwards.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		if s.saver != nil {
			s.saver.Flush()
			s.saver.Stop()
		}
		close(s.done)
	})
}

// Slides returns a copy of the slide list.
func (s *Store) Slides() []deck.Slide {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return nil
	}
	dup := make([]deck.Slide, len(s.slides))
	copy(dup, s.slides)
	return dup
}

// SlideCount returns the number of slides.
func (s *Store) SlideCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slides)
}

// CurrentSlide returns the current slide index.
func (s *Store) CurrentSlide() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Loading reports whether the initial remote fetch is still outstanding.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Settings returns the effective settings, breakpoint override included.
func (s *Store) Settings() deck.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effective
}

// SetCurrentSlide moves to the given index. beforeSlideChange fires
// synchronously with the pre-mutation view; slideChange is delivered on
// the dispatch goroutine with post-mutation lookups. The index is taken as
// opaque data: bounds and looping are the navigation layer's contract.
func (s *Store) SetCurrentSlide(index int) {
	s.mu.Lock()
	from := s.current
	before := map[string]any{"from": from, "to": index, "slide": s.slideAtLocked(index)}
	s.mu.Unlock()

	s.dispatchSync(Event{Type: EventBeforeSlideChange, Payload: before})

	s.mu.Lock()
	s.current = index
	after := map[string]any{"from": from, "to": index, "slide": s.slideAtLocked(index)}
	s.mu.Unlock()

	s.enqueueAfter(Event{Type: EventSlideChange, Payload: after})
	s.persistAsync()
}

// UpdateSettings merges the patch into the base settings. The merge is
// deep: fields absent from the patch keep their current values, including
// siblings inside a partially-specified group.
func (s *Store) UpdateSettings(patch deck.SettingsPatch) {
	s.mu.Lock()
	s.base = s.base.Merge(patch)
	s.effective = s.overlayLocked()
	settings := s.effective
	s.mu.Unlock()

	s.enqueueAfter(Event{Type: EventSettingsChange, Payload: map[string]any{"settings": settings}})
	s.persistAsync()
}

// UpdateSlide replaces the slide at index. Out-of-range indices are a
// logged no-op.
func (s *Store) UpdateSlide(index int, slide deck.Slide) {
	s.mu.Lock()
	if index < 0 || index >= len(s.slides) {
		s.mu.Unlock()
		s.logger.Warn("update slide out of range", "index", index)
		return
	}
	s.slides[index] = slide
	s.mu.Unlock()

	s.enqueueAfter(Event{Type: EventSlideUpdate, Payload: map[string]any{"index": index, "slide": slide}})
}

// Refresh fetches the remote deck and merges it in. On failure the prior
// state stays in place and only the loading flag is cleared; the store is
// never left loading forever.
func (s *Store) Refresh(ctx context.Context) error {
	if s.fetcher == nil {
		return nil
	}
	resp, err := s.fetcher.FetchDeck(ctx)
	if err != nil {
		s.logger.Warn("deck fetch failed, keeping current state", "err", err)
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return err
	}
	s.applyDeck(resp)
	return nil
}

// applyDeck merges a fetched response. Precedence, lowest first: current
// base settings, fetched settings, fetched autoplay, then the first
// breakpoint (ascending max width) covering the viewport.
func (s *Store) applyDeck(resp *deck.Response) {
	s.mu.Lock()
	s.slides = make([]deck.Slide, len(resp.Slides))
	copy(s.slides, resp.Slides)
	if resp.Settings != nil {
		s.base = s.base.Merge(*resp.Settings)
	}
	if resp.Autoplay != nil {
		s.base = s.base.Merge(deck.SettingsPatch{Autoplay: resp.Autoplay})
	}
	s.breakpoints = sortBreakpoints(resp.Breakpoints)
	s.effective = s.overlayLocked()
	s.loading = false
	count := len(s.slides)
	s.mu.Unlock()

	s.enqueueAfter(Event{Type: EventSlidesLoaded, Payload: map[string]any{"count": count}})
	s.persistAsync()
}

// ApplyViewport records the viewport width and recomputes the effective
// settings. Calling it repeatedly with the same width is a no-op.
func (s *Store) ApplyViewport(width int) {
	s.mu.Lock()
	s.viewport = width
	old := s.effective
	s.effective = s.overlayLocked()
	changed := old != s.effective
	settings := s.effective
	s.mu.Unlock()

	if changed {
		s.enqueueAfter(Event{Type: EventSettingsChange, Payload: map[string]any{"settings": settings}})
	}
}

// overlayLocked computes effective settings from base. The first
// breakpoint whose max width covers the viewport wins; overrides do not
// cascade.
func (s *Store) overlayLocked() deck.Settings {
	if s.viewport <= 0 {
		return s.base
	}
	for _, bp := range s.breakpoints {
		if bp.MaxWidth >= s.viewport {
			return s.base.Merge(bp.Settings)
		}
	}
	return s.base
}

func (s *Store) slideAtLocked(index int) deck.Slide {
	if index < 0 || index >= len(s.slides) {
		return deck.Slide{}
	}
	return s.slides[index]
}

func (s *Store) persistAsync() {
	if s.saver == nil {
		return
	}
	s.mu.Lock()
	st := persist.State{CurrentSlide: s.current, Settings: s.base}
	s.mu.Unlock()
	s.saver.Call(st)
}

func sortBreakpoints(m map[string]deck.Breakpoint) []deck.Breakpoint {
	if len(m) == 0 {
		return nil
	}
	bps := make([]deck.Breakpoint, 0, len(m))
	for name, bp := range m {
		if bp.Name == "" {
			bp.Name = name
		}
		bps = append(bps, bp)
	}
	sort.Slice(bps, func(i, j int) bool {
		if bps[i].MaxWidth != bps[j].MaxWidth {
			return bps[i].MaxWidth < bps[j].MaxWidth
		}
		return bps[i].Name < bps[j].Name
	})
	return bps
}
