package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/anim"
	"github.com/marquee-tui/marquee/internal/choreo"
	"github.com/marquee-tui/marquee/internal/deck"
	"github.com/marquee-tui/marquee/internal/engine"
	"github.com/marquee-tui/marquee/internal/slider"
)

// Options configure the UI.
type Options struct {
	Context      context.Context
	Store        *slider.Store
	Carousel     *engine.Carousel
	Manager      *anim.Manager
	Orchestrator *choreo.Orchestrator
	Logger       *log.Logger
	ThemeName    string
	FPS          int
}

// frameMsg carries the frame clock tick.
type frameMsg time.Time

const (
	defaultFPS = 30

	// resize events are debounced before breakpoints are re-applied
	resizeDebounce = 0.25 // seconds

	// a frame after a long stall advances the clock by at most this much
	maxFrameStep = 250 * time.Millisecond
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx    context.Context
	store  *slider.Store
	car    *engine.Carousel
	mgr    *anim.Manager
	orch   *choreo.Orchestrator
	logger *log.Logger

	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int
	ready  bool

	frameStep time.Duration
	lastFrame time.Time

	spin spinner.Model

	// visuals per slide index, registered with the orchestrator
	visuals    map[int]*slideVisuals
	unregister []func()
	slideCount int
	started    bool

	showSettings  bool
	panelCursor   int
	controlsShown bool
	hideLeft      float64 // seconds until controls auto-hide

	resizeLeft   float64 // pending viewport debounce; <= 0 inactive
	pendingWidth int

	drag *dragState
}

type slideVisuals struct {
	roles  map[choreo.Role]*anim.Visual
	layers map[int]*anim.Visual
}

// New creates the root model and wires the carousel's change callback to
// the orchestrator: every transition start activates the incoming slide's
// animation cycle, implicitly interrupting the previous one.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	theme := GetTheme(opts.ThemeName)
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
	)

	store := opts.Store
	orch := opts.Orchestrator
	opts.Carousel.SetChangeCallbacks(func(from, to int) {
		slides := store.Slides()
		if to >= 0 && to < len(slides) {
			orch.Activate(to, slides[to])
		}
	}, nil)

	return Model{
		ctx:           ctx,
		store:         store,
		car:           opts.Carousel,
		mgr:           opts.Manager,
		orch:          orch,
		logger:        logger,
		keys:          DefaultKeyMap(),
		theme:         theme,
		styles:        theme.Styles(),
		frameStep:     time.Second / time.Duration(fps),
		spin:          sp,
		visuals:       make(map[int]*slideVisuals),
		controlsShown: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.frameTick(), m.spin.Tick)
}

func (m Model) frameTick() tea.Cmd {
	return tea.Tick(m.frameStep, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.pendingWidth = msg.Width
		m.resizeLeft = resizeDebounce
		return m, nil

	case frameMsg:
		return m.onFrame(time.Time(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.onKey(msg)

	case tea.MouseMsg:
		return m.onMouse(msg)
	}
	return m, nil
}

// onFrame advances every frame-clocked component by the elapsed time.
func (m Model) onFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameStep
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
		if dt > maxFrameStep {
			dt = maxFrameStep
		}
	}
	m.lastFrame = now

	m.mgr.Advance(dt)
	m.orch.Advance(dt)
	m.car.Advance(dt)

	if count := m.store.SlideCount(); count != m.slideCount {
		m.rebuildVisuals()
	}

	step := dt.Seconds()
	settings := m.store.Settings()

	if settings.Navigation.AutoHide && m.controlsShown {
		m.hideLeft -= step
		if m.hideLeft <= 0 {
			m.controlsShown = false
		}
	}

	if m.resizeLeft > 0 {
		m.resizeLeft -= step
		if m.resizeLeft <= 0 {
			m.store.ApplyViewport(m.pendingWidth)
		}
	}

	return m, m.frameTick()
}

// rebuildVisuals recreates the per-slide element handles after the slide
// list changes, then starts the first animation cycle and autoplay.
func (m *Model) rebuildVisuals() {
	for _, unreg := range m.unregister {
		unreg()
	}
	m.unregister = nil
	m.orch.Deactivate()
	m.mgr.KillAll()
	m.visuals = make(map[int]*slideVisuals)

	slides := m.store.Slides()
	m.slideCount = len(slides)
	for i, slide := range slides {
		sv := &slideVisuals{
			roles:  make(map[choreo.Role]*anim.Visual),
			layers: make(map[int]*anim.Visual),
		}
		m.visuals[i] = sv
		if len(slide.Layers) > 0 {
			for idx := range slide.Layers {
				v := anim.NewVisual()
				sv.layers[idx] = v
				m.unregister = append(m.unregister, m.orch.SetLayerElement(i, idx, v))
			}
			continue
		}
		addRole := func(role choreo.Role, present bool) {
			if !present {
				return
			}
			v := anim.NewVisual()
			sv.roles[role] = v
			m.unregister = append(m.unregister, m.orch.SetRoleElement(i, role, v))
		}
		addRole(choreo.RoleTitle, slide.Title != "")
		addRole(choreo.RoleSubtitle, slide.Subtitle != "")
		addRole(choreo.RoleCTA, slide.ButtonText != "")
	}

	if m.slideCount == 0 {
		return
	}
	current := m.store.CurrentSlide()
	if current < 0 || current >= m.slideCount {
		current = 0
	}
	m.orch.Activate(current, slides[current])

	if !m.started {
		m.started = true
		settings := m.store.Settings()
		m.hideLeft = float64(settings.Navigation.HideDelayMs) / 1000
		if settings.Autoplay.Enabled {
			m.car.AutoplayStart()
		}
	}
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.revealControls()

	if m.showSettings {
		return m.onPanelKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.car.SlideNext()
	case key.Matches(msg, m.keys.Prev):
		m.car.SlidePrev()
	case key.Matches(msg, m.keys.First):
		m.car.SlideTo(0)
	case key.Matches(msg, m.keys.Last):
		if count := m.store.SlideCount(); count > 0 {
			m.car.SlideTo(count - 1)
		}
	case key.Matches(msg, m.keys.ToggleAutoplay):
		m.toggleAutoplay()
	case key.Matches(msg, m.keys.Settings):
		m.showSettings = true
		m.panelCursor = 0
	default:
		if idx, ok := digitSlide(msg.String()); ok {
			m.car.SlideTo(idx)
		}
	}
	return m, nil
}

// toggleAutoplay flips the setting and drives the engine to match, the
// same round trip the navigation controls make.
func (m *Model) toggleAutoplay() {
	enabled := !m.store.Settings().Autoplay.Enabled
	m.store.UpdateSettings(deck.SettingsPatch{
		Autoplay: &deck.AutoplayPatch{Enabled: &enabled},
	})
	if enabled {
		m.car.AutoplayStart()
	} else {
		m.car.AutoplayStop()
	}
}

func (m *Model) revealControls() {
	m.controlsShown = true
	m.hideLeft = float64(m.store.Settings().Navigation.HideDelayMs) / 1000
}

func (m *Model) teardown() {
	m.orch.Deactivate()
	m.mgr.KillAll()
	for _, unreg := range m.unregister {
		unreg()
	}
	m.unregister = nil
}

// digitSlide maps keys 1-9 to slide indices 0-8.
func digitSlide(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
