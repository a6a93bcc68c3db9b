package choreo

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/anim"
	"github.com/marquee-tui/marquee/internal/deck"
)

// Phase is the lifecycle of one slide's animation cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseScheduled
	PhaseRunning
	PhaseComplete
)

// Role identifies a classic slide content element.
type Role string

const (
	RoleTitle    Role = "title"
	RoleSubtitle Role = "subtitle"
	RoleCTA      Role = "cta"
)

// DefaultSettleDelay is the pause between a slide becoming active and its
// animations starting, giving the slide transition time to land.
const DefaultSettleDelay = 100 * time.Millisecond

// Per-role fallbacks when a slide carries no explicit animation config.
var roleDefaults = map[Role]deck.AnimationConfig{
	RoleTitle:    {Preset: "slideUp", Delay: 0.3, Duration: 0.8},
	RoleSubtitle: {Preset: "slideUp", Delay: 0.5, Duration: 0.8},
	RoleCTA:      {Preset: "zoomIn", Delay: 0.7, Duration: 0.8},
}

type slideElements struct {
	roles  map[Role]*anim.Visual
	layers map[int]*anim.Visual
}

func (e *slideElements) empty() bool {
	return len(e.roles) == 0 && len(e.layers) == 0
}

// cycle tracks one activation of a slide. Countdowns are seconds.
type cycle struct {
	slide        int
	data         deck.Slide
	phase        Phase
	settleLeft   float64
	runningLeft  float64
	participants []*anim.Visual
}

// Orchestrator sequences the entrance animations of the active slide. It
// shares the caller's clock with the animation manager: the UI loop calls
// Advance on both each frame. Not safe for concurrent use.
type Orchestrator struct {
	mgr        *anim.Manager
	logger     *log.Logger
	settle     time.Duration
	slides     map[int]*slideElements
	active     *cycle
	onComplete func(slide int)
}

// New builds an orchestrator over the manager. A non-positive settle
// falls back to DefaultSettleDelay.
func New(mgr *anim.Manager, logger *log.Logger, settle time.Duration) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Orchestrator{
		mgr:    mgr,
		logger: logger,
		settle: settle,
		slides: make(map[int]*slideElements),
	}
}

// OnComplete registers the single completion callback. It fires once per
// uninterrupted cycle, when the slowest participant's animation ends.
func (o *Orchestrator) OnComplete(fn func(slide int)) {
	o.onComplete = fn
}

// Phase returns the active cycle's phase, or PhaseIdle when none is active.
func (o *Orchestrator) Phase() Phase {
	if o.active == nil {
		return PhaseIdle
	}
	return o.active.phase
}

// ActiveSlide returns the slide index of the active cycle, or -1.
func (o *Orchestrator) ActiveSlide() int {
	if o.active == nil {
		return -1
	}
	return o.active.slide
}

func (o *Orchestrator) elements(slide int) *slideElements {
	e, ok := o.slides[slide]
	if !ok {
		e = &slideElements{
			roles:  make(map[Role]*anim.Visual),
			layers: make(map[int]*anim.Visual),
		}
		o.slides[slide] = e
	}
	return e
}

// SetRoleElement registers the visual for a classic content role and
// returns its unregister function.
func (o *Orchestrator) SetRoleElement(slide int, role Role, v *anim.Visual) func() {
	e := o.elements(slide)
	e.roles[role] = v
	return func() {
		if e.roles[role] == v {
			delete(e.roles, role)
		}
	}
}

// SetLayerElement registers the visual for a layer index and returns its
// unregister function. Indices may arrive in any order; the only invariant
// is uniqueness within one slide.
func (o *Orchestrator) SetLayerElement(slide, index int, v *anim.Visual) func() {
	e := o.elements(slide)
	e.layers[index] = v
	return func() {
		if e.layers[index] == v {
			delete(e.layers, index)
		}
	}
}

// Activate starts a cycle for the slide becoming active. Any cycle still
// in flight is interrupted first, so an interrupted slide never reports
// completion.
func (o *Orchestrator) Activate(slide int, data deck.Slide) {
	o.interrupt()
	o.active = &cycle{
		slide:      slide,
		data:       data,
		phase:      PhaseScheduled,
		settleLeft: o.settle.Seconds(),
	}
}

// Deactivate interrupts the active cycle, if any.
func (o *Orchestrator) Deactivate() {
	o.interrupt()
}

// Reset cancels the slide's cycle if it is active and restores its
// registered visuals to the neutral state, ready for a fresh activation.
func (o *Orchestrator) Reset(slide int) {
	if o.active != nil && o.active.slide == slide {
		o.interrupt()
	}
	e, ok := o.slides[slide]
	if !ok {
		return
	}
	for _, v := range e.roles {
		o.mgr.Clear(v)
		v.Reset()
	}
	for _, v := range e.layers {
		o.mgr.Clear(v)
		v.Reset()
	}
}

func (o *Orchestrator) interrupt() {
	c := o.active
	if c == nil {
		return
	}
	for _, v := range c.participants {
		o.mgr.Clear(v)
	}
	o.active = nil
}

// Advance steps the active cycle. The manager is advanced separately by
// the same caller.
func (o *Orchestrator) Advance(dt time.Duration) {
	c := o.active
	if c == nil {
		return
	}
	step := dt.Seconds()
	switch c.phase {
	case PhaseScheduled:
		c.settleLeft -= step
		if c.settleLeft <= 0 {
			o.start(c)
		}
	case PhaseRunning:
		c.runningLeft -= step
		if c.runningLeft <= 0 {
			c.phase = PhaseComplete
			if o.onComplete != nil {
				o.onComplete(c.slide)
			}
		}
	}
}

// start resolves participants, fires their animations, and computes the
// completion horizon as the max end time across them.
func (o *Orchestrator) start(c *cycle) {
	e, ok := o.slides[c.slide]
	if !ok || e.empty() {
		c.phase = PhaseComplete
		if o.onComplete != nil {
			o.onComplete(c.slide)
		}
		return
	}

	maxEnd := 0.0
	execute := func(v *anim.Visual, cfg deck.AnimationConfig) {
		h := o.mgr.Execute(v, cfg.Preset, anim.Options{
			Delay:    cfg.Delay,
			Duration: cfg.Duration,
			Easing:   cfg.Easing,
		})
		if h == nil {
			return
		}
		c.participants = append(c.participants, v)
		if end := cfg.Delay + o.resolveDuration(cfg); end > maxEnd {
			maxEnd = end
		}
	}

	// A slide animates either its layers or its classic roles, never both.
	if len(e.layers) > 0 {
		for index, v := range e.layers {
			cfg, ok := o.layerConfig(c.data, index)
			if !ok {
				continue
			}
			execute(v, cfg)
		}
	} else {
		for role, v := range e.roles {
			execute(v, o.roleConfig(c.data, role))
		}
	}

	c.phase = PhaseRunning
	c.runningLeft = maxEnd
	if maxEnd <= 0 {
		c.phase = PhaseComplete
		if o.onComplete != nil {
			o.onComplete(c.slide)
		}
	}
}

func (o *Orchestrator) resolveDuration(cfg deck.AnimationConfig) float64 {
	if cfg.Duration > 0 {
		return cfg.Duration
	}
	if p, ok := o.mgr.Registry().Get(cfg.Preset); ok {
		return p.DefaultDuration
	}
	return 0
}

// roleConfig resolves config precedence: slide override, then role default.
func (o *Orchestrator) roleConfig(data deck.Slide, role Role) deck.AnimationConfig {
	if a := data.Animations; a != nil {
		var override *deck.AnimationConfig
		switch role {
		case RoleTitle:
			override = a.Title
		case RoleSubtitle:
			override = a.Subtitle
		case RoleCTA:
			override = a.CTA
		}
		if override != nil {
			return *override
		}
	}
	return roleDefaults[role]
}

// layerConfig returns the layer's config, or false when the layer has no
// animation and should be skipped.
func (o *Orchestrator) layerConfig(data deck.Slide, index int) (deck.AnimationConfig, bool) {
	if index < 0 || index >= len(data.Layers) {
		return deck.AnimationConfig{}, false
	}
	cfg := data.Layers[index].Animation
	if cfg == nil {
		return deck.AnimationConfig{}, false
	}
	return *cfg, true
}
