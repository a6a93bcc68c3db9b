package anim

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/marquee-tui/marquee/internal/preset"
)

// Options override a preset's timing for one execution. Zero values fall
// back to the preset defaults; Delay and Duration are seconds.
type Options struct {
	Delay    float64
	Duration float64
	Easing   string
}

type channelTween struct {
	channel preset.Channel
	tween   *gween.Tween
}

// Animation is one in-flight preset execution against a single visual.
type Animation struct {
	target *Visual
	delay  float32
	tweens []channelTween
	done   bool
}

// Done reports whether the animation has finished or been cancelled.
func (a *Animation) Done() bool {
	return a.done
}

// advance steps the delay countdown and then the tweens. Leftover time
// from the frame that consumed the delay is forwarded to the tweens.
func (a *Animation) advance(dt float32) {
	if a.done {
		return
	}
	if a.target.IsDisposed() {
		a.done = true
		return
	}
	if a.delay > 0 {
		a.delay -= dt
		if a.delay > 0 {
			return
		}
		dt = -a.delay
		a.delay = 0
		if dt <= 0 {
			return
		}
	}
	allDone := true
	for _, ct := range a.tweens {
		val, finished := ct.tween.Update(dt)
		a.target.set(ct.channel, float64(val))
		if !finished {
			allDone = false
		}
	}
	a.done = allDone
}

// Manager executes presets against visuals and tracks what is in flight.
// At most one animation is active per visual: a new Execute on a busy
// target clears the previous one first. The manager is driven by the
// caller's clock via Advance and is not safe for concurrent use; all calls
// must come from the UI loop.
type Manager struct {
	registry *preset.Registry
	logger   *log.Logger
	active   map[*Visual]*Animation
}

// NewManager builds a manager over the given registry.
func NewManager(registry *preset.Registry, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		registry: registry,
		logger:   logger,
		active:   make(map[*Visual]*Animation),
	}
}

// Registry exposes the preset catalog the manager resolves against.
func (m *Manager) Registry() *preset.Registry {
	return m.registry
}

// Execute applies the named preset to the target. The initial state is
// written synchronously; the transition to the final state starts after
// opts.Delay and runs for the resolved duration. A nil target or unknown
// preset degrades to a no-op returning nil.
func (m *Manager) Execute(target *Visual, presetName string, opts Options) *Animation {
	if target == nil {
		m.logger.Warn("animation target is nil", "preset", presetName)
		return nil
	}
	p, ok := m.registry.Get(presetName)
	if !ok {
		m.logger.Warn("unknown animation preset", "preset", presetName)
		return nil
	}

	m.Clear(target)
	target.Apply(p.Initial)

	duration := opts.Duration
	if duration <= 0 {
		duration = p.DefaultDuration
	}
	fn := m.resolveEasing(opts.Easing, p)

	a := &Animation{target: target, delay: float32(opts.Delay)}
	for ch, end := range p.Final {
		begin := float32(target.get(ch))
		a.tweens = append(a.tweens, channelTween{
			channel: ch,
			tween:   gween.New(begin, float32(end), float32(duration), fn),
		})
	}
	if len(a.tweens) == 0 {
		a.done = true
		return a
	}
	m.active[target] = a
	return a
}

func (m *Manager) resolveEasing(name string, p preset.Preset) ease.TweenFunc {
	if name != "" {
		if fn, ok := preset.Easing(name); ok {
			return fn
		}
		m.logger.Warn("unknown easing, using preset default",
			"easing", name, "preset", p.Name)
	}
	if fn, ok := preset.Easing(p.DefaultEasing); ok {
		return fn
	}
	return ease.Linear
}

// Clear cancels the in-flight animation for the target, if any. Channel
// values stay where the last advance left them.
func (m *Manager) Clear(target *Visual) {
	if a, ok := m.active[target]; ok {
		a.done = true
		delete(m.active, target)
	}
}

// KillAll cancels every tracked animation.
func (m *Manager) KillAll() {
	for target, a := range m.active {
		a.done = true
		delete(m.active, target)
	}
}

// Active returns the number of in-flight animations.
func (m *Manager) Active() int {
	return len(m.active)
}

// Advance steps every in-flight animation by dt and drops finished ones.
func (m *Manager) Advance(dt time.Duration) {
	step := float32(dt.Seconds())
	for target, a := range m.active {
		a.advance(step)
		if a.done {
			delete(m.active, target)
		}
	}
}
