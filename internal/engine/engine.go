// Package engine adapts the slider store to a presentation engine
// interface: navigation with bounds and looping, transition timing, and
// autoplay. The store itself treats slide indices as opaque; every policy
// about what a "next" slide means lives here.
package engine

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/slider"
)

// Engine is the surface navigation adapters drive. Carousel is the
// in-tree implementation; tests substitute their own.
type Engine interface {
	SlideNext()
	SlidePrev()
	SlideTo(index int)
	AutoplayStart()
	AutoplayStop()
}

// Ensure Carousel implements Engine at compile time.
var _ Engine = (*Carousel)(nil)

// ChangeFunc observes a slide transition boundary.
type ChangeFunc func(from, to int)

// Carousel drives slide navigation over the store. Like the animation
// manager it is advanced by the caller's frame clock and must only be used
// from the UI loop.
type Carousel struct {
	store  *slider.Store
	logger *log.Logger

	onChangeStart ChangeFunc
	onChangeEnd   ChangeFunc

	// transition countdown, seconds; <= 0 means settled
	transitionLeft float64
	transitionFrom int
	transitionTo   int

	playing      bool
	autoplayLeft float64
}

// New builds a carousel over the store.
func New(store *slider.Store, logger *log.Logger) *Carousel {
	if logger == nil {
		logger = log.Default()
	}
	return &Carousel{store: store, logger: logger}
}

// SetChangeCallbacks registers the transition boundary observers. Start
// fires synchronously inside SlideTo; end fires from Advance once the
// configured transition speed has elapsed.
func (c *Carousel) SetChangeCallbacks(start, end ChangeFunc) {
	c.onChangeStart = start
	c.onChangeEnd = end
}

// Playing reports whether autoplay is running.
func (c *Carousel) Playing() bool {
	return c.playing
}

// Transitioning reports whether a slide transition is still settling.
func (c *Carousel) Transitioning() bool {
	return c.transitionLeft > 0
}

// SlideNext advances one slide, wrapping when looping is enabled.
func (c *Carousel) SlideNext() {
	count := c.store.SlideCount()
	if count == 0 {
		return
	}
	to := c.store.CurrentSlide() + 1
	if to >= count {
		if !c.store.Settings().Loop {
			return
		}
		to = 0
	}
	c.SlideTo(to)
}

// SlidePrev goes back one slide, wrapping when looping is enabled.
func (c *Carousel) SlidePrev() {
	count := c.store.SlideCount()
	if count == 0 {
		return
	}
	to := c.store.CurrentSlide() - 1
	if to < 0 {
		if !c.store.Settings().Loop {
			return
		}
		to = count - 1
	}
	c.SlideTo(to)
}

// SlideTo jumps to the given index. Out-of-range targets are rejected
// here so the store only ever sees valid indices from this path.
func (c *Carousel) SlideTo(index int) {
	count := c.store.SlideCount()
	if index < 0 || index >= count {
		c.logger.Warn("slide target out of range", "index", index, "count", count)
		return
	}
	from := c.store.CurrentSlide()
	if index == from {
		return
	}
	if c.onChangeStart != nil {
		c.onChangeStart(from, index)
	}
	c.store.SetCurrentSlide(index)
	c.transitionFrom = from
	c.transitionTo = index
	c.transitionLeft = float64(c.store.Settings().SpeedMs) / 1000
	if c.transitionLeft <= 0 {
		c.finishTransition()
	}
	c.resetAutoplayWindow()
}

// AutoplayStart begins automatic advancement using the settings delay.
func (c *Carousel) AutoplayStart() {
	c.playing = true
	c.resetAutoplayWindow()
}

// AutoplayStop halts automatic advancement.
func (c *Carousel) AutoplayStop() {
	c.playing = false
}

// Advance steps transition and autoplay countdowns by dt.
func (c *Carousel) Advance(dt time.Duration) {
	step := dt.Seconds()
	if c.transitionLeft > 0 {
		c.transitionLeft -= step
		if c.transitionLeft <= 0 {
			c.finishTransition()
		}
	}
	if c.playing && c.transitionLeft <= 0 {
		c.autoplayLeft -= step
		if c.autoplayLeft <= 0 {
			c.SlideNext()
		}
	}
}

func (c *Carousel) finishTransition() {
	c.transitionLeft = 0
	if c.onChangeEnd != nil {
		c.onChangeEnd(c.transitionFrom, c.transitionTo)
	}
}

func (c *Carousel) resetAutoplayWindow() {
	delay := c.store.Settings().Autoplay.DelayMs
	if delay <= 0 {
		delay = 5000
	}
	c.autoplayLeft = float64(delay) / 1000
}
