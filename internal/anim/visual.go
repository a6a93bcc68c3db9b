package anim

import "github.com/marquee-tui/marquee/internal/preset"

// Visual is the opaque element handle animations write to. The view owns
// one per animated slide element and reads the channel values each frame
// when rendering.
type Visual struct {
	X         float64
	Y         float64
	Scale     float64
	Rotation  float64
	RotationX float64
	RotationY float64
	Opacity   float64
	Blur      float64
	Progress  float64

	disposed bool
}

// NewVisual returns a visual in its neutral, fully visible state.
func NewVisual() *Visual {
	return &Visual{Scale: 1, Opacity: 1, Progress: 1}
}

// Reset restores the neutral state without touching disposal.
func (v *Visual) Reset() {
	disposed := v.disposed
	*v = Visual{Scale: 1, Opacity: 1, Progress: 1}
	v.disposed = disposed
}

// Dispose marks the visual dead. In-flight animations targeting it stop on
// the next advance without writing further values.
func (v *Visual) Dispose() {
	v.disposed = true
}

// IsDisposed reports whether Dispose was called.
func (v *Visual) IsDisposed() bool {
	return v.disposed
}

// Apply writes every channel in the state onto the visual.
func (v *Visual) Apply(s preset.State) {
	for ch, val := range s {
		v.set(ch, val)
	}
}

func (v *Visual) set(ch preset.Channel, val float64) {
	switch ch {
	case preset.ChannelX:
		v.X = val
	case preset.ChannelY:
		v.Y = val
	case preset.ChannelScale:
		v.Scale = val
	case preset.ChannelRotation:
		v.Rotation = val
	case preset.ChannelRotationX:
		v.RotationX = val
	case preset.ChannelRotationY:
		v.RotationY = val
	case preset.ChannelOpacity:
		v.Opacity = val
	case preset.ChannelBlur:
		v.Blur = val
	case preset.ChannelProgress:
		v.Progress = val
	}
}

func (v *Visual) get(ch preset.Channel) float64 {
	switch ch {
	case preset.ChannelX:
		return v.X
	case preset.ChannelY:
		return v.Y
	case preset.ChannelScale:
		return v.Scale
	case preset.ChannelRotation:
		return v.Rotation
	case preset.ChannelRotationX:
		return v.RotationX
	case preset.ChannelRotationY:
		return v.RotationY
	case preset.ChannelOpacity:
		return v.Opacity
	case preset.ChannelBlur:
		return v.Blur
	case preset.ChannelProgress:
		return v.Progress
	}
	return 0
}
