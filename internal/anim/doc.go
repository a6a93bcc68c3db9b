// Package anim executes animation presets against visual elements.
//
// # Overview
//
// The Manager is the single entry point for running animations. Callers
// hand it a target element and a preset key; the Manager applies the
// preset's initial state immediately and then interpolates every channel
// toward its final value as the frame clock advances.
//
// # Architecture
//
// Animations are driven by an external clock rather than internal timers:
//
//	UI frame tick
//	     ↓
//	Manager.Advance(dt)
//	     ↓ (per active animation)
//	delay countdown → tween channels → write Visual
//
// There are no goroutines and no time.Now() reads inside the package.
// Whoever owns the render loop owns time, which keeps playback
// deterministic and makes tests trivial: advance by exactly the duration
// and assert the final state.
//
// # Core Types
//
// Visual:
//   - A bag of animatable channels (position, scale, rotation, opacity,
//     blur, text progress)
//   - Written by the Manager, read by the renderer
//   - Dispose() permanently detaches it from future animations
//
// Animation:
//   - One preset run against one target
//   - Owns a gween tween per channel plus the start delay
//
// Manager:
//   - Tracks at most one Animation per target
//   - Executing a new animation on a busy target replaces the old one
//
// # One Animation Per Target
//
// Execute implicitly clears any animation already running on the target
// before starting the new one. The last caller wins. This mirrors how
// slide transitions interrupt each other: a half-finished entrance is
// abandoned, never blended.
//
// # Error Handling
//
// Execute is deliberately forgiving. A nil target, a disposed target, or
// an unknown preset key logs a warning and returns nil instead of
// failing the caller. Slide data arrives from a remote deck and a typo
// in one layer's preset must not take down the whole presentation.
//
// # Usage
//
//	mgr := anim.NewManager(preset.NewRegistry(), logger)
//	v := anim.NewVisual()
//	mgr.Execute("slideUp", v, anim.Options{Delay: 0.3})
//
//	// each frame:
//	mgr.Advance(dt)
//	render(v)
package anim
