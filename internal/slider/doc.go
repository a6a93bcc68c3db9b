// Package slider holds the authoritative presentation state.
//
// # Overview
//
// The Store is the single source of truth for everything the rest of the
// application renders or mutates: the slide list, the current slide
// index, the effective settings, and the loading flag. Navigation, the
// settings panel, and the remote deck fetch all funnel their writes
// through it, and every consumer observes changes through its event
// stream.
//
// # Concurrency Model
//
// All state lives behind one mutex. Reads return copies, never interior
// pointers, so callers can hold results across frames without racing
// writers.
//
// Events split into two delivery modes:
//
//   - "before" events fire synchronously on the mutating goroutine,
//     before the mutation is applied. Listeners see the old state and
//     a payload describing what is about to happen.
//   - "after" events are queued to a buffered channel and delivered by
//     a dedicated dispatch goroutine, strictly in order. By the time a
//     listener runs, the mutation is visible through the Store's
//     accessors.
//
// A panicking listener is recovered and logged; it never takes down the
// dispatcher or blocks other listeners.
//
// # Settings Layering
//
// Settings resolve through three layers, lowest to highest:
//
//	defaults → persisted snapshot → fetched deck → runtime patches
//
// Patches merge deeply: updating autoplay.enabled leaves
// autoplay.delayMs untouched. On top of the merged base, breakpoints
// overlay width-specific patches. The Store keeps base and effective
// settings separate so that re-applying the same viewport width is
// idempotent and breakpoint patches never leak into the persisted base.
//
// # Breakpoints
//
// Breakpoints are sorted ascending by max width. The first breakpoint
// whose MaxWidth is at least the current viewport width wins; exactly
// one (or none) applies, they do not cascade. ApplyViewport recomputes
// the effective settings from the base every time, and only emits a
// settingsChange event when the result actually differs.
//
// # Persistence
//
// The Store snapshots the current slide and base settings through a
// debounced saver, so a burst of rapid navigation coalesces into one
// disk write. Close flushes any pending save before shutting down the
// dispatcher.
package slider
