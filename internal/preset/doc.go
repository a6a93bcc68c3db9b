// Package preset defines the built-in animation preset catalog.
//
// # Overview
//
// A preset is a named recipe: an initial channel state, a final channel
// state, a default duration, and a default easing. The Registry exposes
// the built-in catalog by key and preserves insertion order, so listing
// presets for a picker UI is stable across runs.
//
// # Channels
//
// Presets describe motion as sparse channel maps rather than concrete
// element properties. A channel absent from both states is simply not
// animated; the fadeIn preset touches only opacity and leaves position
// alone. The anim package interprets the maps, this package only stores
// them.
//
// # Categories
//
// Presets group into entrance, text, and exit categories. Text presets
// (typewriter, slideInSplit) drive the progress channel, which renderers
// map to a partial reveal of the element's content.
//
// # Easing Names
//
// Easing is referenced by name ("outCubic", "outBack", "outBounce", …)
// and resolved to a gween ease function via Easing. Unknown names fall
// back to the caller's default rather than erroring, matching the
// forgiving posture of the rest of the animation stack.
package preset
