// Package deck defines the slide deck data model and its HTTP client.
//
// # Overview
//
// A deck is the remote document that drives the presentation: slides,
// optional layered slide compositions, settings patches, and responsive
// breakpoints. This package owns the wire types, the default settings,
// the deep-merge patch machinery, and a small JSON client for fetching
// the deck from the configured API endpoint.
//
// # Settings and Patches
//
// Settings is the fully-resolved configuration the application runs on.
// SettingsPatch (and its nested Autoplay / Navigation / Touch patches)
// uses pointer fields so that absent keys are distinguishable from zero
// values. Merge applies a patch field by field:
//
//	s := deck.DefaultSettings()
//	enabled := false
//	s = s.Merge(deck.SettingsPatch{
//		Autoplay: &deck.AutoplayPatch{Enabled: &enabled},
//	})
//	// autoplay is now off, delayMs is untouched
//
// # Layers
//
// Layer content is a closed set of variants (text, image, button,
// custom) discriminated by a "type" tag in JSON. Position accepts either
// a named anchor string or a rect object with percentage coordinates;
// both forms decode into the same Position value.
//
// # Client
//
// The Client follows the application's standard HTTP shape: base URL
// normalization, a short request timeout, context propagation, and
// decoded JSON responses. Fetcher is the interface consumed by the
// slider store so tests can substitute canned decks.
package deck
