// Package config loads the marquee configuration file.
//
// Configuration lives in a small TOML file (by default
// ~/.config/marquee/config.toml) covering the deck API endpoint, the
// state snapshot path, the UI theme, the frame rate, and an optional
// log file. A missing file is not an error; every field has a sensible
// default and the zero-config case just works.
package config
