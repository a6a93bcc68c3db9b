// Package app wires the marquee components together and runs the UI.
//
// # Startup Sequence
//
// Run assembles the application in dependency order:
//
//  1. Load configuration (flags override the file)
//  2. Create the logger (file-backed, or discarded when unset)
//  3. Create the deck client against the configured API endpoint
//  4. Open the persistence store and hydrate the slider store from it
//  5. Kick off the deck fetch in the background
//  6. Build the animation manager, orchestrator, and carousel engine
//  7. Hand everything to the Bubble Tea UI and block until exit
//
// The UI never waits on the network: it renders the loading state until
// the background fetch lands in the slider store, and keeps running on
// persisted or default state if the fetch fails.
package app
