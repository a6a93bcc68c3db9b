// Package choreo sequences the animations that make up a slide entrance.
//
// # Overview
//
// A slide is not one animation but a small choreography: the title rises,
// the subtitle follows, the call to action pops in last. The Orchestrator
// owns that sequencing. It knows which visual elements belong to which
// slide, what each element's animation config says, and when the whole
// cycle counts as complete.
//
// # Lifecycle
//
// Every activation runs through the same phases:
//
//	Idle → Scheduled → Running → Complete
//	         (settle)    (max end time)
//
// Activation does not start animations immediately. A short settle delay
// lets the incoming slide's layout land before motion begins; starting
// tweens against elements that are still being placed reads initial
// positions that are about to change. After the settle window the
// orchestrator executes every participant's animation and waits for the
// latest end time (delay + duration, per element) before reporting the
// cycle complete.
//
// # Interruption
//
// Activating slide B while slide A's cycle is anywhere short of Complete
// abandons A outright. A's participants are cleared from the animation
// manager, A's completion callback never fires, and B begins its own
// settle window. There is no partial completion: a cycle either runs to
// its max end time or it vanishes.
//
// # Element Registration
//
// The UI registers visual elements before activation:
//
//   - SetRoleElement binds the classic title / subtitle / cta trio
//   - SetLayerElement binds one element per layer for layered slides
//
// Both return an unregister func. Unregistering only removes the element
// if the stored pointer still matches, so a stale unregister cannot
// clobber a replacement registration.
//
// # Animation Selection
//
// For role elements the slide's own animation config wins; absent that,
// built-in role defaults apply (title slideUp at 0.3s, subtitle slideUp
// at 0.5s, cta zoomIn at 0.7s). Layer elements animate only if the layer
// carries an animation config; a layer without one simply does not
// participate.
//
// # Clock
//
// Like the animation manager, the orchestrator is advanced externally via
// Advance(dt). Settle and completion countdowns are plain float
// accumulators, so tests drive entire cycles with two Advance calls and
// no sleeping.
package choreo
