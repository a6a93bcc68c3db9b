package choreo

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/anim"
	"github.com/marquee-tui/marquee/internal/deck"
	"github.com/marquee-tui/marquee/internal/preset"
)

func newTestOrchestrator() (*Orchestrator, *anim.Manager) {
	mgr := anim.NewManager(preset.NewRegistry(), log.New(io.Discard))
	return New(mgr, log.New(io.Discard), 0), mgr
}

func TestActivate_SettleDelayGatesStart(t *testing.T) {
	orch, _ := newTestOrchestrator()
	v := anim.NewVisual()
	orch.SetRoleElement(0, RoleTitle, v)

	orch.Activate(0, deck.Slide{Title: "hello"})
	if orch.Phase() != PhaseScheduled {
		t.Fatalf("Phase = %v, want PhaseScheduled", orch.Phase())
	}

	orch.Advance(50 * time.Millisecond)
	if orch.Phase() != PhaseScheduled {
		t.Fatalf("Phase = %v after half the settle window, want PhaseScheduled", orch.Phase())
	}
	if v.Opacity != 1 {
		t.Fatalf("Opacity = %v before start, want untouched 1", v.Opacity)
	}

	orch.Advance(60 * time.Millisecond)
	if orch.Phase() != PhaseRunning {
		t.Fatalf("Phase = %v after settle window, want PhaseRunning", orch.Phase())
	}
	if v.Opacity != 0 {
		t.Fatalf("Opacity = %v at start, want initial 0 from slideUp", v.Opacity)
	}
}

func TestCycle_CompletesAtSlowestParticipant(t *testing.T) {
	orch, mgr := newTestOrchestrator()
	orch.SetRoleElement(0, RoleTitle, anim.NewVisual())
	orch.SetRoleElement(0, RoleCTA, anim.NewVisual())

	var completed []int
	orch.OnComplete(func(slide int) { completed = append(completed, slide) })

	// Role defaults: title ends at 0.3+0.8, cta at 0.7+0.8.
	orch.Activate(0, deck.Slide{Title: "t", ButtonText: "go"})
	orch.Advance(100 * time.Millisecond)

	step := func(d time.Duration) {
		mgr.Advance(d)
		orch.Advance(d)
	}
	step(1400 * time.Millisecond)
	if orch.Phase() != PhaseRunning {
		t.Fatalf("Phase = %v at 1.4s, want PhaseRunning until 1.5s", orch.Phase())
	}
	step(150 * time.Millisecond)
	if orch.Phase() != PhaseComplete {
		t.Fatalf("Phase = %v past 1.5s, want PhaseComplete", orch.Phase())
	}
	if len(completed) != 1 || completed[0] != 0 {
		t.Fatalf("completed = %v, want [0]", completed)
	}
}

func TestActivate_InterruptedCycleNeverCompletes(t *testing.T) {
	orch, mgr := newTestOrchestrator()
	va := anim.NewVisual()
	orch.SetRoleElement(0, RoleTitle, va)
	orch.SetRoleElement(1, RoleTitle, anim.NewVisual())

	var completed []int
	orch.OnComplete(func(slide int) { completed = append(completed, slide) })

	orch.Activate(0, deck.Slide{Title: "a"})
	orch.Advance(100 * time.Millisecond)
	mgr.Advance(500 * time.Millisecond)
	orch.Advance(500 * time.Millisecond)

	orch.Activate(1, deck.Slide{Title: "b"})
	if mgr.Active() != 0 {
		t.Fatalf("Active() = %d after interrupt, want 0", mgr.Active())
	}
	if orch.ActiveSlide() != 1 {
		t.Fatalf("ActiveSlide = %d, want 1", orch.ActiveSlide())
	}

	orch.Advance(100 * time.Millisecond)
	mgr.Advance(2 * time.Second)
	orch.Advance(2 * time.Second)

	if len(completed) != 1 || completed[0] != 1 {
		t.Fatalf("completed = %v, want [1]", completed)
	}
}

func TestActivate_NoElementsCompletesImmediately(t *testing.T) {
	orch, _ := newTestOrchestrator()

	var completed []int
	orch.OnComplete(func(slide int) { completed = append(completed, slide) })

	orch.Activate(3, deck.Slide{Title: "bare"})
	orch.Advance(100 * time.Millisecond)

	if orch.Phase() != PhaseComplete {
		t.Fatalf("Phase = %v, want PhaseComplete with no elements", orch.Phase())
	}
	if len(completed) != 1 || completed[0] != 3 {
		t.Fatalf("completed = %v, want [3]", completed)
	}
}

func TestRoleConfig_SlideOverrideBeatsDefault(t *testing.T) {
	orch, mgr := newTestOrchestrator()
	v := anim.NewVisual()
	orch.SetRoleElement(0, RoleTitle, v)

	slide := deck.Slide{
		Title: "t",
		Animations: &deck.SlideAnimations{
			Title: &deck.AnimationConfig{Preset: "fadeIn", Duration: 0.2},
		},
	}
	orch.Activate(0, slide)
	orch.Advance(100 * time.Millisecond)

	if v.Y != 0 {
		t.Fatalf("Y = %v, want 0: fadeIn override must not shift position", v.Y)
	}

	mgr.Advance(250 * time.Millisecond)
	orch.Advance(250 * time.Millisecond)
	if orch.Phase() != PhaseComplete {
		t.Fatalf("Phase = %v, want PhaseComplete at override duration", orch.Phase())
	}
}

func TestLayerElements_OnlyAnimatedLayersParticipate(t *testing.T) {
	orch, mgr := newTestOrchestrator()
	animated := anim.NewVisual()
	static := anim.NewVisual()
	orch.SetLayerElement(0, 0, animated)
	orch.SetLayerElement(0, 1, static)

	slide := deck.Slide{
		Layers: []deck.Layer{
			{Content: deck.TextContent{Text: "hi"}, Animation: &deck.AnimationConfig{Preset: "fadeIn", Duration: 0.3}},
			{Content: deck.TextContent{Text: "bg"}},
		},
	}
	orch.Activate(0, slide)
	orch.Advance(100 * time.Millisecond)

	if animated.Opacity != 0 {
		t.Fatalf("animated layer Opacity = %v, want 0 at start", animated.Opacity)
	}
	if static.Opacity != 1 {
		t.Fatalf("static layer Opacity = %v, want untouched 1", static.Opacity)
	}
	if mgr.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", mgr.Active())
	}
}

func TestReset_RestoresNeutralState(t *testing.T) {
	orch, mgr := newTestOrchestrator()
	v := anim.NewVisual()
	orch.SetRoleElement(0, RoleTitle, v)

	orch.Activate(0, deck.Slide{Title: "t"})
	orch.Advance(100 * time.Millisecond)
	mgr.Advance(200 * time.Millisecond)

	orch.Reset(0)

	if orch.Phase() != PhaseIdle {
		t.Fatalf("Phase = %v after Reset, want PhaseIdle", orch.Phase())
	}
	if v.Opacity != 1 || v.Y != 0 {
		t.Fatalf("visual not neutral after Reset: opacity=%v y=%v", v.Opacity, v.Y)
	}
	if mgr.Active() != 0 {
		t.Fatalf("Active() = %d, want 0", mgr.Active())
	}
}

func TestSetRoleElement_StaleUnregisterIsIgnored(t *testing.T) {
	orch, _ := newTestOrchestrator()
	old := anim.NewVisual()
	unregOld := orch.SetRoleElement(0, RoleTitle, old)

	replacement := anim.NewVisual()
	orch.SetRoleElement(0, RoleTitle, replacement)
	unregOld()

	orch.Activate(0, deck.Slide{Title: "t"})
	orch.Advance(100 * time.Millisecond)

	if orch.Phase() != PhaseRunning {
		t.Fatalf("Phase = %v, want PhaseRunning: replacement element lost", orch.Phase())
	}
	if replacement.Opacity != 0 {
		t.Fatalf("replacement Opacity = %v, want 0 at start", replacement.Opacity)
	}
}
