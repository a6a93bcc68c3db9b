package persist

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/deck"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	return NewStore(path, log.New(io.Discard)), path
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	settings := deck.DefaultSettings()
	settings.Autoplay.Enabled = false
	settings.SpeedMs = 900
	store.SaveState(State{CurrentSlide: 2, Settings: settings})

	got, ok := store.LoadState()
	if !ok {
		t.Fatalf("LoadState ok = false, want true")
	}
	if got.CurrentSlide != 2 {
		t.Fatalf("CurrentSlide = %d, want 2", got.CurrentSlide)
	}
	if got.Settings.Autoplay.Enabled {
		t.Fatalf("Autoplay.Enabled = true, want false")
	}
	if got.Settings.SpeedMs != 900 {
		t.Fatalf("SpeedMs = %d, want 900", got.Settings.SpeedMs)
	}
}

func TestLoadState_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	if _, ok := store.LoadState(); ok {
		t.Fatalf("LoadState ok = true for missing file, want false")
	}
}

func TestLoadState_StaleSnapshotDeleted(t *testing.T) {
	store, path := newTestStore(t)

	old := time.Now().Add(-maxSnapshotAge - time.Minute).UnixMilli()
	data, err := json.Marshal(snapshot{
		CurrentSlide: 1,
		Settings:     deck.DefaultSettings(),
		Timestamp:    old,
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := store.LoadState(); ok {
		t.Fatalf("LoadState ok = true for stale snapshot, want false")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("stale snapshot not deleted: %v", err)
	}
}

func TestLoadState_CorruptSnapshotDeleted(t *testing.T) {
	store, path := newTestStore(t)

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := store.LoadState(); ok {
		t.Fatalf("LoadState ok = true for corrupt snapshot, want false")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("corrupt snapshot not deleted: %v", err)
	}
}

func TestLoadState_PartialSnapshotKeepsDefaults(t *testing.T) {
	store, path := newTestStore(t)

	// Old snapshot written before newer settings fields existed.
	raw := []byte(`{"currentSlide":3,"settings":{"autoplay":{"enabled":false}},"timestamp":` +
		timestampNow() + `}`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, ok := store.LoadState()
	if !ok {
		t.Fatalf("LoadState ok = false, want true")
	}
	if got.Settings.Autoplay.Enabled {
		t.Fatalf("Autoplay.Enabled = true, want persisted false")
	}
	defaults := deck.DefaultSettings()
	if got.Settings.Autoplay.DelayMs != defaults.Autoplay.DelayMs {
		t.Fatalf("Autoplay.DelayMs = %d, want default %d", got.Settings.Autoplay.DelayMs, defaults.Autoplay.DelayMs)
	}
	if got.Settings.SpeedMs != defaults.SpeedMs {
		t.Fatalf("SpeedMs = %d, want default %d", got.Settings.SpeedMs, defaults.SpeedMs)
	}
}

func timestampNow() string {
	data, _ := json.Marshal(time.Now().UnixMilli())
	return string(data)
}

func TestClearState_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)

	store.SaveState(State{CurrentSlide: 1, Settings: deck.DefaultSettings()})
	store.ClearState()
	store.ClearState()

	if _, ok := store.LoadState(); ok {
		t.Fatalf("LoadState ok = true after ClearState, want false")
	}
}

func TestIsAvailable(t *testing.T) {
	store, _ := newTestStore(t)

	if !store.IsAvailable() {
		t.Fatalf("IsAvailable = false for writable temp dir, want true")
	}
}

func TestExpandPath_Tilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/state/marquee/state.json")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	want := filepath.Join(home, "state", "marquee", "state.json")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	calls := make(chan State, 8)
	d := NewDebouncer(func(s State) { calls <- s }, 30*time.Millisecond)
	defer d.Stop()

	d.Call(State{CurrentSlide: 1})
	d.Call(State{CurrentSlide: 2})
	d.Call(State{CurrentSlide: 3})

	select {
	case got := <-calls:
		if got.CurrentSlide != 3 {
			t.Fatalf("CurrentSlide = %d, want latest 3", got.CurrentSlide)
		}
	case <-time.After(time.Second):
		t.Fatalf("debounced call never fired")
	}

	select {
	case got := <-calls:
		t.Fatalf("unexpected second call with slide %d", got.CurrentSlide)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_FlushRunsPendingImmediately(t *testing.T) {
	calls := make(chan State, 1)
	d := NewDebouncer(func(s State) { calls <- s }, time.Hour)
	defer d.Stop()

	d.Call(State{CurrentSlide: 7})
	d.Flush()

	select {
	case got := <-calls:
		if got.CurrentSlide != 7 {
			t.Fatalf("CurrentSlide = %d, want 7", got.CurrentSlide)
		}
	default:
		t.Fatalf("Flush did not run the pending call")
	}
}

func TestDebouncer_FlushWithoutPendingIsNoOp(t *testing.T) {
	calls := make(chan State, 1)
	d := NewDebouncer(func(s State) { calls <- s }, time.Hour)
	defer d.Stop()

	d.Flush()

	select {
	case <-calls:
		t.Fatalf("Flush fired with nothing pending")
	default:
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	calls := make(chan State, 1)
	d := NewDebouncer(func(s State) { calls <- s }, 20*time.Millisecond)

	d.Call(State{CurrentSlide: 1})
	d.Stop()
	d.Call(State{CurrentSlide: 2})

	select {
	case got := <-calls:
		t.Fatalf("call fired after Stop with slide %d", got.CurrentSlide)
	case <-time.After(100 * time.Millisecond):
	}
}
