package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marquee-tui/marquee/internal/deck"
)

// panelItem is one row of the settings panel. Bool rows define toggle;
// numeric rows define inc/dec.
type panelItem struct {
	label  string
	value  func() string
	toggle func()
	inc    func()
	dec    func()
}

func (m *Model) panelItems() []panelItem {
	store := m.store
	boolRow := func(label string, read func(deck.Settings) bool, patch func(bool) deck.SettingsPatch) panelItem {
		return panelItem{
			label: label,
			value: func() string { return onOff(read(store.Settings())) },
			toggle: func() {
				store.UpdateSettings(patch(!read(store.Settings())))
			},
		}
	}
	intRow := func(label string, step, min int, read func(deck.Settings) int, patch func(int) deck.SettingsPatch) panelItem {
		adjust := func(delta int) {
			next := read(store.Settings()) + delta
			if next < min {
				next = min
			}
			store.UpdateSettings(patch(next))
		}
		return panelItem{
			label: label,
			value: func() string { return fmt.Sprintf("%d", read(store.Settings())) },
			inc:   func() { adjust(step) },
			dec:   func() { adjust(-step) },
		}
	}

	return []panelItem{
		{
			label:  "Autoplay",
			value:  func() string { return onOff(store.Settings().Autoplay.Enabled) },
			toggle: m.toggleAutoplay,
		},
		intRow("Autoplay delay (ms)", 500, 500,
			func(s deck.Settings) int { return s.Autoplay.DelayMs },
			func(v int) deck.SettingsPatch {
				return deck.SettingsPatch{Autoplay: &deck.AutoplayPatch{DelayMs: &v}}
			}),
		boolRow("Navigation",
			func(s deck.Settings) bool { return s.Navigation.Enabled },
			func(v bool) deck.SettingsPatch {
				return deck.SettingsPatch{Navigation: &deck.NavigationPatch{Enabled: &v}}
			}),
		boolRow("Arrows",
			func(s deck.Settings) bool { return s.Navigation.Arrows },
			func(v bool) deck.SettingsPatch {
				return deck.SettingsPatch{Navigation: &deck.NavigationPatch{Arrows: &v}}
			}),
		boolRow("Pagination",
			func(s deck.Settings) bool { return s.Navigation.Pagination },
			func(v bool) deck.SettingsPatch {
				return deck.SettingsPatch{Navigation: &deck.NavigationPatch{Pagination: &v}}
			}),
		boolRow("Play/pause button",
			func(s deck.Settings) bool { return s.Navigation.PlayPause },
			func(v bool) deck.SettingsPatch {
				return deck.SettingsPatch{Navigation: &deck.NavigationPatch{PlayPause: &v}}
			}),
		boolRow("Auto-hide controls",
			func(s deck.Settings) bool { return s.Navigation.AutoHide },
			func(v bool) deck.SettingsPatch {
				return deck.SettingsPatch{Navigation: &deck.NavigationPatch{AutoHide: &v}}
			}),
		intRow("Hide delay (ms)", 500, 500,
			func(s deck.Settings) int { return s.Navigation.HideDelayMs },
			func(v int) deck.SettingsPatch {
				return deck.SettingsPatch{Navigation: &deck.NavigationPatch{HideDelayMs: &v}}
			}),
		boolRow("Loop",
			func(s deck.Settings) bool { return s.Loop },
			func(v bool) deck.SettingsPatch {
				return deck.SettingsPatch{Loop: &v}
			}),
		intRow("Transition speed (ms)", 100, 100,
			func(s deck.Settings) int { return s.SpeedMs },
			func(v int) deck.SettingsPatch {
				return deck.SettingsPatch{SpeedMs: &v}
			}),
	}
}

func (m Model) onPanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.panelItems()
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Settings):
		m.showSettings = false
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.panelCursor > 0 {
			m.panelCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.panelCursor < len(items)-1 {
			m.panelCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if it := items[m.panelCursor]; it.toggle != nil {
			it.toggle()
		}
	case key.Matches(msg, m.keys.Inc):
		if it := items[m.panelCursor]; it.inc != nil {
			it.inc()
		}
	case key.Matches(msg, m.keys.Dec):
		if it := items[m.panelCursor]; it.dec != nil {
			it.dec()
		}
	}
	return m, nil
}

func (m Model) renderPanel() string {
	items := m.panelItems()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Slider Settings"))
	b.WriteString("\n\n")
	for i, it := range items {
		cursor := "  "
		label := fmt.Sprintf("%-24s", it.label)
		if i == m.panelCursor {
			cursor = m.styles.Cursor.Render("› ")
			label = m.styles.Cursor.Render(label)
		} else {
			label = m.styles.Control.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, label, m.styles.Muted.Render(it.value())))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Caption.Render("enter toggle · +/- adjust · esc close"))
	return m.styles.PanelBox.Render(b.String())
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
