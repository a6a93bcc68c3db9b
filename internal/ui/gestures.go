package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// dragState tracks an in-progress horizontal drag.
type dragState struct {
	x     int
	start time.Time
}

// onMouse translates mouse input into navigation: wheel steps slides,
// and a quick horizontal drag is recognized as a swipe using the touch
// sensitivity settings (min distance in cells, max duration, minimum
// velocity in cells per second).
func (m Model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.revealControls()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			m.car.SlidePrev()
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			m.car.SlideNext()
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.drag = &dragState{x: msg.X, start: time.Now()}
	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		dx := msg.X - m.drag.x
		elapsed := time.Since(m.drag.start)
		m.drag = nil
		m.handleSwipe(dx, elapsed)
	}
	return m, nil
}

func (m *Model) handleSwipe(dx int, elapsed time.Duration) {
	touch := m.store.Settings().Touch
	distance := dx
	if distance < 0 {
		distance = -distance
	}
	if distance < touch.MinDistance {
		return
	}
	if elapsed > time.Duration(touch.MaxTimeMs)*time.Millisecond {
		return
	}
	if elapsed <= 0 {
		return
	}
	velocity := float64(distance) / elapsed.Seconds()
	if velocity < float64(touch.Threshold) {
		return
	}
	// Dragging left pulls the next slide in, matching swipe direction.
	if dx < 0 {
		m.car.SlideNext()
	} else {
		m.car.SlidePrev()
	}
}
