package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marquee-tui/marquee/internal/anim"
	"github.com/marquee-tui/marquee/internal/deck"
)

// View implements tea.Model. The terminal approximation maps the opacity,
// progress, and x/y channels of each visual onto styling, text reveal, and
// indentation; scale and rotation are tracked by the engine but have no
// cell-grid equivalent and are not drawn.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.store.Loading() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s Loading slides…", m.spin.View()))
	}
	slides := m.store.Slides()
	if len(slides) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.Muted.Render("No slides available"))
	}

	current := m.store.CurrentSlide()
	if current < 0 || current >= len(slides) {
		current = 0
	}
	slide := slides[current]

	controls := m.renderControls(len(slides), current)
	controlsOnTop := strings.HasPrefix(m.store.Settings().Navigation.Position, "top")

	bodyHeight := m.height
	if controls != "" {
		bodyHeight--
	}
	body := m.renderSlide(slide, current, m.width, bodyHeight)

	if m.showSettings {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.renderPanel())
	}

	switch {
	case controls == "":
		return body
	case controlsOnTop:
		return lipgloss.JoinVertical(lipgloss.Left, controls, body)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, body, controls)
	}
}

func (m Model) renderSlide(slide deck.Slide, index, width, height int) string {
	if len(slide.Layers) > 0 {
		return m.renderLayers(slide, index, width, height)
	}

	sv := m.visuals[index]
	var parts []string

	if caption := backgroundCaption(slide); caption != "" {
		parts = append(parts, m.styles.Caption.Render(caption))
		parts = append(parts, "")
	}

	roleVisual := func(role string) *anim.Visual {
		if sv == nil {
			return nil
		}
		for r, v := range sv.roles {
			if string(r) == role {
				return v
			}
		}
		return nil
	}

	if slide.Title != "" {
		if s := m.renderElement(slide.Title, roleVisual("title"), m.styles.Title); s != "" {
			parts = append(parts, s)
		}
	}
	if slide.Subtitle != "" {
		if s := m.renderElement(slide.Subtitle, roleVisual("subtitle"), m.styles.Subtitle); s != "" {
			parts = append(parts, "", s)
		}
	}
	if slide.ButtonText != "" {
		if s := m.renderElement(slide.ButtonText, roleVisual("cta"), m.styles.Button); s != "" {
			parts = append(parts, "", s)
			if slide.ButtonLink != "" {
				parts = append(parts, m.styles.Caption.Render(slide.ButtonLink))
			}
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderElement draws one animated element, folding the visual's channels
// into the terminal approximation.
func (m Model) renderElement(text string, v *anim.Visual, base lipgloss.Style) string {
	if v == nil {
		return base.Render(text)
	}
	if v.Opacity < 0.05 {
		return ""
	}
	st := base
	if v.Opacity < 0.6 {
		st = st.Faint(true)
	}
	if v.Blur > 2 {
		st = st.Foreground(lipgloss.Color(m.theme.Faint))
	}
	if v.Progress < 1 {
		runes := []rune(text)
		visible := int(math.Round(v.Progress * float64(len(runes))))
		if visible < 0 {
			visible = 0
		}
		if visible > len(runes) {
			visible = len(runes)
		}
		text = string(runes[:visible])
		if text == "" {
			return ""
		}
	}
	rendered := st.Render(text)

	// Horizontal motion approximated by indentation toward the rest
	// position; vertical motion by leading blank lines.
	if shift := int(math.Abs(v.X) / 10); shift > 0 {
		rendered = strings.Repeat(" ", shift) + rendered
	}
	if drop := int(v.Y / 25); drop > 0 {
		rendered = strings.Repeat("\n", drop) + rendered
	}
	return rendered
}

func backgroundCaption(slide deck.Slide) string {
	switch {
	case slide.Video != "":
		return "▶ " + slide.Video
	case slide.Image != "":
		return "▒ " + slide.Image
	}
	return ""
}
