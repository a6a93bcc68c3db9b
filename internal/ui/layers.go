package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marquee-tui/marquee/internal/anim"
	"github.com/marquee-tui/marquee/internal/deck"
)

// renderLayers composes a multi-layer slide. Layers are grouped into
// vertical bands by anchor, ordered by z-index inside a band; a custom
// rect falls into the band its y percentage points at.
func (m Model) renderLayers(slide deck.Slide, index, width, height int) string {
	sv := m.visuals[index]

	type placed struct {
		order   int
		zIndex  int
		content string
		align   lipgloss.Position
	}
	bands := map[string][]placed{}

	for i, layer := range slide.Layers {
		var v *anim.Visual
		if sv != nil {
			v = sv.layers[i]
		}
		content := m.renderLayerContent(layer, v)
		if content == "" {
			continue
		}
		band, align := layerPlacement(layer.Position)
		bands[band] = append(bands[band], placed{
			order:   i,
			zIndex:  layer.ZIndex,
			content: content,
			align:   align,
		})
	}

	renderBand := func(name string) string {
		items := bands[name]
		if len(items) == 0 {
			return ""
		}
		sort.SliceStable(items, func(a, b int) bool {
			if items[a].zIndex != items[b].zIndex {
				return items[a].zIndex < items[b].zIndex
			}
			return items[a].order < items[b].order
		})
		lines := make([]string, 0, len(items))
		for _, it := range items {
			lines = append(lines, lipgloss.PlaceHorizontal(width, it.align, it.content))
		}
		return strings.Join(lines, "\n")
	}

	third := height / 3
	top := lipgloss.Place(width, third, lipgloss.Left, lipgloss.Top, renderBand("top"))
	mid := lipgloss.Place(width, third, lipgloss.Left, lipgloss.Center, renderBand("center"))
	bottom := lipgloss.Place(width, height-2*third, lipgloss.Left, lipgloss.Bottom, renderBand("bottom"))
	return lipgloss.JoinVertical(lipgloss.Left, top, mid, bottom)
}

// renderLayerContent dispatches on the content variant. The switch is
// exhaustive over the closed LayerContent set.
func (m Model) renderLayerContent(layer deck.Layer, v *anim.Visual) string {
	style := m.styles.Subtitle
	var text string
	switch c := layer.Content.(type) {
	case deck.TextContent:
		text = c.Text
	case deck.ImageContent:
		text = "▒ " + c.Src
		if c.Alt != "" {
			text += " (" + c.Alt + ")"
		}
		style = m.styles.Caption
	case deck.ButtonContent:
		text = c.Label
		style = m.styles.Button
	case deck.CustomContent:
		text = c.Markup
		style = m.styles.Control
	default:
		return ""
	}
	if text == "" {
		return ""
	}
	return m.renderElement(text, v, style)
}

// layerPlacement maps an anchor to its band and horizontal alignment.
func layerPlacement(pos deck.Position) (string, lipgloss.Position) {
	if pos.Anchor == deck.AnchorCustom {
		band := "center"
		if pos.Rect != nil {
			switch {
			case pos.Rect.Y < 33:
				band = "top"
			case pos.Rect.Y > 66:
				band = "bottom"
			}
		}
		return band, lipgloss.Center
	}
	band := "center"
	align := lipgloss.Center
	name := string(pos.Anchor)
	switch {
	case strings.HasPrefix(name, "top"):
		band = "top"
	case strings.HasPrefix(name, "bottom"):
		band = "bottom"
	}
	switch {
	case strings.HasSuffix(name, "left"):
		align = lipgloss.Left
	case strings.HasSuffix(name, "right"):
		align = lipgloss.Right
	}
	return band, align
}
