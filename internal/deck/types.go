package deck

import (
	"encoding/json"
	"fmt"
)

// AnimationConfig selects a preset and its timing for one slide element.
// Delay and Duration are seconds. A zero Duration or empty Easing means
// "use the preset default".
type AnimationConfig struct {
	Preset   string  `json:"preset"`
	Delay    float64 `json:"delay,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Easing   string  `json:"easing,omitempty"`
}

// SlideAnimations overrides the entrance animation per content role.
type SlideAnimations struct {
	Title    *AnimationConfig `json:"title,omitempty"`
	Subtitle *AnimationConfig `json:"subtitle,omitempty"`
	CTA      *AnimationConfig `json:"cta,omitempty"`
}

// Slide is one element of the deck. A slide either carries the classic
// title/subtitle/button content or a list of layers, not both.
type Slide struct {
	Image      string           `json:"image,omitempty"`
	Video      string           `json:"video,omitempty"`
	Title      string           `json:"title,omitempty"`
	Subtitle   string           `json:"subtitle,omitempty"`
	ButtonText string           `json:"buttonText,omitempty"`
	ButtonLink string           `json:"buttonLink,omitempty"`
	Overlay    string           `json:"overlay,omitempty"`
	Animations *SlideAnimations `json:"animations,omitempty"`
	Layers     []Layer          `json:"layers,omitempty"`
}

// Anchor is a named layer position inside the slide.
type Anchor string

const (
	AnchorTopLeft      Anchor = "top-left"
	AnchorTopCenter    Anchor = "top-center"
	AnchorTopRight     Anchor = "top-right"
	AnchorCenterLeft   Anchor = "center-left"
	AnchorCenter       Anchor = "center"
	AnchorCenterRight  Anchor = "center-right"
	AnchorBottomLeft   Anchor = "bottom-left"
	AnchorBottomCenter Anchor = "bottom-center"
	AnchorBottomRight  Anchor = "bottom-right"
	AnchorCustom       Anchor = "custom"
)

// Rect is a custom layer placement in percent of the slide area.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Position is either a named anchor or a custom rect.
type Position struct {
	Anchor Anchor
	Rect   *Rect
}

// UnmarshalJSON accepts either an anchor string or a rect object.
func (p *Position) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		p.Anchor = Anchor(name)
		p.Rect = nil
		return nil
	}
	var rect Rect
	if err := json.Unmarshal(data, &rect); err != nil {
		return fmt.Errorf("parse layer position: %w", err)
	}
	p.Anchor = AnchorCustom
	p.Rect = &rect
	return nil
}

// MarshalJSON mirrors UnmarshalJSON.
func (p Position) MarshalJSON() ([]byte, error) {
	if p.Anchor == AnchorCustom && p.Rect != nil {
		return json.Marshal(p.Rect)
	}
	return json.Marshal(string(p.Anchor))
}

// LayerContent is the closed set of layer payloads. The concrete types
// below are the only implementations; rendering dispatches on them with a
// type switch so a missing case is a compile-time review item rather than
// a silent string mismatch.
type LayerContent interface {
	layerContent()
}

// TextContent is a free-standing text layer.
type TextContent struct {
	Text string
}

// ImageContent references an image asset.
type ImageContent struct {
	Src string
	Alt string
}

// ButtonContent is a call-to-action layer.
type ButtonContent struct {
	Label string
	Link  string
}

// CustomContent carries pre-rendered markup the view passes through.
type CustomContent struct {
	Markup string
}

func (TextContent) layerContent()   {}
func (ImageContent) layerContent()  {}
func (ButtonContent) layerContent() {}
func (CustomContent) layerContent() {}

// Layer is a positioned sub-element of a multi-layer slide.
type Layer struct {
	Content     LayerContent
	Position    Position
	ZIndex      int
	Style       string
	Animation   *AnimationConfig
	Interactive bool
}

type rawLayer struct {
	Type        string           `json:"type"`
	Text        string           `json:"text,omitempty"`
	Src         string           `json:"src,omitempty"`
	Alt         string           `json:"alt,omitempty"`
	Label       string           `json:"label,omitempty"`
	Link        string           `json:"link,omitempty"`
	Markup      string           `json:"markup,omitempty"`
	Position    Position         `json:"position"`
	ZIndex      int              `json:"zIndex,omitempty"`
	Style       string           `json:"style,omitempty"`
	Animation   *AnimationConfig `json:"animation,omitempty"`
	Interactive bool             `json:"interactive,omitempty"`
}

// UnmarshalJSON decodes the wire "type" tag into the matching content variant.
func (l *Layer) UnmarshalJSON(data []byte) error {
	var raw rawLayer
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "text":
		l.Content = TextContent{Text: raw.Text}
	case "image":
		l.Content = ImageContent{Src: raw.Src, Alt: raw.Alt}
	case "button":
		l.Content = ButtonContent{Label: raw.Label, Link: raw.Link}
	case "custom":
		l.Content = CustomContent{Markup: raw.Markup}
	default:
		return fmt.Errorf("unknown layer type %q", raw.Type)
	}
	l.Position = raw.Position
	l.ZIndex = raw.ZIndex
	l.Style = raw.Style
	l.Animation = raw.Animation
	l.Interactive = raw.Interactive
	return nil
}

// MarshalJSON encodes the content variant back to the tagged wire form.
func (l Layer) MarshalJSON() ([]byte, error) {
	raw := rawLayer{
		Position:    l.Position,
		ZIndex:      l.ZIndex,
		Style:       l.Style,
		Animation:   l.Animation,
		Interactive: l.Interactive,
	}
	switch c := l.Content.(type) {
	case TextContent:
		raw.Type = "text"
		raw.Text = c.Text
	case ImageContent:
		raw.Type = "image"
		raw.Src = c.Src
		raw.Alt = c.Alt
	case ButtonContent:
		raw.Type = "button"
		raw.Label = c.Label
		raw.Link = c.Link
	case CustomContent:
		raw.Type = "custom"
		raw.Markup = c.Markup
	default:
		return nil, fmt.Errorf("layer has no content")
	}
	return json.Marshal(raw)
}

// Breakpoint overrides settings below a viewport width.
type Breakpoint struct {
	Name     string        `json:"-"`
	MaxWidth int           `json:"maxWidth"`
	Settings SettingsPatch `json:"settings"`
}

// Response is the payload of the deck endpoint.
type Response struct {
	Slides      []Slide               `json:"slides"`
	Settings    *SettingsPatch        `json:"settings,omitempty"`
	Autoplay    *AutoplayPatch        `json:"autoplay,omitempty"`
	Breakpoints map[string]Breakpoint `json:"breakpoints,omitempty"`
}
