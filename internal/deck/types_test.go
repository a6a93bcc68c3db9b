package deck

import (
	"encoding/json"
	"testing"
)

func TestLayer_UnmarshalTextType(t *testing.T) {
	raw := `{
		"type": "text",
		"text": "Big Sale",
		"position": "top-center",
		"zIndex": 2,
		"animation": {"preset": "typewriter", "delay": 0.4}
	}`
	var l Layer
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	content, ok := l.Content.(TextContent)
	if !ok {
		t.Fatalf("Content type = %T, want TextContent", l.Content)
	}
	if content.Text != "Big Sale" {
		t.Fatalf("Text = %q, want Big Sale", content.Text)
	}
	if l.Position.Anchor != AnchorTopCenter {
		t.Fatalf("Anchor = %q, want top-center", l.Position.Anchor)
	}
	if l.ZIndex != 2 {
		t.Fatalf("ZIndex = %d, want 2", l.ZIndex)
	}
	if l.Animation == nil || l.Animation.Preset != "typewriter" || l.Animation.Delay != 0.4 {
		t.Fatalf("Animation = %+v, want typewriter at 0.4", l.Animation)
	}
}

func TestLayer_UnmarshalButtonWithRectPosition(t *testing.T) {
	raw := `{
		"type": "button",
		"label": "Shop now",
		"link": "/shop",
		"position": {"x": 10, "y": 80, "width": 30, "height": 10}
	}`
	var l Layer
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	content, ok := l.Content.(ButtonContent)
	if !ok {
		t.Fatalf("Content type = %T, want ButtonContent", l.Content)
	}
	if content.Label != "Shop now" || content.Link != "/shop" {
		t.Fatalf("button = %+v", content)
	}
	if l.Position.Anchor != AnchorCustom {
		t.Fatalf("Anchor = %q, want custom", l.Position.Anchor)
	}
	if l.Position.Rect == nil || l.Position.Rect.Y != 80 {
		t.Fatalf("Rect = %+v, want y 80", l.Position.Rect)
	}
}

func TestLayer_UnmarshalUnknownType(t *testing.T) {
	var l Layer
	err := json.Unmarshal([]byte(`{"type":"hologram","position":"center"}`), &l)
	if err == nil {
		t.Fatalf("Unmarshal error = nil, want unknown type error")
	}
}

func TestLayer_MarshalRoundTrip(t *testing.T) {
	orig := Layer{
		Content:  ImageContent{Src: "bg.png", Alt: "背景"},
		Position: Position{Anchor: AnchorBottomRight},
		ZIndex:   1,
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Layer
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	content, ok := got.Content.(ImageContent)
	if !ok {
		t.Fatalf("Content type = %T, want ImageContent", got.Content)
	}
	if content.Src != "bg.png" {
		t.Fatalf("Src = %q, want bg.png", content.Src)
	}
	if got.Position.Anchor != AnchorBottomRight {
		t.Fatalf("Anchor = %q, want bottom-right", got.Position.Anchor)
	}
}

func TestSettings_MergeDeep(t *testing.T) {
	s := DefaultSettings()

	enabled := false
	hide := 1500
	s = s.Merge(SettingsPatch{
		Autoplay:   &AutoplayPatch{Enabled: &enabled},
		Navigation: &NavigationPatch{HideDelayMs: &hide},
	})

	if s.Autoplay.Enabled {
		t.Fatalf("Autoplay.Enabled = true, want false")
	}
	if s.Autoplay.DelayMs != 5000 {
		t.Fatalf("Autoplay.DelayMs = %d, want untouched 5000", s.Autoplay.DelayMs)
	}
	if s.Navigation.HideDelayMs != 1500 {
		t.Fatalf("HideDelayMs = %d, want 1500", s.Navigation.HideDelayMs)
	}
	if !s.Navigation.Arrows {
		t.Fatalf("Arrows = false, want untouched true")
	}
}

func TestSettings_MergeEmptyPatchIsIdentity(t *testing.T) {
	s := DefaultSettings()
	if merged := s.Merge(SettingsPatch{}); merged != s {
		t.Fatalf("Merge(empty) changed settings: %+v", merged)
	}
}

func TestSettings_MergeFalseIsNotAbsent(t *testing.T) {
	s := DefaultSettings()
	off := false
	s = s.Merge(SettingsPatch{Loop: &off})
	if s.Loop {
		t.Fatalf("Loop = true, want explicit false applied")
	}
}

func TestResponse_UnmarshalSlideAnimations(t *testing.T) {
	raw := `{
		"slides": [{
			"title": "Hello",
			"animations": {
				"title": {"preset": "bounceIn", "duration": 1.2, "easing": "outBounce"}
			}
		}]
	}`
	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	a := resp.Slides[0].Animations
	if a == nil || a.Title == nil {
		t.Fatalf("Animations.Title missing")
	}
	if a.Title.Preset != "bounceIn" || a.Title.Duration != 1.2 {
		t.Fatalf("Title animation = %+v", a.Title)
	}
	if a.Subtitle != nil {
		t.Fatalf("Subtitle override = %+v, want nil", a.Subtitle)
	}
}
