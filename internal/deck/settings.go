package deck

// AutoplaySettings control automatic slide advancement.
type AutoplaySettings struct {
	Enabled bool `json:"enabled"`
	DelayMs int  `json:"delayMs"`
}

// NavigationSettings control the on-screen navigation chrome.
type NavigationSettings struct {
	Enabled        bool   `json:"enabled"`
	Arrows         bool   `json:"arrows"`
	Pagination     bool   `json:"pagination"`
	PlayPause      bool   `json:"playPause"`
	AutoHide       bool   `json:"autoHide"`
	HideDelayMs    int    `json:"hideDelayMs"`
	Position       string `json:"position"`
	Theme          string `json:"theme"`
	Size           string `json:"size"`
	AnimationStyle string `json:"animationStyle"`
}

// TouchSettings tune swipe gesture recognition.
type TouchSettings struct {
	MinDistance int `json:"minDistance"`
	MaxTimeMs   int `json:"maxTimeMs"`
	Threshold   int `json:"threshold"`
}

// Settings is the fully-defaulted slider configuration. Every nested group
// is always complete; partial updates travel as SettingsPatch and are
// merged field by field, so an unspecified sibling is never dropped.
type Settings struct {
	Autoplay      AutoplaySettings   `json:"autoplay"`
	Navigation    NavigationSettings `json:"navigation"`
	Touch         TouchSettings      `json:"touch"`
	Loop          bool               `json:"loop"`
	SpeedMs       int                `json:"speedMs"`
	SpaceBetween  int                `json:"spaceBetween"`
	SlidesPerView int                `json:"slidesPerView"`
}

// DefaultSettings returns the complete baseline configuration.
func DefaultSettings() Settings {
	return Settings{
		Autoplay: AutoplaySettings{
			Enabled: true,
			DelayMs: 5000,
		},
		Navigation: NavigationSettings{
			Enabled:        true,
			Arrows:         true,
			Pagination:     true,
			PlayPause:      true,
			AutoHide:       false,
			HideDelayMs:    3000,
			Position:       string(AnchorBottomCenter),
			Theme:          "dark",
			Size:           "medium",
			AnimationStyle: "fade",
		},
		// Distances are terminal cells, threshold is cells per second.
		Touch: TouchSettings{
			MinDistance: 5,
			MaxTimeMs:   300,
			Threshold:   10,
		},
		Loop:          true,
		SpeedMs:       600,
		SpaceBetween:  0,
		SlidesPerView: 1,
	}
}

// AutoplayPatch is a partial AutoplaySettings update.
type AutoplayPatch struct {
	Enabled *bool `json:"enabled,omitempty"`
	DelayMs *int  `json:"delayMs,omitempty"`
}

// NavigationPatch is a partial NavigationSettings update.
type NavigationPatch struct {
	Enabled        *bool   `json:"enabled,omitempty"`
	Arrows         *bool   `json:"arrows,omitempty"`
	Pagination     *bool   `json:"pagination,omitempty"`
	PlayPause      *bool   `json:"playPause,omitempty"`
	AutoHide       *bool   `json:"autoHide,omitempty"`
	HideDelayMs    *int    `json:"hideDelayMs,omitempty"`
	Position       *string `json:"position,omitempty"`
	Theme          *string `json:"theme,omitempty"`
	Size           *string `json:"size,omitempty"`
	AnimationStyle *string `json:"animationStyle,omitempty"`
}

// TouchPatch is a partial TouchSettings update.
type TouchPatch struct {
	MinDistance *int `json:"minDistance,omitempty"`
	MaxTimeMs   *int `json:"maxTimeMs,omitempty"`
	Threshold   *int `json:"threshold,omitempty"`
}

// SettingsPatch is a partial Settings update. Nil fields leave the current
// value untouched, which makes Merge a deep merge by construction.
type SettingsPatch struct {
	Autoplay      *AutoplayPatch   `json:"autoplay,omitempty"`
	Navigation    *NavigationPatch `json:"navigation,omitempty"`
	Touch         *TouchPatch      `json:"touch,omitempty"`
	Loop          *bool            `json:"loop,omitempty"`
	SpeedMs       *int             `json:"speedMs,omitempty"`
	SpaceBetween  *int             `json:"spaceBetween,omitempty"`
	SlidesPerView *int             `json:"slidesPerView,omitempty"`
}

// Merge applies the patch over s and returns the result.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.Autoplay != nil {
		setBool(&s.Autoplay.Enabled, p.Autoplay.Enabled)
		setInt(&s.Autoplay.DelayMs, p.Autoplay.DelayMs)
	}
	if p.Navigation != nil {
		setBool(&s.Navigation.Enabled, p.Navigation.Enabled)
		setBool(&s.Navigation.Arrows, p.Navigation.Arrows)
		setBool(&s.Navigation.Pagination, p.Navigation.Pagination)
		setBool(&s.Navigation.PlayPause, p.Navigation.PlayPause)
		setBool(&s.Navigation.AutoHide, p.Navigation.AutoHide)
		setInt(&s.Navigation.HideDelayMs, p.Navigation.HideDelayMs)
		setString(&s.Navigation.Position, p.Navigation.Position)
		setString(&s.Navigation.Theme, p.Navigation.Theme)
		setString(&s.Navigation.Size, p.Navigation.Size)
		setString(&s.Navigation.AnimationStyle, p.Navigation.AnimationStyle)
	}
	if p.Touch != nil {
		setInt(&s.Touch.MinDistance, p.Touch.MinDistance)
		setInt(&s.Touch.MaxTimeMs, p.Touch.MaxTimeMs)
		setInt(&s.Touch.Threshold, p.Touch.Threshold)
	}
	setBool(&s.Loop, p.Loop)
	setInt(&s.SpeedMs, p.SpeedMs)
	setInt(&s.SpaceBetween, p.SpaceBetween)
	setInt(&s.SlidesPerView, p.SlidesPerView)
	return s
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
