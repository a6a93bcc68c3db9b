package preset

// defaultCatalog builds the stock presets. Offsets are expressed in the
// same abstract units the view maps to cells; positive y moves down.
func defaultCatalog() []Entry {
	entrance := func(key, name string, initial State, dur float64, easing string) Entry {
		final := State{}
		for ch := range initial {
			switch ch {
			case ChannelOpacity:
				final[ch] = 1
			case ChannelScale:
				final[ch] = 1
			case ChannelBlur:
				final[ch] = 0
			default:
				final[ch] = 0
			}
		}
		return Entry{Key: key, Preset: Preset{
			Name:            name,
			Category:        CategoryEntrance,
			Initial:         initial,
			Final:           final,
			DefaultDuration: dur,
			DefaultEasing:   easing,
		}}
	}

	return []Entry{
		entrance("fadeIn", "Fade In",
			State{ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("slideUp", "Slide Up",
			State{ChannelY: 50, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("slideDown", "Slide Down",
			State{ChannelY: -50, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("slideIn", "Slide In",
			State{ChannelX: 100, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("slideInRight", "Slide In Right",
			State{ChannelX: 100, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("slideInLeft", "Slide In Left",
			State{ChannelX: -100, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("slideInRotate", "Slide In Rotate",
			State{ChannelX: -100, ChannelRotation: -10, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("scaleIn", "Scale In",
			State{ChannelScale: 0, ChannelOpacity: 0}, 0.6, "outBack"),
		entrance("scaleUp", "Scale Up",
			State{ChannelScale: 0.8, ChannelOpacity: 0}, 0.6, "outCubic"),
		entrance("zoomIn", "Zoom In",
			State{ChannelScale: 0.5, ChannelOpacity: 0}, 0.8, "outBack"),
		entrance("zoomBlur", "Zoom Blur",
			State{ChannelScale: 1.2, ChannelBlur: 10, ChannelOpacity: 0}, 1.0, "outCubic"),
		entrance("rotateIn", "Rotate In",
			State{ChannelRotation: -180, ChannelScale: 0.8, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("flipInX", "Flip In X",
			State{ChannelRotationX: -90, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("flipInY", "Flip In Y",
			State{ChannelRotationY: -90, ChannelOpacity: 0}, 0.8, "outCubic"),
		entrance("bounceIn", "Bounce In",
			State{ChannelScale: 0.3, ChannelOpacity: 0}, 0.8, "outBounce"),
		entrance("bounceInUp", "Bounce In Up",
			State{ChannelY: 100, ChannelOpacity: 0}, 1.0, "outBounce"),

		// Text effects reveal content progressively via the progress channel.
		{Key: "typewriter", Preset: Preset{
			Name:            "Typewriter",
			Category:        CategoryText,
			Initial:         State{ChannelProgress: 0, ChannelOpacity: 1},
			Final:           State{ChannelProgress: 1},
			DefaultDuration: 1.2,
			DefaultEasing:   "linear",
		}},
		{Key: "slideInSplit", Preset: Preset{
			Name:            "Slide In Split",
			Category:        CategoryText,
			Initial:         State{ChannelProgress: 0, ChannelY: 50, ChannelOpacity: 0},
			Final:           State{ChannelProgress: 1, ChannelY: 0, ChannelOpacity: 1},
			DefaultDuration: 0.8,
			DefaultEasing:   "outCubic",
		}},

		{Key: "fadeOut", Preset: Preset{
			Name:            "Fade Out",
			Category:        CategoryExit,
			Initial:         State{ChannelOpacity: 1},
			Final:           State{ChannelOpacity: 0},
			DefaultDuration: 0.6,
			DefaultEasing:   "inCubic",
		}},
		{Key: "slideOutUp", Preset: Preset{
			Name:            "Slide Out Up",
			Category:        CategoryExit,
			Initial:         State{ChannelY: 0, ChannelOpacity: 1},
			Final:           State{ChannelY: -50, ChannelOpacity: 0},
			DefaultDuration: 0.6,
			DefaultEasing:   "inCubic",
		}},
	}
}
