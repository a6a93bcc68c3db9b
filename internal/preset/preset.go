package preset

// Category groups presets by their role in a slide's lifecycle.
type Category string

const (
	CategoryEntrance Category = "entrance"
	CategoryText     Category = "text"
	CategoryExit     Category = "exit"
)

// Channel names one animatable numeric property of a visual.
type Channel string

const (
	ChannelX         Channel = "x"
	ChannelY         Channel = "y"
	ChannelScale     Channel = "scale"
	ChannelRotation  Channel = "rotation"
	ChannelRotationX Channel = "rotationX"
	ChannelRotationY Channel = "rotationY"
	ChannelOpacity   Channel = "opacity"
	ChannelBlur      Channel = "blur"
	ChannelProgress  Channel = "progress"
)

// State is a sparse set of channel values. Channels absent from a preset's
// states are left untouched on the target.
type State map[Channel]float64

// Preset is one reusable animation definition. Presets are immutable; the
// registry hands out copies of the map-free fields and callers must not
// mutate the states.
type Preset struct {
	Name            string
	Category        Category
	Initial         State
	Final           State
	DefaultDuration float64 // seconds
	DefaultEasing   string
}

// Entry pairs a registry key with its preset.
type Entry struct {
	Key string
	Preset
}

// Registry is a read-only catalog of presets keyed by name. It is built
// once at construction and never mutated afterwards, so concurrent reads
// need no locking.
type Registry struct {
	byKey map[string]Preset
	keys  []string
}

// NewRegistry returns a registry holding the default catalog.
func NewRegistry() *Registry {
	return newRegistry(defaultCatalog())
}

func newRegistry(entries []Entry) *Registry {
	r := &Registry{byKey: make(map[string]Preset, len(entries))}
	for _, e := range entries {
		if _, dup := r.byKey[e.Key]; dup {
			continue
		}
		r.byKey[e.Key] = e.Preset
		r.keys = append(r.keys, e.Key)
	}
	return r
}

// Get looks up a preset by key.
func (r *Registry) Get(key string) (Preset, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// List returns all presets in insertion order.
func (r *Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.keys))
	for _, key := range r.keys {
		entries = append(entries, Entry{Key: key, Preset: r.byKey[key]})
	}
	return entries
}

// Categories returns the distinct categories in first-appearance order.
func (r *Registry) Categories() []Category {
	seen := make(map[Category]bool)
	var cats []Category
	for _, key := range r.keys {
		c := r.byKey[key].Category
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	return cats
}
