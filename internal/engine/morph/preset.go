package morph

// Preset is a named point in channel-weight space. Weights are keyed by
// channel name so a preset authored for one mesh variant can be applied to
// another; names it cannot resolve are skipped.
type Preset struct {
	Name     string
	Category string
	Weights  map[string]float32
}

// NewPreset creates an empty preset.
func NewPreset(name, category string) Preset {
	return Preset{Name: name, Category: category, Weights: make(map[string]float32)}
}
