package morph

import "github.com/tiendc/go-deepcopy"

// Clone returns an independent deep copy of the store, used for
// non-destructive bake previews. The clone starts clean (not dirty) and
// shares no storage with the original.
func (s *Store) Clone() (*Store, error) {
	out := NewStore(s.limits)
	out.log = s.log

	if err := deepcopy.Copy(&out.targets, &s.targets); err != nil {
		return nil, err
	}
	for name, idx := range s.targetIndex {
		out.targetIndex[name] = idx
	}

	// Channels carry an unexported weight, so they are copied by hand.
	out.channels = make([]Channel, len(s.channels))
	for i := range s.channels {
		c := s.channels[i]
		c.TargetIndices = append([]int(nil), c.TargetIndices...)
		c.TargetWeights = append([]float32(nil), c.TargetWeights...)
		out.channels[i] = c
	}
	for name, idx := range s.channelIndex {
		out.channelIndex[name] = idx
	}

	out.presets = make([]Preset, len(s.presets))
	for i := range s.presets {
		p := s.presets[i]
		weights := make(map[string]float32, len(p.Weights))
		for k, v := range p.Weights {
			weights[k] = v
		}
		p.Weights = weights
		out.presets[i] = p
	}
	for name, idx := range s.presetIndex {
		out.presetIndex[name] = idx
	}

	return out, nil
}
