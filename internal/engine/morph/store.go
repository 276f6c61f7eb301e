package morph

import "go.uber.org/zap"

// Limits holds the store's hard capacity constants. Zero fields fall back
// to the package defaults.
type Limits struct {
	MaxTargets       int
	MaxActiveTargets int
}

// Store owns all targets, channels, and presets for one mesh, with
// name-to-index maps for O(1) lookup and a single dirty flag.
//
// Lookups for unknown names or out-of-range indices return a not-found
// result rather than failing; blend shape data is authored interactively
// and partially, and UI code probes optimistically. Stores are not safe
// for concurrent use; callers serialize access externally.
type Store struct {
	limits Limits

	targets  []Target
	channels []Channel
	presets  []Preset

	targetIndex  map[string]int
	channelIndex map[string]int
	presetIndex  map[string]int

	dirty bool

	log *zap.Logger
}

// NewStore creates an empty store with the given limits.
func NewStore(limits Limits) *Store {
	if limits.MaxTargets <= 0 {
		limits.MaxTargets = DefaultMaxTargets
	}
	if limits.MaxActiveTargets <= 0 {
		limits.MaxActiveTargets = DefaultMaxActiveTargets
	}
	return &Store{
		limits:       limits,
		targetIndex:  make(map[string]int),
		channelIndex: make(map[string]int),
		presetIndex:  make(map[string]int),
	}
}

// SetLogger attaches an optional logger for structural mutations.
func (s *Store) SetLogger(log *zap.Logger) {
	s.log = log
}

// Limits returns the store's capacity limits.
func (s *Store) Limits() Limits {
	return s.limits
}

// IsDirty reports whether any mutation happened since the last ClearDirty.
func (s *Store) IsDirty() bool {
	return s.dirty
}

// ClearDirty marks the store as consumed. Callers (e.g. a GPU uploader)
// call this after resynchronizing.
func (s *Store) ClearDirty() {
	s.dirty = false
}

// MarkDirty forces the dirty flag, e.g. after an external buffer swap.
func (s *Store) MarkDirty() {
	s.dirty = true
}

// AddTarget appends a target and registers its name. Returns the new index,
// or -1 if the store is at capacity or the name is already taken.
func (s *Store) AddTarget(t Target) int {
	if len(s.targets) >= s.limits.MaxTargets {
		if s.log != nil {
			s.log.Warn("target store full", zap.String("target", t.Name), zap.Int("max", s.limits.MaxTargets))
		}
		return -1
	}
	if _, exists := s.targetIndex[t.Name]; exists {
		return -1
	}

	idx := len(s.targets)
	s.targets = append(s.targets, t)
	s.targetIndex[t.Name] = idx
	s.dirty = true

	if s.log != nil {
		s.log.Debug("target added", zap.String("target", t.Name), zap.Int("deltas", len(t.Deltas)))
	}
	return idx
}

// TargetAt returns the target at index, or false for an out-of-range index.
func (s *Store) TargetAt(index int) (*Target, bool) {
	if index < 0 || index >= len(s.targets) {
		return nil, false
	}
	return &s.targets[index], true
}

// Target returns the named target, or false if unknown.
func (s *Store) Target(name string) (*Target, bool) {
	idx, ok := s.targetIndex[name]
	if !ok {
		return nil, false
	}
	return &s.targets[idx], true
}

// TargetIndex returns the index of the named target, or -1 if unknown.
func (s *Store) TargetIndex(name string) int {
	idx, ok := s.targetIndex[name]
	if !ok {
		return -1
	}
	return idx
}

// TargetCount returns the number of stored targets.
func (s *Store) TargetCount() int {
	return len(s.targets)
}

// TargetsByCategory returns the indices of all targets in the category.
func (s *Store) TargetsByCategory(category string) []int {
	var out []int
	for i := range s.targets {
		if s.targets[i].Category == category {
			out = append(out, i)
		}
	}
	return out
}

// AddChannel appends a channel and registers its name. Returns the new
// index, or -1 if the name is already taken.
func (s *Store) AddChannel(c Channel) int {
	if _, exists := s.channelIndex[c.Name]; exists {
		return -1
	}

	idx := len(s.channels)
	s.channels = append(s.channels, c)
	s.channelIndex[c.Name] = idx
	s.dirty = true
	return idx
}

// CreateChannel is a convenience that adds a [0,1] channel driving one
// target at multiplier 1.0. Pass a negative targetIndex for a channel with
// no targets.
func (s *Store) CreateChannel(name string, targetIndex int) int {
	c := NewChannel(name)
	if targetIndex >= 0 {
		c.AddTarget(targetIndex, 1.0)
	}
	return s.AddChannel(c)
}

// CreateChannelsFromTargets auto-creates a 1:1 channel for every target
// lacking a same-named channel. This is the default wiring when no curated
// channel set is authored. Returns the number of channels created.
func (s *Store) CreateChannelsFromTargets() int {
	created := 0
	for i := range s.targets {
		name := s.targets[i].Name
		if _, exists := s.channelIndex[name]; exists {
			continue
		}
		s.CreateChannel(name, i)
		created++
	}
	return created
}

// ChannelAt returns the channel at index, or false for an out-of-range index.
func (s *Store) ChannelAt(index int) (*Channel, bool) {
	if index < 0 || index >= len(s.channels) {
		return nil, false
	}
	return &s.channels[index], true
}

// Channel returns the named channel, or false if unknown.
func (s *Store) Channel(name string) (*Channel, bool) {
	idx, ok := s.channelIndex[name]
	if !ok {
		return nil, false
	}
	return &s.channels[idx], true
}

// ChannelCount returns the number of channels.
func (s *Store) ChannelCount() int {
	return len(s.channels)
}

// SetWeight sets the weight of the channel at index, clamped to the
// channel's range. Out-of-range indices are ignored.
func (s *Store) SetWeight(index int, w float32) {
	if index < 0 || index >= len(s.channels) {
		return
	}
	s.channels[index].setWeight(w)
	s.dirty = true
}

// SetWeightByName sets the named channel's weight, clamped to the channel's
// range. Returns false for an unknown name.
func (s *Store) SetWeightByName(name string, w float32) bool {
	idx, ok := s.channelIndex[name]
	if !ok {
		return false
	}
	s.channels[idx].setWeight(w)
	s.dirty = true
	return true
}

// ResetAllWeights sets every channel back to its default weight.
func (s *Store) ResetAllWeights() {
	for i := range s.channels {
		s.channels[i].setWeight(s.channels[i].DefaultWeight)
	}
	s.dirty = true
}

// AddPreset appends a preset and registers its name. Returns the new index,
// or -1 if the name is already taken.
func (s *Store) AddPreset(p Preset) int {
	if _, exists := s.presetIndex[p.Name]; exists {
		return -1
	}

	idx := len(s.presets)
	s.presets = append(s.presets, p)
	s.presetIndex[p.Name] = idx
	s.dirty = true
	return idx
}

// PresetAt returns the preset at index, or false for an out-of-range index.
func (s *Store) PresetAt(index int) (*Preset, bool) {
	if index < 0 || index >= len(s.presets) {
		return nil, false
	}
	return &s.presets[index], true
}

// Preset returns the named preset, or false if unknown.
func (s *Store) Preset(name string) (*Preset, bool) {
	idx, ok := s.presetIndex[name]
	if !ok {
		return nil, false
	}
	return &s.presets[idx], true
}

// PresetCount returns the number of presets.
func (s *Store) PresetCount() int {
	return len(s.presets)
}

// PresetsByCategory returns the indices of all presets in the category.
func (s *Store) PresetsByCategory(category string) []int {
	var out []int
	for i := range s.presets {
		if s.presets[i].Category == category {
			out = append(out, i)
		}
	}
	return out
}

// ApplyPreset blends the named preset into the current channel weights:
// new = current*(1-blend) + preset*blend. blend=1 is a full snap. Channel
// names the preset references but this store lacks are skipped silently.
// Returns false for an unknown preset name.
func (s *Store) ApplyPreset(name string, blend float32) bool {
	idx, ok := s.presetIndex[name]
	if !ok {
		return false
	}
	s.ApplyPresetAt(idx, blend)
	return true
}

// ApplyPresetAt blends the preset at index into the current channel
// weights. Out-of-range indices are ignored.
func (s *Store) ApplyPresetAt(index int, blend float32) {
	if index < 0 || index >= len(s.presets) {
		return
	}
	for name, w := range s.presets[index].Weights {
		ci, ok := s.channelIndex[name]
		if !ok {
			continue
		}
		cur := s.channels[ci].Weight()
		s.channels[ci].setWeight(cur*(1-blend) + w*blend)
	}
	s.dirty = true
}

// CapturePreset snapshots the current channel weights into a new preset.
// The inverse of ApplyPreset, used by authoring flows.
func (s *Store) CapturePreset(name, category string) Preset {
	p := NewPreset(name, category)
	for i := range s.channels {
		p.Weights[s.channels[i].Name] = s.channels[i].Weight()
	}
	return p
}
