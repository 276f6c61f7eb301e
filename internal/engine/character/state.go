package character

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/charforge/internal/engine/measure"
)

// State is the serialized form of a character: channel weights and
// measurement values keyed by name. Names, never indices — index stability
// is not guaranteed across store rebuilds.
type State struct {
	Channels     map[string]float32 `yaml:"channels"`
	Measurements map[string]float32 `yaml:"measurements"`
}

// CaptureState snapshots the current weights and measurements.
func (c *Character) CaptureState() State {
	st := State{
		Channels:     make(map[string]float32),
		Measurements: make(map[string]float32),
	}
	for i := 0; i < c.Store.ChannelCount(); i++ {
		ch, _ := c.Store.ChannelAt(i)
		st.Channels[ch.Name] = ch.Weight()
	}
	for _, s := range measure.Sources() {
		st.Measurements[s.String()] = c.Body.Measurement(s)
	}
	return st
}

// RestoreState applies a saved state: measurements first, then a Refresh so
// mapped channels settle, then the explicit channel weights on top. Names
// that do not resolve on this character are skipped, so states saved from
// other mesh variants restore as far as they can. Returns the number of
// channel weights applied.
func (c *Character) RestoreState(st State) int {
	for name, v := range st.Measurements {
		s, ok := measure.ParseSource(name)
		if !ok {
			continue
		}
		c.Body.Set(s, v)
	}
	c.Refresh()

	applied := 0
	for name, w := range st.Channels {
		if c.Store.SetWeightByName(name, w) {
			applied++
		}
	}
	return applied
}

// SaveState writes the character state to a YAML file.
func (c *Character) SaveState(path string) error {
	data, err := yaml.Marshal(c.CaptureState())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadState reads a YAML state file and restores it.
func (c *Character) LoadState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("parsing state from %s: %w", path, err)
	}
	c.RestoreState(st)
	return nil
}
