// Package main is the entry point for the charforge demo tool. It builds a
// demo character on a procedural base mesh, drives it through measurements
// and a preset, and reports what the resolver would hand to a renderer.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/charforge/internal/config"
	"github.com/Faultbox/charforge/internal/engine/character"
	"github.com/Faultbox/charforge/internal/engine/measure"
	"github.com/Faultbox/charforge/internal/engine/mesh"
	"github.com/Faultbox/charforge/internal/engine/morph"
	"github.com/Faultbox/charforge/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== charforge ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	base := mesh.NewPlane(16, 2.0)
	logger.Info("base mesh built",
		zap.Int("vertices", len(base.Vertices)),
		zap.Int("indices", len(base.Indices)))

	char := character.New(morph.Limits{
		MaxTargets:       cfg.Morph.MaxTargets,
		MaxActiveTargets: cfg.Morph.MaxActiveTargets,
	})
	char.Store.SetLogger(logger.Log)

	if err := buildDemoTargets(char.Store, base); err != nil {
		return err
	}
	char.Store.CreateChannelsFromTargets()

	// Wire measurements to channels
	if ch, ok := char.Store.Channel("ridge"); ok {
		ch.MinWeight = -1
	}
	char.Mappings.Register(measure.Mapping{
		Channel: "ridge", Source: measure.SourceHeight, Curve: measure.CenteredCurve(),
	})
	char.Mappings.Register(measure.Mapping{
		Channel: "dome", Source: measure.SourceWeight, Curve: measure.LinearCurve(),
	})

	// A preset on top of the mapped channels
	preset := morph.NewPreset("windswept", "terrain")
	preset.Weights["tilt"] = 0.8
	char.Store.AddPreset(preset)

	// Drive it
	char.SetMeasurement(measure.SourceHeight, 0.9)
	char.SetMeasurement(measure.SourceWeight, 0.4)
	char.Store.ApplyPreset("windswept", 1.0)

	// Consume like a renderer would
	if char.Store.IsDirty() {
		deformed := char.Store.Apply(base)
		active := char.Store.ActiveTargetWeights()
		stats := char.Store.ResolveStats()
		char.Store.ClearDirty()

		logger.Info("resolved",
			zap.Int("active_channels", stats.ActiveChannels),
			zap.Int("active_targets", stats.ActiveTargets),
			zap.Int("truncated", stats.Truncated))
		for _, a := range active {
			t, _ := char.Store.TargetAt(a.TargetIndex)
			logger.Sugar.Infof("  %-8s weight=%+.3f deltas=%d", t.Name, a.Weight, len(t.Deltas))
		}
		logger.Sugar.Infof("deformed bounds: min=%v max=%v", deformed.Bounds.Min, deformed.Bounds.Max)
	}

	if cfg.State.File != "" {
		if err := char.SaveState(cfg.State.File); err != nil {
			return fmt.Errorf("saving state: %w", err)
		}
		logger.Info("state saved", zap.String("file", cfg.State.File))
	}

	return nil
}

// buildDemoTargets extracts a few targets from procedurally displaced
// copies of the base mesh.
func buildDemoTargets(store *morph.Store, base *mesh.Mesh) error {
	shapes := []struct {
		name     string
		displace func(i int, v *mesh.Vertex)
	}{
		{"ridge", func(i int, v *mesh.Vertex) {
			x := v.Position.X()
			v.Position = v.Position.Add(mgl32.Vec3{0, 0.3 * (1 - x*x), 0})
		}},
		{"dome", func(i int, v *mesh.Vertex) {
			d := v.Position.Len()
			if d < 1 {
				v.Position = v.Position.Add(mgl32.Vec3{0, 0.5 * (1 - d), 0})
			}
		}},
		{"tilt", func(i int, v *mesh.Vertex) {
			z := v.Position.Z()
			v.Position = v.Position.Add(mgl32.Vec3{0.1 * z, 0, 0})
		}},
	}

	for _, s := range shapes {
		shaped := base.Clone()
		for i := range shaped.Vertices {
			s.displace(i, &shaped.Vertices[i])
		}

		tgt, reason := morph.TargetFromDifference(s.name, "terrain", base, shaped, 0)
		if reason != morph.ReasonOK {
			return fmt.Errorf("extracting %s: %s", s.name, reason)
		}
		tgt.Compress(morph.DifferenceThreshold)
		if idx := store.AddTarget(tgt); idx < 0 {
			return fmt.Errorf("target store rejected %s", s.name)
		}
	}
	return nil
}
