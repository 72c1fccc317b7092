package scenario

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"wildfire/internal/core"
	"wildfire/internal/fire"
)

//go:embed presets/*.yaml
var presetFS embed.FS

var presets = mustLoadPresets()

func mustLoadPresets() map[string]*Scenario {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		panic(fmt.Sprintf("scenario: read presets: %v", err))
	}
	out := make(map[string]*Scenario, len(entries))
	for _, entry := range entries {
		data, err := presetFS.ReadFile(path.Join("presets", entry.Name()))
		if err != nil {
			panic(fmt.Sprintf("scenario: read preset %s: %v", entry.Name(), err))
		}
		sc, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("scenario: preset %s: %v", entry.Name(), err))
		}
		out[sc.Name] = sc
	}
	return out
}

// Preset returns a copy of a built-in scenario.
func Preset(name string) (*Scenario, bool) {
	sc, ok := presets[name]
	if !ok {
		return nil, false
	}
	cp := *sc
	return &cp, true
}

// PresetNames lists the built-in scenarios in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSimulation builds a simulation for sc with flag-style overrides.
func NewSimulation(sc *Scenario, overrides map[string]string) (*fire.Simulation, error) {
	build, err := Build(sc, overrides)
	if err != nil {
		return nil, err
	}
	name := sc.Name
	if name == "" {
		name = "wildfire"
	}
	return fire.NewSimulation(name, build)
}

func init() {
	for name, sc := range presets {
		sc := sc
		core.Register(name, func(cfg map[string]string) (core.Sim, error) {
			sim, err := NewSimulation(sc, cfg)
			if err != nil {
				return nil, err
			}
			return sim, nil
		})
	}
}
