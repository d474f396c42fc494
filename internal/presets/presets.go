// Package presets replaces comment-based contact tuning toggles with named
// parameter sets. The fragment's history of superseded tunings (stiffness,
// friction, density) lives here as inactive presets; exactly one preset is
// marked active and can be applied to a geom.
package presets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mjscene/internal/mjcf"
)

// Preset is one named contact-parameter set for a geom. SolImp and SolRef are
// engine-specific solver tuples and are applied verbatim, not reinterpreted.
type Preset struct {
	Name     string     `yaml:"name"`
	Active   bool       `yaml:"active,omitempty"`
	SolImp   []float64  `yaml:"solimp,flow"`
	SolRef   []float64  `yaml:"solref,flow"`
	Density  float64    `yaml:"density"`
	Friction [3]float64 `yaml:"friction,flow"`
	CondDim  int        `yaml:"condim"`
	Group    int        `yaml:"group"`
}

// File is a presets file: the full tuning history for one object, with one
// preset marked active.
type File struct {
	Presets []Preset `yaml:"presets"`
}

// Load reads a presets file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a presets file from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}
	return &f, nil
}

// Active returns the single active preset. Zero or multiple active presets is
// an authoring error.
func (f *File) Active() (*Preset, error) {
	var active *Preset
	for i := range f.Presets {
		if !f.Presets[i].Active {
			continue
		}
		if active != nil {
			return nil, fmt.Errorf("presets: both %q and %q are active", active.Name, f.Presets[i].Name)
		}
		active = &f.Presets[i]
	}
	if active == nil {
		return nil, fmt.Errorf("presets: no active preset")
	}
	return active, nil
}

// Get returns the named preset, or nil.
func (f *File) Get(name string) *Preset {
	for i := range f.Presets {
		if f.Presets[i].Name == name {
			return &f.Presets[i]
		}
	}
	return nil
}

// Apply writes the preset's contact parameters onto the geom, keeping the
// geom's serialized attribute text in sync.
func (p *Preset) Apply(g *mjcf.Geom) {
	g.SetSolImp(p.SolImp)
	g.SetSolRef(p.SolRef)
	g.SetDensity(p.Density)
	g.SetFriction(p.Friction)
	g.SetCondDim(p.CondDim)
	g.SetGroup(p.Group)
}
