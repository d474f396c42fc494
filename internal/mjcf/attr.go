package mjcf

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute text helpers. Numeric attributes are whitespace-separated float
// lists (e.g. pos="0 0 -0.023103"); parsed values live alongside the verbatim
// text stored in attrs, and setters keep the two in sync.

// parseFloats parses a whitespace-separated float list. want < 0 accepts any
// length (solver tuples differ in length across engine versions).
func parseFloats(s string, want int) ([]float64, error) {
	fields := strings.Fields(s)
	if want >= 0 && len(fields) != want {
		return nil, fmt.Errorf("expected %d floats, got %d in %q", want, len(fields), s)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float %q in %q", f, s)
		}
		out[i] = v
	}
	return out, nil
}

func parseVec3(s string) ([3]float64, error) {
	var v [3]float64
	fs, err := parseFloats(s, 3)
	if err != nil {
		return v, err
	}
	copy(v[:], fs)
	return v, nil
}

func parseVec4(s string) ([4]float64, error) {
	var v [4]float64
	fs, err := parseFloats(s, 4)
	if err != nil {
		return v, err
	}
	copy(v[:], fs)
	return v, nil
}

func parseVec2(s string) ([2]float64, error) {
	var v [2]float64
	fs, err := parseFloats(s, 2)
	if err != nil {
		return v, err
	}
	copy(v[:], fs)
	return v, nil
}

// parseBool accepts the format's boolean spellings: true/false and 1/0.
func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("bad bool %q", s)
}

// formatFloats renders a float list the way the format writes numbers:
// shortest round-trippable decimal, space-separated.
func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// setAttr updates the verbatim text of an existing attribute, or appends a new
// one, preserving source order for round-tripping.
func setAttr(attrs []attr, name, value string) []attr {
	for i := range attrs {
		if attrs[i].name == name {
			attrs[i].value = value
			return attrs
		}
	}
	return append(attrs, attr{name: name, value: value})
}

// SetSolImp replaces the geom's solver impedance tuple.
func (g *Geom) SetSolImp(vs []float64) {
	g.SolImp = append([]float64(nil), vs...)
	g.attrs = setAttr(g.attrs, "solimp", formatFloats(vs))
}

// SetSolRef replaces the geom's solver reference tuple.
func (g *Geom) SetSolRef(vs []float64) {
	g.SolRef = append([]float64(nil), vs...)
	g.attrs = setAttr(g.attrs, "solref", formatFloats(vs))
}

// SetDensity replaces the geom's density.
func (g *Geom) SetDensity(d float64) {
	g.Density = d
	g.attrs = setAttr(g.attrs, "density", formatFloats([]float64{d}))
}

// SetFriction replaces the geom's sliding/torsional/rolling friction.
func (g *Geom) SetFriction(f [3]float64) {
	g.Friction = f
	g.attrs = setAttr(g.attrs, "friction", formatFloats(f[:]))
}

// SetCondDim replaces the geom's contact dimensionality.
func (g *Geom) SetCondDim(n int) {
	g.CondDim = n
	g.attrs = setAttr(g.attrs, "condim", strconv.Itoa(n))
}

// SetGroup replaces the geom's collision-group tag.
func (g *Geom) SetGroup(n int) {
	g.Group = n
	g.attrs = setAttr(g.attrs, "group", strconv.Itoa(n))
}
