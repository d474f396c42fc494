package massprops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mjscene/internal/objfile"
)

// cube returns a closed unit cube centered at the given point, wound outward.
func cube(center [3]float64, half float64) *objfile.Mesh {
	h := half
	c := center
	verts := [][3]float64{
		{c[0] - h, c[1] - h, c[2] - h}, {c[0] + h, c[1] - h, c[2] - h},
		{c[0] + h, c[1] + h, c[2] - h}, {c[0] - h, c[1] + h, c[2] - h},
		{c[0] - h, c[1] - h, c[2] + h}, {c[0] + h, c[1] - h, c[2] + h},
		{c[0] + h, c[1] + h, c[2] + h}, {c[0] - h, c[1] + h, c[2] + h},
	}
	quads := [][4]int{
		{0, 3, 2, 1}, // -z
		{4, 5, 6, 7}, // +z
		{0, 1, 5, 4}, // -y
		{3, 7, 6, 2}, // +y
		{0, 4, 7, 3}, // -x
		{1, 2, 6, 5}, // +x
	}
	m := &objfile.Mesh{Vertices: verts}
	for _, q := range quads {
		m.Tris = append(m.Tris, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}
	return m
}

func TestComputeUnitCube(t *testing.T) {
	p, err := Compute(cube([3]float64{0, 0, 0}, 0.5), 2)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, p.Volume, 1e-12)
	assert.InDelta(t, 2.0, p.Mass, 1e-12)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, p.CenterOfMass[i], 1e-12)
		// Solid cube about its center: I = m·s²/6.
		assert.InDelta(t, 2.0/6.0, p.Moments[i], 1e-12)
		assert.InDelta(t, 0, p.Products[i], 1e-12)
	}
}

func TestComputeOffsetCube(t *testing.T) {
	p, err := Compute(cube([3]float64{1, -2, 3}, 0.5), 100)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, p.Volume, 1e-9)
	assert.InDelta(t, 100.0, p.Mass, 1e-9)
	assert.InDelta(t, 1, p.CenterOfMass[0], 1e-9)
	assert.InDelta(t, -2, p.CenterOfMass[1], 1e-9)
	assert.InDelta(t, 3, p.CenterOfMass[2], 1e-9)
	// Parallel-axis shift back to the center leaves the centered inertia.
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 100.0/6.0, p.Moments[i], 1e-8)
		assert.InDelta(t, 0, p.Products[i], 1e-8)
	}
}

func TestComputeInwardWinding(t *testing.T) {
	m := cube([3]float64{0, 0, 0}, 0.5)
	for i := range m.Tris {
		m.Tris[i][1], m.Tris[i][2] = m.Tris[i][2], m.Tris[i][1]
	}
	p, err := Compute(m, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.Volume, 1e-12)
	assert.InDelta(t, 2.0/6.0, p.Moments[0], 1e-12)
}

func TestComputeDegenerate(t *testing.T) {
	flat := &objfile.Mesh{
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Tris:     [][3]int{{0, 1, 2}},
	}
	_, err := Compute(flat, 100)
	assert.ErrorContains(t, err, "degenerate")

	_, err = Compute(cube([3]float64{0, 0, 0}, 0.5), 0)
	assert.ErrorContains(t, err, "density")
}

func TestCheckAnchors(t *testing.T) {
	m := cube([3]float64{0, 0, 0}, 0.5)
	// Cube corners are at horizontal radius √2/2.
	bottom := [3]float64{0, 0, -0.5}
	top := [3]float64{0, 0, 0.5}
	radius := [3]float64{0.5, 0.5, 0}
	assert.Empty(t, CheckAnchors(m, bottom, top, radius, 1e-6))

	warnings := CheckAnchors(m, [3]float64{0, 0, -0.7}, top, radius, 1e-6)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "bottom anchor")

	warnings = CheckAnchors(m, bottom, [3]float64{0, 0, 0.9}, [3]float64{0.1, 0, 0}, 1e-6)
	assert.Len(t, warnings, 2)
}
