package presets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mjscene/internal/mjcf"
)

func TestLoadHistory(t *testing.T) {
	f, err := Load("testdata/coffee_pod.yaml")
	require.NoError(t, err)
	require.Len(t, f.Presets, 2)

	active, err := f.Active()
	require.NoError(t, err)
	assert.Equal(t, "stiff-contact", active.Name)
	assert.Equal(t, 100.0, active.Density)
	assert.Equal(t, [3]float64{2, 2, 2}, active.Friction)
	assert.Equal(t, 4, active.CondDim)

	soft := f.Get("soft-contact")
	require.NotNil(t, soft)
	assert.False(t, soft.Active)
	assert.Equal(t, 50.0, soft.Density)
	assert.Equal(t, [3]float64{0.95, 0.3, 0.1}, soft.Friction)
	assert.Nil(t, f.Get("no-such-preset"))
}

func TestActiveErrors(t *testing.T) {
	none, err := Parse([]byte("presets:\n  - name: a\n  - name: b\n"))
	require.NoError(t, err)
	_, err = none.Active()
	assert.ErrorContains(t, err, "no active preset")

	both, err := Parse([]byte("presets:\n  - name: a\n    active: true\n  - name: b\n    active: true\n"))
	require.NoError(t, err)
	_, err = both.Active()
	assert.ErrorContains(t, err, "active")
}

func TestApplyRewritesGeom(t *testing.T) {
	m, err := mjcf.Parse(strings.NewReader(
		`<mujoco><worldbody><body name="object"><geom type="box" density="100" friction="2 2 2" condim="4"/></body></worldbody></mujoco>`))
	require.NoError(t, err)
	g := m.Geoms()[0]

	f, err := Load("testdata/coffee_pod.yaml")
	require.NoError(t, err)
	f.Get("soft-contact").Apply(g)

	assert.Equal(t, 50.0, g.Density)
	assert.Equal(t, [3]float64{0.95, 0.3, 0.1}, g.Friction)
	assert.Equal(t, []float64{0.02, 1}, g.SolRef)
	assert.Equal(t, 4, g.CondDim)
}
