package mjcf

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCoffeePod(t *testing.T) {
	m, err := Load("testdata/coffee_pod.xml")
	require.NoError(t, err)
	assert.Equal(t, "coffee_pod", m.Name)

	body, err := m.Body("object")
	require.NoError(t, err)

	geoms := body.Geoms()
	require.Len(t, geoms, 1)
	g := geoms[0]
	assert.Equal(t, "mesh", g.Type)
	assert.Equal(t, "coffee_pod_mesh", g.MeshName)
	assert.Equal(t, "ceramic", g.MaterialName)
	assert.Equal(t, 100.0, g.Density)
	assert.Equal(t, [3]float64{2, 2, 2}, g.Friction)
	assert.Equal(t, 4, g.CondDim)
	assert.Equal(t, 0, g.Group)
	assert.Equal(t, []float64{0.998, 0.998, 0.001}, g.SolImp)
	assert.Equal(t, []float64{0.001, 1}, g.SolRef)

	sites := m.Sites()
	require.Len(t, sites, 3)
	bottom, err := m.Site("bottom_site")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, 0, -0.023103}, bottom.Pos)
	top, err := m.Site("top_site")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, 0, 0.023103}, top.Pos)
	radius, err := m.Site("horizontal_radius_site")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.0243, 0.0243, 0}, radius.Pos)
	for _, s := range sites {
		assert.Equal(t, 0.0, s.RGBA[3], "sites are authored invisible")
		assert.Equal(t, 0.005, s.Size)
	}
}

func TestLoadResolvesAssets(t *testing.T) {
	m, err := Load("testdata/coffee_pod.xml")
	require.NoError(t, err)

	mesh := m.MeshAsset("coffee_pod_mesh")
	require.NotNil(t, mesh)
	assert.Equal(t, "meshes/coffee_pod.obj", mesh.File)
	assert.Equal(t, [3]float64{0.00126, 0.00126, 0.00116}, mesh.Scale)

	mat := m.MaterialAsset("ceramic")
	require.NotNil(t, mat)
	assert.Equal(t, 0.5, mat.Reflectance)
	assert.Equal(t, [2]float64{5, 5}, mat.TexRepeat)
	assert.Equal(t, "tex-ceramic", mat.TextureName)
	assert.True(t, mat.TexUniform)
	require.NotNil(t, m.TextureAsset("tex-ceramic"))
}

// Disabled alternative blocks live in comments and must never surface as
// parsed entities: no second geom, no "visual" body.
func TestDisabledBlocksExcluded(t *testing.T) {
	m, err := Load("testdata/coffee_pod.xml")
	require.NoError(t, err)

	require.Len(t, m.Geoms(), 1)
	assert.NotEqual(t, 50.0, m.Geoms()[0].Density)

	_, err = m.Body("visual")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)

	// The comments themselves are preserved in document order.
	object, err := m.Body("object")
	require.NoError(t, err)
	var comments int
	for _, e := range object.Elems {
		if c, ok := e.(Comment); ok {
			comments++
			assert.Contains(t, c.Text, "density=\"50\"")
		}
	}
	assert.Equal(t, 1, comments)
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"truncated":        `<mujoco><worldbody><body>`,
		"unexpected root":  `<robot/>`,
		"unknown element":  `<mujoco><worldbody><joint/></worldbody></mujoco>`,
		"bad float":        `<mujoco><worldbody><site pos="0 0 x" name="s"/></worldbody></mujoco>`,
		"wrong arity":      `<mujoco><worldbody><site pos="0 0" name="s"/></worldbody></mujoco>`,
		"text content":     `<mujoco><worldbody>stray</worldbody></mujoco>`,
		"double worldbody": `<mujoco><worldbody/><worldbody/></mujoco>`,
		"empty input":      ``,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			var malformed *MalformedSyntaxError
			require.Error(t, err)
			assert.True(t, errors.As(err, &malformed), "want MalformedSyntaxError, got %v", err)
		})
	}
}

func TestSiteNotFound(t *testing.T) {
	m, err := Load("testdata/coffee_pod.xml")
	require.NoError(t, err)
	_, err = m.Site("lid_site")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "site", nf.Kind)
	assert.Equal(t, "lid_site", nf.Name)
}

func TestParseWithoutWorldBody(t *testing.T) {
	m, err := Parse(strings.NewReader(`<mujoco model="empty"></mujoco>`))
	require.NoError(t, err)
	require.NotNil(t, m.World)
	assert.Empty(t, m.Sites())
}
