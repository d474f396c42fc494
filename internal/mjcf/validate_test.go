package mjcf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, src string) *Model {
	t.Helper()
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return m
}

func TestValidateDanglingMesh(t *testing.T) {
	m := parseString(t, `<mujoco><worldbody><body name="object"><geom type="mesh" mesh="missing_mesh"/></body></worldbody></mujoco>`)
	err := m.Validate()
	var ref *ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "mesh", ref.Kind)
	assert.Equal(t, "missing_mesh", ref.Name)
}

func TestValidateDanglingMaterial(t *testing.T) {
	m := parseString(t, `<mujoco><worldbody><body><geom type="box" material="missing"/></body></worldbody></mujoco>`)
	var ref *ReferenceError
	require.ErrorAs(t, m.Validate(), &ref)
	assert.Equal(t, "material", ref.Kind)
}

func TestValidateDanglingTexture(t *testing.T) {
	m := parseString(t, `<mujoco><asset><material name="ceramic" texture="missing_tex"/></asset></mujoco>`)
	var ref *ReferenceError
	require.ErrorAs(t, m.Validate(), &ref)
	assert.Equal(t, "texture", ref.Kind)
	assert.Equal(t, "missing_tex", ref.Name)
}

func TestValidateDuplicateAsset(t *testing.T) {
	m := parseString(t, `<mujoco><asset><texture name="tex" file="a.png"/><texture name="tex" file="b.png"/></asset></mujoco>`)
	var dup *DuplicateNameError
	require.ErrorAs(t, m.Validate(), &dup)
	assert.Equal(t, "texture", dup.Kind)
	assert.Equal(t, "tex", dup.Name)
}

func TestValidateDuplicateSiblingBody(t *testing.T) {
	m := parseString(t, `<mujoco><worldbody><body name="object"/><body name="object"/></worldbody></mujoco>`)
	var dup *DuplicateNameError
	require.ErrorAs(t, m.Validate(), &dup)
	assert.Equal(t, "body", dup.Kind)
}

// Loading the real fragment succeeds; injecting a second "top_site" anywhere
// in the tree must fail, since consumers look sites up by name.
func TestValidateDuplicateSite(t *testing.T) {
	m, err := Load("testdata/coffee_pod.xml")
	require.NoError(t, err)

	object, err := m.Body("object")
	require.NoError(t, err)
	object.Elems = append(object.Elems, &Site{Name: "top_site"})

	var dup *DuplicateNameError
	require.ErrorAs(t, m.Validate(), &dup)
	assert.Equal(t, "site", dup.Kind)
	assert.Equal(t, "top_site", dup.Name)
}

func TestValidateAcceptsFragment(t *testing.T) {
	m, err := ParseFile("testdata/coffee_pod.xml")
	require.NoError(t, err)
	assert.NoError(t, m.Validate())
}
