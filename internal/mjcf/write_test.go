package mjcf

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Parsing the fragment and writing it back reproduces the source byte for
// byte: attribute text (float precision included), attribute order, and
// comments all survive.
func TestRoundTrip(t *testing.T) {
	src, err := os.ReadFile("testdata/coffee_pod.xml")
	require.NoError(t, err)

	m, err := Parse(bytes.NewReader(src))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	assert.Equal(t, string(src), out.String())
}

// Indentation goes before the angle bracket: nested elements serialize as
// "    <mesh .../>", never "<    mesh .../>".
func TestWriteIndentsBeforeTag(t *testing.T) {
	m, err := ParseFile("testdata/coffee_pod.xml")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	s := out.String()
	assert.Contains(t, s, "\n  <worldbody>\n")
	assert.Contains(t, s, "\n    <mesh ")
	assert.Contains(t, s, "\n        <geom ")
	assert.NotContains(t, s, "<  ")

	// The rewritten fragment is valid input again.
	_, err = Parse(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
}

// Comments that are direct children of the root element survive a rewrite in
// their positions around the asset block and worldbody.
func TestRootCommentsRoundTrip(t *testing.T) {
	src := `<mujoco model="annotated">
  <!-- head note -->
  <asset>
    <texture name="tex" file="a.png"/>
  </asset>
  <!-- mid note -->
  <worldbody>
    <body name="object"/>
  </worldbody>
  <!-- tail note -->
</mujoco>
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	assert.Equal(t, src, out.String())
}

// A fragment that never declared a worldbody does not gain one on rewrite.
func TestWriteOmitsSynthesizedWorldBody(t *testing.T) {
	src := `<mujoco model="assets_only">
  <asset>
    <texture name="tex" file="a.png"/>
  </asset>
</mujoco>
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.NotNil(t, m.World)

	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	assert.Equal(t, src, out.String())
	assert.NotContains(t, out.String(), "worldbody")
}

func TestRoundTripTwice(t *testing.T) {
	m, err := ParseFile("testdata/coffee_pod.xml")
	require.NoError(t, err)

	var first bytes.Buffer
	require.NoError(t, m.Write(&first))

	m2, err := Parse(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	var second bytes.Buffer
	require.NoError(t, m2.Write(&second))
	assert.Equal(t, first.String(), second.String())
}

// Setters keep the serialized attribute text in sync with the typed fields.
func TestSettersRewriteAttributes(t *testing.T) {
	m, err := ParseFile("testdata/coffee_pod.xml")
	require.NoError(t, err)

	g := m.Geoms()[0]
	g.SetDensity(50)
	g.SetFriction([3]float64{0.95, 0.3, 0.1})
	g.SetCondDim(6)
	g.SetSolRef([]float64{0.02, 1})

	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	s := out.String()
	assert.Contains(t, s, `density="50"`)
	assert.Contains(t, s, `friction="0.95 0.3 0.1"`)
	assert.Contains(t, s, `condim="6"`)
	assert.Contains(t, s, `solref="0.02 1"`)
	assert.NotContains(t, s, `density="100"`)
}

func TestWriteEscapesAttributes(t *testing.T) {
	m := &Model{World: &Body{Elems: []Elem{
		&Site{attrs: []attr{{name: "name", value: `a<b&"c"`}}, Name: `a<b&"c"`},
	}}}
	var out bytes.Buffer
	require.NoError(t, m.Write(&out))
	assert.Contains(t, out.String(), `name="a&lt;b&amp;&quot;c&quot;"`)
}
