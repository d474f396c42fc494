package assetpath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRelativeToModel(t *testing.T) {
	t.Setenv(EnvAssetDir, "")
	got := Resolve("assets/objects/coffee_pod.xml", "meshes/coffee_pod.obj")
	assert.Equal(t, filepath.Join("assets", "objects", "meshes", "coffee_pod.obj"), got)

	// Parent-relative texture references resolve through the model dir.
	got = Resolve("assets/objects/coffee_pod.xml", "../textures/ceramic.png")
	assert.Equal(t, filepath.Join("assets", "textures", "ceramic.png"), got)
}

func TestResolveEnvOverride(t *testing.T) {
	t.Setenv(EnvAssetDir, "/srv/assets")
	got := Resolve("somewhere/else/pod.xml", "meshes/coffee_pod.obj")
	assert.Equal(t, filepath.Join("/srv/assets", "meshes", "coffee_pod.obj"), got)
}

func TestResolveAbsolute(t *testing.T) {
	t.Setenv(EnvAssetDir, "/srv/assets")
	assert.Equal(t, "/tmp/mesh.obj", Resolve("pod.xml", "/tmp/mesh.obj"))
}
