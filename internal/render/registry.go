package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mjscene/internal/assetpath"
	"mjscene/internal/logger"
	"mjscene/internal/mjcf"
)

// The fragment is authored Z-up; raylib is Y-up. Everything drawn here is
// rotated -90° about X, so fragment (x, y, z) lands at raylib (x, z, -y).

// ToRaylib converts a fragment-space position to viewer space.
func ToRaylib(p [3]float64) rl.Vector3 {
	return rl.NewVector3(float32(p[0]), float32(p[2]), float32(-p[1]))
}

// Registry caches GPU resources for the fragment's assets: one raylib model
// per mesh asset, one texture per texture asset. Resources are created on
// first draw so loading happens after the window/GL context exists.
type Registry struct {
	modelPath string
	log       *logger.Logger
	meshes    map[string]rl.Model
	textures  map[string]rl.Texture2D
	failed    map[string]bool // assets that failed to load; logged once
}

// NewRegistry returns a registry for assets referenced by the fragment at modelPath.
func NewRegistry(modelPath string, log *logger.Logger) *Registry {
	return &Registry{
		modelPath: modelPath,
		log:       log,
		meshes:    make(map[string]rl.Model),
		textures:  make(map[string]rl.Texture2D),
		failed:    make(map[string]bool),
	}
}

// DrawGeom draws one geom. Mesh geoms use the referenced mesh asset with its
// scale and the material's texture; other geom types get a small placeholder
// so they are at least visible.
func (r *Registry) DrawGeom(m *mjcf.Model, g *mjcf.Geom) {
	tint := rgbaToColor(g.RGBA)
	pos := ToRaylib(g.Pos)
	if g.Type != "mesh" {
		rl.DrawCube(pos, 0.02, 0.02, 0.02, tint)
		return
	}
	asset := m.MeshAsset(g.MeshName)
	if asset == nil {
		return
	}
	model, ok := r.ensureMesh(m, asset, g.MaterialName)
	if !ok {
		return
	}
	scale := rl.NewVector3(float32(asset.Scale[0]), float32(asset.Scale[1]), float32(asset.Scale[2]))
	rl.DrawModelEx(model, pos, rl.NewVector3(1, 0, 0), -90, scale, tint)
}

// siteColor: sites are authored fully transparent (rgba alpha 0), so the
// viewer substitutes a visible marker color.
var siteColor = rl.NewColor(255, 170, 40, 220)

// DrawSite draws a site as a small sphere at its position. size is the
// authored visualization size; tiny sites get a floor so they stay visible.
func (r *Registry) DrawSite(s *mjcf.Site) {
	radius := float32(s.Size)
	if radius < 0.002 {
		radius = 0.002
	}
	rl.DrawSphere(ToRaylib(s.Pos), radius, siteColor)
}

// ensureMesh loads the mesh asset (and its material texture) on first use.
func (r *Registry) ensureMesh(m *mjcf.Model, asset *mjcf.Mesh, materialName string) (rl.Model, bool) {
	if model, ok := r.meshes[asset.Name]; ok {
		return model, true
	}
	if r.failed[asset.Name] {
		return rl.Model{}, false
	}
	path := assetpath.Resolve(r.modelPath, asset.File)
	if !assetpath.Exists(path) {
		r.failed[asset.Name] = true
		r.log.Logf("mesh asset %q: file not found: %s", asset.Name, path)
		return rl.Model{}, false
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		r.failed[asset.Name] = true
		r.log.Logf("mesh asset %q: failed to load %s", asset.Name, path)
		return rl.Model{}, false
	}
	if tex, ok := r.ensureTexture(m, materialName); ok {
		mats := model.GetMaterials()
		if len(mats) > 0 {
			rl.SetMaterialTexture(&mats[0], rl.MapAlbedo, tex)
		}
	}
	r.meshes[asset.Name] = model
	r.log.Logf("mesh asset %q loaded from %s", asset.Name, path)
	return model, true
}

// ensureTexture loads the texture referenced by the named material on first use.
func (r *Registry) ensureTexture(m *mjcf.Model, materialName string) (rl.Texture2D, bool) {
	mat := m.MaterialAsset(materialName)
	if mat == nil || mat.TextureName == "" {
		return rl.Texture2D{}, false
	}
	if tex, ok := r.textures[mat.TextureName]; ok {
		return tex, true
	}
	if r.failed["texture:"+mat.TextureName] {
		return rl.Texture2D{}, false
	}
	asset := m.TextureAsset(mat.TextureName)
	if asset == nil {
		return rl.Texture2D{}, false
	}
	path := assetpath.Resolve(r.modelPath, asset.File)
	if !assetpath.Exists(path) {
		r.failed["texture:"+mat.TextureName] = true
		r.log.Logf("texture asset %q: file not found: %s", asset.Name, path)
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	if !rl.IsTextureValid(tex) {
		r.failed["texture:"+mat.TextureName] = true
		r.log.Logf("texture asset %q: failed to load %s", asset.Name, path)
		return rl.Texture2D{}, false
	}
	r.textures[mat.TextureName] = tex
	return tex, true
}

// Unload releases all GPU resources. Call before closing the window.
func (r *Registry) Unload() {
	for _, model := range r.meshes {
		rl.UnloadModel(model)
	}
	for _, tex := range r.textures {
		rl.UnloadTexture(tex)
	}
	r.meshes = make(map[string]rl.Model)
	r.textures = make(map[string]rl.Texture2D)
}

func rgbaToColor(rgba [4]float64) rl.Color {
	if rgba == ([4]float64{}) {
		return rl.White
	}
	return rl.NewColor(channel(rgba[0]), channel(rgba[1]), channel(rgba[2]), channel(rgba[3]))
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
