package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mjscene/internal/assetpath"
	"mjscene/internal/console"
	"mjscene/internal/debug"
	"mjscene/internal/env"
	"mjscene/internal/graphics"
	"mjscene/internal/logger"
	"mjscene/internal/massprops"
	"mjscene/internal/mjcf"
	"mjscene/internal/objfile"
	"mjscene/internal/render"
	"mjscene/internal/scene"
	"mjscene/internal/ui"
	"mjscene/internal/viewerconfig"
)

const defaultFragment = "assets/objects/coffee_pod.xml"

func main() {
	_ = env.Load(".env")
	log := logger.New()
	prefs, _ := viewerconfig.Load()

	path := defaultFragment
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	model, err := mjcf.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
		os.Exit(1)
	}
	log.Logf("loaded fragment %q from %s", model.Name, path)

	reg := render.NewRegistry(path, log)
	scn := scene.New(model, reg)
	scn.GridVisible = prefs.GridVisible
	scn.ShowSites = prefs.ShowSites
	reportMeshes(path, model, scn, log)

	cons := console.New(log)
	insp := ui.NewInspector(model)
	showInspector := prefs.ShowInspector

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	dbg.SetModelStats(len(model.AllBodies()), len(model.Geoms()), len(model.Sites()))

	update := func() {
		cons.Update()
		scn.Update(cons.IsOpen())
		// Function keys so the free camera keeps WASD.
		if rl.IsKeyPressed(rl.KeyF1) {
			scn.GridVisible = !scn.GridVisible
		}
		if rl.IsKeyPressed(rl.KeyF2) {
			scn.ShowSites = !scn.ShowSites
		}
		if rl.IsKeyPressed(rl.KeyF3) {
			showInspector = !showInspector
		}
		if rl.IsKeyPressed(rl.KeyF4) {
			dbg.ShowFPS = !dbg.ShowFPS
		}
		if rl.IsKeyPressed(rl.KeyF5) {
			dbg.ShowMemAlloc = !dbg.ShowMemAlloc
		}
	}
	draw := func() {
		scn.Draw()
		insp.Draw(showInspector)
		cons.Draw()
		dbg.Draw()
	}
	graphics.Run("mjscene viewer", update, draw, reg.Unload)

	prefs.GridVisible = scn.GridVisible
	prefs.ShowSites = scn.ShowSites
	prefs.ShowInspector = showInspector
	prefs.ShowFPS = dbg.ShowFPS
	prefs.ShowMemAlloc = dbg.ShowMemAlloc
	_ = viewerconfig.Save(prefs)
}

// reportMeshes loads each referenced mesh file once on the CPU side: frames
// the camera on the first mesh's bounds, logs derived mass properties, and
// cross-checks the anchor sites against the mesh extents.
func reportMeshes(path string, model *mjcf.Model, scn *scene.Scene, log *logger.Logger) {
	framed := false
	for _, g := range model.Geoms() {
		if g.Type != "mesh" {
			continue
		}
		asset := model.MeshAsset(g.MeshName)
		if asset == nil {
			continue
		}
		mesh, err := objfile.Load(assetpath.Resolve(path, asset.File), asset.Scale)
		if err != nil {
			log.Logf("mesh asset %q: %v", asset.Name, err)
			continue
		}
		if !framed {
			min, max := mesh.Bounds()
			scn.Frame(min, max)
			framed = true
		}
		if props, err := massprops.Compute(mesh, g.Density); err == nil {
			log.Logf("geom %s: mass %.4f kg, volume %.6g m^3, com (%.4f %.4f %.4f)",
				asset.Name, props.Mass, props.Volume,
				props.CenterOfMass[0], props.CenterOfMass[1], props.CenterOfMass[2])
		} else {
			log.Logf("geom %s: mass properties: %v", asset.Name, err)
		}
		logAnchorWarnings(model, mesh, log)
	}
}

// Anchor site names used by external consumers to reason about extents.
const (
	bottomSite = "bottom_site"
	topSite    = "top_site"
	radiusSite = "horizontal_radius_site"
)

const anchorTolerance = 1e-3

func logAnchorWarnings(model *mjcf.Model, mesh *objfile.Mesh, log *logger.Logger) {
	bottom, err1 := model.Site(bottomSite)
	top, err2 := model.Site(topSite)
	radius, err3 := model.Site(radiusSite)
	if err1 != nil || err2 != nil || err3 != nil {
		return
	}
	for _, w := range massprops.CheckAnchors(mesh, bottom.Pos, top.Pos, radius.Pos, anchorTolerance) {
		log.Log("anchor check: " + w)
	}
}
