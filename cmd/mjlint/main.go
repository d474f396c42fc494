// mjlint validates scene fragments without opening a window: parse, check
// references and name uniqueness, and optionally query sites, derive mass
// properties, apply a contact preset, or round-trip the fragment to a file.
//
// Usage:
//
//	mjlint [flags] fragment.xml
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"mjscene/internal/assetpath"
	"mjscene/internal/massprops"
	"mjscene/internal/mjcf"
	"mjscene/internal/objfile"
	"mjscene/internal/presets"
)

const anchorTolerance = 1e-3

func main() {
	siteName := flag.String("site", "", "print the named site's position and size")
	mass := flag.Bool("mass", false, "derive mass properties for mesh geoms (loads mesh files)")
	anchors := flag.Bool("anchors", false, "cross-check anchor sites against mesh extents")
	presetsPath := flag.String("presets", "", "presets file; applies its active preset to every geom")
	presetName := flag.String("preset", "", "apply the named preset instead of the active one")
	out := flag.String("write", "", "write the (possibly retuned) fragment to this path")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mjlint [flags] fragment.xml")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	model, err := mjcf.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mjlint: %s: %s\n", errorKind(err), err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%d bodies, %d geoms, %d sites)\n",
		path, len(model.AllBodies()), len(model.Geoms()), len(model.Sites()))

	if *siteName != "" {
		s, err := model.Site(*siteName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mjlint: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("site %s: pos (%g %g %g), size %g\n", s.Name, s.Pos[0], s.Pos[1], s.Pos[2], s.Size)
	}

	if *mass || *anchors {
		reportMeshes(path, model, *mass, *anchors)
	}

	if *presetsPath != "" {
		if err := applyPresets(model, *presetsPath, *presetName); err != nil {
			fmt.Fprintf(os.Stderr, "mjlint: %v\n", err)
			os.Exit(1)
		}
	}

	if *out != "" {
		if err := model.WriteFile(*out); err != nil {
			fmt.Fprintf(os.Stderr, "mjlint: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}

// errorKind labels a load error with its taxonomy category.
func errorKind(err error) string {
	var malformed *mjcf.MalformedSyntaxError
	var ref *mjcf.ReferenceError
	var dup *mjcf.DuplicateNameError
	switch {
	case errors.As(err, &malformed):
		return "syntax error"
	case errors.As(err, &ref):
		return "reference error"
	case errors.As(err, &dup):
		return "duplicate name"
	}
	return "error"
}

func reportMeshes(path string, model *mjcf.Model, mass, anchors bool) {
	for _, g := range model.Geoms() {
		if g.Type != "mesh" {
			continue
		}
		asset := model.MeshAsset(g.MeshName)
		mesh, err := objfile.Load(assetpath.Resolve(path, asset.File), asset.Scale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mjlint: mesh %s: %v\n", asset.Name, err)
			continue
		}
		if mass {
			props, err := massprops.Compute(mesh, g.Density)
			if err != nil {
				fmt.Fprintf(os.Stderr, "mjlint: mesh %s: %v\n", asset.Name, err)
				continue
			}
			fmt.Printf("mesh %s: mass %.6g kg, volume %.6g m^3, com (%.6g %.6g %.6g)\n",
				asset.Name, props.Mass, props.Volume,
				props.CenterOfMass[0], props.CenterOfMass[1], props.CenterOfMass[2])
			fmt.Printf("mesh %s: moments (%.6g %.6g %.6g) kg m^2\n",
				asset.Name, props.Moments[0], props.Moments[1], props.Moments[2])
		}
		if anchors {
			checkAnchors(model, mesh, asset.Name)
		}
	}
}

func checkAnchors(model *mjcf.Model, mesh *objfile.Mesh, meshName string) {
	bottom, err1 := model.Site("bottom_site")
	top, err2 := model.Site("top_site")
	radius, err3 := model.Site("horizontal_radius_site")
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Printf("mesh %s: anchor sites not present, skipping anchor check\n", meshName)
		return
	}
	warnings := massprops.CheckAnchors(mesh, bottom.Pos, top.Pos, radius.Pos, anchorTolerance)
	if len(warnings) == 0 {
		fmt.Printf("mesh %s: anchors consistent with mesh extents\n", meshName)
		return
	}
	for _, w := range warnings {
		fmt.Printf("mesh %s: warning: %s\n", meshName, w)
	}
}

func applyPresets(model *mjcf.Model, path, name string) error {
	f, err := presets.Load(path)
	if err != nil {
		return err
	}
	var p *presets.Preset
	if name != "" {
		if p = f.Get(name); p == nil {
			return fmt.Errorf("preset %q not found in %s", name, path)
		}
	} else if p, err = f.Active(); err != nil {
		return err
	}
	for _, g := range model.Geoms() {
		p.Apply(g)
	}
	fmt.Printf("applied preset %q to %d geom(s)\n", p.Name, len(model.Geoms()))
	return nil
}
