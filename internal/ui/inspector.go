package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mjscene/internal/mjcf"
)

const (
	panelWidth  = 420
	fontSize    = 18
	lineHeight  = fontSize + 4
	padding     = 10
	indentWidth = 16
)

// Reused panel colors (teacher-style: allocate once, not per frame).
var (
	panelBgColor    = rl.NewColor(30, 30, 30, 230)
	panelTitleColor = rl.White
	bodyColor       = rl.NewColor(220, 220, 220, 255)
	geomColor       = rl.NewColor(150, 200, 255, 255)
	siteColor       = rl.NewColor(255, 210, 130, 255)
	commentColor    = rl.NewColor(120, 120, 120, 255)
)

// Inspector is a right-side panel listing the fragment hierarchy: bodies with
// their geoms and sites, plus markers for preserved comment blocks. The
// fragment is immutable, so the line list is built once at load.
type Inspector struct {
	title string
	lines []line
}

type line struct {
	depth int
	text  string
	color rl.Color
}

// NewInspector builds an inspector for the loaded model.
func NewInspector(m *mjcf.Model) *Inspector {
	in := &Inspector{title: "Fragment: " + m.Name}
	if m.World != nil {
		for _, e := range m.World.Elems {
			in.addElem(e, 0)
		}
	}
	return in
}

func (in *Inspector) addElem(e mjcf.Elem, depth int) {
	switch t := e.(type) {
	case *mjcf.Body:
		name := t.Name
		if name == "" {
			name = "(anonymous)"
		}
		in.add(depth, "body "+name, bodyColor)
		for _, c := range t.Elems {
			in.addElem(c, depth+1)
		}
	case *mjcf.Geom:
		text := "geom " + t.Type
		if t.MeshName != "" {
			text += " " + t.MeshName
		}
		text += fmt.Sprintf("  density=%g condim=%d", t.Density, t.CondDim)
		in.add(depth, text, geomColor)
	case *mjcf.Site:
		in.add(depth, fmt.Sprintf("site %s  pos=%g %g %g", t.Name, t.Pos[0], t.Pos[1], t.Pos[2]), siteColor)
	case mjcf.Comment:
		in.add(depth, "(disabled block)", commentColor)
	}
}

func (in *Inspector) add(depth int, text string, color rl.Color) {
	in.lines = append(in.lines, line{depth: depth, text: text, color: color})
}

// Draw renders the panel when visible is true. Call in the 2D overlay pass.
func (in *Inspector) Draw(visible bool) {
	if !visible {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	x := screenW - panelWidth
	height := int32((len(in.lines)+2)*lineHeight + padding*2)
	rl.DrawRectangle(x, 0, panelWidth, height, panelBgColor)

	y := int32(padding)
	rl.DrawText(in.title, x+padding, y, fontSize, panelTitleColor)
	y += lineHeight * 2
	for _, ln := range in.lines {
		text := ln.text
		if len(text) > 48 {
			text = text[:45] + "..."
		}
		rl.DrawText(text, x+padding+int32(ln.depth*indentWidth), y, fontSize, ln.color)
		y += lineHeight
	}
}
