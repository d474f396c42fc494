package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mjscene/internal/mjcf"
	"mjscene/internal/render"
)

// Grid sizing is in meters: the fragment describes a tabletop object a few
// centimeters across, so the editor grid is much finer than a game-world grid.
const (
	gridSteps      = 25 // lines each side of the origin
	gridMinorStep  = float32(0.01)
	gridExtent     = gridSteps * gridMinorStep
	gridMajorEvery = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	// frameDistanceFactor: camera distance as a multiple of the content diagonal.
	frameDistanceFactor = 3
	minFrameDistance    = float32(0.15)
)

// Scene holds a 3D camera and draws the loaded fragment. Update runs camera
// logic (free camera); Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	ShowSites   bool
	cursorDone  bool
	model       *mjcf.Model
	reg         *render.Registry
}

// New returns a scene over the loaded fragment with a perspective camera
// looking at the origin. Grid and site markers are visible by default.
func New(model *mjcf.Model, reg *render.Registry) *Scene {
	s := &Scene{model: model, reg: reg}
	s.Camera.Position = rl.NewVector3(0.1, 0.1, 0.1)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	s.ShowSites = true
	return s
}

// Frame positions the camera to comfortably contain the given fragment-space
// bounds (e.g. from the mesh asset's scaled AABB).
func (s *Scene) Frame(min, max [3]float64) {
	center := render.ToRaylib([3]float64{
		(min[0] + max[0]) / 2, (min[1] + max[1]) / 2, (min[2] + max[2]) / 2,
	})
	dx := float32(max[0] - min[0])
	dy := float32(max[1] - min[1])
	dz := float32(max[2] - min[2])
	dist := frameDistanceFactor * math32.Sqrt(dx*dx+dy*dy+dz*dz)
	if dist < minFrameDistance {
		dist = minFrameDistance
	}
	offset := dist / math32.Sqrt(3)
	s.Camera.Target = center
	s.Camera.Position = rl.NewVector3(center.X+offset, center.Y+offset, center.Z+offset)
}

// Update runs once per frame. Uses raylib UpdateCamera with CameraFree so the
// user can orbit/zoom/pan. consoleOpen suspends camera input while the console
// overlay has the cursor.
func (s *Scene) Update(consoleOpen bool) {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	if consoleOpen {
		return
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the 3D scene: grid, then every geom in the body tree, then
// site markers when ShowSites is on. Call before 2D overlays.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
	for _, g := range s.model.Geoms() {
		s.reg.DrawGeom(s.model, g)
	}
	if s.ShowSites {
		for _, site := range s.model.Sites() {
			s.reg.DrawSite(site)
		}
	}
	rl.EndMode3D()
}

// drawEditorGrid draws a fine grid on the XZ plane (Y=0) with major/minor
// lines and axis lines through the origin (X=red, Y=green, Z=blue).
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -gridSteps; i <= gridSteps; i++ {
		c := minor
		if i%gridMajorEvery == 0 {
			c = major
		}
		v := float32(i) * gridMinorStep
		start.X, start.Y, start.Z = v, 0, -gridExtent
		end.X, end.Y, end.Z = v, 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, v
		end.X, end.Y, end.Z = gridExtent, 0, v
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = -gridExtent, 0, 0
	end.X, end.Y, end.Z = gridExtent, 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, -gridExtent, 0
	end.X, end.Y, end.Z = 0, gridExtent, 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, -gridExtent
	end.X, end.Y, end.Z = 0, 0, gridExtent
	rl.DrawLine3D(start, end, axisZ)
}
