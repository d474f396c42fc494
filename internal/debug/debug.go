package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap, fragment stats). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	statsText    string // fragment stats line; set once after load, drawn under FPS/Mem
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetModelStats sets the fragment stats line (body/geom/site counts) drawn with the overlays.
// The fragment is immutable once loaded, so this is set once.
func (d *Debug) SetModelStats(bodies, geoms, sites int) {
	d.statsText = fmt.Sprintf("%d bodies  %d geoms  %d sites", bodies, geoms, sites)
}

// Draw renders any enabled debug overlays. Call after the scene in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if update {
		if d.ShowFPS {
			d.lastFpsText = fmt.Sprintf("%d FPS", rl.GetFPS())
		}
		if d.ShowMemAlloc {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			d.lastMemText = fmt.Sprintf("%.1f MB", float64(ms.HeapAlloc)/(1024*1024))
		}
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if d.ShowFPS && d.lastFpsText != "" {
		w := rl.MeasureText(d.lastFpsText, fontSize)
		rl.DrawText(d.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc && d.lastMemText != "" {
		w := rl.MeasureText(d.lastMemText, fontSize)
		rl.DrawText(d.lastMemText, screenW-w-padding, y, fontSize, rl.Yellow)
		y += lineHeight
	}
	if (d.ShowFPS || d.ShowMemAlloc) && d.statsText != "" {
		w := rl.MeasureText(d.statsText, fontSize)
		rl.DrawText(d.statsText, screenW-w-padding, y, fontSize, rl.LightGray)
	}
}
