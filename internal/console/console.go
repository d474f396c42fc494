package console

import (
	"mjscene/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize = 20
	padding  = 8
	// Number of log lines drawn when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
)

// Reused every frame when drawing the console to avoid per-frame color allocations.
var consoleBgColor = rl.NewColor(24, 24, 24, 240)

// Console is a read-only log overlay at the bottom of the screen, toggled with ESC.
// It shows the most recent logger lines (load results, validation messages,
// asset resolution). The fragment is immutable, so there is no input path.
type Console struct {
	log  *logger.Logger
	open bool
}

// New returns a closed Console over the given logger.
func New(log *logger.Logger) *Console {
	return &Console{log: log}
}

// IsOpen returns true when the console is visible (camera input is released).
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles the ESC toggle. Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
		if c.open {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
}

// Draw draws the last log lines over a dark strip when open.
// Uses GetScreenWidth/GetScreenHeight so the strip matches the 2D overlay coordinate system.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())

	stripHeight := maxLinesOnScreen*lineHeight + padding*2
	stripY := screenH - stripHeight
	rl.DrawRectangle(0, int32(stripY), int32(screenW), int32(stripHeight), consoleBgColor)

	lines := c.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := stripY + padding + (i-start)*lineHeight
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		rl.DrawText(line, int32(padding), int32(y), fontSize, rl.LightGray)
	}
}
