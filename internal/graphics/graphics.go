package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1600
	windowHeight = 900
)

// Run starts the window and main loop. Each frame it calls update (input, camera),
// then clears the screen and calls draw (scene, overlays). cleanup runs before the
// window closes so GPU resources (mesh models, textures) are released in-context.
// ESC toggles the console overlay, not quit; close via window button.
func Run(title string, update, draw, cleanup func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	if cleanup != nil {
		cleanup()
	}
}
