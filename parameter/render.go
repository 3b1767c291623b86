package parameter

import "time"

// Frame Timing
const (
	// FrameInterval is the display refresh period driven by the frame ticker (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Compositing
const (
	// TrailAlpha is the opacity of the black overlay painted each frame instead of a clear
	TrailAlpha = 0.15

	// TerminalScale is logical units per canvas pixel in the terminal frontend
	TerminalScale = 6.0

	// WindowWidth and WindowHeight are the default desktop window size
	WindowWidth  = 1024
	WindowHeight = 720
)
