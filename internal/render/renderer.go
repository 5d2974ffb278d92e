package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the loop without an error
var ErrQuit = errors.New("quit")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine, so the viewer can draw without knowing the backend.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	Fill(clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer reacts to
const (
	KeyR Key = iota // Reset observer
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
)

// Game is the interface the engine calls every tick and frame.
type Game interface {
	// Update updates the state. Returning ErrQuit stops the loop cleanly.
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
