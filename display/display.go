// Package display defines the contract with the display/OS layer: the
// external windowing system providing window primitives (create, move,
// invalidate, title). The window layer talks to a Display and nothing
// else, so backends are swappable: devdraw for a real screen, Memory
// for tests and headless runs.
package display

import (
	"errors"

	"github.com/elizafairlady/go-libgui/event"
	"github.com/elizafairlady/go-libgui/geom"
)

// WindowID is the opaque handle the display layer assigns at window
// creation. It is unique among live windows and invalid once the
// window is destroyed. Negative values are never valid.
type WindowID int

// Color is a 32-bit color in 0xRRGGBBAA order.
type Color uint32

const (
	White Color = 0xFFFFFFFF
	Black Color = 0x000000FF
)

// ErrUnknownWindow is returned by Display operations on an id that was
// never created or has been destroyed.
var ErrUnknownWindow = errors.New("display: unknown window id")

// Display is the OS/display-server boundary. Every call is a
// synchronous round trip; a non-success status is reported as an
// error.
type Display interface {
	// CreateWindow asks the display layer for a new top-level
	// window and returns its id.
	CreateWindow(r geom.Rectangle, title string, background Color) (WindowID, error)

	// DestroyWindow releases the window. The id is invalid
	// afterwards.
	DestroyWindow(id WindowID) error

	// SetWindowTitle and WindowTitle set and read the title.
	SetWindowTitle(id WindowID, title string) error
	WindowTitle(id WindowID) (string, error)

	// SetWindowRect moves and resizes the window.
	SetWindowRect(id WindowID, r geom.Rectangle) error

	// InvalidateWindow requests a repaint of r; an empty rectangle
	// means the whole window.
	InvalidateWindow(id WindowID, r geom.Rectangle) error

	// NotifyPaintFinished tells the display layer that painting of
	// r is complete.
	NotifyPaintFinished(id WindowID, r geom.Rectangle) error
}

// RawEvent is an OS-level event tagged with the window it is
// addressed to, before any widget routing.
type RawEvent struct {
	Window WindowID
	Event  event.Event
}
