// Package event defines the closed set of events routed through
// windows and widgets. Dispatch is by type switch over the concrete
// kinds; the Event interface is sealed so no kind can appear that a
// switch does not know about.
package event

import "github.com/elizafairlady/go-libgui/geom"

// Type identifies the specific kind of an event.
type Type int

const (
	Invalid Type = iota

	MouseMove
	MouseDown
	MouseUp

	KeyDown
	KeyUp

	PaintRequest

	FocusIn
	FocusOut

	WindowEntered
	WindowLeft
	ShowRequest
	HideRequest
)

var typeNames = map[Type]string{
	Invalid:       "invalid",
	MouseMove:     "mousemove",
	MouseDown:     "mousedown",
	MouseUp:       "mouseup",
	KeyDown:       "keydown",
	KeyUp:         "keyup",
	PaintRequest:  "paint",
	FocusIn:       "focusin",
	FocusOut:      "focusout",
	WindowEntered: "windowentered",
	WindowLeft:    "windowleft",
	ShowRequest:   "show",
	HideRequest:   "hide",
}

// String returns a short lower-case name for t.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Event is a window or widget event. The set of implementations is
// closed: Mouse, Key, Paint, Focus, and Generic.
type Event interface {
	// Kind returns the specific event type.
	Kind() Type

	event()
}

// Mouse button bits, lowest bit is the left button.
const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4
	Button5
)

// Modifier bits for key events.
const (
	ModShift = 1 << iota
	ModCtrl
	ModAlt
)

// Key codes for keys with no printable rune. Function keys follow the
// Plan 9 convention of KF|n.
const (
	CodeBackspace = 0x08
	CodeFn        = 0xF000
	CodeF12       = CodeFn | 12
)

// Mouse is a pointer event. Pos is in the coordinate space of the
// event's target: screen-relative when delivered to a window,
// widget-local after hit-test routing.
type Mouse struct {
	Type    Type // MouseMove, MouseDown, or MouseUp
	Pos     geom.Point
	Buttons int // buttons held down, Button* bits
	Button  int // the button that changed, 0 for moves
}

// Key is a keyboard event. Key events are never hit-tested; they are
// delivered to the focused widget only.
type Key struct {
	Type Type // KeyDown or KeyUp
	Rune rune // printable rune, 0 if none
	Code int  // raw key code
	Mod  int  // Mod* bits
}

// Paint requests repainting of Rect, in the target's local
// coordinates. An empty Rect means "everything".
type Paint struct {
	Rect geom.Rectangle
}

// Focus notifies a widget that it gained (FocusIn) or lost (FocusOut)
// keyboard focus.
type Focus struct {
	Type Type // FocusIn or FocusOut
}

// Generic carries the remaining event kinds, which need no payload
// and take the default handling path.
type Generic struct {
	Type Type
}

func (e *Mouse) Kind() Type   { return e.Type }
func (e *Key) Kind() Type     { return e.Type }
func (e *Paint) Kind() Type   { return PaintRequest }
func (e *Focus) Kind() Type   { return e.Type }
func (e *Generic) Kind() Type { return e.Type }

func (*Mouse) event()   {}
func (*Key) event()     {}
func (*Paint) event()   {}
func (*Focus) event()   {}
func (*Generic) event() {}
