package widget

import "github.com/elizafairlady/go-libgui/event"

// Button is a push button. OnClick fires when a mouse button is
// released over the button while it is enabled.
type Button struct {
	Base
	Text    string
	Enabled bool
	OnClick func()

	pressed bool
}

// NewButton returns an enabled button with the given label.
func NewButton(text string) *Button {
	b := &Button{Text: text, Enabled: true}
	b.InitBase(b)
	return b
}

// SetEnabled enables or disables the button and requests a repaint.
func (b *Button) SetEnabled(enabled bool) {
	if b.Enabled == enabled {
		return
	}
	b.Enabled = enabled
	b.Invalidate()
}

func (b *Button) Event(e event.Event) {
	m, ok := e.(*event.Mouse)
	if !ok {
		b.Base.Event(e)
		return
	}
	switch m.Type {
	case event.MouseDown:
		if b.Enabled {
			b.pressed = true
			b.Invalidate()
		}
	case event.MouseUp:
		wasPressed := b.pressed
		b.pressed = false
		if wasPressed && b.Enabled && b.OnClick != nil {
			b.OnClick()
		}
		b.Invalidate()
	}
}

// TextBox is a single-line text input. Typing appends at the end;
// backspace deletes the last rune. Enter fires OnReturnPressed.
type TextBox struct {
	Base
	OnReturnPressed func()
	OnTextChange    func(string)

	text      string
	selectAll bool // next edit replaces the whole content
	focused   bool
}

// NewTextBox returns an empty text box.
func NewTextBox() *TextBox {
	t := &TextBox{}
	t.InitBase(t)
	return t
}

// Text returns the current content.
func (t *TextBox) Text() string {
	return t.text
}

// SetText replaces the content without firing OnTextChange.
func (t *TextBox) SetText(s string) {
	t.text = s
	t.selectAll = false
	t.Invalidate()
}

// SelectAll marks the whole content selected; the next typed rune
// replaces it.
func (t *TextBox) SelectAll() {
	t.selectAll = t.text != ""
}

// Focused reports whether the text box believes it has focus.
func (t *TextBox) Focused() bool {
	return t.focused
}

func (t *TextBox) Event(e event.Event) {
	switch ev := e.(type) {
	case *event.Mouse:
		// Clicking a text box claims keyboard focus.
		if ev.Type == event.MouseDown {
			if w := t.Window(); w != nil {
				w.SetFocusedWidget(t)
			}
		}
	case *event.Focus:
		t.focused = ev.Type == event.FocusIn
		t.Invalidate()
	case *event.Key:
		if ev.Type != event.KeyDown {
			return
		}
		t.handleKey(ev)
	default:
		t.Base.Event(e)
	}
}

func (t *TextBox) handleKey(k *event.Key) {
	switch {
	case k.Rune == '\n' || k.Rune == '\r':
		if t.OnReturnPressed != nil {
			t.OnReturnPressed()
		}
	case k.Rune == '\b' || k.Code == keyBackspace:
		if t.selectAll {
			t.setEdited("")
			return
		}
		if t.text == "" {
			return
		}
		r := []rune(t.text)
		t.setEdited(string(r[:len(r)-1]))
	case k.Rune >= ' ' && k.Mod&(event.ModCtrl|event.ModAlt) == 0:
		if t.selectAll {
			t.setEdited(string(k.Rune))
			return
		}
		t.setEdited(t.text + string(k.Rune))
	}
}

func (t *TextBox) setEdited(s string) {
	t.text = s
	t.selectAll = false
	t.Invalidate()
	if t.OnTextChange != nil {
		t.OnTextChange(s)
	}
}

// keyBackspace is the raw code delivered for backspace when the
// backend reports it as a code rather than a rune.
const keyBackspace = 0x08

// Label is a passive text display, used for status bars.
type Label struct {
	Base
	text string
}

// NewLabel returns a label with the given text.
func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.InitBase(l)
	return l
}

// Text returns the label's current text.
func (l *Label) Text() string {
	return l.text
}

// SetText updates the text and requests a repaint.
func (l *Label) SetText(s string) {
	if l.text == s {
		return
	}
	l.text = s
	l.Invalidate()
}
