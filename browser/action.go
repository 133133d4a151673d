package browser

import "github.com/elizafairlady/go-libgui/event"

// Action is a named command with an optional keyboard shortcut.
// Disabled actions ignore activation.
type Action struct {
	Text       string
	Rune       rune // shortcut rune, 0 if none
	Code       int  // shortcut key code for keys without a rune
	Mod        int  // required modifier bits
	OnActivate func()

	// OnEnabledChange fires on every SetEnabled transition; buttons
	// hook it to grey themselves out.
	OnEnabledChange func(bool)

	enabled bool
}

// NewAction returns an enabled action.
func NewAction(text string, fn func()) *Action {
	return &Action{Text: text, OnActivate: fn, enabled: true}
}

// Shortcut assigns a key shortcut and returns the action, for chained
// construction.
func (a *Action) Shortcut(r rune, code, mod int) *Action {
	a.Rune = r
	a.Code = code
	a.Mod = mod
	return a
}

// Enabled reports whether activation is allowed.
func (a *Action) Enabled() bool {
	return a.enabled
}

// SetEnabled allows or blocks activation.
func (a *Action) SetEnabled(enabled bool) {
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	if a.OnEnabledChange != nil {
		a.OnEnabledChange(enabled)
	}
}

// Activate runs the action if enabled.
func (a *Action) Activate() {
	if a.enabled && a.OnActivate != nil {
		a.OnActivate()
	}
}

// ActionMap holds a window's actions and resolves key shortcuts.
type ActionMap struct {
	actions []*Action
}

// Add registers actions.
func (m *ActionMap) Add(actions ...*Action) {
	m.actions = append(m.actions, actions...)
}

// HandleKey activates the action whose shortcut matches k and reports
// whether one did.
func (m *ActionMap) HandleKey(k *event.Key) bool {
	if k.Type != event.KeyDown {
		return false
	}
	for _, a := range m.actions {
		if a.Rune == 0 && a.Code == 0 {
			continue
		}
		if a.Rune != 0 && a.Rune != k.Rune {
			continue
		}
		if a.Code != 0 && a.Code != k.Code {
			continue
		}
		if a.Mod != k.Mod {
			continue
		}
		a.Activate()
		return true
	}
	return false
}
