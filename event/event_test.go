package event

import "testing"

func TestKind(t *testing.T) {
	cases := []struct {
		e    Event
		want Type
	}{
		{&Mouse{Type: MouseDown}, MouseDown},
		{&Key{Type: KeyUp}, KeyUp},
		{&Paint{}, PaintRequest},
		{&Focus{Type: FocusOut}, FocusOut},
		{&Generic{Type: WindowLeft}, WindowLeft},
	}
	for _, c := range cases {
		if got := c.e.Kind(); got != c.want {
			t.Fatalf("Kind() = %v, want %v", got, c.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	if s := FocusIn.String(); s != "focusin" {
		t.Fatalf("FocusIn.String() = %q", s)
	}
	if s := Type(999).String(); s != "unknown" {
		t.Fatalf("unknown type String() = %q", s)
	}
}
