package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestTranslateKeys verifies key bindings
func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"s toggles sound", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionToggleSound},
		{"space launches", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionLaunch},
		{"c catches", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), ActionCatchCenter},
		{"other ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m InputMapper
			if got := m.Translate(tt.ev).Action; got != tt.want {
				t.Errorf("Expected action %d, got %d", tt.want, got)
			}
		})
	}
}

// TestTranslateMouse verifies a held button clicks once and motion feeds the pointer
func TestTranslateMouse(t *testing.T) {
	var m InputMapper

	in := m.Translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	if in.Action != ActionPointer || in.Col != 3 || in.Row != 4 {
		t.Errorf("Expected pointer at (3,4), got %+v", in)
	}

	in = m.Translate(tcell.NewEventMouse(5, 6, tcell.Button1, tcell.ModNone))
	if in.Action != ActionClick || in.Col != 5 || in.Row != 6 {
		t.Errorf("Expected click at (5,6), got %+v", in)
	}

	in = m.Translate(tcell.NewEventMouse(6, 6, tcell.Button1, tcell.ModNone))
	if in.Action != ActionPointer {
		t.Errorf("Expected drag to be pointer motion, got %+v", in)
	}

	m.Translate(tcell.NewEventMouse(6, 6, tcell.ButtonNone, tcell.ModNone))
	in = m.Translate(tcell.NewEventMouse(7, 7, tcell.Button1, tcell.ModNone))
	if in.Action != ActionClick {
		t.Errorf("Expected second press to click, got %+v", in)
	}
}

// TestTranslateResize verifies resize events
func TestTranslateResize(t *testing.T) {
	var m InputMapper
	if got := m.Translate(tcell.NewEventResize(80, 24)).Action; got != ActionResize {
		t.Errorf("Expected resize action, got %d", got)
	}
}
