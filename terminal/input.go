package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Action is what a terminal event asks the show to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleSound
	ActionLaunch
	ActionCatchCenter
	ActionClick
	ActionPointer
	ActionResize
)

// Input is a translated event, Col and Row are set for pointer actions
type Input struct {
	Action   Action
	Col, Row int
}

// InputMapper turns tcell events into actions
// Tracks the mouse button so a held button clicks once
type InputMapper struct {
	buttons tcell.ButtonMask
}

func (m *InputMapper) Translate(ev tcell.Event) Input {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Input{Action: ActionQuit}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return Input{Action: ActionQuit}
			case 's', 'S':
				return Input{Action: ActionToggleSound}
			case ' ':
				return Input{Action: ActionLaunch}
			case 'c', 'C':
				return Input{Action: ActionCatchCenter}
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasPressed := m.buttons&tcell.Button1 != 0
		m.buttons = ev.Buttons()

		if pressed && !wasPressed {
			return Input{Action: ActionClick, Col: col, Row: row}
		}
		return Input{Action: ActionPointer, Col: col, Row: row}

	case *tcell.EventResize:
		return Input{Action: ActionResize}
	}

	return Input{Action: ActionNone}
}
