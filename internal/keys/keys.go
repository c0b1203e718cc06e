package keys

import (
	"github.com/gdamore/tcell"
)

// Action is the semantic meaning of a single key event.
type Action string

const (
	Up         Action = "up"
	Down       Action = "down"
	Left       Action = "left"
	Right      Action = "right"
	Split      Action = "split"
	DeleteBack Action = "deleteback"
	Tab        Action = "tab"
	Insert     Action = "insert"
	Paste      Action = "paste"
	CopyLine   Action = "copyline"
	Save       Action = "save"
	Quit       Action = "quit"
	Ignore     Action = "ignore"
)

// Classify maps one key event to exactly one Action. For Insert the second
// return value is the character to insert; it is zero for everything else.
// Keys outside the closed set are Ignore and cause no state change.
func Classify(ev *tcell.EventKey) (Action, rune) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return Quit, 0
	case tcell.KeyUp:
		return Up, 0
	case tcell.KeyDown:
		return Down, 0
	case tcell.KeyLeft:
		return Left, 0
	case tcell.KeyRight:
		return Right, 0
	case tcell.KeyEnter:
		return Split, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return DeleteBack, 0
	case tcell.KeyTab:
		return Tab, 0
	case tcell.KeyCtrlV:
		return Paste, 0
	case tcell.KeyCtrlC:
		return CopyLine, 0
	case tcell.KeyCtrlS:
		return Save, 0
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 { return Ignore, 0 }
		if IsPrintable(ev.Rune()) { return Insert, ev.Rune() }
	}
	return Ignore, 0
}

// IsPrintable reports whether r is a single-byte printable character,
// space through tilde.
func IsPrintable(r rune) bool {
	return r >= ' ' && r <= '~'
}
