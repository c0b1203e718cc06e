package editor

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	. "lined/internal/config"
	"lined/internal/display"
	"lined/internal/document"
	fio "lined/internal/io"
	"lined/internal/keys"
	. "lined/internal/logger"
	. "lined/internal/utils"

	"github.com/acarl005/stripansi"
	"github.com/atotto/clipboard"
	. "github.com/gdamore/tcell"
)

// EventSource yields terminal events, key presses and resizes. The tcell
// screen driver satisfies it.
type EventSource interface {
	PollEvent() Event
}

// Editor runs the edit loop: poll one event, apply exactly one document
// operation, repaint exactly the rows the document reported dirty, place the
// hardware cursor, block again. Single threaded, the document has no other
// writer.
type Editor struct {
	COLUMNS int // terminal size columns
	ROWS    int // terminal size rows

	Doc    *document.Document
	Screen display.Driver
	Events EventSource
	Config Config

	InputFile        string // exact user input
	Filename         string // current file name
	AbsoluteFilePath string // current file name and directory
	IsContentChanged bool

	done bool
}

// Start opens the optional file argument, paints the initial screen, runs
// the loop until a quit key, restores the terminal and runs the save prompt.
// Returns the process exit code.
func (e *Editor) Start(args []string) int {
	Log.Info("starting lined")

	if e.Doc == nil { e.Doc = document.New() }
	e.COLUMNS, e.ROWS = e.Screen.Size()

	if len(args) > 0 {
		e.InputFile = args[0]
		if err := e.OpenFile(args[0]); err != nil {
			e.Screen.Fini()
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	e.DrawEverything()
	e.Loop()
	e.Screen.Fini()

	return e.Shutdown(os.Stdin, os.Stdout)
}

// Loop blocks on input until quit.
func (e *Editor) Loop() {
	for !e.done {
		e.HandleEvent(e.Events.PollEvent())
	}
}

func (e *Editor) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case *EventResize:
		e.COLUMNS, e.ROWS = ev.Size()
		e.DrawEverything()

	case *EventKey:
		e.HandleKeyboard(ev)
	}
}

// HandleKeyboard maps one key event to one document operation and repaints.
// Ignored keys cause no state change and no redraw.
func (e *Editor) HandleKeyboard(ev *EventKey) {
	action, ch := keys.Classify(ev)

	var dirty Set
	switch action {
	case keys.Quit:
		e.done = true
		return
	case keys.Up:
		dirty = e.Doc.MoveUp()
	case keys.Down:
		dirty = e.Doc.MoveDown()
	case keys.Left:
		dirty = e.Doc.MoveLeft()
	case keys.Right:
		dirty = e.Doc.MoveRight()
	case keys.Split:
		dirty = e.Doc.SplitLine()
		e.IsContentChanged = true
	case keys.DeleteBack:
		dirty = e.Doc.DeleteBackward()
		e.IsContentChanged = true
	case keys.Tab:
		dirty = e.Doc.InsertTab(e.Config.TabWidth)
		e.IsContentChanged = true
	case keys.Insert:
		dirty = e.Doc.InsertChar(ch)
		e.IsContentChanged = true
	case keys.CopyLine:
		e.OnCopy()
		return
	case keys.Paste:
		e.OnPaste()
		return
	case keys.Save:
		e.OnSave()
		return
	default:
		return
	}

	e.RedrawRows(dirty)
}

// RedrawRows repaints exactly the dirty rows, then places the hardware
// cursor. The cursor stays hidden for the whole repaint to avoid flicker;
// placing it restores visibility. Dirty rows past the end of the document
// are cleared only.
func (e *Editor) RedrawRows(dirty Set) {
	e.Screen.HideCursor()
	for _, row := range dirty.GetKeys() {
		e.Screen.ClearRow(row, e.COLUMNS)
		if row < e.Doc.LineCount() {
			e.Screen.WriteAt(row, 0, e.Doc.Line(row))
		}
	}
	e.Screen.PlaceCursor(e.Doc.Row, e.Doc.Col)
	e.Screen.Show()
}

// DrawEverything is the full repaint used at startup and on resize.
func (e *Editor) DrawEverything() {
	e.Screen.Clear()
	for row := 0; row < e.Doc.LineCount() && row < e.ROWS; row++ {
		e.Screen.WriteAt(row, 0, e.Doc.Line(row))
	}
	e.Screen.PlaceCursor(e.Doc.Row, e.Doc.Col)
	e.Screen.Show()
}

// OpenFile loads fname into a fresh document with the cursor at the origin.
func (e *Editor) OpenFile(fname string) error {
	absoluteDir, err := filepath.Abs(path.Dir(fname))
	if err != nil { return err }
	e.Filename = filepath.Base(fname)
	e.AbsoluteFilePath = path.Join(absoluteDir, e.Filename)

	Log.Info("open", e.AbsoluteFilePath)

	lines, err := fio.LoadLines(e.AbsoluteFilePath)
	if err != nil { return err }

	e.Doc = document.FromLines(lines)
	e.IsContentChanged = false
	fio.BumpOpenStats(e.AbsoluteFilePath)

	return nil
}

// OnCopy puts the current line on the system clipboard.
func (e *Editor) OnCopy() {
	err := clipboard.WriteAll(e.Doc.Line(e.Doc.Row))
	if err != nil { Log.Error("copy:", err.Error()) }
}

// OnPaste inserts the clipboard text at the cursor. ANSI escapes and
// carriage returns are stripped before insertion so the buffer only ever
// holds plain text lines.
func (e *Editor) OnPaste() {
	text, err := clipboard.ReadAll()
	if err != nil { Log.Error("paste:", err.Error()); return }

	text = stripansi.Strip(text)
	text = strings.ReplaceAll(text, "\r", "")
	if text == "" { return }

	dirty := e.Doc.InsertText(text)
	e.IsContentChanged = true
	e.RedrawRows(dirty)
}

// OnSave writes the buffer in place; no-op before a filename is known.
func (e *Editor) OnSave() {
	if e.AbsoluteFilePath == "" { return }

	if err := fio.SaveLines(e.AbsoluteFilePath, e.Doc.Lines()); err != nil {
		Log.Error("save:", err.Error())
		return
	}
	e.IsContentChanged = false
}

// Shutdown runs the save prompt after the loop finished and the screen was
// restored; it talks to plain stdio. A save failure reports the error and
// leaves the in-memory document untouched.
func (e *Editor) Shutdown(in io.Reader, out io.Writer) int {
	save := true
	if e.Config.ConfirmSave {
		save = AskForConfirmation(in, out, "Save modified buffer?")
	}
	if !save { return 0 }

	target := e.InputFile
	if target == "" {
		target = AskForInput(in, out, "Filename to write: ")
	}
	if target == "" { return 0 }

	if err := fio.SaveLines(target, e.Doc.Lines()); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	Log.Info("saved", target)
	return 0
}
