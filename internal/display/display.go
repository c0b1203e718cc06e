package display

import (
	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
)

// Driver is the drawing half of the terminal boundary. The editor calls it
// only inside the "repaint dirty rows, then place cursor" sequence: the
// cursor is hidden first, each dirty row is cleared and rewritten, then the
// hardware cursor is placed (which makes it visible again) and the screen is
// flushed. Rows outside the dirty set are never touched.
type Driver interface {
	ClearRow(row int, width int)
	WriteAt(row int, col int, text string)
	PlaceCursor(row int, col int)
	HideCursor()
	Clear()
	Show()
	Size() (int, int)
	Fini()
}

// ScreenDriver draws on a tcell terminal screen. Cell writes are buffered by
// tcell and cannot fail individually, so mid-session drawing is best effort;
// only screen construction reports an error.
type ScreenDriver struct {
	Screen tcell.Screen
}

// NewScreenDriver builds and initializes the real terminal screen.
func NewScreenDriver() (*ScreenDriver, error) {
	encoding.Register()

	screen, err := tcell.NewScreen()
	if err != nil { return nil, err }
	if err = screen.Init(); err != nil { return nil, err }

	screen.Clear()
	return &ScreenDriver{Screen: screen}, nil
}

// NewDriver wraps an already initialized screen, e.g. a tcell simulation
// screen in tests.
func NewDriver(screen tcell.Screen) *ScreenDriver {
	return &ScreenDriver{Screen: screen}
}

func (d *ScreenDriver) ClearRow(row int, width int) {
	for col := 0; col < width; col++ {
		d.Screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}

func (d *ScreenDriver) WriteAt(row int, col int, text string) {
	for _, ch := range text {
		d.Screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		col++
	}
}

func (d *ScreenDriver) PlaceCursor(row int, col int) { d.Screen.ShowCursor(col, row) }

func (d *ScreenDriver) HideCursor() { d.Screen.HideCursor() }

func (d *ScreenDriver) Clear() { d.Screen.Clear() }

func (d *ScreenDriver) Show() { d.Screen.Show() }

func (d *ScreenDriver) Size() (int, int) { return d.Screen.Size() }

func (d *ScreenDriver) Fini() { d.Screen.Fini() }

// PollEvent lets the same screen serve as the editor's event source.
func (d *ScreenDriver) PollEvent() tcell.Event { return d.Screen.PollEvent() }
