package display

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSim(t *testing.T) (tcell.SimulationScreen, *ScreenDriver) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(20, 6)
	t.Cleanup(sim.Fini)
	return sim, NewDriver(sim)
}

func simLine(sim tcell.SimulationScreen, row int) string {
	cells, w, _ := sim.GetContents()
	var sb strings.Builder
	for col := 0; col < w; col++ {
		cell := cells[row*w+col]
		if len(cell.Runes) == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteRune(cell.Runes[0])
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestWriteAt(t *testing.T) {
	sim, d := newSim(t)

	d.WriteAt(1, 0, "hello")
	d.Show()

	assert.Equal(t, "hello", simLine(sim, 1))
	assert.Equal(t, "", simLine(sim, 0))
}

func TestWriteAtColumnOffset(t *testing.T) {
	sim, d := newSim(t)

	d.WriteAt(0, 3, "ab")
	d.Show()

	assert.Equal(t, "   ab", simLine(sim, 0))
}

func TestClearRowBlanksStaleText(t *testing.T) {
	sim, d := newSim(t)
	width, _ := d.Size()

	d.WriteAt(2, 0, "stale text")
	d.Show()
	require.Equal(t, "stale text", simLine(sim, 2))

	d.ClearRow(2, width)
	d.Show()

	assert.Equal(t, "", simLine(sim, 2))
}

func TestClearRowThenWriteLeavesNoTail(t *testing.T) {
	sim, d := newSim(t)
	width, _ := d.Size()

	d.WriteAt(0, 0, "longer line")
	d.Show()

	// repaint contract: clear first, then write the shorter current text
	d.ClearRow(0, width)
	d.WriteAt(0, 0, "short")
	d.Show()

	assert.Equal(t, "short", simLine(sim, 0))
}

func TestSizeMatchesScreen(t *testing.T) {
	_, d := newSim(t)
	w, h := d.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 6, h)
}
