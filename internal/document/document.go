package document

import (
	"strings"

	. "lined/internal/utils"
)

// Document is the edited buffer: an ordered sequence of text lines plus the
// cursor position. A document always holds at least one, possibly empty,
// line. Every operation keeps the cursor inside the buffer: 0 <= Row <
// LineCount and 0 <= Col <= len(line). Content, Row and Col are mutated only
// by the operations below; each operation returns the set of rows whose
// on-screen text changed, so the display layer can repaint exactly those.
// Rows in the set that are past the end of the buffer must be blanked.
type Document struct {
	Content [][]rune // text characters, one slice per line
	Row     int      // cursor position row
	Col     int      // cursor position column
}

// New returns a document with a single empty line.
func New() *Document {
	return &Document{Content: [][]rune{{}}}
}

// FromLines builds a document from lines; an empty slice becomes a single
// empty line.
func FromLines(lines []string) *Document {
	if len(lines) == 0 { return New() }
	content := make([][]rune, len(lines))
	for i, line := range lines { content[i] = []rune(line) }
	return &Document{Content: content}
}

func (d *Document) LineCount() int { return len(d.Content) }

func (d *Document) Line(row int) string { return string(d.Content[row]) }

func (d *Document) Lines() []string {
	lines := make([]string, len(d.Content))
	for i, chars := range d.Content { lines[i] = string(chars) }
	return lines
}

func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}

// MoveUp moves the cursor one row up, keeping the column but clamping it to
// the target line length. No-op on the first row.
func (d *Document) MoveUp() Set {
	if d.Row == 0 { return Set{} }
	d.Row--
	if d.Col > len(d.Content[d.Row]) { d.Col = len(d.Content[d.Row]) } // fit to line
	return Set{}
}

// MoveDown moves the cursor one row down, clamping the column the same way
// MoveUp does. No-op on the last row.
func (d *Document) MoveDown() Set {
	if d.Row+1 >= len(d.Content) { return Set{} }
	d.Row++
	if d.Col > len(d.Content[d.Row]) { d.Col = len(d.Content[d.Row]) } // fit to line
	return Set{}
}

// MoveLeft moves one column left; it does not wrap to the previous line.
func (d *Document) MoveLeft() Set {
	if d.Col > 0 { d.Col-- }
	return Set{}
}

// MoveRight moves one column right; it does not wrap to the next line.
func (d *Document) MoveRight() Set {
	if d.Col < len(d.Content[d.Row]) { d.Col++ }
	return Set{}
}

// InsertChar inserts ch at the cursor and advances the column.
func (d *Document) InsertChar(ch rune) Set {
	d.Content[d.Row] = InsertTo(d.Content[d.Row], d.Col, ch)
	d.Col++

	dirty := make(Set)
	dirty.Add(d.Row)
	return dirty
}

// InsertTab inserts width literal spaces in one step.
func (d *Document) InsertTab(width int) Set {
	if width <= 0 { width = 4 }
	for i := 0; i < width; i++ {
		d.Content[d.Row] = InsertTo(d.Content[d.Row], d.Col, ' ')
		d.Col++
	}

	dirty := make(Set)
	dirty.Add(d.Row)
	return dirty
}

// SplitLine splits the current line at the cursor: the current row keeps the
// prefix, a new line holding the suffix goes right after it, and the cursor
// lands at the start of the new line. Every row from the old cursor row to
// the new last row shifts visually and is reported dirty.
func (d *Document) SplitLine() Set {
	line := d.Content[d.Row]
	suffix := append([]rune{}, line[d.Col:]...)
	d.Content[d.Row] = line[:d.Col]
	d.Content = InsertTo(d.Content, d.Row+1, suffix)
	d.Row++
	d.Col = 0

	dirty := make(Set)
	dirty.AddSpan(d.Row-1, len(d.Content)-1)
	return dirty
}

// DeleteBackward removes the character before the cursor. At column 0 it
// merges the current line onto the end of the previous one and the cursor
// lands at the seam; the reported dirty rows then run from the merged row
// through the old last row, whose index is now past the end and must be
// blanked. No-op at the very beginning of the buffer.
func (d *Document) DeleteBackward() Set {
	dirty := make(Set)

	if d.Col > 0 {
		d.Col--
		d.Content[d.Row] = Remove(d.Content[d.Row], d.Col)
		dirty.Add(d.Row)
		return dirty
	}

	if d.Row == 0 { return dirty }

	oldLast := len(d.Content) - 1
	seam := len(d.Content[d.Row-1])
	d.Content[d.Row-1] = append(d.Content[d.Row-1], d.Content[d.Row]...)
	d.Content = Remove(d.Content, d.Row)
	d.Row--
	d.Col = seam

	dirty.AddSpan(d.Row, oldLast)
	return dirty
}

// InsertText inserts a possibly multi-line string at the cursor. A single
// line dirties only the cursor row; multiple lines shift everything below,
// so every row from the start of the insertion to the new last row is
// reported.
func (d *Document) InsertText(text string) Set {
	dirty := make(Set)
	if text == "" { return dirty }

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		for _, ch := range parts[0] {
			d.Content[d.Row] = InsertTo(d.Content[d.Row], d.Col, ch)
			d.Col++
		}
		dirty.Add(d.Row)
		return dirty
	}

	start := d.Row
	line := d.Content[d.Row]
	suffix := append([]rune{}, line[d.Col:]...)
	d.Content[d.Row] = append(line[:d.Col], []rune(parts[0])...)

	for _, part := range parts[1 : len(parts)-1] {
		d.Row++
		d.Content = InsertTo(d.Content, d.Row, []rune(part))
	}

	last := parts[len(parts)-1]
	d.Row++
	d.Col = len([]rune(last))
	d.Content = InsertTo(d.Content, d.Row, append([]rune(last), suffix...))

	dirty.AddSpan(start, len(d.Content)-1)
	return dirty
}
