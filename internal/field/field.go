// Package field holds the playfield grid: the settled cells, the border
// around them, and the merge and row-clear operations.
package field

import "github.com/tomz197/tetris/internal/tetromino"

// Playable area and border dimensions, in cells.
//
// Border must be at least as thick as the distance a piece's cells can reach
// past a legal position in one candidate move, so every collision sample
// lands inside the buffer.
const (
	Cols   = 10
	Rows   = 20
	Border = 2
	Width  = Cols + 2*Border
	Height = Rows + 2*Border
)

// First and one-past-last playable coordinates.
const (
	Left   = Border
	Right  = Border + Cols
	Top    = Border
	Bottom = Border + Rows
)

// Cell is one square of the grid. The zero value is empty.
type Cell struct {
	Filled bool
	Wall   bool           // Border cell, never cleared
	Kind   tetromino.Kind // Fill marker for settled piece cells
}

// Playfield is a fixed Width x Height grid.
// Cells are stored in a flat slice indexed by y*Width + x.
type Playfield struct {
	cells []Cell
}

// New returns an empty playfield surrounded by its border.
func New() *Playfield {
	f := &Playfield{cells: make([]Cell, Width*Height)}
	f.Reset()
	return f
}

// Reset empties the playable area and rebuilds the border.
func (f *Playfield) Reset() {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if IsPlayable(x, y) {
				f.cells[y*Width+x] = Cell{}
			} else {
				f.cells[y*Width+x] = Cell{Filled: true, Wall: true}
			}
		}
	}
}

// InBounds reports whether (x, y) addresses a cell of the buffer.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// IsPlayable reports whether (x, y) is inside the border.
func IsPlayable(x, y int) bool {
	return x >= Left && x < Right && y >= Top && y < Bottom
}

// At returns the cell at (x, y). Positions outside the buffer read as wall.
func (f *Playfield) At(x, y int) Cell {
	if !InBounds(x, y) {
		return Cell{Filled: true, Wall: true}
	}
	return f.cells[y*Width+x]
}

// Empty reports whether (x, y) is inside the buffer and unoccupied.
func (f *Playfield) Empty(x, y int) bool {
	return InBounds(x, y) && !f.cells[y*Width+x].Filled
}

// Fill marks a playable cell as settled with the given kind.
// Border and out-of-range positions are ignored.
func (f *Playfield) Fill(x, y int, kind tetromino.Kind) {
	if !IsPlayable(x, y) {
		return
	}
	f.cells[y*Width+x] = Cell{Filled: true, Kind: kind}
}

// Merge writes the piece's four cells into the grid. The piece must already
// be at its final resting position; this is the one place a piece becomes
// part of the stack.
func (f *Playfield) Merge(p *tetromino.Piece) {
	for i := range p.Cells {
		x, y := p.Cell(i)
		f.Fill(x, y, p.Kind)
	}
}

// RowFull reports whether every playable cell of row y is filled.
func (f *Playfield) RowFull(y int) bool {
	if y < Top || y >= Bottom {
		return false
	}
	row := f.cells[y*Width : (y+1)*Width]
	for x := Left; x < Right; x++ {
		if !row[x].Filled {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full playable row, shifting the rows above
// each one down by one, and returns how many rows were removed.
//
// Rows are scanned top to bottom. After a clear, the same index is examined
// again because the row above has just slid into it.
func (f *Playfield) ClearFullRows() int {
	cleared := 0
	for y := Top; y < Bottom; {
		if !f.RowFull(y) {
			y++
			continue
		}
		f.collapse(y)
		cleared++
	}
	return cleared
}

// collapse drops every playable row above y by one, overwriting row y,
// and empties the top playable row.
func (f *Playfield) collapse(y int) {
	for ; y > Top; y-- {
		copy(f.cells[y*Width+Left:y*Width+Right], f.cells[(y-1)*Width+Left:(y-1)*Width+Right])
	}
	clear(f.cells[Top*Width+Left : Top*Width+Right])
}

// FilledCount returns the number of settled (non-border) cells.
func (f *Playfield) FilledCount() int {
	n := 0
	for y := Top; y < Bottom; y++ {
		for x := Left; x < Right; x++ {
			if f.cells[y*Width+x].Filled {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the playfield.
func (f *Playfield) Clone() *Playfield {
	c := &Playfield{cells: make([]Cell, len(f.cells))}
	copy(c.cells, f.cells)
	return c
}
