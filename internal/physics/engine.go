package physics

import (
	"github.com/tomz197/tetris/internal/field"
	"github.com/tomz197/tetris/internal/tetromino"
)

// Engine runs legality checks against one playfield. It owns a single
// scratch Window reused by every check, so checks never allocate.
// An Engine is not safe for concurrent use.
type Engine struct {
	field  *field.Playfield
	window Window
}

// NewEngine returns an Engine reading from f.
func NewEngine(f *field.Playfield) *Engine {
	return &Engine{field: f}
}

// CanApply reports whether t may be applied to p: every cell of the
// candidate piece must be inside the buffer and on an empty cell.
// p is not modified.
func (e *Engine) CanApply(p *tetromino.Piece, t Transform) bool {
	switch t.kind {
	case transformMove:
		return e.CanMove(p, t.dir)
	case transformRotate:
		return e.CanRotate(p, t.clockwise)
	default:
		return false
	}
}

// CanMove reports whether p can shift one cell in dir. Vertical moves are
// tested one whole row from the pivot's current row, regardless of the
// fractional part of its position.
func (e *Engine) CanMove(p *tetromino.Piece, dir Direction) bool {
	dx, dy := dir.Delta()
	return e.FitsAt(p.Cells, p.Pivot.X+dx, p.Pivot.Row()+dy)
}

// CanRotate reports whether the rotated offsets of p fit at its current
// position. No wall kicks are tried.
func (e *Engine) CanRotate(p *tetromino.Piece, clockwise bool) bool {
	if p.Kind == tetromino.Square {
		return e.Fits(p)
	}
	return e.FitsAt(p.Cells.Rotated(clockwise), p.Pivot.X, p.Pivot.Row())
}

// Fits reports whether p's cells are legal where it currently is.
func (e *Engine) Fits(p *tetromino.Piece) bool {
	return e.FitsAt(p.Cells, p.Pivot.X, p.Pivot.Row())
}

// FitsAt reports whether shape, pivoted at (x, row), overlaps nothing.
// Only the 5x5 window around the pivot is sampled.
func (e *Engine) FitsAt(shape tetromino.Shape, x, row int) bool {
	if !e.window.Stamp(shape) {
		return false
	}
	originX, originY := x-WindowRadius, row-WindowRadius
	for wy := range WindowSize {
		for wx := range WindowSize {
			if !e.window[wy][wx] {
				continue
			}
			if !e.field.Empty(originX+wx, originY+wy) {
				return false
			}
		}
	}
	return true
}

// DropDistance returns how many whole rows p can fall before its next
// down-step becomes illegal.
func (e *Engine) DropDistance(p *tetromino.Piece) int {
	row := p.Pivot.Row()
	n := 0
	for e.FitsAt(p.Cells, p.Pivot.X, row+n+1) {
		n++
	}
	return n
}
