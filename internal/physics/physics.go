// Package physics decides whether a piece may move or rotate: the candidate
// cells must all land on empty playfield cells inside the buffer.
package physics

import "github.com/tomz197/tetris/internal/tetromino"

// Direction is a one-cell translation.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the cell offset for a one-step move in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

type transformKind uint8

const (
	transformMove transformKind = iota
	transformRotate
)

// Transform is a candidate change to a piece: a one-cell move or a
// 90 degree rotation.
type Transform struct {
	kind      transformKind
	dir       Direction
	clockwise bool
}

// Move returns the transform that shifts a piece one cell in d.
func Move(d Direction) Transform {
	return Transform{kind: transformMove, dir: d}
}

// Rotate returns the transform that turns a piece 90 degrees.
func Rotate(clockwise bool) Transform {
	return Transform{kind: transformRotate, clockwise: clockwise}
}

// Apply performs t on p without checking legality.
func (t Transform) Apply(p *tetromino.Piece) {
	switch t.kind {
	case transformMove:
		dx, dy := t.dir.Delta()
		p.Pivot.X += dx
		p.Pivot.Y += float64(dy)
	case transformRotate:
		p.Rotate(t.clockwise)
	}
}
