package tetromino

import "math"

// Pivot is a piece's reference point in playfield coordinates. Y is
// fractional so gravity can advance a piece by less than one row per tick.
type Pivot struct {
	X int
	Y float64
}

// Row returns the playfield row the pivot currently occupies.
func (p Pivot) Row() int {
	return int(math.Floor(p.Y))
}

// Piece is the active, falling tetromino.
type Piece struct {
	Kind  Kind
	Pivot Pivot
	Cells Shape // Offsets from Pivot, rewritten in place by Rotate
}

// New creates a piece of the given kind at pivot with the kind's spawn offsets.
func New(kind Kind, pivot Pivot) Piece {
	return Piece{
		Kind:  kind,
		Pivot: pivot,
		Cells: OffsetsFor(kind),
	}
}

// Cell returns the playfield position of the i-th cell.
func (p *Piece) Cell(i int) (x, y int) {
	return p.Pivot.X + p.Cells[i].X, p.Pivot.Row() + p.Cells[i].Y
}

// Rotate turns every offset 90 degrees about the pivot. Clockwise maps
// (x, y) to (-y, x); counter-clockwise maps (x, y) to (y, -x). Square is
// left untouched. Rotation never fails: callers check legality on a copy
// and keep or discard the result.
func (p *Piece) Rotate(clockwise bool) {
	if p.Kind == Square {
		return
	}
	p.Cells = p.Cells.Rotated(clockwise)
}

// Rotated returns the shape turned by 90 degrees. All four offsets change
// together.
func (s Shape) Rotated(clockwise bool) Shape {
	var out Shape
	for i, c := range s {
		if clockwise {
			out[i] = Offset{X: -c.Y, Y: c.X}
		} else {
			out[i] = Offset{X: c.Y, Y: -c.X}
		}
	}
	return out
}
