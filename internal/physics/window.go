package physics

import "github.com/tomz197/tetris/internal/tetromino"

// WindowSize is the side of the square sampling window around a pivot.
// Every piece offset, in every rotation, lies within WindowRadius of the
// pivot, so four cells always fit.
const (
	WindowSize   = 5
	WindowRadius = WindowSize / 2
)

// Window is a piece's occupancy bitmap, indexed [row][col] with the pivot
// at [WindowRadius][WindowRadius].
type Window [WindowSize][WindowSize]bool

// Stamp clears w and marks the cells of shape. It reports false if an offset
// falls outside the window.
func (w *Window) Stamp(shape tetromino.Shape) bool {
	*w = Window{}
	for _, c := range shape {
		col, row := c.X+WindowRadius, c.Y+WindowRadius
		if col < 0 || col >= WindowSize || row < 0 || row >= WindowSize {
			return false
		}
		w[row][col] = true
	}
	return true
}
