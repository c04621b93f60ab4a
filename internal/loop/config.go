package loop

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/tetris/internal/field"
	"github.com/tomz197/tetris/internal/tetromino"
)

// Screen layout, in terminal cells. A playfield cell is two columns wide.
const (
	cellWidth   = 2
	boardWidth  = field.Cols*cellWidth + 2 // Playable area plus frame
	boardHeight = field.Rows + 2
	hudX        = boardWidth + 2
	hudWidth    = 24

	DisplayWidth  = hudX + hudWidth
	DisplayHeight = boardHeight
)

// Colours (ANSI palette indices).
const (
	colorFrame lipgloss.Color = "7"
	colorText  lipgloss.Color = "15"
	colorTitle lipgloss.Color = "14"
	colorDim   lipgloss.Color = "8"
)

var kindColors = [tetromino.NumKinds]lipgloss.Color{
	tetromino.T:       "5",  // Magenta
	tetromino.L:       "3",  // Yellow
	tetromino.MirrorL: "4",  // Blue
	tetromino.S:       "2",  // Green
	tetromino.Z:       "1",  // Red
	tetromino.Square:  "11", // Light yellow
	tetromino.Line:    "6",  // Cyan
}

func colorFor(k tetromino.Kind) lipgloss.Color {
	if !k.Valid() {
		return colorText
	}
	return kindColors[k]
}

var controlsHelp = []string{
	"a / Left   move left",
	"d / Right  move right",
	"q          rotate left",
	"e / Up     rotate right",
	"s / Down   drop one row",
	"Space      hard drop",
	"Backspace  quit",
}
