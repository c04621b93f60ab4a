package loop

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/tetris/internal/draw"
)

// drawUI draws the HUD and any screen overlay.
func drawUI(state *State, c *draw.Canvas) {
	drawHUD(state, c)

	switch state.Screen {
	case ScreenTitle:
		drawTitleScreen(c)
	case ScreenGameOver:
		drawGameOverScreen(state, c)
	}
}

// drawHUD draws score, speed and controls beside the board.
func drawHUD(state *State, c *draw.Canvas) {
	c.Text(hudX, 1, "T E T R I S", colorTitle)

	score, rows, speed := 0, 0, 0.0
	if state.Session != nil {
		st := state.Session.Stats()
		score, rows, speed = st.Score, st.RowsCleared, st.FallSpeed
	}
	c.Text(hudX, 3, fmt.Sprintf("Score  %d", score), colorText)
	c.Text(hudX, 4, fmt.Sprintf("Best   %d", state.BestScore), colorText)
	c.Text(hudX, 5, fmt.Sprintf("Rows   %d", rows), colorText)
	c.Text(hudX, 6, fmt.Sprintf("Speed  %.3f", speed), colorText)

	for i, line := range controlsHelp {
		c.Text(hudX, 9+i, line, colorDim)
	}
}

// drawTitleScreen draws the start prompt over the empty board.
func drawTitleScreen(c *draw.Canvas) {
	centerY := boardHeight / 2
	boardText(c, centerY-2, "TETRIS CLI", colorTitle)
	boardText(c, centerY+1, "Press ENTER", colorText)
	boardText(c, centerY+2, "to start", colorText)
}

// drawGameOverScreen draws the final score and restart prompt.
func drawGameOverScreen(state *State, c *draw.Canvas) {
	centerY := boardHeight / 2
	score := 0
	if state.Session != nil {
		score = state.Session.Stats().Score
	}
	boardText(c, centerY-2, " GAME OVER ", colorTitle)
	boardText(c, centerY, fmt.Sprintf(" Score: %d ", score), colorText)
	boardText(c, centerY+2, " ENTER: again ", colorText)
	boardText(c, centerY+3, " BKSP: quit ", colorText)
}

// boardText writes s centred horizontally inside the board frame.
func boardText(c *draw.Canvas, y int, s string, color lipgloss.Color) {
	x := (boardWidth - len([]rune(s))) / 2
	c.Text(x, y, s, color)
}
