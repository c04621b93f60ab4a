package loop

import (
	"github.com/tomz197/tetris/internal/draw"
	"github.com/tomz197/tetris/internal/field"
	"github.com/tomz197/tetris/internal/game"
	"github.com/tomz197/tetris/internal/physics"
	"github.com/tomz197/tetris/internal/tetromino"
)

const pieceBufWidth = physics.WindowSize * cellWidth

// boardRenderer converts a session into blits. Its buffers are sized once
// and reused every frame.
type boardRenderer struct {
	row    [boardWidth]draw.Cell
	piece  [pieceBufWidth * physics.WindowSize]draw.Cell
	window physics.Window
}

// draw blits the frame, the settled cells and the active piece.
func (b *boardRenderer) draw(sink Sink, s *game.Session) {
	b.drawFrame(sink)
	if s == nil {
		return
	}
	b.drawStack(sink, s.Field())
	if s.HasPiece() {
		p := s.Piece()
		b.drawPiece(sink, &p)
	}
}

func (b *boardRenderer) drawFrame(sink Sink) {
	b.edge('╔', '═', '╗')
	sink.Blit(0, 0, boardWidth, 1, b.row[:])
	b.edge('╚', '═', '╝')
	sink.Blit(0, boardHeight-1, boardWidth, 1, b.row[:])

	side := []draw.Cell{draw.Glyph('║', colorFrame)}
	for y := 1; y < boardHeight-1; y++ {
		sink.Blit(0, y, 1, 1, side)
		sink.Blit(boardWidth-1, y, 1, 1, side)
	}
}

func (b *boardRenderer) edge(left, mid, right rune) {
	b.row[0] = draw.Glyph(left, colorFrame)
	for i := 1; i < boardWidth-1; i++ {
		b.row[i] = draw.Glyph(mid, colorFrame)
	}
	b.row[boardWidth-1] = draw.Glyph(right, colorFrame)
}

func (b *boardRenderer) drawStack(sink Sink, f *field.Playfield) {
	inner := b.row[1 : boardWidth-1]
	for y := field.Top; y < field.Bottom; y++ {
		for x := field.Left; x < field.Right; x++ {
			c := f.At(x, y)
			var cell draw.Cell
			if c.Filled {
				cell = draw.Glyph(draw.BlockFull, colorFor(c.Kind))
			}
			i := (x - field.Left) * cellWidth
			inner[i], inner[i+1] = cell, cell
		}
		sink.Blit(1, 1+y-field.Top, len(inner), 1, inner)
	}
}

// drawPiece blits the piece's 5x5 window; cells outside the piece are
// transparent so the stack beneath shows through.
func (b *boardRenderer) drawPiece(sink Sink, p *tetromino.Piece) {
	if !b.window.Stamp(p.Cells) {
		return
	}
	cell := draw.Glyph(draw.BlockFull, colorFor(p.Kind))
	for wy := range physics.WindowSize {
		for wx := range physics.WindowSize {
			var c draw.Cell
			if b.window[wy][wx] {
				c = cell
			}
			i := wy*pieceBufWidth + wx*cellWidth
			b.piece[i], b.piece[i+1] = c, c
		}
	}
	screenX, screenY := boardPosition(p.Pivot.X-physics.WindowRadius, p.Pivot.Row()-physics.WindowRadius)
	sink.Blit(screenX, screenY, pieceBufWidth, physics.WindowSize, b.piece[:])
}

// boardPosition maps a playfield coordinate to the canvas cell of its
// left half.
func boardPosition(x, y int) (col, row int) {
	return 1 + (x-field.Left)*cellWidth, 1 + (y - field.Top)
}
