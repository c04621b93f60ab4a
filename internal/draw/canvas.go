// Package draw is the terminal render sink: a grid of character cells that
// callers blit into and present as one full-screen repaint.
package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Block characters for drawing.
const (
	BlockFull  = '█'
	BlockEmpty = ' '
)

// Cell is one character position. A Cell with Present false is transparent
// to Blit and renders as a blank.
type Cell struct {
	Present bool
	Ch      rune
	Color   lipgloss.Color // "" uses the terminal's default colour
}

// Glyph returns a present cell.
func Glyph(ch rune, color lipgloss.Color) Cell {
	return Cell{Present: true, Ch: ch, Color: color}
}

// Canvas is a fixed-size character buffer. Every Present call writes the
// whole buffer, starting from the top-left corner.
type Canvas struct {
	width  int
	height int
	cells  []Cell // Flat slice: [y * width + x]

	renderer *lipgloss.Renderer
	styles   map[lipgloss.Color]lipgloss.Style // Cached per colour
	out      *ChunkWriter
	runBuf   []rune // Reusable buffer for same-colour runs
}

// NewCanvas creates a width x height canvas presenting to w. Colour support
// is detected from w.
func NewCanvas(w io.Writer, width, height int) *Canvas {
	return &Canvas{
		width:    width,
		height:   height,
		cells:    make([]Cell, width*height),
		renderer: lipgloss.NewRenderer(w),
		styles:   make(map[lipgloss.Color]lipgloss.Style),
		out:      NewChunkWriter(w, 0, 0),
		runBuf:   make([]rune, 0, width),
	}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// SetOffset sets the column and row offset used to centre the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.out.SetOffset(col, row)
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// At returns the cell at (x, y), or a blank cell outside the canvas.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Set writes a single cell, clipping to the canvas.
func (c *Canvas) Set(x, y int, cell Cell) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.cells[y*c.width+x] = cell
	}
}

// Blit copies a w x h block of cells, row-major, to (x, y). Cells that are
// not Present leave the canvas untouched. The block is clipped to the canvas.
func (c *Canvas) Blit(x, y, w, h int, data []Cell) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			i := row*w + col
			if i >= len(data) {
				return
			}
			if data[i].Present {
				c.Set(x+col, y+row, data[i])
			}
		}
	}
}

// Text writes s starting at (x, y) in a single colour.
func (c *Canvas) Text(x, y int, s string, color lipgloss.Color) {
	for _, r := range s {
		c.Set(x, y, Glyph(r, color))
		x++
	}
}

// Present repaints the whole canvas. Each row is positioned explicitly and
// runs of one colour are styled together.
func (c *Canvas) Present() error {
	for row := 0; row < c.height; row++ {
		c.out.MoveCursor(1, row+1)
		line := c.cells[row*c.width : (row+1)*c.width]
		for start := 0; start < len(line); {
			color := line[start].Color
			run := c.runBuf[:0]
			end := start
			for ; end < len(line) && line[end].Color == color; end++ {
				if line[end].Present {
					run = append(run, line[end].Ch)
				} else {
					run = append(run, BlockEmpty)
				}
			}
			c.runBuf = run
			c.out.WriteString(c.style(color).Render(string(run)))
			start = end
		}
	}
	return c.out.Flush()
}

func (c *Canvas) style(color lipgloss.Color) lipgloss.Style {
	if s, ok := c.styles[color]; ok {
		return s
	}
	s := c.renderer.NewStyle()
	if color != "" {
		s = s.Foreground(color)
	}
	c.styles[color] = s
	return s
}
