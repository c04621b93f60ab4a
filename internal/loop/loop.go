// Package loop provides the process loop around a game session: title
// screen, fixed-interval ticks, rendering, game over and restart.
package loop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/tetris/internal/config"
	"github.com/tomz197/tetris/internal/draw"
	"github.com/tomz197/tetris/internal/game"
	"github.com/tomz197/tetris/internal/input"
)

// ErrTerminalTooSmall is returned by Run when the terminal cannot fit the display.
var ErrTerminalTooSmall = errors.New("terminal window too small")

// KeySource is polled once per tick for at most one key.
type KeySource interface {
	HasPendingKey() bool
	ReadKey() input.Key
}

// Sink accepts rectangular blits of cells and presents full frames.
type Sink interface {
	Clear()
	Blit(x, y, w, h int, cells []draw.Cell)
	Present() error
}

// Options configures Run.
type Options struct {
	Settings     config.Settings
	Logger       *log.Logger       // nil discards log output
	TermSizeFunc draw.TermSizeFunc // nil uses the process's stdout
}

// Game couples a State with its key source and canvas.
type Game struct {
	state  *State
	keys   KeySource
	canvas *draw.Canvas
	board  boardRenderer
	opts   game.Options
	logger *log.Logger
}

// NewGame creates a Game that reads keys from keys and draws to canvas.
func NewGame(keys KeySource, canvas *draw.Canvas, settings config.Settings, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		state:  NewState(),
		keys:   keys,
		canvas: canvas,
		opts:   game.OptionsFrom(settings),
		logger: logger,
	}
}

// State returns the loop state.
func (g *Game) State() *State {
	return g.state
}

// Run starts the main loop with the standard Input → Update → Draw cycle.
// It returns when the quit key is pressed or input ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if termWidth < DisplayWidth || termHeight < DisplayHeight {
		return fmt.Errorf("%w: need %dx%d, have %dx%d",
			ErrTerminalTooSmall, DisplayWidth, DisplayHeight, termWidth, termHeight)
	}

	canvas := draw.NewCanvas(w, DisplayWidth, DisplayHeight)
	canvas.SetOffset((termWidth-canvas.Width())/2, (termHeight-canvas.Height())/2)

	g := NewGame(input.StartStream(r), canvas, opts.Settings, opts.Logger)
	g.logger.Info("session started", "tickDelay", opts.Settings.TickDelay)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for g.state.Running {
		if err := g.Step(); err != nil {
			return err
		}
		time.Sleep(opts.Settings.TickDelay)
	}

	draw.ClearScreen(w)
	g.logger.Info("session ended", "games", g.state.Games, "best", g.state.BestScore)
	return nil
}

// Step runs one tick: read at most one key, update, draw.
func (g *Game) Step() error {
	key := g.readKey()
	if key == input.KeyQuit {
		g.logger.Info("quit requested", "screen", g.state.Screen)
		g.state.Running = false
		return nil
	}

	switch g.state.Screen {
	case ScreenTitle, ScreenGameOver:
		if key == input.KeyEnter {
			g.startGame()
		}
	case ScreenPlaying:
		g.updatePlaying(key)
	}

	return g.drawFrame()
}

// readKey polls the key source once. A closed stream counts as quit.
func (g *Game) readKey() input.Key {
	if g.keys.HasPendingKey() {
		return g.keys.ReadKey()
	}
	if c, ok := g.keys.(interface{ Closed() bool }); ok && c.Closed() {
		return input.KeyQuit
	}
	return input.KeyNone
}

// startGame replaces the session with a fresh one.
func (g *Game) startGame() {
	if r, ok := g.keys.(interface{ Reset() }); ok {
		r.Reset()
	}
	g.state.Session = game.NewSession(g.opts)
	g.state.Games++
	g.state.Screen = ScreenPlaying
	g.logger.Info("game started", "game", g.state.Games)
}

// updatePlaying ticks the session with the key's action.
func (g *Game) updatePlaying(key input.Key) {
	s := g.state.Session
	res := s.Tick(actionFor(key))

	if res.RowsCleared > 0 {
		st := s.Stats()
		g.logger.Debug("rows cleared", "rows", res.RowsCleared, "score", st.Score, "fallSpeed", st.FallSpeed)
	}
	if score := s.Stats().Score; score > g.state.BestScore {
		g.state.BestScore = score
	}
	if res.GameOver {
		st := s.Stats()
		g.state.Screen = ScreenGameOver
		g.logger.Info("game over", "game", g.state.Games, "score", st.Score, "rows", st.RowsCleared, "pieces", st.Pieces)
	}
}

// actionFor maps a key to the session action it triggers.
func actionFor(key input.Key) game.Action {
	switch key {
	case input.KeyLeft:
		return game.ActionLeft
	case input.KeyRight:
		return game.ActionRight
	case input.KeyRotateCW:
		return game.ActionRotateCW
	case input.KeyRotateCCW:
		return game.ActionRotateCCW
	case input.KeySoftDrop:
		return game.ActionSoftDrop
	case input.KeyHardDrop:
		return game.ActionHardDrop
	default:
		return game.ActionNone
	}
}

// drawFrame repaints the whole display.
func (g *Game) drawFrame() error {
	g.canvas.Clear()
	g.board.draw(g.canvas, g.state.Session)
	drawUI(g.state, g.canvas)
	return g.canvas.Present()
}
