package game

import (
	"math"

	"github.com/tomz197/tetris/internal/field"
	"github.com/tomz197/tetris/internal/physics"
	"github.com/tomz197/tetris/internal/tetromino"
)

// SpawnPivot is where every new piece appears: playable column 4, one row
// below the top so the -1 offsets of the templates stay inside the field.
var SpawnPivot = tetromino.Pivot{X: field.Left + 4, Y: float64(field.Top + 1)}

// Session owns all mutable state of one game. It is driven from a single
// goroutine and needs no locking.
type Session struct {
	field  *field.Playfield
	engine *physics.Engine
	source tetromino.KindSource
	opts   Options

	piece            tetromino.Piece
	phase            Phase
	landingCountdown int
	stats            Stats
}

// NewSession creates a session with an empty playfield. The first piece
// appears on the first Tick.
func NewSession(opts Options) *Session {
	f := field.New()
	return &Session{
		field:  f,
		engine: physics.NewEngine(f),
		source: opts.kindSource(),
		opts:   opts,
		phase:  PhaseSpawning,
		stats:  Stats{FallSpeed: opts.InitialFallSpeed},
	}
}

// Field returns the session's playfield.
func (s *Session) Field() *field.Playfield {
	return s.field
}

// Piece returns a copy of the active piece.
func (s *Session) Piece() tetromino.Piece {
	return s.piece
}

// HasPiece reports whether a piece is on the field (falling, landing, or the
// piece that caused game over).
func (s *Session) HasPiece() bool {
	return s.phase != PhaseSpawning
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Stats returns score and speed counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// LandingCountdown returns the remaining grace ticks while landing.
func (s *Session) LandingCountdown() int {
	return s.landingCountdown
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.phase == PhaseGameOver
}

// Tick advances the session by one step: spawn if needed, apply at most one
// action, then apply gravity, landing grace and merging.
func (s *Session) Tick(action Action) TickResult {
	var res TickResult
	if s.phase == PhaseGameOver {
		res.GameOver = true
		return res
	}

	if s.phase == PhaseSpawning {
		res.Spawned = true
		if !s.spawn() {
			res.GameOver = true
			return res
		}
	}

	if action == ActionHardDrop {
		s.hardDrop()
		res.Applied = true
		s.lock(&res)
		return res
	}
	res.Applied = s.apply(action)

	if s.engine.CanMove(&s.piece, physics.Down) {
		s.phase = PhaseFalling
		s.fall()
		return res
	}

	if s.phase != PhaseLanding {
		s.phase = PhaseLanding
		s.landingCountdown = s.opts.LandingGraceTicks
	} else {
		s.landingCountdown--
	}
	if s.landingCountdown <= 0 {
		s.lock(&res)
	}
	return res
}

// spawn places a new piece at SpawnPivot. It returns false and ends the
// session if the piece overlaps the stack.
func (s *Session) spawn() bool {
	s.piece = tetromino.New(s.source.Next(), SpawnPivot)
	s.stats.Pieces++
	if !s.engine.Fits(&s.piece) {
		s.phase = PhaseGameOver
		return false
	}
	s.phase = PhaseFalling
	s.landingCountdown = 0
	return true
}

// apply performs a legal player action and reports whether the piece changed.
func (s *Session) apply(action Action) bool {
	var t physics.Transform
	switch action {
	case ActionLeft:
		t = physics.Move(physics.Left)
	case ActionRight:
		t = physics.Move(physics.Right)
	case ActionRotateCW:
		t = physics.Rotate(true)
	case ActionRotateCCW:
		t = physics.Rotate(false)
	case ActionSoftDrop:
		if !s.engine.CanMove(&s.piece, physics.Down) {
			return false
		}
		s.piece.Pivot.Y = float64(s.piece.Pivot.Row() + 1)
		return true
	default:
		return false
	}
	if !s.engine.CanApply(&s.piece, t) {
		return false
	}
	t.Apply(&s.piece)
	return true
}

// fall advances the pivot by the fall speed. The caller has checked that
// the next row is free; rows beyond it are checked one at a time so a fast
// piece never passes through the stack.
func (s *Session) fall() {
	row := s.piece.Pivot.Row()
	target := s.piece.Pivot.Y + s.stats.FallSpeed
	reach := row + 1
	for int(math.Floor(target)) > reach && s.engine.FitsAt(s.piece.Cells, s.piece.Pivot.X, reach+1) {
		reach++
	}
	if int(math.Floor(target)) > reach {
		target = float64(reach)
	}
	s.piece.Pivot.Y = target
}

func (s *Session) hardDrop() {
	row := s.piece.Pivot.Row()
	s.piece.Pivot.Y = float64(row + s.engine.DropDistance(&s.piece))
}

// lock merges the piece, clears full rows, and spawns the next piece.
func (s *Session) lock(res *TickResult) {
	s.field.Merge(&s.piece)
	res.Merged = true

	n := s.field.ClearFullRows()
	for range n {
		s.stats.Score++
		s.stats.RowsCleared++
		s.stats.FallSpeed += s.opts.FallSpeedIncrement
	}
	res.RowsCleared = n

	res.Spawned = true
	if !s.spawn() {
		res.GameOver = true
	}
}
