package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/tetris/internal/field"
	"github.com/tomz197/tetris/internal/tetromino"
)

const testIncrement = 0.25

func newTestSession(grace int, speed float64, kinds ...tetromino.Kind) *Session {
	return NewSession(Options{
		InitialFallSpeed:   speed,
		FallSpeedIncrement: testIncrement,
		LandingGraceTicks:  grace,
		Source:             tetromino.NewSequence(kinds...),
	})
}

// tickUntil runs ticks with ActionNone until cond holds or limit is reached.
func tickUntil(t *testing.T, s *Session, limit int, cond func(TickResult) bool) TickResult {
	t.Helper()
	for range limit {
		res := s.Tick(ActionNone)
		if cond(res) {
			return res
		}
	}
	t.Fatalf("condition not reached after %d ticks", limit)
	return TickResult{}
}

func merged(r TickResult) bool { return r.Merged }

func TestFirstTickSpawns(t *testing.T) {
	s := newTestSession(5, 0.1, tetromino.T)
	assert.Equal(t, PhaseSpawning, s.Phase())
	assert.False(t, s.HasPiece())

	res := s.Tick(ActionNone)
	assert.True(t, res.Spawned)
	assert.Equal(t, PhaseFalling, s.Phase())
	assert.Equal(t, tetromino.T, s.Piece().Kind)
	assert.Equal(t, SpawnPivot.X, s.Piece().Pivot.X)
	assert.InDelta(t, SpawnPivot.Y+0.1, s.Piece().Pivot.Y, 1e-9)
	assert.Equal(t, 1, s.Stats().Pieces)
}

func TestLineLandsOnFloor(t *testing.T) {
	s := newTestSession(0, 1, tetromino.Line, tetromino.T)
	res := tickUntil(t, s, 100, merged)
	assert.True(t, res.Spawned)
	assert.Equal(t, 0, res.RowsCleared)

	x := SpawnPivot.X
	for y := field.Bottom - 4; y < field.Bottom; y++ {
		c := s.Field().At(x, y)
		assert.True(t, c.Filled, "row %d", y)
		assert.Equal(t, tetromino.Line, c.Kind)
	}
	assert.False(t, s.Field().At(x, field.Bottom-5).Filled)
	assert.Equal(t, 4, s.Field().FilledCount())
	assert.True(t, s.Field().At(x, field.Bottom).Wall)
}

func TestLineLandsOnStack(t *testing.T) {
	s := newTestSession(0, 0.5, tetromino.Line, tetromino.T)
	s.Field().Fill(SpawnPivot.X, field.Bottom-3, tetromino.Z)

	tickUntil(t, s, 200, merged)
	for y := field.Bottom - 7; y < field.Bottom-3; y++ {
		assert.Equal(t, tetromino.Line, s.Field().At(SpawnPivot.X, y).Kind, "row %d", y)
	}
}

func TestCompletingRowClearsAndShifts(t *testing.T) {
	s := newTestSession(0, 1, tetromino.Line, tetromino.T)
	f := s.Field()
	for x := field.Left; x < field.Right; x++ {
		if x != SpawnPivot.X {
			f.Fill(x, field.Bottom-1, tetromino.Square)
		}
	}
	f.Fill(field.Left, field.Bottom-2, tetromino.Z)

	res := tickUntil(t, s, 100, merged)
	require.Equal(t, 1, res.RowsCleared)

	st := s.Stats()
	assert.Equal(t, 1, st.Score)
	assert.Equal(t, 1, st.RowsCleared)
	assert.InDelta(t, 1+testIncrement, st.FallSpeed, 1e-9)

	// The three upper Line cells and the Z cell slid down one row.
	for y := field.Bottom - 3; y < field.Bottom; y++ {
		assert.Equal(t, tetromino.Line, f.At(SpawnPivot.X, y).Kind, "row %d", y)
	}
	assert.False(t, f.At(SpawnPivot.X, field.Bottom-4).Filled)
	assert.Equal(t, tetromino.Z, f.At(field.Left, field.Bottom-1).Kind)
	assert.Equal(t, 4, f.FilledCount())
}

func TestMultipleRowsScoreIndependently(t *testing.T) {
	s := newTestSession(0, 1, tetromino.Line, tetromino.T)
	f := s.Field()
	for y := field.Bottom - 4; y < field.Bottom; y++ {
		for x := field.Left; x < field.Right; x++ {
			if x != SpawnPivot.X {
				f.Fill(x, y, tetromino.Square)
			}
		}
	}

	res := tickUntil(t, s, 100, merged)
	assert.Equal(t, 4, res.RowsCleared)
	assert.Equal(t, 4, s.Stats().Score)
	assert.InDelta(t, 1+4*testIncrement, s.Stats().FallSpeed, 1e-9)
	assert.Equal(t, 0, f.FilledCount())
}

func TestRotateIntoLeftBorderIsRejected(t *testing.T) {
	s := newTestSession(5, 0.01, tetromino.Line)
	s.Tick(ActionNone)
	for range SpawnPivot.X - field.Left {
		require.True(t, s.Tick(ActionLeft).Applied)
	}
	require.Equal(t, field.Left, s.Piece().Pivot.X)
	assert.False(t, s.Tick(ActionLeft).Applied)

	before := s.Piece().Cells
	res := s.Tick(ActionRotateCW)
	assert.False(t, res.Applied)
	assert.Equal(t, before, s.Piece().Cells)
}

func TestRotateApplied(t *testing.T) {
	s := newTestSession(5, 0.01, tetromino.T)
	s.Tick(ActionNone)
	assert.True(t, s.Tick(ActionRotateCCW).Applied)
	assert.Equal(t, tetromino.OffsetsFor(tetromino.T).Rotated(false), s.Piece().Cells)
}

func TestSquareRotationLeavesOffsets(t *testing.T) {
	s := newTestSession(5, 0.01, tetromino.Square)
	s.Tick(ActionNone)
	s.Tick(ActionRotateCW)
	assert.Equal(t, tetromino.OffsetsFor(tetromino.Square), s.Piece().Cells)
}

func TestLandingGraceCountsDown(t *testing.T) {
	const grace = 4
	s := newTestSession(grace, 1, tetromino.Square, tetromino.T)
	tickUntil(t, s, 100, func(TickResult) bool { return s.Phase() == PhaseLanding })
	assert.Equal(t, grace, s.LandingCountdown())

	for i := grace - 1; i > 0; i-- {
		res := s.Tick(ActionNone)
		require.False(t, res.Merged)
		assert.Equal(t, i, s.LandingCountdown())
	}
	assert.True(t, s.Tick(ActionNone).Merged)
	assert.Equal(t, tetromino.T, s.Piece().Kind)
}

func TestLandingGraceAbortsWhenPieceCanFallAgain(t *testing.T) {
	s := newTestSession(10, 1, tetromino.Square, tetromino.T)
	// A one-cell ledge under the square's left column.
	s.Field().Fill(SpawnPivot.X, field.Top+10, tetromino.Z)

	tickUntil(t, s, 100, func(TickResult) bool { return s.Phase() == PhaseLanding })
	require.Equal(t, field.Top+8, s.Piece().Pivot.Row())

	// Nudge right twice; the square clears the ledge and falls again.
	s.Tick(ActionRight)
	s.Tick(ActionRight)
	assert.Equal(t, PhaseFalling, s.Phase())

	tickUntil(t, s, 100, merged)
	assert.Equal(t, tetromino.Square, s.Field().At(SpawnPivot.X+2, field.Bottom-1).Kind)
}

func TestSoftDropMovesOneRow(t *testing.T) {
	s := newTestSession(5, 0.01, tetromino.T)
	s.Tick(ActionNone)
	row := s.Piece().Pivot.Row()
	assert.True(t, s.Tick(ActionSoftDrop).Applied)
	assert.Equal(t, row+1, s.Piece().Pivot.Row())
}

func TestHardDropMergesImmediately(t *testing.T) {
	s := newTestSession(50, 0.01, tetromino.Line, tetromino.S)
	s.Tick(ActionNone)
	res := s.Tick(ActionHardDrop)
	assert.True(t, res.Merged)
	assert.True(t, res.Spawned)
	assert.Equal(t, tetromino.Line, s.Field().At(SpawnPivot.X, field.Bottom-1).Kind)
	assert.Equal(t, tetromino.S, s.Piece().Kind)
}

func TestFastFallNeverTunnels(t *testing.T) {
	s := newTestSession(0, 7.5, tetromino.Line, tetromino.T)
	s.Field().Fill(SpawnPivot.X, field.Top+9, tetromino.Z)

	tickUntil(t, s, 50, merged)
	for y := field.Top + 5; y < field.Top+9; y++ {
		assert.Equal(t, tetromino.Line, s.Field().At(SpawnPivot.X, y).Kind, "row %d", y)
	}
}

func TestSpawnOverlapEndsGame(t *testing.T) {
	s := newTestSession(0, 0.1, tetromino.T)
	s.Field().Fill(SpawnPivot.X, SpawnPivot.Row(), tetromino.Z)

	res := s.Tick(ActionNone)
	assert.True(t, res.GameOver)
	assert.True(t, s.Over())
	assert.True(t, s.HasPiece())

	// Terminal: further ticks change nothing.
	before := s.Field().Clone()
	res = s.Tick(ActionLeft)
	assert.True(t, res.GameOver)
	assert.False(t, res.Applied)
	assert.Equal(t, before, s.Field())
}

func TestStackToTopEndsGame(t *testing.T) {
	s := newTestSession(0, 1, tetromino.Line)
	var res TickResult
	for range 1000 {
		res = s.Tick(ActionNone)
		if res.GameOver {
			break
		}
	}
	require.True(t, res.GameOver)
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, 0, s.Stats().Score)
}

func TestSeededSessionsAreDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1234
	a, b := NewSession(opts), NewSession(opts)
	for range 500 {
		a.Tick(ActionHardDrop)
		b.Tick(ActionHardDrop)
		require.Equal(t, a.Piece(), b.Piece())
	}
}

func TestOptionsFromDefaults(t *testing.T) {
	opts := DefaultOptions()
	assert.Greater(t, opts.InitialFallSpeed, 0.0)
	assert.Greater(t, opts.FallSpeedIncrement, 0.0)
	assert.Greater(t, opts.LandingGraceTicks, 0)
}

func TestPhaseAndActionStrings(t *testing.T) {
	assert.Equal(t, "landing", PhaseLanding.String())
	assert.Equal(t, "hard-drop", ActionHardDrop.String())
}
