// Package game runs one falling-block session: spawning, player actions,
// gravity, landing grace, merging, row clears and game over. It performs
// no I/O; the caller feeds it one action per tick.
package game

// Phase is the session's position in the spawn, fall, land, merge cycle.
type Phase uint8

const (
	PhaseSpawning Phase = iota // Next tick creates a new piece
	PhaseFalling               // Piece can still move down
	PhaseLanding               // Piece is resting; grace countdown running
	PhaseGameOver              // A new piece overlapped the stack
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLanding:
		return "landing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Action is a player command consumed by a single tick.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRotateCW
	ActionRotateCCW
	ActionSoftDrop
	ActionHardDrop
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRotateCW:
		return "rotate-cw"
	case ActionRotateCCW:
		return "rotate-ccw"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionHardDrop:
		return "hard-drop"
	default:
		return "unknown"
	}
}

// Stats is the score and speed state of a session.
type Stats struct {
	Score       int     // One point per cleared row
	RowsCleared int     // Total rows removed
	Pieces      int     // Pieces spawned, including the current one
	FallSpeed   float64 // Rows per tick
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Applied     bool // The action changed the piece
	Spawned     bool // A new piece was created
	Merged      bool // The piece was written into the playfield
	RowsCleared int  // Rows removed by this tick's merge
	GameOver    bool // The session is (now) over
}
