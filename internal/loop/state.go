package loop

import (
	"github.com/tomz197/tetris/internal/game"
)

// Screen represents the current phase of the process loop.
type Screen int

const (
	ScreenTitle    Screen = iota // Title and controls, waiting for Enter
	ScreenPlaying                // Active session
	ScreenGameOver               // Session ended, waiting for Enter or quit
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State holds everything the process loop keeps between ticks.
type State struct {
	Screen    Screen
	Session   *game.Session // nil until the first game starts
	Running   bool
	Games     int // Games started in this process
	BestScore int // Highest score seen in this process
}

// NewState creates the initial state showing the title screen.
func NewState() *State {
	return &State{
		Screen:  ScreenTitle,
		Running: true,
	}
}
