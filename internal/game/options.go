package game

import (
	"time"

	"github.com/tomz197/tetris/internal/config"
	"github.com/tomz197/tetris/internal/tetromino"
)

// Options configures a Session.
type Options struct {
	InitialFallSpeed   float64 // Rows per tick
	FallSpeedIncrement float64 // Added per cleared row
	LandingGraceTicks  int     // Ticks a resting piece may still be nudged
	Seed               int64   // Random seed; 0 seeds from the clock
	Source             tetromino.KindSource
}

// DefaultOptions returns Options with the built-in tunables.
func DefaultOptions() Options {
	return OptionsFrom(config.DefaultSettings())
}

// OptionsFrom builds session Options from process Settings.
func OptionsFrom(s config.Settings) Options {
	return Options{
		InitialFallSpeed:   s.InitialFallSpeed,
		FallSpeedIncrement: s.FallSpeedIncrement,
		LandingGraceTicks:  s.LandingGraceTicks,
		Seed:               s.Seed,
	}
}

func (o Options) kindSource() tetromino.KindSource {
	if o.Source != nil {
		return o.Source
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return tetromino.NewRandomSource(seed)
}
