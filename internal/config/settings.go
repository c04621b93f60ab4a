package config

import "time"

// Environment variables read by LoadSettings.
const (
	EnvTickDelay = "TETRIS_TICK_DELAY"
	EnvSeed      = "TETRIS_SEED"
	EnvLogFile   = "TETRIS_LOG_FILE"
	EnvLogLevel  = "TETRIS_LOG_LEVEL"
)

// Simulation defaults. All fall speeds are in rows per tick.
const (
	DefaultTickDelay          = 16 * time.Millisecond // ~60 ticks per second
	DefaultInitialFallSpeed   = 0.02
	DefaultFallSpeedIncrement = 0.002
	DefaultLandingGraceTicks  = 30
)

// Settings holds the session-fixed tunables for one process.
type Settings struct {
	TickDelay          time.Duration
	InitialFallSpeed   float64
	FallSpeedIncrement float64
	LandingGraceTicks  int
	Seed               int64 // 0 means seed from the clock
	LogFile            string
	LogLevel           string
}

// DefaultSettings returns Settings with the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		TickDelay:          DefaultTickDelay,
		InitialFallSpeed:   DefaultInitialFallSpeed,
		FallSpeedIncrement: DefaultFallSpeedIncrement,
		LandingGraceTicks:  DefaultLandingGraceTicks,
		LogLevel:           "info",
	}
}

// LoadSettings returns the defaults overlaid with any environment overrides.
func LoadSettings() Settings {
	s := DefaultSettings()
	s.TickDelay = GetEnvDuration(EnvTickDelay, s.TickDelay)
	s.Seed = GetEnvInt(EnvSeed, s.Seed)
	s.LogFile = GetEnv(EnvLogFile, s.LogFile)
	s.LogLevel = GetEnv(EnvLogLevel, s.LogLevel)
	return s
}
