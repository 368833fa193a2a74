package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
const (
	VerbosityQuiet = -1 // -q: warnings and errors only
	VerbosityUser  = 0  // No flags: generation summaries, watcher status
	VerbosityInfo  = 1  // -v: same as no flags
	VerbosityDebug = 2  // -vv: + per-file parsing, config details
)

// VerbosityToLevel maps verbosity flags (-v, -vv) to zap log levels
//
// Mapping:
//
//	0 (none)  -> InfoLevel  (success lines are part of normal output)
//	1 (-v)    -> InfoLevel
//	2+ (-vv)  -> DebugLevel
//
// VerbosityQuiet (-q) maps to WarnLevel.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity < VerbosityUser:
		return zapcore.WarnLevel
	case verbosity < VerbosityDebug:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName returns a human-readable name for verbosity level
func LevelName(verbosity int) string {
	switch {
	case verbosity < VerbosityUser:
		return "Quiet"
	case verbosity == VerbosityUser:
		return "User"
	case verbosity == VerbosityInfo:
		return "Info (-v)"
	default:
		return "Debug (-vv)"
	}
}
