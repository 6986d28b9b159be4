package slacklog

import "log/slog"

// Extended severity levels beyond the four slog defines. They slot into
// slog's numeric scale so any handler can order them correctly.
const (
	LevelTrace    = slog.Level(-8)
	LevelCritical = slog.Level(12)
	LevelFatal    = slog.Level(16)
)

// Attachment colors per severity level.
const (
	DefaultColor  = "#808080"
	DebugColor    = "#00FFFF"
	InfoColor     = "#00C400"
	WarnColor     = "#FFE240"
	ErrorColor    = "#FF0000"
	CriticalColor = "#700000"
)

// Colors maps severity levels to attachment sidebar colors.
// Treat it as read-only; ColorFor falls back to DefaultColor for levels
// not present in the map.
var Colors = map[slog.Level]string{
	LevelTrace:      DefaultColor,
	slog.LevelDebug: DebugColor,
	slog.LevelInfo:  InfoColor,
	slog.LevelWarn:  WarnColor,
	slog.LevelError: ErrorColor,
	LevelCritical:   CriticalColor,
	LevelFatal:      CriticalColor,
}

// ColorFor returns the attachment color for a severity level.
func ColorFor(level slog.Level) string {
	if c, ok := Colors[level]; ok {
		return c
	}
	return DefaultColor
}

// levelName returns the display name for a level, covering the extended
// levels slog.Level.String does not know about.
func levelName(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelCritical:
		return "CRITICAL"
	case LevelFatal:
		return "FATAL"
	default:
		return level.String()
	}
}
