package logger

import (
	"fmt"
	"log"
)

// Func is alias of logger function.
type Func = func(string, ...interface{})

// Level is level of logger.
type Level int8

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

const (
	// LevelDebug is DEBUG level.
	LevelDebug Level = iota
	// LevelInfo is INFO level.
	LevelInfo
	// LevelWarn is WARN level.
	LevelWarn
	// LevelError is ERROR level.
	LevelError
)

var (
	lvl    = LevelInfo
	sinks  = [LevelError + 1]Func{log.Printf, log.Printf, log.Printf, log.Printf}
	prefix = true
)

// SetLevel sets the global rxlite log level.
// Available levels are `LevelDebug`, `LevelInfo`, `LevelWarn` and `LevelError`.
func SetLevel(level Level) {
	lvl = level
}

// GetLevel returns current logger level.
func GetLevel() Level {
	return lvl
}

// DisablePrefix disables the printed level prefix.
func DisablePrefix() {
	prefix = false
}

// SetFunc installs fn as the output function for the given level.
// A nil fn is ignored.
func SetFunc(level Level, fn Func) {
	if fn == nil || level < LevelDebug || level > LevelError {
		return
	}
	sinks[level] = fn
}

// IsDebugEnabled returns true if debug level is open.
func IsDebugEnabled() bool {
	return lvl <= LevelDebug
}

// Debugf prints debug level log.
func Debugf(format string, v ...interface{}) {
	printf(LevelDebug, format, v...)
}

// Infof prints info level log.
func Infof(format string, v ...interface{}) {
	printf(LevelInfo, format, v...)
}

// Warnf prints warn level log.
func Warnf(format string, v ...interface{}) {
	printf(LevelWarn, format, v...)
}

// Errorf prints error level log. Errors are never filtered by level.
func Errorf(format string, v ...interface{}) {
	printf(LevelError, format, v...)
}

func printf(level Level, format string, v ...interface{}) {
	if level != LevelError && lvl > level {
		return
	}
	fn := sinks[level]
	if prefix {
		fn(fmt.Sprintf("[%s] %s", level, format), v...)
	} else {
		fn(format, v...)
	}
}
