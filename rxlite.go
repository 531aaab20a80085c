// Package rxlite is a minimal push-based event-stream library. An
// Observable describes how to produce a sequence of values; each Subscribe
// runs that producer against a fresh Observer, which delivers the values
// synchronously through next/error/complete callbacks and guarantees
// idempotent unsubscription with an exactly-once teardown.
package rxlite

import "github.com/rxlite/rxlite-go/logger"

// LogLevel is an alias of logger.Level.
type LogLevel = logger.Level

const (
	// LogLevelDebug is DEBUG level.
	LogLevelDebug = logger.LevelDebug
	// LogLevelInfo is INFO level.
	LogLevelInfo = logger.LevelInfo
	// LogLevelWarn is WARN level.
	LogLevelWarn = logger.LevelWarn
	// LogLevelError is ERROR level.
	LogLevelError = logger.LevelError
)

// SetLoggerLevel sets the global rxlite log level.
func SetLoggerLevel(level LogLevel) {
	logger.SetLevel(level)
}

// SetLoggerDebug customs your debug log implementation.
func SetLoggerDebug(fn logger.Func) {
	logger.SetFunc(logger.LevelDebug, fn)
}

// SetLoggerInfo customs your info log implementation.
func SetLoggerInfo(fn logger.Func) {
	logger.SetFunc(logger.LevelInfo, fn)
}

// SetLoggerWarn customs your warn log implementation.
func SetLoggerWarn(fn logger.Func) {
	logger.SetFunc(logger.LevelWarn, fn)
}

// SetLoggerError customs your error log implementation.
func SetLoggerError(fn logger.Func) {
	logger.SetFunc(logger.LevelError, fn)
}
