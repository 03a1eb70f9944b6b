// Package logging decouples the rest of the application from the logging
// backend. Packages log through the Logger interface; logrus sits behind it
// via LogrusAdapter, and tests substitute MockLogger.
package logging

// Field is a key-value pair attached to a structured log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging surface used throughout the application.
// WithError and WithFields return derived loggers carrying extra context and
// leave the receiver unchanged. Fatal and Fatalf exit the process; only the
// CLI layer calls them.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	WithError(err error) Logger
	WithFields(fields ...Field) Logger

	Fatal(msg string, fields ...Field)
	Fatalf(format string, args ...interface{})
}
