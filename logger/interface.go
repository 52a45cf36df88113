package logger

// Logger is the logging contract shared by the destination integration, the sinks and the
// replay binary.
type Logger interface {
	// Debug level logging. Used for every vendor call and for session no-ops.
	Debugf(msg string, args ...any)

	// Info level logging
	Infof(msg string, args ...any)

	// Warn level logging
	Warnf(msg string, args ...any)

	// Error level logging
	Errorf(msg string, args ...any)
}
