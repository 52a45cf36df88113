package logger

var logger Logger = &GlogLogger{depth: 2}

// SetLogger replaces the package level logger. A nil logger is ignored.
func SetLogger(l Logger) {
	if l != nil {
		logger = l
	}
}

// Default returns the package level logger.
func Default() Logger {
	return logger
}

// Debug level logging
func Debugf(msg string, args ...any) {
	logger.Debugf(msg, args...)
}

// Info level logging
func Infof(msg string, args ...any) {
	logger.Infof(msg, args...)
}

// Warn level logging
func Warnf(msg string, args ...any) {
	logger.Warnf(msg, args...)
}

// Error level logging
func Errorf(msg string, args ...any) {
	logger.Errorf(msg, args...)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugf(msg string, args ...any) {}
func (nopLogger) Infof(msg string, args ...any)  {}
func (nopLogger) Warnf(msg string, args ...any)  {}
func (nopLogger) Errorf(msg string, args ...any) {}
