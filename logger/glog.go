package logger

import (
	"github.com/golang/glog"
)

// DebugVerbosity is the glog -v level at which Debugf output is written.
const DebugVerbosity glog.Level = 2

// GlogLogger implements the Logger interface for logging using the glog library with configurable call depth.
type GlogLogger struct {
	depth  int
	prefix string
}

// Debugf logs a debug-level message when glog runs with -v=2 or higher.
func (logger *GlogLogger) Debugf(msg string, args ...any) {
	if glog.V(DebugVerbosity) {
		glog.InfoDepthf(logger.depth, logger.prefix+msg, args...)
	}
}

// Infof logs an informational-level message with the specified format and optional arguments.
func (logger *GlogLogger) Infof(msg string, args ...any) {
	glog.InfoDepthf(logger.depth, logger.prefix+msg, args...)
}

// Warnf logs a warning-level message with the specified format and arguments.
func (logger *GlogLogger) Warnf(msg string, args ...any) {
	glog.WarningDepthf(logger.depth, logger.prefix+msg, args...)
}

// Errorf logs an error-level message with the specified format and arguments.
func (logger *GlogLogger) Errorf(msg string, args ...any) {
	glog.ErrorDepthf(logger.depth, logger.prefix+msg, args...)
}

// NewGlogLogger returns a glog backed logger. Every message is prefixed with "[tag] " when
// tag is not empty, matching the "[pubstack]" style prefixes used across the analytics modules.
func NewGlogLogger(tag string) Logger {
	prefix := ""
	if tag != "" {
		prefix = "[" + tag + "] "
	}
	return &GlogLogger{
		depth:  1,
		prefix: prefix,
	}
}
