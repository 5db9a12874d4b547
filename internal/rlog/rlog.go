// Package rlog provides the debug-level logging used by the ring package
// (ring construction, multiplication summaries and division restarts). It
// keeps logrus behind one small wrapper so the format stays consistent.
package rlog

import (
	log "github.com/sirupsen/logrus"
)

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// Debug logs a message at debug level.
func Debug(args ...any) {
	log.Debug(args...)
}
