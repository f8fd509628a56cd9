// Package logging provides leveled logging on top of the standard library
// logger. Verbosity is driven by counted -v flags so the CLI stays quiet by
// default and gets chattier with -v, -vv and so on.
package logging

import (
	"fmt"
	"log"
	"strings"
)

// Level represents logging severity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var (
	currentLevel     = LevelInfo
	currentVerbosity = 0
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
}

// SetVerbosity configures logger output from count of -v flags (0-2).
func SetVerbosity(count int) {
	if count < 0 {
		count = 0
	}
	if count > 2 {
		count = 2
	}
	currentVerbosity = count
	switch count {
	case 0:
		currentLevel = LevelInfo
	case 1:
		currentLevel = LevelDebug
	default:
		currentLevel = LevelDebug
	}
}

// Verbosity returns the stored -v count.
func Verbosity() int {
	return currentVerbosity
}

// LevelName returns the current level label.
func LevelName() string {
	return LevelToString(currentLevel)
}

// LevelToString converts a Level to human readable text.
func LevelToString(l Level) string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

func shouldLog(l Level) bool {
	return l <= currentLevel
}

func logf(l Level, prefix, format string, args ...any) {
	if !shouldLog(l) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", strings.ToUpper(prefix), msg)
}

// Errorf always prints.
func Errorf(format string, args ...any) {
	logf(LevelError, "err", format, args...)
}

func Warnf(format string, args ...any) {
	logf(LevelWarn, "warn", format, args...)
}

func Infof(format string, args ...any) {
	logf(LevelInfo, "info", format, args...)
}

func Debugf(format string, args ...any) {
	logf(LevelDebug, "dbg", format, args...)
}
