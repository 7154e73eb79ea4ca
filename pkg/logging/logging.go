// Copyright 2025 The Activeledger Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the structured, leveled logging used by the
// CLI. The transaction-building core stays silent; only the outer glue
// logs. The Logger interface keeps backends pluggable (slog, zap, ...)
// without forcing a dependency on library consumers.
package logging

import "strings"

// Level is the severity of a log message.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for potential issues.
	LevelWarn
	// LevelError is for failures.
	LevelError
	// LevelSilent disables all output.
	LevelSilent
)

// String returns the level's lowercase name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name, defaulting to LevelInfo for anything it
// does not recognize.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// Format selects the log output encoding.
type Format int

const (
	// FormatText is human-readable text output.
	FormatText Format = iota
	// FormatJSON is structured JSON output.
	FormatJSON
)

// ParseFormat parses a format name, defaulting to FormatText.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Logger is the leveled, structured logging interface used by the CLI.
type Logger interface {
	// Debugf logs at debug level with printf-style formatting.
	Debugf(format string, args ...interface{})
	// Infof logs at info level.
	Infof(format string, args ...interface{})
	// Warnf logs at warn level.
	Warnf(format string, args ...interface{})
	// Errorf logs at error level.
	Errorf(format string, args ...interface{})
	// WithField returns a Logger attaching the key-value pair to every
	// entry it emits.
	WithField(key string, value interface{}) Logger
}
