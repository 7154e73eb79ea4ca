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

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Verify DefaultLogger implements Logger at compile time.
var _ Logger = (*DefaultLogger)(nil)

// Options configures a DefaultLogger.
type Options struct {
	// Level is the minimum level to emit.
	Level Level
	// Format selects text or JSON output.
	Format Format
	// Output is the destination writer. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultLogger is the built-in Logger implementation. It is safe for
// concurrent use.
type DefaultLogger struct {
	mu     sync.Mutex
	level  Level
	format Format
	out    io.Writer
	fields map[string]interface{}
}

// New creates a DefaultLogger from options.
func New(opts Options) *DefaultLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return &DefaultLogger{level: opts.Level, format: opts.Format, out: out}
}

// WithField returns a logger that attaches key=value to every entry. The
// receiver is not modified.
func (l *DefaultLogger) WithField(key string, value interface{}) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(map[string]interface{}, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	return &DefaultLogger{level: l.level, format: l.format, out: l.out, fields: fields}
}

// Debugf logs at debug level.
func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Infof logs at info level.
func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warnf logs at warn level.
func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Errorf logs at error level.
func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

func (l *DefaultLogger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.level == LevelSilent {
		return
	}

	msg := fmt.Sprintf(format, args...)
	switch l.format {
	case FormatJSON:
		l.writeJSON(level, msg)
	default:
		l.writeText(level, msg)
	}
}

func (l *DefaultLogger) writeText(level Level, msg string) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", strings.ToUpper(level.String()), msg)
	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, l.fields[k]))
		}
		fmt.Fprintf(&b, " {%s}", strings.Join(parts, ", "))
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(l.out, b.String())
}

func (l *DefaultLogger) writeJSON(level Level, msg string) {
	entry := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
		"level":     level.String(),
		"message":   msg,
	}
	if len(l.fields) > 0 {
		entry["fields"] = l.fields
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.out, `{"level":%q,"message":%q,"error":"json marshal failed"}`+"\n", level.String(), msg)
		return
	}
	_, _ = l.out.Write(append(data, '\n'))
}
