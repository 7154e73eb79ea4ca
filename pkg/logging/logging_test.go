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
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestParseLevel tests level name parsing.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"silent", LevelSilent},
		{"off", LevelSilent},
		{"DEBUG", LevelDebug},
		{"  error  ", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

// TestParseFormat tests format name parsing.
func TestParseFormat(t *testing.T) {
	if got := ParseFormat("json"); got != FormatJSON {
		t.Errorf("ParseFormat(json) = %d, want FormatJSON", got)
	}
	if got := ParseFormat("JSON"); got != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %d, want FormatJSON", got)
	}
	if got := ParseFormat("text"); got != FormatText {
		t.Errorf("ParseFormat(text) = %d, want FormatText", got)
	}
	if got := ParseFormat("anything"); got != FormatText {
		t.Errorf("ParseFormat(anything) = %d, want FormatText", got)
	}
}

// TestLoggerLevelFiltering tests that entries below the minimum level are
// suppressed.
func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.Debugf("debug message")
	logger.Infof("info message")
	logger.Warnf("warn message")
	logger.Errorf("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("suppressed levels leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error entries in output:\n%s", out)
	}
}

// TestLoggerSilent tests that the silent level suppresses everything.
func TestLoggerSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelSilent, Output: &buf})

	logger.Errorf("should not appear")

	if buf.Len() != 0 {
		t.Errorf("silent logger produced output: %q", buf.String())
	}
}

// TestLoggerTextFormat tests the text output shape including fields.
func TestLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Output: &buf})

	logger.WithField("namespace", "default").WithField("algorithm", "secp256r1").
		Infof("built transaction %d", 7)

	got := buf.String()
	want := "[INFO] built transaction 7 {algorithm=secp256r1, namespace=default}\n"
	if got != want {
		t.Errorf("text output = %q, want %q", got, want)
	}
}

// TestLoggerJSONFormat tests that JSON output parses and carries the fields.
func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Format: FormatJSON, Output: &buf})

	logger.WithField("namespace", "default").Warnf("something %s", "odd")

	var entry struct {
		Timestamp string                 `json:"timestamp"`
		Level     string                 `json:"level"`
		Message   string                 `json:"message"`
		Fields    map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("JSON output does not parse: %v\n%s", err, buf.String())
	}
	if entry.Level != "warn" {
		t.Errorf("level = %q, want %q", entry.Level, "warn")
	}
	if entry.Message != "something odd" {
		t.Errorf("message = %q, want %q", entry.Message, "something odd")
	}
	if entry.Fields["namespace"] != "default" {
		t.Errorf("fields[namespace] = %v, want default", entry.Fields["namespace"])
	}
	if entry.Timestamp == "" {
		t.Error("timestamp is empty")
	}
}

// TestWithFieldDoesNotMutateParent tests copy-on-write field attachment.
func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Options{Level: LevelDebug, Output: &buf})
	_ = parent.WithField("child", "only")

	parent.Infof("parent entry")

	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}
