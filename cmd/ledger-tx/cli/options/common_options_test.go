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

package options

import (
	"testing"
)

// TestBuildOptions tests conversion of flag values into build options.
func TestBuildOptions(t *testing.T) {
	flags := &TransactionFlags{
		Namespace: "banking",
		Alias:     "treasury",
		Outputs:   []string{"wallet", "audit"},
		Metadata:  []string{"origin=cli", "note=first run"},
	}

	opts, err := flags.BuildOptions()
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}

	if opts.Namespace != "banking" {
		t.Errorf("Namespace = %q, want %q", opts.Namespace, "banking")
	}
	if opts.Alias != "treasury" {
		t.Errorf("Alias = %q, want %q", opts.Alias, "treasury")
	}
	if len(opts.Outputs) != 2 || opts.Outputs[0].Alias != "wallet" || opts.Outputs[1].Alias != "audit" {
		t.Errorf("Outputs = %+v, want wallet then audit", opts.Outputs)
	}
	if opts.Metadata["origin"] != "cli" {
		t.Errorf("Metadata[origin] = %q, want %q", opts.Metadata["origin"], "cli")
	}
	if opts.Metadata["note"] != "first run" {
		t.Errorf("Metadata[note] = %q, want %q", opts.Metadata["note"], "first run")
	}
}

// TestBuildOptions_Errors tests rejection of malformed flag values.
func TestBuildOptions_Errors(t *testing.T) {
	tests := []struct {
		name  string
		flags TransactionFlags
	}{
		{name: "empty output alias", flags: TransactionFlags{Outputs: []string{""}}},
		{name: "metadata without equals", flags: TransactionFlags{Metadata: []string{"justakey"}}},
		{name: "metadata with empty key", flags: TransactionFlags{Metadata: []string{"=value"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.flags.BuildOptions(); err == nil {
				t.Error("BuildOptions() expected error")
			}
		})
	}
}

// TestBuildOptions_MetadataValueWithEquals tests that only the first equals
// sign splits a metadata entry.
func TestBuildOptions_MetadataValueWithEquals(t *testing.T) {
	flags := &TransactionFlags{Metadata: []string{"query=a=b"}}

	opts, err := flags.BuildOptions()
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}
	if opts.Metadata["query"] != "a=b" {
		t.Errorf("Metadata[query] = %q, want %q", opts.Metadata["query"], "a=b")
	}
}
