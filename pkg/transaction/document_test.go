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

package transaction

import (
	"testing"
)

const testPublicKeyPEM = "-----BEGIN PUBLIC KEY-----\nMFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAE\n-----END PUBLIC KEY-----\n"

// TestNewOnboarding tests the initial document state.
func TestNewOnboarding(t *testing.T) {
	doc := NewOnboarding("default")

	if doc.Namespace() != "default" {
		t.Errorf("Namespace() = %q, want %q", doc.Namespace(), "default")
	}
	if doc.Contract() != OnboardContract {
		t.Errorf("Contract() = %q, want %q", doc.Contract(), OnboardContract)
	}
	if !doc.SelfSigned() {
		t.Error("SelfSigned() = false, want true")
	}
	if len(doc.InputStreams()) != 0 {
		t.Errorf("InputStreams() = %d streams, want 0", len(doc.InputStreams()))
	}
}

// TestSetSelfStream tests identity stream insertion and the strict policy
// for repeated calls.
func TestSetSelfStream(t *testing.T) {
	doc := NewOnboarding("default")

	if err := doc.SetSelfStream("identity", testPublicKeyPEM, "secp256r1"); err != nil {
		t.Fatalf("SetSelfStream() error = %v", err)
	}

	inputs := doc.InputStreams()
	if len(inputs) != 1 {
		t.Fatalf("InputStreams() = %d streams, want 1", len(inputs))
	}
	if inputs[0].Alias != "identity" {
		t.Errorf("input alias = %q, want %q", inputs[0].Alias, "identity")
	}
	if inputs[0].StreamID != "" {
		t.Errorf("input stream id = %q, want empty", inputs[0].StreamID)
	}
	if got := inputs[0].Metadata[MetaKeyPublicKey]; got != testPublicKeyPEM {
		t.Errorf("publicKey metadata = %q, want %q", got, testPublicKeyPEM)
	}
	if got := inputs[0].Metadata[MetaKeyType]; got != "secp256r1" {
		t.Errorf("type metadata = %q, want %q", got, "secp256r1")
	}

	// A second identity stream is rejected rather than overwriting.
	err := doc.SetSelfStream("other", testPublicKeyPEM, "secp256r1")
	if err == nil {
		t.Fatal("SetSelfStream() expected error on second call")
	}
	if !IsDuplicateStreamAlias(err) {
		t.Errorf("IsDuplicateStreamAlias() = false for %v", err)
	}
	if len(doc.InputStreams()) != 1 {
		t.Error("failed second call modified the document")
	}
}

// TestAddOutputStream tests output insertion order and alias uniqueness.
func TestAddOutputStream(t *testing.T) {
	doc := NewOnboarding("default")

	if err := doc.AddOutputStream("wallet", map[string]string{"balance": "0"}); err != nil {
		t.Fatalf("AddOutputStream() error = %v", err)
	}
	if err := doc.AddOutputStream("audit", nil); err != nil {
		t.Fatalf("AddOutputStream() error = %v", err)
	}

	err := doc.AddOutputStream("wallet", nil)
	if err == nil {
		t.Fatal("AddOutputStream() expected error for duplicate alias")
	}
	if !IsDuplicateStreamAlias(err) {
		t.Errorf("IsDuplicateStreamAlias() = false for %v", err)
	}

	outputs := doc.OutputStreams()
	if len(outputs) != 2 {
		t.Fatalf("OutputStreams() = %d streams, want 2", len(outputs))
	}
	if outputs[0].Alias != "wallet" || outputs[1].Alias != "audit" {
		t.Errorf("output order = [%s, %s], want [wallet, audit]", outputs[0].Alias, outputs[1].Alias)
	}
}

// TestSetMetadata tests that metadata writes overwrite previous values.
func TestSetMetadata(t *testing.T) {
	doc := NewOnboarding("default")

	doc.SetMetadata("note", "first")
	doc.SetMetadata("note", "second")
	doc.SetMetadata("origin", "sdk")

	meta := doc.Metadata()
	if meta["note"] != "second" {
		t.Errorf("metadata[note] = %q, want %q", meta["note"], "second")
	}
	if len(meta) != 2 {
		t.Errorf("Metadata() = %d entries, want 2", len(meta))
	}
}

// TestAccessorsReturnCopies tests that mutating returned values does not
// change the document.
func TestAccessorsReturnCopies(t *testing.T) {
	doc := NewOnboarding("default")
	if err := doc.SetSelfStream("identity", testPublicKeyPEM, "secp256r1"); err != nil {
		t.Fatalf("SetSelfStream() error = %v", err)
	}
	doc.SetMetadata("note", "original")

	doc.InputStreams()[0].Metadata[MetaKeyType] = "tampered"
	doc.Metadata()["note"] = "tampered"

	if got := doc.InputStreams()[0].Metadata[MetaKeyType]; got != "secp256r1" {
		t.Errorf("input metadata mutated through accessor: %q", got)
	}
	if got := doc.Metadata()["note"]; got != "original" {
		t.Errorf("metadata mutated through accessor: %q", got)
	}
}
