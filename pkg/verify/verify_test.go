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

package verify

import (
	"testing"

	"github.com/activeledger/ledger-tx/pkg/keys"
	"github.com/activeledger/ledger-tx/pkg/onboard"
	"github.com/activeledger/ledger-tx/pkg/signing"
	"github.com/activeledger/ledger-tx/pkg/transaction"
)

// TestSigned tests verification of a finalized transaction against an
// explicitly supplied public key, for every algorithm.
func TestSigned(t *testing.T) {
	for _, alg := range keys.SupportedAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			tx, kp, err := onboard.BuildWithGeneratedKey(alg, onboard.Options{})
			if err != nil {
				t.Fatalf("BuildWithGeneratedKey() error = %v", err)
			}

			if err := Signed(tx, kp.Public()); err != nil {
				t.Errorf("Signed() error = %v", err)
			}

			// A different key must not verify.
			other, err := keys.Generate(alg)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if err := Signed(tx, other.Public()); err == nil {
				t.Error("Signed() expected error for wrong public key")
			}
		})
	}
}

// TestSelfSigned tests verification against the public key the transaction
// itself carries, which is the check a receiving node runs.
func TestSelfSigned(t *testing.T) {
	for _, alg := range keys.SupportedAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			tx, _, err := onboard.BuildWithGeneratedKey(alg, onboard.Options{})
			if err != nil {
				t.Fatalf("BuildWithGeneratedKey() error = %v", err)
			}

			if err := SelfSigned(tx); err != nil {
				t.Errorf("SelfSigned() error = %v", err)
			}
		})
	}
}

// TestSelfSigned_WrongEmbeddedKey tests that a transaction carrying a key
// other than the one that signed it fails self-verification.
func TestSelfSigned_WrongEmbeddedKey(t *testing.T) {
	signingKey, err := keys.Generate(keys.AlgorithmEC)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	otherKey, err := keys.Generate(keys.AlgorithmEC)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	otherPEM, err := otherKey.PublicKeyPEM()
	if err != nil {
		t.Fatalf("PublicKeyPEM() error = %v", err)
	}

	// Build a document that embeds one key but is signed by another.
	doc := transaction.NewOnboarding("default")
	if err := doc.SetSelfStream("identity", otherPEM, keys.AlgorithmEC.String()); err != nil {
		t.Fatalf("SetSelfStream() error = %v", err)
	}
	payload, err := doc.Canonicalize()
	if err != nil {
		t.Fatalf("Canonicalize() error = %v", err)
	}
	sig, err := signing.Sign(payload, signingKey)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	tx, err := doc.Finalize(transaction.Signature{
		Identity:  "identity",
		Algorithm: keys.AlgorithmEC.String(),
		Signature: signing.EncodeSignature(sig),
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if err := SelfSigned(tx); err == nil {
		t.Error("SelfSigned() expected error for mismatched embedded key")
	}
}

// TestEncodedPayload tests verification of base64 signatures and rejection
// of undecodable ones.
func TestEncodedPayload(t *testing.T) {
	kp, err := keys.Generate(keys.AlgorithmEd25519)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	payload := []byte("payload under test")
	sig, err := signing.Sign(payload, kp)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	if err := EncodedPayload(payload, signing.EncodeSignature(sig), kp.Public()); err != nil {
		t.Errorf("EncodedPayload() error = %v", err)
	}

	if err := EncodedPayload(payload, "%%%not-base64%%%", kp.Public()); err == nil {
		t.Error("EncodedPayload() expected error for undecodable signature")
	}

	if err := EncodedPayload([]byte("different payload"), signing.EncodeSignature(sig), kp.Public()); err == nil {
		t.Error("EncodedPayload() expected error for payload mismatch")
	}
}
