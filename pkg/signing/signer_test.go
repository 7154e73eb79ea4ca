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

package signing

import (
	"crypto"
	"errors"
	"io"
	"testing"

	"github.com/activeledger/ledger-tx/pkg/keys"
)

// TestSign tests signing with every supported algorithm.
func TestSign(t *testing.T) {
	payload := []byte(`{"$namespace":"default","$contract":"onboard"}`)

	for _, alg := range keys.SupportedAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			kp, err := keys.Generate(alg)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			sig, err := Sign(payload, kp)
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}
			if len(sig) == 0 {
				t.Error("Sign() returned empty signature")
			}
		})
	}
}

// failingSigner always fails the private key operation, standing in for a
// dropped HSM session.
type failingSigner struct {
	pub crypto.PublicKey
}

func (s *failingSigner) Public() crypto.PublicKey {
	return s.pub
}

func (s *failingSigner) Sign(io.Reader, []byte, crypto.SignerOpts) ([]byte, error) {
	return nil, errors.New("token removed")
}

// TestSign_Failure tests that a failing signer surfaces as a SigningError.
func TestSign_Failure(t *testing.T) {
	healthy, err := keys.Generate(keys.AlgorithmEC)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	kp, err := keys.FromSigner(keys.AlgorithmEC, &failingSigner{pub: healthy.Public()})
	if err != nil {
		t.Fatalf("FromSigner() error = %v", err)
	}

	_, err = Sign([]byte("payload"), kp)
	if err == nil {
		t.Fatal("Sign() expected error from failing signer")
	}
	if !IsSigningFailure(err) {
		t.Errorf("IsSigningFailure() = false for %v", err)
	}

	var sigErr *SigningError
	if !errors.As(err, &sigErr) {
		t.Fatalf("error %v is not a *SigningError", err)
	}
	if sigErr.Algorithm != keys.AlgorithmEC.String() {
		t.Errorf("SigningError.Algorithm = %q, want %q", sigErr.Algorithm, keys.AlgorithmEC)
	}
}

// TestEncodeDecodeSignature tests the textual signature encoding.
func TestEncodeDecodeSignature(t *testing.T) {
	sig := []byte{0x00, 0x01, 0xfe, 0xff, 'a', 'b', 'c'}

	encoded := EncodeSignature(sig)
	if encoded == "" {
		t.Fatal("EncodeSignature() returned empty string")
	}

	decoded, err := DecodeSignature(encoded)
	if err != nil {
		t.Fatalf("DecodeSignature() error = %v", err)
	}
	if string(decoded) != string(sig) {
		t.Errorf("DecodeSignature() = %v, want %v", decoded, sig)
	}

	if _, err := DecodeSignature("not!base64!!"); err == nil {
		t.Error("DecodeSignature() expected error for invalid input")
	}
}
