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

// Package signing computes transaction signatures. The signature scheme is
// fixed by the key pair's algorithm tag; this package only applies whatever
// scheme the tag names.
package signing

import (
	"encoding/base64"
	"errors"
	"fmt"

	internalcrypto "github.com/activeledger/ledger-tx/internal/crypto"
	"github.com/activeledger/ledger-tx/pkg/keys"
)

// SigningError reports a failed cryptographic signing operation. Key
// material is validated before it reaches the signer, so a signing failure
// in the normal flow indicates something like an HSM session dropping
// mid-operation.
type SigningError struct {
	// Algorithm is the tag of the key that failed to sign.
	Algorithm string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *SigningError) Error() string {
	return fmt.Sprintf("SigningFailure: signing operation did not complete (algorithm: %s): %v", e.Algorithm, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *SigningError) Unwrap() error {
	return e.Cause
}

// IsSigningFailure reports whether err is a SigningError.
func IsSigningFailure(err error) bool {
	var sigErr *SigningError
	return errors.As(err, &sigErr)
}

// Sign computes a signature over the canonical signing payload using the
// key pair's private key and the scheme named by its algorithm tag.
func Sign(payload []byte, kp *keys.KeyPair) ([]byte, error) {
	sig, err := internalcrypto.Sign(kp.Signer(), kp.Algorithm(), payload)
	if err != nil {
		return nil, &SigningError{Algorithm: kp.Algorithm().String(), Cause: err}
	}
	return sig, nil
}

// EncodeSignature returns the deterministic textual encoding of signature
// bytes used inside transaction documents: standard base64, matching the
// network's signature convention.
func EncodeSignature(sig []byte) string {
	return base64.StdEncoding.EncodeToString(sig)
}

// DecodeSignature reverses EncodeSignature.
func DecodeSignature(encoded string) ([]byte, error) {
	sig, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature: %w", err)
	}
	return sig, nil
}
