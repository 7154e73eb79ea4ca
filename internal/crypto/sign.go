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

// Package crypto implements the signature primitives behind transaction
// signing. The scheme is fixed per algorithm tag; changing a scheme here is
// a protocol-breaking change for the whole network, which is why selection
// happens on the tag and never on inspection of the payload.
//
// External consumers should use pkg/signing and pkg/verify instead.
package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"github.com/activeledger/ledger-tx/pkg/keys"
)

// Sign computes a signature over payload using the scheme named by the
// algorithm tag:
//
//   - secp256r1: SHA-256 digest, ECDSA, ASN.1 signature encoding
//   - rsa:       SHA-256 digest, RSA-PSS
//   - ed25519:   pure Ed25519 over the raw payload
//
// It operates on crypto.Signer so both in-memory keys and PKCS#11 keys go
// through the same code path.
func Sign(signer stdcrypto.Signer, alg keys.Algorithm, payload []byte) ([]byte, error) {
	switch alg {
	case keys.AlgorithmEC:
		digest := sha256.Sum256(payload)
		sig, err := signer.Sign(rand.Reader, digest[:], stdcrypto.SHA256)
		if err != nil {
			return nil, fmt.Errorf("ECDSA signing failed: %w", err)
		}
		return sig, nil

	case keys.AlgorithmRSA:
		digest := sha256.Sum256(payload)
		opts := &rsa.PSSOptions{Hash: stdcrypto.SHA256}
		sig, err := signer.Sign(rand.Reader, digest[:], opts)
		if err != nil {
			return nil, fmt.Errorf("RSA-PSS signing failed: %w", err)
		}
		return sig, nil

	case keys.AlgorithmEd25519:
		// Ed25519 does not pre-hash; the Signer contract takes the raw
		// message with crypto.Hash(0).
		sig, err := signer.Sign(rand.Reader, payload, stdcrypto.Hash(0))
		if err != nil {
			return nil, fmt.Errorf("Ed25519 signing failed: %w", err)
		}
		return sig, nil

	default:
		return nil, fmt.Errorf("no signing scheme for algorithm tag %q", alg)
	}
}
