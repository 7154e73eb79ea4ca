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

package crypto

import (
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// VerifySignature checks a signature against message using the public key.
// The scheme is derived from the key type, mirroring the fixed per-tag
// schemes used by Sign. For RSA, PSS is tried first with PKCS1v15 as a
// fallback so signatures from tokens that only implement PKCS1v15 still
// verify.
//
// Returns nil on success.
func VerifySignature(publicKey stdcrypto.PublicKey, message, signature []byte) error {
	switch key := publicKey.(type) {
	case *ecdsa.PublicKey:
		digest := sha256.Sum256(message)
		if !ecdsa.VerifyASN1(key, digest[:], signature) {
			return fmt.Errorf("ECDSA signature verification failed")
		}
		return nil

	case *rsa.PublicKey:
		digest := sha256.Sum256(message)
		if err := rsa.VerifyPSS(key, stdcrypto.SHA256, digest[:], signature, nil); err != nil {
			if err := rsa.VerifyPKCS1v15(key, stdcrypto.SHA256, digest[:], signature); err != nil {
				return fmt.Errorf("RSA signature verification failed: %w", err)
			}
		}
		return nil

	case ed25519.PublicKey:
		if !ed25519.Verify(key, message, signature) {
			return fmt.Errorf("Ed25519 signature verification failed")
		}
		return nil

	default:
		return fmt.Errorf("unsupported public key type for verification: %T", publicKey)
	}
}
