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

// Package keys provides the key material used to sign ledger transactions:
// algorithm tags, key pair generation, parsing of existing private keys,
// and the canonical PEM encoding of public keys embedded in onboarding
// transactions.
package keys

import (
	"crypto"
	"strings"
)

// Algorithm identifies a signing scheme supported by the ledger network.
//
// The set of tags is a fixed enumeration shared with the wider protocol.
// Each tag pins the full scheme (curve/key size, digest, signature format);
// nodes verifying a transaction re-derive everything from the tag embedded
// in the transaction's identity stream.
type Algorithm string

const (
	// AlgorithmEC is ECDSA over NIST P-256 with SHA-256 and ASN.1
	// signatures. This is the network's standard algorithm.
	AlgorithmEC Algorithm = "secp256r1"

	// AlgorithmRSA is RSA-2048 with RSA-PSS and SHA-256.
	AlgorithmRSA Algorithm = "rsa"

	// AlgorithmEd25519 is pure Ed25519 (no pre-hashing).
	AlgorithmEd25519 Algorithm = "ed25519"
)

// DefaultAlgorithm is used when the caller does not select an algorithm.
const DefaultAlgorithm = AlgorithmEC

// SupportedAlgorithms lists every algorithm tag the library accepts.
var SupportedAlgorithms = []Algorithm{AlgorithmEC, AlgorithmRSA, AlgorithmEd25519}

// rsaKeyBits is the modulus size used for generated RSA keys.
const rsaKeyBits = 2048

// String returns the wire tag of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// HashFunc returns the digest computed over the signing payload before the
// private key operation. Ed25519 signs the payload directly, reported here
// as crypto.Hash(0) following the crypto.Signer convention.
func (a Algorithm) HashFunc() crypto.Hash {
	switch a {
	case AlgorithmEd25519:
		return crypto.Hash(0)
	default:
		return crypto.SHA256
	}
}

// ParseAlgorithm maps a tag string to an Algorithm. An empty string selects
// DefaultAlgorithm. Unknown tags fail with an UnsupportedAlgorithm error;
// tags are never invented here, the enumeration is closed.
func ParseAlgorithm(tag string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(tag))) {
	case "":
		return DefaultAlgorithm, nil
	case AlgorithmEC:
		return AlgorithmEC, nil
	case AlgorithmRSA:
		return AlgorithmRSA, nil
	case AlgorithmEd25519:
		return AlgorithmEd25519, nil
	default:
		return "", unsupportedAlgorithm(tag)
	}
}
