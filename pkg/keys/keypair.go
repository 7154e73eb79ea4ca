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

package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sigstore/sigstore/pkg/cryptoutils"
)

// KeyPair holds the signing key for one ledger identity together with its
// algorithm tag. Instances are created per onboarding call and never
// persisted by this package; the caller owns the key material once a
// KeyPair is handed back.
type KeyPair struct {
	algorithm Algorithm
	signer    crypto.Signer
	public    crypto.PublicKey
}

// Generate produces a fresh key pair for the given algorithm using the
// platform's cryptographic random source. An empty algorithm selects the
// network default.
func Generate(alg Algorithm) (*KeyPair, error) {
	alg, err := ParseAlgorithm(alg.String())
	if err != nil {
		return nil, err
	}

	var signer crypto.Signer
	switch alg {
	case AlgorithmEC:
		signer, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	case AlgorithmRSA:
		signer, err = rsa.GenerateKey(rand.Reader, rsaKeyBits)
	case AlgorithmEd25519:
		_, signer, err = ed25519.GenerateKey(rand.Reader)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s key: %w", alg, err)
	}

	return &KeyPair{algorithm: alg, signer: signer, public: signer.Public()}, nil
}

// FromPrivateKeyPEM validates that pemBytes parse as a private key for the
// given algorithm and derives the matching public key. PKCS#8, SEC1 and
// PKCS#1 encodings are accepted. Material that parses but does not match
// the algorithm tag is rejected the same way as unparseable material.
func FromPrivateKeyPEM(alg Algorithm, pemBytes []byte) (*KeyPair, error) {
	alg, err := ParseAlgorithm(alg.String())
	if err != nil {
		return nil, err
	}

	priv, err := cryptoutils.UnmarshalPEMToPrivateKey(pemBytes, nil)
	if err != nil {
		return nil, invalidKeyMaterial(alg, "failed to parse private key PEM", err)
	}

	signer, ok := priv.(crypto.Signer)
	if !ok {
		return nil, invalidKeyMaterial(alg, fmt.Sprintf("private key type %T cannot sign", priv), nil)
	}

	return FromSigner(alg, signer)
}

// FromSigner wraps an externally held private key, for example a PKCS#11
// key living in an HSM. The signer's public key must match the algorithm
// tag or the key is rejected as InvalidKeyMaterial.
func FromSigner(alg Algorithm, signer crypto.Signer) (*KeyPair, error) {
	alg, err := ParseAlgorithm(alg.String())
	if err != nil {
		return nil, err
	}

	pub := signer.Public()
	if err := matchAlgorithm(alg, pub); err != nil {
		return nil, err
	}

	return &KeyPair{algorithm: alg, signer: signer, public: pub}, nil
}

// matchAlgorithm checks that a public key belongs to the scheme named by
// the algorithm tag.
func matchAlgorithm(alg Algorithm, pub crypto.PublicKey) error {
	switch alg {
	case AlgorithmEC:
		key, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return invalidKeyMaterial(alg, fmt.Sprintf("expected ECDSA key, got %T", pub), nil)
		}
		if key.Curve != elliptic.P256() {
			return invalidKeyMaterial(alg, fmt.Sprintf("expected curve P-256, got %s", key.Curve.Params().Name), nil)
		}
	case AlgorithmRSA:
		if _, ok := pub.(*rsa.PublicKey); !ok {
			return invalidKeyMaterial(alg, fmt.Sprintf("expected RSA key, got %T", pub), nil)
		}
	case AlgorithmEd25519:
		if _, ok := pub.(ed25519.PublicKey); !ok {
			return invalidKeyMaterial(alg, fmt.Sprintf("expected Ed25519 key, got %T", pub), nil)
		}
	}
	return nil
}

// Algorithm returns the key pair's algorithm tag.
func (kp *KeyPair) Algorithm() Algorithm {
	return kp.algorithm
}

// Public returns the public key.
func (kp *KeyPair) Public() crypto.PublicKey {
	return kp.public
}

// Signer returns the private key as a crypto.Signer.
func (kp *KeyPair) Signer() crypto.Signer {
	return kp.signer
}

// PublicKeyPEM returns the ledger-canonical encoding of the public key: a
// PKIX PEM block. The encoding is deterministic; the same key always
// produces the same string, which is what lets the receiving network verify
// the onboarding signature against the key embedded in the transaction.
func (kp *KeyPair) PublicKeyPEM() (string, error) {
	pemBytes, err := cryptoutils.MarshalPublicKeyToPEM(kp.public)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key to PEM: %w", err)
	}
	return string(pemBytes), nil
}

// PrivateKeyPEM returns the private key as a PKCS#8 PEM block so the caller
// can persist it. This package never writes it anywhere itself.
func (kp *KeyPair) PrivateKeyPEM() ([]byte, error) {
	pemBytes, err := cryptoutils.MarshalPrivateKeyToPEM(kp.signer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key to PEM: %w", err)
	}
	return pemBytes, nil
}

// Fingerprint returns the hex SHA-256 of the public key PEM. Useful for
// logging which key a transaction onboards without printing the key itself;
// the fingerprint never appears in the transaction document.
func (kp *KeyPair) Fingerprint() (string, error) {
	pemStr, err := kp.PublicKeyPEM()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(pemStr))
	return hex.EncodeToString(sum[:]), nil
}
