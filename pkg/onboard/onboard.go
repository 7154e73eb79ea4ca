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

// Package onboard builds complete onboarding transactions: the flow that
// registers a new identity and its public key on the ledger.
//
// The pipeline is key material, then document assembly, then canonical
// payload, then signature, then the finalized transaction. Any failing
// step aborts the build and returns that step's error; a partial
// transaction is never returned, and a successful signature is the only
// path to a SignedTransaction.
package onboard

import (
	"github.com/activeledger/ledger-tx/pkg/keys"
	"github.com/activeledger/ledger-tx/pkg/signing"
	"github.com/activeledger/ledger-tx/pkg/transaction"
)

// Defaults applied by the builder when the corresponding option is empty.
const (
	// DefaultNamespace is the ledger namespace used when none is given.
	DefaultNamespace = "default"

	// DefaultAlias keys the identity stream when the caller does not name
	// it. The identity does not exist on the ledger yet, so the alias is a
	// placeholder the network resolves on commit.
	DefaultAlias = "identity"
)

// Output describes one output stream of the transaction.
type Output struct {
	// Alias keys the stream in the $o section. Aliases must be unique.
	Alias string

	// Metadata is the stream's data payload.
	Metadata map[string]string
}

// Options configures an onboarding build. Every choice is explicit; the
// only implicit values are DefaultNamespace and DefaultAlias for empty
// fields.
type Options struct {
	// Namespace is the contract namespace the transaction targets.
	Namespace string

	// Alias keys the identity stream being onboarded.
	Alias string

	// Outputs are appended to the document in order.
	Outputs []Output

	// Metadata is the transaction's top-level metadata.
	Metadata map[string]string
}

func (o Options) namespace() string {
	if o.Namespace == "" {
		return DefaultNamespace
	}
	return o.Namespace
}

func (o Options) alias() string {
	if o.Alias == "" {
		return DefaultAlias
	}
	return o.Alias
}

// BuildWithGeneratedKey generates a fresh key pair for the algorithm (the
// network default when alg is empty) and builds the onboarding transaction
// for it. The generated key pair is returned alongside the transaction:
// this is the only way the new private key leaves the library, and
// persisting it is entirely the caller's responsibility.
func BuildWithGeneratedKey(alg keys.Algorithm, opts Options) (*transaction.SignedTransaction, *keys.KeyPair, error) {
	kp, err := keys.Generate(alg)
	if err != nil {
		return nil, nil, err
	}

	tx, err := BuildWithKeyPair(kp, opts)
	if err != nil {
		return nil, nil, err
	}
	return tx, kp, nil
}

// BuildWithProvidedKey builds the onboarding transaction for a private key
// the caller already holds, supplied as PEM. The key pair is not returned;
// the caller has the key.
func BuildWithProvidedKey(alg keys.Algorithm, privateKeyPEM []byte, opts Options) (*transaction.SignedTransaction, error) {
	kp, err := keys.FromPrivateKeyPEM(alg, privateKeyPEM)
	if err != nil {
		return nil, err
	}
	return BuildWithKeyPair(kp, opts)
}

// BuildWithKeyPair runs the shared pipeline for an already-validated key
// pair. This is also the entry point for externally held keys such as
// PKCS#11 key pairs from pkg/keys/pkcs11.
func BuildWithKeyPair(kp *keys.KeyPair, opts Options) (*transaction.SignedTransaction, error) {
	pubPEM, err := kp.PublicKeyPEM()
	if err != nil {
		return nil, err
	}

	doc := transaction.NewOnboarding(opts.namespace())
	alias := opts.alias()
	if err := doc.SetSelfStream(alias, pubPEM, kp.Algorithm().String()); err != nil {
		return nil, err
	}
	for _, out := range opts.Outputs {
		if err := doc.AddOutputStream(out.Alias, out.Metadata); err != nil {
			return nil, err
		}
	}
	for k, v := range opts.Metadata {
		doc.SetMetadata(k, v)
	}

	payload, err := doc.Canonicalize()
	if err != nil {
		return nil, err
	}

	sig, err := signing.Sign(payload, kp)
	if err != nil {
		return nil, err
	}

	return doc.Finalize(transaction.Signature{
		Identity:  alias,
		Algorithm: kp.Algorithm().String(),
		Signature: signing.EncodeSignature(sig),
	})
}
