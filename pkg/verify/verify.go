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

// Package verify checks transaction signatures the way a receiving ledger
// node does: take the canonical signing payload, then verify the signature
// against the public key named by the transaction itself.
package verify

import (
	"crypto"
	"encoding/json"
	"fmt"

	internalcrypto "github.com/activeledger/ledger-tx/internal/crypto"
	"github.com/activeledger/ledger-tx/pkg/signing"
	"github.com/activeledger/ledger-tx/pkg/transaction"
	"github.com/sigstore/sigstore/pkg/cryptoutils"
)

// Payload verifies raw signature bytes over a signing payload.
func Payload(payload, sig []byte, pub crypto.PublicKey) error {
	return internalcrypto.VerifySignature(pub, payload, sig)
}

// EncodedPayload verifies a base64-encoded signature over a signing payload.
func EncodedPayload(payload []byte, encodedSig string, pub crypto.PublicKey) error {
	sig, err := signing.DecodeSignature(encodedSig)
	if err != nil {
		return err
	}
	return Payload(payload, sig, pub)
}

// Signed verifies a finalized transaction against the given public key.
func Signed(t *transaction.SignedTransaction, pub crypto.PublicKey) error {
	return EncodedPayload(t.StripSignature(), t.Signature().Signature, pub)
}

// SelfSigned verifies an onboarding transaction against the public key it
// carries: the signature's identity stream must hold a publicKey metadata
// entry in $i, and the signature must verify against that key. Everything
// needed comes from the transaction itself, which is the same check a
// ledger node runs before committing an onboarding.
func SelfSigned(t *transaction.SignedTransaction) error {
	sig := t.Signature()

	pemStr, err := embeddedPublicKey(t.StripSignature(), sig.Identity)
	if err != nil {
		return err
	}

	pub, err := cryptoutils.UnmarshalPEMToPublicKey([]byte(pemStr))
	if err != nil {
		return fmt.Errorf("failed to parse embedded public key: %w", err)
	}

	return Signed(t, pub)
}

// embeddedPublicKey extracts the publicKey metadata of the named input
// stream from canonical payload bytes. Parsing here does not depend on key
// order; only the signing bytes do.
func embeddedPublicKey(payload []byte, identity string) (string, error) {
	var doc struct {
		Inputs map[string]map[string]string `json:"$i"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return "", fmt.Errorf("failed to parse transaction payload: %w", err)
	}

	streamMeta, ok := doc.Inputs[identity]
	if !ok {
		return "", fmt.Errorf("transaction has no input stream %q", identity)
	}

	pemStr := streamMeta[transaction.MetaKeyPublicKey]
	if pemStr == "" {
		return "", fmt.Errorf("identity stream %q carries no public key", identity)
	}
	return pemStr, nil
}
