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

package pkcs11

import (
	"fmt"

	"github.com/ThalesGroup/crypto11"
	"github.com/activeledger/ledger-tx/pkg/keys"
)

// DefaultModuleDirs are searched for a PKCS#11 module library when the URI
// does not pin one with module-path.
var DefaultModuleDirs = []string{
	"/usr/lib/pkcs11",
	"/usr/lib/softhsm",
	"/usr/local/lib/softhsm",
	"/opt/homebrew/lib/softhsm",
}

// NewKeyPair opens the PKCS#11 token addressed by the URI, finds the key
// pair, and wraps it as a keys.KeyPair so it can be fed straight to
// onboard.BuildWithKeyPair. The public key on the token must match the
// algorithm tag.
//
// The PKCS#11 session stays open for the lifetime of the key pair; the
// returned close function releases it and must be called when done.
func NewKeyPair(alg keys.Algorithm, uri string, moduleDirs []string) (*keys.KeyPair, func() error, error) {
	parsed, err := ParseURI(uri)
	if err != nil {
		return nil, nil, err
	}

	tokenLabel := parsed.TokenLabel()
	if tokenLabel == "" {
		return nil, nil, fmt.Errorf("pkcs11 URI selects no token: need a 'token' attribute")
	}

	if len(moduleDirs) == 0 {
		moduleDirs = DefaultModuleDirs
	}
	modulePath, err := parsed.ModulePath(moduleDirs)
	if err != nil {
		return nil, nil, err
	}

	ctx, err := crypto11.Configure(&crypto11.Config{
		Path:       modulePath,
		TokenLabel: tokenLabel,
		Pin:        parsed.PIN(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open pkcs11 token %q: %w", tokenLabel, err)
	}

	signer, err := findSigner(ctx, parsed)
	if err != nil {
		_ = ctx.Close()
		return nil, nil, err
	}

	kp, err := keys.FromSigner(alg, signer)
	if err != nil {
		_ = ctx.Close()
		return nil, nil, err
	}

	return kp, ctx.Close, nil
}

// findSigner locates the key pair in the token by id first, then by label.
func findSigner(ctx *crypto11.Context, uri *URI) (crypto11.Signer, error) {
	id, label, err := uri.KeySelector()
	if err != nil {
		return nil, err
	}

	if len(id) > 0 {
		signer, err := ctx.FindKeyPair(id, nil)
		if err == nil && signer != nil {
			return signer, nil
		}
	}
	if label != "" {
		signer, err := ctx.FindKeyPair(nil, []byte(label))
		if err == nil && signer != nil {
			return signer, nil
		}
	}
	return nil, fmt.Errorf("no key pair found for id=%q label=%q", id, label)
}
