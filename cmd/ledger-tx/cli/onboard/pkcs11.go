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

package onboard

import (
	"context"
	"fmt"

	"github.com/activeledger/ledger-tx/cmd/ledger-tx/cli/options"
	"github.com/activeledger/ledger-tx/pkg/keys"
	"github.com/activeledger/ledger-tx/pkg/keys/pkcs11"
	"github.com/activeledger/ledger-tx/pkg/onboard"
	"github.com/activeledger/ledger-tx/pkg/tracing"
	"github.com/activeledger/ledger-tx/pkg/transaction"
	"github.com/spf13/cobra"
)

func NewPKCS11(ro *options.RootOptions) *cobra.Command {
	o := &options.PKCS11Options{}

	long := `Onboard with a hardware-held key addressed by a PKCS#11 URI.

Opens the PKCS#11 module named by PKCS11_URI, locates the key pair by its
id or object attribute, and builds a self-signed onboarding transaction
for its public key. The private key never leaves the token. The PIN is
taken from the URI's pin-value attribute or the PKCS11_PIN environment
variable.

Example URI:

    pkcs11:token=ledger;object=onboard-key?module-path=/usr/lib/softhsm/libsofthsm2.so&pin-value=1234`

	cmd := &cobra.Command{
		Use:   "pkcs11 [OPTIONS] PKCS11_URI",
		Short: "Onboard with a hardware-held key addressed by a PKCS#11 URI.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := args[0]
			logger := ro.NewLogger()

			alg, err := keys.ParseAlgorithm(o.Algorithm)
			if err != nil {
				return err
			}
			opts, err := o.BuildOptions()
			if err != nil {
				return err
			}

			moduleDirs := append(o.ModuleDirs, pkcs11.DefaultModuleDirs...)
			kp, closeToken, err := pkcs11.NewKeyPair(alg, uri, moduleDirs)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeToken(); err != nil {
					logger.Warnf("error closing PKCS#11 token: %v", err)
				}
			}()

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			var tx *transaction.SignedTransaction
			err = tracing.Run(ctx, "onboard.pkcs11", map[string]interface{}{
				"algorithm": alg.String(),
				"namespace": opts.Namespace,
			}, func(context.Context) error {
				tx, err = onboard.BuildWithKeyPair(kp, opts)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tx.String())
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
