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
	"os"

	"github.com/activeledger/ledger-tx/cmd/ledger-tx/cli/options"
	"github.com/activeledger/ledger-tx/pkg/keys"
	"github.com/activeledger/ledger-tx/pkg/onboard"
	"github.com/activeledger/ledger-tx/pkg/tracing"
	"github.com/activeledger/ledger-tx/pkg/transaction"
	"github.com/spf13/cobra"
)

func NewGenerate(ro *options.RootOptions) *cobra.Command {
	o := &options.GenerateOptions{}

	long := `Onboard with a freshly generated key pair (DEFAULT key source).

Generates a new key pair for the chosen algorithm, builds a self-signed
onboarding transaction for its public key, and writes the private key PEM
to the path given via --key-out. The transaction JSON is printed to stdout.`

	cmd := &cobra.Command{
		Use:   "generate [OPTIONS]",
		Short: "Onboard with a freshly generated key pair (DEFAULT key source).",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := ro.NewLogger()

			alg, err := keys.ParseAlgorithm(o.Algorithm)
			if err != nil {
				return err
			}
			opts, err := o.BuildOptions()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			var tx *transaction.SignedTransaction
			var kp *keys.KeyPair
			err = tracing.Run(ctx, "onboard.generate", map[string]interface{}{
				"algorithm": alg.String(),
				"namespace": opts.Namespace,
			}, func(context.Context) error {
				tx, kp, err = onboard.BuildWithGeneratedKey(alg, opts)
				return err
			})
			if err != nil {
				return err
			}

			keyPEM, err := kp.PrivateKeyPEM()
			if err != nil {
				return err
			}
			if err := os.WriteFile(o.KeyOut, keyPEM, 0o600); err != nil {
				return fmt.Errorf("error writing private key to %s: %w", o.KeyOut, err)
			}
			logger.Infof("wrote %s private key to %s", alg, o.KeyOut)

			fmt.Fprintln(cmd.OutOrStdout(), tx.String())
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
