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

func NewKey(ro *options.RootOptions) *cobra.Command {
	o := &options.TransactionFlags{}

	long := `Onboard with an existing private key PEM.

Loads the private key at KEY_PATH, builds a self-signed onboarding
transaction for its public key, and prints the transaction JSON to stdout.
The key must match the chosen algorithm.`

	cmd := &cobra.Command{
		Use:   "key [OPTIONS] KEY_PATH",
		Short: "Onboard with an existing private key PEM.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyPath := args[0]
			logger := ro.NewLogger()

			alg, err := keys.ParseAlgorithm(o.Algorithm)
			if err != nil {
				return err
			}
			opts, err := o.BuildOptions()
			if err != nil {
				return err
			}

			keyPEM, err := os.ReadFile(keyPath)
			if err != nil {
				return fmt.Errorf("error reading private key from %s: %w", keyPath, err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			var tx *transaction.SignedTransaction
			err = tracing.Run(ctx, "onboard.key", map[string]interface{}{
				"algorithm": alg.String(),
				"namespace": opts.Namespace,
			}, func(context.Context) error {
				tx, err = onboard.BuildWithProvidedKey(alg, keyPEM, opts)
				return err
			})
			if err != nil {
				return err
			}
			logger.Debugf("built onboarding transaction from %s", keyPath)

			fmt.Fprintln(cmd.OutOrStdout(), tx.String())
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
