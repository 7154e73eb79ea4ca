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

package cli

import (
	"github.com/activeledger/ledger-tx/cmd/ledger-tx/cli/onboard"
	"github.com/spf13/cobra"
)

func Onboard() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboard [OPTIONS] KEY_SOURCE",
		Short: "Build signed identity onboarding transactions.",
		Long: `Build signed identity onboarding transactions.

    An onboarding transaction registers a new identity with the ledger. It
    carries the identity's public key and algorithm in its input stream,
    is self-signed with the matching private key, and is ready to submit
    to a ledger node as-is.

    The key source decides where the signing key comes from: 'generate'
    creates a fresh key pair, 'key' loads an existing private key PEM from
    disk, and 'pkcs11' signs with a hardware-held key addressed by a
    PKCS#11 URI.`,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(parent *cobra.Command, args []string) error {
			genCmd := onboard.NewGenerate(ro)
			genCmd.SilenceUsage = parent.SilenceUsage
			genCmd.SilenceErrors = parent.SilenceErrors

			genCmd.SetArgs(args)
			return genCmd.ExecuteContext(parent.Context())
		},
	}

	// Add key source subcommands. Each owns its own flags.
	cmd.AddCommand(onboard.NewGenerate(ro))
	cmd.AddCommand(onboard.NewKey(ro))
	cmd.AddCommand(onboard.NewPKCS11(ro))

	return cmd
}
