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

package options

import (
	"fmt"
	"strings"

	"github.com/activeledger/ledger-tx/pkg/onboard"
	"github.com/spf13/cobra"
)

// FlagAdder is implemented by any flag group that can register itself to a cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// TransactionFlags contains flags shared by all onboarding commands. They
// shape the transaction itself rather than the key used to sign it.
type TransactionFlags struct {
	// Namespace is the ledger namespace the transaction targets.
	Namespace string
	// Alias is the stream alias the new identity registers under.
	Alias string
	// Algorithm is the key algorithm tag (secp256r1, rsa, ed25519).
	Algorithm string
	// Outputs lists output stream aliases to include in the transaction.
	Outputs []string
	// Metadata lists transaction metadata entries as key=value pairs.
	Metadata []string
}

// AddFlags adds transaction shaping flags to the cobra command.
func (o *TransactionFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Namespace, "namespace", onboard.DefaultNamespace,
		"Ledger namespace for the transaction.")
	cmd.Flags().StringVar(&o.Alias, "alias", onboard.DefaultAlias,
		"Stream alias for the onboarded identity.")
	cmd.Flags().StringVar(&o.Algorithm, "algorithm", "",
		"Key algorithm tag (secp256r1, rsa, ed25519). Defaults to secp256r1.")
	cmd.Flags().StringSliceVar(&o.Outputs, "output", nil,
		"Output stream alias to include. May be repeated.")
	cmd.Flags().StringSliceVar(&o.Metadata, "meta", nil,
		"Transaction metadata entry as key=value. May be repeated.")
}

// BuildOptions converts the flags into onboarding build options.
func (o *TransactionFlags) BuildOptions() (onboard.Options, error) {
	opts := onboard.Options{
		Namespace: o.Namespace,
		Alias:     o.Alias,
	}
	for _, alias := range o.Outputs {
		if alias == "" {
			return onboard.Options{}, fmt.Errorf("output stream alias must not be empty")
		}
		opts.Outputs = append(opts.Outputs, onboard.Output{Alias: alias})
	}
	if len(o.Metadata) > 0 {
		opts.Metadata = make(map[string]string, len(o.Metadata))
		for _, entry := range o.Metadata {
			key, value, ok := strings.Cut(entry, "=")
			if !ok || key == "" {
				return onboard.Options{}, fmt.Errorf("invalid metadata entry %q, expected key=value", entry)
			}
			opts.Metadata[key] = value
		}
	}
	return opts, nil
}

// AddAllFlags is a helper function to register multiple flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...FlagAdder) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}
