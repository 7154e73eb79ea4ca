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
	"github.com/spf13/cobra"
)

// GenerateOptions defines flags for the onboard generate command.
type GenerateOptions struct {
	TransactionFlags

	// KeyOut is the file path the generated private key PEM is written to.
	KeyOut string
}

// AddFlags adds generate command flags to the cobra command.
func (o *GenerateOptions) AddFlags(cmd *cobra.Command) {
	o.TransactionFlags.AddFlags(cmd)

	cmd.Flags().StringVar(&o.KeyOut, "key-out", "",
		"File the generated private key PEM is written to. [required]")
	_ = cmd.MarkFlagFilename("key-out", "pem")
	_ = cmd.MarkFlagRequired("key-out")
}

// PKCS11Options defines flags for the onboard pkcs11 command.
type PKCS11Options struct {
	TransactionFlags

	// ModuleDirs lists extra directories to search for the PKCS#11 module.
	ModuleDirs []string
}

// AddFlags adds pkcs11 command flags to the cobra command.
func (o *PKCS11Options) AddFlags(cmd *cobra.Command) {
	o.TransactionFlags.AddFlags(cmd)

	cmd.Flags().StringSliceVar(&o.ModuleDirs, "module-dir", nil,
		"Extra directory to search for the PKCS#11 module. May be repeated.")
}
