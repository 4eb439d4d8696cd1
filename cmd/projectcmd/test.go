// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package projectcmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// contract test
func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test the smart contract off-chain",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return errors.New("command unimplemented")
		},
	}
}
