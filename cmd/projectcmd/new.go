// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package projectcmd

import (
	"github.com/gatewaylabs/contract-cli/pkg/scaffold"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var newTargetDir string

// contract new
func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Setup and create a new smart contract project",
		Args:  cobra.ExactArgs(1),
		RunE:  runNew,
	}
	cmd.Flags().StringVarP(&newTargetDir, "target-dir", "t", "", "the optional target directory for the contract project")
	return cmd
}

func runNew(_ *cobra.Command, args []string) error {
	dest, err := scaffold.Create(args[0], newTargetDir, app.Conf.TemplateRepo())
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("Created contract %s", dest)
	return nil
}
