// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package projectcmd

import (
	"github.com/gatewaylabs/contract-cli/pkg/builder"
	"github.com/gatewaylabs/contract-cli/pkg/flags"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
)

var (
	composableBuildVerbosity flags.VerbosityFlags
	composableBuildUnstable  flags.UnstableOptions
)

// contract composable-build
func newComposableBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "composable-build",
		Short: "Compiles all of the composable smart contracts described in the schedule",
		Args:  cobra.ExactArgs(0),
		RunE:  runComposableBuild,
	}
	composableBuildVerbosity.AddToCmd(cmd)
	composableBuildUnstable.AddToCmd(cmd)
	return cmd
}

func runComposableBuild(_ *cobra.Command, _ []string) error {
	opts, err := builderOptions(composableBuildVerbosity, composableBuildUnstable)
	if err != nil {
		return err
	}
	m, err := loadProject()
	if err != nil {
		return err
	}
	targetDir, err := builder.ComposableBuild(m, opts)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("Your composable contract(s) is/are ready. You can find it the following directory:\n%s", luxlog.Bold.Wrap(targetDir))
	return nil
}
