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
	buildVerbosity flags.VerbosityFlags
	buildUnstable  flags.UnstableOptions
)

// contract build
func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compiles the smart contract",
		Args:  cobra.ExactArgs(0),
		RunE:  runBuild,
	}
	buildVerbosity.AddToCmd(cmd)
	buildUnstable.AddToCmd(cmd)
	return cmd
}

func runBuild(_ *cobra.Command, _ []string) error {
	opts, err := builderOptions(buildVerbosity, buildUnstable)
	if err != nil {
		return err
	}
	m, err := loadProject()
	if err != nil {
		return err
	}
	destWasm, err := builder.Build(m, opts)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("Your contract is ready. You can find it here:\n%s", luxlog.Bold.Wrap(destWasm))
	return nil
}
