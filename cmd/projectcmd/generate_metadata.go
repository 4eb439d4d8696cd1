// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package projectcmd

import (
	"github.com/gatewaylabs/contract-cli/pkg/builder"
	"github.com/gatewaylabs/contract-cli/pkg/flags"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	metadataVerbosity flags.VerbosityFlags
	metadataUnstable  flags.UnstableOptions
)

// contract generate-metadata
func newGenerateMetadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-metadata",
		Short: "Generate contract metadata artifacts",
		Args:  cobra.ExactArgs(0),
		RunE:  runGenerateMetadata,
	}
	metadataVerbosity.AddToCmd(cmd)
	metadataUnstable.AddToCmd(cmd)
	return cmd
}

func runGenerateMetadata(_ *cobra.Command, _ []string) error {
	opts, err := builderOptions(metadataVerbosity, metadataUnstable)
	if err != nil {
		return err
	}
	m, err := loadProject()
	if err != nil {
		return err
	}
	metadataFile, err := builder.GenerateMetadata(m, opts)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("Your metadata file is ready.\nYou can find it here:\n%s", metadataFile)
	return nil
}
