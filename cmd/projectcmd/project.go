// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package projectcmd implements the project lifecycle commands: new, build,
// composable-build, generate-metadata and test.
package projectcmd

import (
	"github.com/gatewaylabs/contract-cli/pkg/application"
	"github.com/gatewaylabs/contract-cli/pkg/builder"
	"github.com/gatewaylabs/contract-cli/pkg/flags"
	"github.com/gatewaylabs/contract-cli/pkg/project"
	"github.com/spf13/cobra"
)

var app *application.App

// NewCommands returns the project lifecycle commands for registration on the
// root command.
func NewCommands(injectedApp *application.App) []*cobra.Command {
	app = injectedApp
	return []*cobra.Command{
		newNewCmd(),
		newBuildCmd(),
		newComposableBuildCmd(),
		newGenerateMetadataCmd(),
		newTestCmd(),
	}
}

// builderOptions validates the shared build flag surface and resolves the
// toolchain binary.
func builderOptions(verbosity flags.VerbosityFlags, unstable flags.UnstableOptions) (builder.Options, error) {
	v, err := verbosity.Validate()
	if err != nil {
		return builder.Options{}, err
	}
	u, err := unstable.Validate()
	if err != nil {
		return builder.Options{}, err
	}
	return builder.Options{
		Toolchain: app.Conf.ToolchainPath(),
		Verbosity: v,
		Unstable:  u,
	}, nil
}

func loadProject() (*project.Manifest, error) {
	return project.Load(app.ProjectDir)
}
