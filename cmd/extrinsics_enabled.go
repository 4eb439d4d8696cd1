// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !noextrinsics

package cmd

import (
	"github.com/gatewaylabs/contract-cli/cmd/extrinsicscmd"
	"github.com/gatewaylabs/contract-cli/pkg/application"
	"github.com/spf13/cobra"
)

func extrinsicCommands(app *application.App) []*cobra.Command {
	return extrinsicscmd.NewCommands(app)
}
