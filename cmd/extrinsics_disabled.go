// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build noextrinsics

package cmd

import (
	"github.com/gatewaylabs/contract-cli/pkg/application"
	"github.com/spf13/cobra"
)

// Built without the extrinsics capability: only the project lifecycle
// commands are registered.
func extrinsicCommands(*application.App) []*cobra.Command {
	return nil
}
