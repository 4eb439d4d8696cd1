// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package extrinsicscmd

import (
	"context"
	"encoding/hex"

	"github.com/gatewaylabs/contract-cli/pkg/extrinsics"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var deployExtrinsic ExtrinsicFlags

// contract deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [wasm-path]",
		Short: "Upload the smart contract code to the chain",
		Long: `Upload the smart contract code to the chain.

The bytecode artifact defaults to ./target/<name>-pruned.wasm, derived from
the project manifest; pass an explicit path to override it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDeploy,
	}
	deployExtrinsic.AddToCmd(cmd)
	return cmd
}

func runDeploy(_ *cobra.Command, args []string) error {
	wasmPath := optionalWasmPath(args)
	m, err := loadProjectIfNeeded(wasmPath)
	if err != nil {
		return err
	}
	codeHash, err := extrinsics.Deploy(context.Background(), dial, deployExtrinsic.Opts(), m, wasmPath)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("Code hash: 0x%s", hex.EncodeToString(codeHash[:]))
	return nil
}
