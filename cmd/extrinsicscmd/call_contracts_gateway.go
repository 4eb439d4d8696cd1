// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package extrinsicscmd

import (
	"context"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/extrinsics"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	contractsGatewayExtrinsic ExtrinsicFlags
	contractsGatewayTarget    string
	contractsGatewayRequester string
	contractsGatewayPhase     uint8
	contractsGatewayValue     uint64
	contractsGatewayGasLimit  uint64
	contractsGatewayData      string
)

// contract call-contracts-gateway
func newCallContractsGatewayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call-contracts-gateway [wasm-path]",
		Short: "Call for smart contract execution on Contracts Gateway",
		Long: `Call for smart contract execution on the Contracts Gateway.

--target is the hex-encoded account of the destination contract. When the
bytecode artifact cannot be read the call proceeds with empty code as a
direct call at the target destination.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCallContractsGateway,
	}
	contractsGatewayExtrinsic.AddToCmd(cmd)
	cmd.Flags().StringVar(&contractsGatewayTarget, "target", constants.DefaultCallData, "target chain destination (hex encoded account)")
	cmd.Flags().StringVarP(&contractsGatewayRequester, "requester", "r", "", "requester of the execution order")
	cmd.Flags().Uint8Var(&contractsGatewayPhase, "phase", constants.DefaultPhase, "execution phase")
	cmd.Flags().Uint64Var(&contractsGatewayValue, "value", constants.DefaultValue, "value of balance transfer optionally attached to the execution order")
	cmd.Flags().Uint64Var(&contractsGatewayGasLimit, "gas", constants.DefaultCallGasLimit, "maximum amount of gas to be used for this command")
	cmd.Flags().StringVar(&contractsGatewayData, "data", constants.DefaultCallData, "hex encoded data to call a contract constructor")
	_ = cmd.MarkFlagRequired("requester")
	return cmd
}

func runCallContractsGateway(_ *cobra.Command, args []string) error {
	target, err := extrinsics.ParseHexData(contractsGatewayTarget)
	if err != nil {
		return err
	}
	data, err := extrinsics.ParseHexData(contractsGatewayData)
	if err != nil {
		return err
	}
	wasmPath := optionalWasmPath(args)
	// a project manifest is optional here: without one the operation falls
	// back to a direct call with empty code
	m, err := loadProjectIfNeeded(wasmPath)
	if err != nil {
		m = nil
	}
	res, err := extrinsics.CallContractsGateway(
		context.Background(),
		dial,
		contractsGatewayExtrinsic.Opts(),
		m,
		target,
		contractsGatewayRequester,
		contractsGatewayPhase,
		contractsGatewayValue,
		contractsGatewayGasLimit,
		wasmPath,
		data,
	)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("CallContractsGateway result: %s", res)
	return nil
}
