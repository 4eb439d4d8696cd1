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
	runtimeGatewayExtrinsic ExtrinsicFlags
	runtimeGatewayTarget    string
	runtimeGatewayRequester string
	runtimeGatewayPhase     uint8
	runtimeGatewayValue     uint64
	runtimeGatewayGasLimit  uint64
	runtimeGatewayData      string
)

// contract call-runtime-gateway
func newCallRuntimeGatewayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call-runtime-gateway [wasm-path]",
		Short: "Call for smart contract execution on Runtime Gateway",
		Long: `Call for smart contract execution on the Runtime Gateway.

Both --target and --requester are secret URIs; only their derived account
identities travel with the execution order. A missing bytecode artifact is
fatal for this command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCallRuntimeGateway,
	}
	runtimeGatewayExtrinsic.AddToCmd(cmd)
	cmd.Flags().StringVarP(&runtimeGatewayTarget, "target", "t", "", "target chain destination")
	cmd.Flags().StringVarP(&runtimeGatewayRequester, "requester", "r", "", "requester of the execution order")
	cmd.Flags().Uint8Var(&runtimeGatewayPhase, "phase", constants.DefaultPhase, "execution phase")
	cmd.Flags().Uint64Var(&runtimeGatewayValue, "value", constants.DefaultValue, "value of balance transfer optionally attached to the execution order")
	cmd.Flags().Uint64Var(&runtimeGatewayGasLimit, "gas", constants.DefaultDeployGasLimit, "maximum amount of gas to be used for this command")
	cmd.Flags().StringVar(&runtimeGatewayData, "data", constants.DefaultCallData, "hex encoded data to call a contract constructor")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("requester")
	return cmd
}

func runCallRuntimeGateway(_ *cobra.Command, args []string) error {
	data, err := extrinsics.ParseHexData(runtimeGatewayData)
	if err != nil {
		return err
	}
	wasmPath := optionalWasmPath(args)
	m, err := loadProjectIfNeeded(wasmPath)
	if err != nil {
		return err
	}
	res, err := extrinsics.CallRuntimeGateway(
		context.Background(),
		dial,
		runtimeGatewayExtrinsic.Opts(),
		m,
		runtimeGatewayTarget,
		runtimeGatewayRequester,
		runtimeGatewayPhase,
		runtimeGatewayValue,
		runtimeGatewayGasLimit,
		wasmPath,
		data,
	)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("CallRuntimeGateway result: %s", res)
	return nil
}
