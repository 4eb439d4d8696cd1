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
	callContractExtrinsic ExtrinsicFlags
	callContractTarget    string
	callContractValue     uint64
	callContractGasLimit  uint64
	callContractData      string
)

// contract call-contract
func newCallContractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call-contract",
		Short: "Call a regular smart contract execution via Contracts Pallet Call",
		Args:  cobra.ExactArgs(0),
		RunE:  runCallContract,
	}
	callContractExtrinsic.AddToCmd(cmd)
	cmd.Flags().StringVar(&callContractTarget, "target", constants.DefaultCallData, "target chain destination (hex encoded account)")
	cmd.Flags().Uint64Var(&callContractValue, "value", constants.DefaultValue, "value of balance transfer optionally attached to the execution order")
	cmd.Flags().Uint64Var(&callContractGasLimit, "gas", constants.DefaultCallGasLimit, "maximum amount of gas to be used for this command")
	cmd.Flags().StringVar(&callContractData, "data", constants.DefaultCallData, "hex encoded data to call a contract method")
	return cmd
}

func runCallContract(_ *cobra.Command, _ []string) error {
	target, err := extrinsics.ParseHexData(callContractTarget)
	if err != nil {
		return err
	}
	data, err := extrinsics.ParseHexData(callContractData)
	if err != nil {
		return err
	}
	res, err := extrinsics.CallContract(
		context.Background(),
		dial,
		callContractExtrinsic.Opts(),
		target,
		callContractValue,
		callContractGasLimit,
		data,
	)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("Call regular contract result: %s", res)
	return nil
}
