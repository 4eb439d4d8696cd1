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
	instantiateExtrinsic ExtrinsicFlags
	instantiateEndowment uint64
	instantiateGasLimit  uint64
	instantiateCodeHash  string
	instantiateData      string
)

// contract instantiate
func newInstantiateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instantiate",
		Short: "Instantiate a deployed smart contract",
		Args:  cobra.ExactArgs(0),
		RunE:  runInstantiate,
	}
	instantiateExtrinsic.AddToCmd(cmd)
	cmd.Flags().Uint64Var(&instantiateEndowment, "endowment", constants.DefaultEndowment, "transfers an initial balance to the instantiated contract")
	cmd.Flags().Uint64Var(&instantiateGasLimit, "gas", constants.DefaultDeployGasLimit, "maximum amount of gas to be used for this command")
	cmd.Flags().StringVar(&instantiateCodeHash, "code-hash", "", "the hash of the smart contract code already uploaded to the chain")
	cmd.Flags().StringVar(&instantiateData, "data", "", "hex encoded data to call a contract constructor")
	_ = cmd.MarkFlagRequired("code-hash")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func runInstantiate(_ *cobra.Command, _ []string) error {
	codeHash, err := extrinsics.ParseCodeHash(instantiateCodeHash)
	if err != nil {
		return err
	}
	data, err := extrinsics.ParseHexData(instantiateData)
	if err != nil {
		return err
	}
	ux.Logger.Info("instantiating with endowment %s and gas limit %s",
		ux.ConvertToStringWithThousandSeparator(instantiateEndowment),
		ux.ConvertToStringWithThousandSeparator(instantiateGasLimit),
	)
	contractAccount, err := extrinsics.Instantiate(
		context.Background(),
		dial,
		instantiateExtrinsic.Opts(),
		instantiateEndowment,
		instantiateGasLimit,
		codeHash,
		data,
	)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("Contract account: %s", contractAccount)
	return nil
}
