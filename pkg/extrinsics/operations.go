// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package extrinsics

import (
	"context"
	"fmt"

	"github.com/gatewaylabs/contract-cli/pkg/gateway"
	"github.com/gatewaylabs/contract-cli/pkg/project"
	"github.com/gatewaylabs/contract-cli/pkg/signer"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	"github.com/gatewaylabs/contract-cli/pkg/wasm"
	"github.com/luxfi/ids"
)

// Deploy uploads the contract bytecode and returns the resulting code hash.
func Deploy(ctx context.Context, dial gateway.Dialer, opts Opts, m *project.Manifest, wasmPath string) (ids.ID, error) {
	s, err := signer.FromSURI(opts.SURI, opts.Password)
	if err != nil {
		return ids.Empty, err
	}
	defer s.Zero()

	code, err := wasm.LoadCode(wasmPath, m)
	if err != nil {
		return ids.Empty, err
	}

	client, err := dial(ctx, opts.URL)
	if err != nil {
		return ids.Empty, err
	}
	defer client.Close()

	return client.PutCode(ctx, s, code)
}

// Instantiate creates a new contract account from already-uploaded code and
// returns its account identifier.
func Instantiate(
	ctx context.Context,
	dial gateway.Dialer,
	opts Opts,
	endowment uint64,
	gasLimit uint64,
	codeHash ids.ID,
	data HexData,
) (ids.ID, error) {
	s, err := signer.FromSURI(opts.SURI, opts.Password)
	if err != nil {
		return ids.Empty, err
	}
	defer s.Zero()

	client, err := dial(ctx, opts.URL)
	if err != nil {
		return ids.Empty, err
	}
	defer client.Close()

	return client.Instantiate(ctx, s, endowment, gasLimit, codeHash, data)
}

// CallRuntimeGateway submits an execution order through the runtime gateway.
// Both requester and target identities are derived from secret URIs; a
// missing bytecode artifact is fatal here.
func CallRuntimeGateway(
	ctx context.Context,
	dial gateway.Dialer,
	opts Opts,
	m *project.Manifest,
	target string,
	requester string,
	phase uint8,
	value uint64,
	gasLimit uint64,
	wasmPath string,
	data HexData,
) (string, error) {
	code, err := wasm.LoadCode(wasmPath, m)
	if err != nil {
		return "", err
	}

	targetID, err := signer.AccountIDFromSURI(target)
	if err != nil {
		return "", fmt.Errorf("target account: %w", err)
	}
	requesterID, err := signer.AccountIDFromSURI(requester)
	if err != nil {
		return "", fmt.Errorf("requester account: %w", err)
	}

	s, err := signer.FromSURI(opts.SURI, opts.Password)
	if err != nil {
		return "", err
	}
	defer s.Zero()

	client, err := dial(ctx, opts.URL)
	if err != nil {
		return "", err
	}
	defer client.Close()

	return client.GatewayCall(ctx, s, gateway.GatewayCallOrder{
		Requester: requesterID,
		Target:    targetID,
		Phase:     phase,
		Code:      code,
		Value:     value,
		GasLimit:  gasLimit,
		Data:      data,
	})
}

// CallContractsGateway submits an execution order through the contracts
// gateway. Unlike every other operation, a missing bytecode artifact is not
// fatal: the call proceeds with empty code as a direct call at the target
// destination. That divergence is intentional, do not unify it with the
// deploy/instantiate behavior.
func CallContractsGateway(
	ctx context.Context,
	dial gateway.Dialer,
	opts Opts,
	m *project.Manifest,
	target HexData,
	requester string,
	phase uint8,
	value uint64,
	gasLimit uint64,
	wasmPath string,
	data HexData,
) (string, error) {
	targetID, err := accountFromBytes(target)
	if err != nil {
		return "", err
	}

	code, err := wasm.LoadCode(wasmPath, m)
	if err != nil {
		ux.Logger.PrintToUser("Correct code not found. Proceeding with a direct contract call at target dest")
		code = []byte{}
	}

	requesterID, err := signer.AccountIDFromSURI(requester)
	if err != nil {
		return "", fmt.Errorf("requester account: %w", err)
	}

	s, err := signer.FromSURI(opts.SURI, opts.Password)
	if err != nil {
		return "", err
	}
	defer s.Zero()

	client, err := dial(ctx, opts.URL)
	if err != nil {
		return "", err
	}
	defer client.Close()

	return client.ContractsGatewayCall(ctx, s, gateway.GatewayCallOrder{
		Requester: requesterID,
		Target:    targetID,
		Phase:     phase,
		Code:      code,
		Value:     value,
		GasLimit:  gasLimit,
		Data:      data,
	})
}

// CallContract submits a direct call to an existing contract account. No
// bytecode resolution happens here.
func CallContract(
	ctx context.Context,
	dial gateway.Dialer,
	opts Opts,
	target HexData,
	value uint64,
	gasLimit uint64,
	data HexData,
) (string, error) {
	targetID, err := accountFromBytes(target)
	if err != nil {
		return "", err
	}

	s, err := signer.FromSURI(opts.SURI, opts.Password)
	if err != nil {
		return "", err
	}
	defer s.Zero()

	client, err := dial(ctx, opts.URL)
	if err != nil {
		return "", err
	}
	defer client.Close()

	return client.ContractCall(ctx, s, gateway.ContractCallOrder{
		Target:   targetID,
		Value:    value,
		GasLimit: gasLimit,
		Data:     data,
	})
}
