// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gateway is the boundary to the remote chain node. The orchestration
// layer only depends on the Client interface; the production implementation
// submits signed call envelopes over the node's websocket JSON-RPC endpoint.
//
// Remote errors are returned verbatim. This layer never retries and never
// rewrites what the node said.
package gateway

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/gatewaylabs/contract-cli/pkg/signer"
	"github.com/luxfi/geth/rpc"
	"github.com/luxfi/ids"
)

// Client submits extrinsics to a single node endpoint.
type Client interface {
	// PutCode uploads contract bytecode and returns its code hash.
	PutCode(ctx context.Context, s *signer.Signer, code []byte) (ids.ID, error)
	// Instantiate creates a contract account from already-uploaded code.
	Instantiate(ctx context.Context, s *signer.Signer, endowment uint64, gasLimit uint64, codeHash ids.ID, data []byte) (ids.ID, error)
	// GatewayCall submits an execution order through the runtime gateway.
	GatewayCall(ctx context.Context, s *signer.Signer, call GatewayCallOrder) (string, error)
	// ContractsGatewayCall submits an execution order through the contracts gateway.
	ContractsGatewayCall(ctx context.Context, s *signer.Signer, call GatewayCallOrder) (string, error)
	// ContractCall submits a direct call to an existing contract account.
	ContractCall(ctx context.Context, s *signer.Signer, call ContractCallOrder) (string, error)
	Close()
}

// GatewayCallOrder carries a gateway-routed execution order.
type GatewayCallOrder struct {
	Requester ids.ID
	Target    ids.ID
	Phase     uint8
	Code      []byte
	Value     uint64
	GasLimit  uint64
	Data      []byte
}

// ContractCallOrder carries a direct contract call.
type ContractCallOrder struct {
	Target   ids.ID
	Value    uint64
	GasLimit uint64
	Data     []byte
}

// Dialer opens a Client against a node endpoint. Commands take a Dialer so
// tests can substitute fakes.
type Dialer func(ctx context.Context, url string) (Client, error)

// Dial connects to the node's websocket JSON-RPC endpoint.
func Dial(ctx context.Context, url string) (Client, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial node at %s: %w", url, err)
	}
	return &rpcClient{rpc: c}, nil
}

type rpcClient struct {
	rpc *rpc.Client
}

// envelope is the signed wire form of every extrinsic. The signature covers
// the canonical payload the node reconstructs from the call fields.
type envelope struct {
	Signer    string      `json:"signer"`
	PublicKey string      `json:"publicKey"`
	Signature string      `json:"signature"`
	Call      interface{} `json:"call"`
}

func seal(s *signer.Signer, method string, call interface{}, payload []byte) envelope {
	signed := append([]byte(method), payload...)
	return envelope{
		Signer:    s.AccountID().String(),
		PublicKey: hex.EncodeToString(s.Public()),
		Signature: hex.EncodeToString(s.Sign(signed)),
		Call:      call,
	}
}

type putCodeCall struct {
	Code string `json:"code"`
}

func (c *rpcClient) PutCode(ctx context.Context, s *signer.Signer, code []byte) (ids.ID, error) {
	call := putCodeCall{Code: hex.EncodeToString(code)}
	var result string
	if err := c.rpc.CallContext(ctx, &result, "contracts_putCode", seal(s, "contracts_putCode", call, code)); err != nil {
		return ids.Empty, err
	}
	return parseCodeHashResult(result)
}

type instantiateCall struct {
	Endowment uint64 `json:"endowment"`
	GasLimit  uint64 `json:"gasLimit"`
	CodeHash  string `json:"codeHash"`
	Data      string `json:"data"`
}

func (c *rpcClient) Instantiate(ctx context.Context, s *signer.Signer, endowment uint64, gasLimit uint64, codeHash ids.ID, data []byte) (ids.ID, error) {
	call := instantiateCall{
		Endowment: endowment,
		GasLimit:  gasLimit,
		CodeHash:  hex.EncodeToString(codeHash[:]),
		Data:      hex.EncodeToString(data),
	}
	var result string
	if err := c.rpc.CallContext(ctx, &result, "contracts_instantiate", seal(s, "contracts_instantiate", call, data)); err != nil {
		return ids.Empty, err
	}
	return parseCodeHashResult(result)
}

type gatewayCall struct {
	Requester string `json:"requester"`
	Target    string `json:"targetDest"`
	Phase     uint8  `json:"phase"`
	Code      string `json:"code"`
	Value     uint64 `json:"value"`
	GasLimit  uint64 `json:"gasLimit"`
	Data      string `json:"data"`
}

func wireGatewayCall(call GatewayCallOrder) gatewayCall {
	return gatewayCall{
		Requester: call.Requester.String(),
		Target:    call.Target.String(),
		Phase:     call.Phase,
		Code:      hex.EncodeToString(call.Code),
		Value:     call.Value,
		GasLimit:  call.GasLimit,
		Data:      hex.EncodeToString(call.Data),
	}
}

func (c *rpcClient) GatewayCall(ctx context.Context, s *signer.Signer, call GatewayCallOrder) (string, error) {
	var result string
	err := c.rpc.CallContext(ctx, &result, "gateway_call", seal(s, "gateway_call", wireGatewayCall(call), call.Data))
	return result, err
}

func (c *rpcClient) ContractsGatewayCall(ctx context.Context, s *signer.Signer, call GatewayCallOrder) (string, error) {
	var result string
	err := c.rpc.CallContext(ctx, &result, "contractsGateway_call", seal(s, "contractsGateway_call", wireGatewayCall(call), call.Data))
	return result, err
}

type contractCall struct {
	Target   string `json:"target"`
	Value    uint64 `json:"value"`
	GasLimit uint64 `json:"gasLimit"`
	Data     string `json:"data"`
}

func (c *rpcClient) ContractCall(ctx context.Context, s *signer.Signer, call ContractCallOrder) (string, error) {
	wire := contractCall{
		Target:   call.Target.String(),
		Value:    call.Value,
		GasLimit: call.GasLimit,
		Data:     hex.EncodeToString(call.Data),
	}
	var result string
	err := c.rpc.CallContext(ctx, &result, "contracts_call", seal(s, "contracts_call", wire, call.Data))
	return result, err
}

func (c *rpcClient) Close() {
	c.rpc.Close()
}

func parseCodeHashResult(result string) (ids.ID, error) {
	raw, err := hex.DecodeString(result)
	if err != nil {
		return ids.Empty, fmt.Errorf("node returned a malformed identifier %q: %w", result, err)
	}
	id, err := ids.ToID(raw)
	if err != nil {
		return ids.Empty, fmt.Errorf("node returned a malformed identifier %q: %w", result, err)
	}
	return id, nil
}
