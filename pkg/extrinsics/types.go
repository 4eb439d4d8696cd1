// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package extrinsics is the command orchestration layer: each operation
// validates its inputs, resolves the signing identity and bytecode artifact,
// and drives the remote call through the gateway client. Operations are
// synchronous and never retried; remote errors surface verbatim.
package extrinsics

import (
	"encoding/hex"
	"fmt"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/luxfi/ids"
)

// HexData is an opaque byte sequence parsed from a hex string.
type HexData []byte

// ParseHexData decodes input, failing on odd length or non-hex characters.
func ParseHexData(input string) (HexData, error) {
	raw, err := hex.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", constants.ErrInvalidHex, input, err)
	}
	return HexData(raw), nil
}

func (h HexData) String() string {
	return hex.EncodeToString(h)
}

// ParseCodeHash decodes a hex-encoded code hash. The decoded form must be
// exactly 32 bytes.
func ParseCodeHash(input string) (ids.ID, error) {
	raw, err := hex.DecodeString(input)
	if err != nil {
		return ids.Empty, fmt.Errorf("%w: %q: %w", constants.ErrInvalidHex, input, err)
	}
	if len(raw) != constants.CodeHashLength {
		return ids.Empty, fmt.Errorf("%w: got %d bytes", constants.ErrCodeHashLength, len(raw))
	}
	return ids.ToID(raw)
}

// Opts carries what every extrinsic-bearing command needs to reach and sign
// against a node. Owned by a single invocation, read-only after construction.
type Opts struct {
	URL      string
	SURI     string
	Password string
}

// accountFromBytes maps raw target bytes to an account identity, zero-padded
// on the right. Short values are accepted: the default --target is the single
// byte 00. Values longer than an account identity are rejected rather than
// truncated.
func accountFromBytes(raw []byte) (ids.ID, error) {
	var id ids.ID
	if len(raw) > len(id) {
		return ids.Empty, fmt.Errorf("target account exceeds %d bytes: got %d", len(id), len(raw))
	}
	copy(id[:], raw)
	return id, nil
}
