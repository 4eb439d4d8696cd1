// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package extrinsics

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/stretchr/testify/require"
)

func TestParseHexData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{name: "empty", input: "", expected: []byte{}},
		{name: "default call data", input: "00", expected: []byte{0x00}},
		{name: "mixed bytes", input: "deadbeef", expected: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "odd length", input: "abc", wantErr: true},
		{name: "non hex characters", input: "zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseHexData(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			require.Equal(t, HexData(tt.expected), data)
			require.Equal(t, tt.input, data.String())
		})
	}
}

func TestParseCodeHash(t *testing.T) {
	valid := strings.Repeat("ab", 32)

	id, err := ParseCodeHash(valid)
	require.NoError(t, err)
	require.Equal(t, valid, hex.EncodeToString(id[:]))

	_, err = ParseCodeHash(strings.Repeat("ab", 31))
	require.ErrorIs(t, err, constants.ErrCodeHashLength)

	_, err = ParseCodeHash(strings.Repeat("ab", 33))
	require.ErrorIs(t, err, constants.ErrCodeHashLength)

	_, err = ParseCodeHash("not-hex")
	require.ErrorIs(t, err, constants.ErrInvalidHex)
}

func TestAccountFromBytesPadsRight(t *testing.T) {
	id, err := accountFromBytes([]byte{0xab})
	require.NoError(t, err)
	require.Equal(t, byte(0xab), id[0])
	for _, b := range id[1:] {
		require.Zero(t, b)
	}
}

func TestAccountFromBytesRejectsOversize(t *testing.T) {
	full := make([]byte, 32)
	_, err := accountFromBytes(full)
	require.NoError(t, err)

	_, err = accountFromBytes(make([]byte, 33))
	require.ErrorContains(t, err, "exceeds 32 bytes")
}
