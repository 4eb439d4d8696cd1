// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package wasm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/project"
	"github.com/stretchr/testify/require"
)

func projectWithManifest(t *testing.T) *project.Manifest {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, constants.ManifestFileName), []byte("name: flipper"), 0o644)
	require.NoError(t, err)
	m, err := project.Load(dir)
	require.NoError(t, err)
	return m
}

func TestLoadCodeExplicitPath(t *testing.T) {
	m := projectWithManifest(t)

	path := filepath.Join(t.TempDir(), "custom.wasm")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x61, 0x73, 0x6d}, 0o644))

	code, err := LoadCode(path, m)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d}, code)
}

func TestLoadCodeDefaultPath(t *testing.T) {
	m := projectWithManifest(t)

	require.NoError(t, os.MkdirAll(filepath.Join(m.Dir(), "target"), 0o755))
	require.NoError(t, os.WriteFile(m.WasmPath(), []byte{0xde, 0xad}, 0o644))

	code, err := LoadCode("", m)
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad}, code)
}

func TestLoadCodeMissingNamesAttemptedPath(t *testing.T) {
	m := projectWithManifest(t)

	_, err := LoadCode("", m)
	require.ErrorIs(t, err, constants.ErrCodeNotFound)
	require.Contains(t, err.Error(), "flipper-pruned.wasm")
}
