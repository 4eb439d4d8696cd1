// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package extrinsicscmd

import (
	"testing"

	"github.com/gatewaylabs/contract-cli/pkg/application"
	"github.com/gatewaylabs/contract-cli/pkg/config"
	"github.com/gatewaylabs/contract-cli/pkg/constants"
	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *application.App {
	t.Helper()
	testApp := application.New()
	testApp.Setup(t.TempDir(), luxlog.NewNoOpLogger(), config.New(), t.TempDir())
	return testApp
}

func TestOptsAppliesDefaultURL(t *testing.T) {
	NewCommands(setupTestApp(t))

	ef := ExtrinsicFlags{SURI: "//Alice"}
	opts := ef.Opts()
	require.Equal(t, constants.DefaultNodeURL, opts.URL)
	require.Equal(t, "//Alice", opts.SURI)
}

func TestOptsKeepsExplicitURL(t *testing.T) {
	NewCommands(setupTestApp(t))

	ef := ExtrinsicFlags{URL: "ws://node-b:9944", SURI: "//Alice", Password: "pw"}
	opts := ef.Opts()
	require.Equal(t, "ws://node-b:9944", opts.URL)
	require.Equal(t, "pw", opts.Password)
}

func TestNewCommandsRegistersAllExtrinsicCommands(t *testing.T) {
	cmds := NewCommands(setupTestApp(t))

	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name()
	}
	require.Equal(t, []string{
		"deploy",
		"composable-deploy",
		"instantiate",
		"call-runtime-gateway",
		"call-contracts-gateway",
		"call-contract",
	}, names)
}

func TestOptionalWasmPath(t *testing.T) {
	require.Empty(t, optionalWasmPath(nil))
	require.Equal(t, "code.wasm", optionalWasmPath([]string{"code.wasm"}))
}
