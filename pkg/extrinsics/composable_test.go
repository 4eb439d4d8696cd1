// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package extrinsics

import (
	"context"
	"errors"
	"testing"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/signer"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

const composableManifest = `
name: flipper
composable:
  deploy:
    - compose: comp_a
      url: ws://node-a:9944
    - compose: comp_b
      url: ws://node-b:9944
    - compose: comp_c
      url: ws://node-c:9944
`

func TestComposableDeployAllTargets(t *testing.T) {
	m := testProject(t, composableManifest)
	for _, compose := range []string{"comp_a", "comp_b", "comp_c"} {
		writeArtifact(t, m.ComponentWasmPath(compose), []byte(compose))
	}

	fake, dial, dialed := newFakeDialer()

	msg, err := ComposableDeploy(context.Background(), dial, "//Alice", m)
	require.NoError(t, err)

	// every target deployed, in schedule order, each against its own endpoint
	require.Equal(t, []string{"ws://node-a:9944", "ws://node-b:9944", "ws://node-c:9944"}, *dialed)
	require.Len(t, *fake.putCodes, 3)
	require.Equal(t, []byte("comp_a"), (*fake.putCodes)[0].code)
	require.Equal(t, []byte("comp_b"), (*fake.putCodes)[1].code)
	require.Equal(t, []byte("comp_c"), (*fake.putCodes)[2].code)

	account, err := signer.AccountIDFromSURI("//Alice")
	require.NoError(t, err)
	require.Contains(t, msg, "All components successfully deployed")
	require.Contains(t, msg, account.String())
	// the secret itself never shows up in the aggregate message
	require.NotContains(t, msg, "//Alice")
}

func TestComposableDeployEmptySchedule(t *testing.T) {
	m := testProject(t, `
name: flipper
composable:
  deploy: []
`)

	fake, dial, dialed := newFakeDialer()

	_, err := ComposableDeploy(context.Background(), dial, "//Alice", m)
	require.ErrorIs(t, err, constants.ErrNothingToDeploy)
	require.Empty(t, *dialed)
	require.Empty(t, *fake.putCodes)
}

func TestComposableDeployMissingScheduleSection(t *testing.T) {
	m := testProject(t, "name: flipper")

	_, dial, dialed := newFakeDialer()

	_, err := ComposableDeploy(context.Background(), dial, "//Alice", m)
	require.ErrorIs(t, err, constants.ErrMetadataRead)
	require.Empty(t, *dialed)
}

func TestComposableDeployFailsFast(t *testing.T) {
	m := testProject(t, composableManifest)
	for _, compose := range []string{"comp_a", "comp_b", "comp_c"} {
		writeArtifact(t, m.ComponentWasmPath(compose), []byte(compose))
	}

	fake, dial, dialed := newFakeDialer()
	remoteErr := errors.New("Module { index: 4, error: 0 }")
	fake.putCodeFn = func(url string, _ []byte) (ids.ID, error) {
		if url == "ws://node-b:9944" {
			return ids.Empty, remoteErr
		}
		return ids.ID{0x01}, nil
	}

	_, err := ComposableDeploy(context.Background(), dial, "//Alice", m)
	require.ErrorIs(t, err, remoteErr)
	require.Contains(t, err.Error(), "comp_b")

	// targets before the failure complete, the failing one is attempted,
	// nothing beyond it runs
	require.Equal(t, []string{"ws://node-a:9944", "ws://node-b:9944"}, *dialed)
	require.Len(t, *fake.putCodes, 2)
}

func TestComposableDeployMissingArtifactAborts(t *testing.T) {
	m := testProject(t, composableManifest)
	// only the first component's artifact exists
	writeArtifact(t, m.ComponentWasmPath("comp_a"), []byte("comp_a"))

	fake, dial, dialed := newFakeDialer()

	_, err := ComposableDeploy(context.Background(), dial, "//Alice", m)
	require.ErrorIs(t, err, constants.ErrCodeNotFound)
	require.Contains(t, err.Error(), "comp_b-pruned.wasm")

	require.Equal(t, []string{"ws://node-a:9944"}, *dialed)
	require.Len(t, *fake.putCodes, 1)
}
