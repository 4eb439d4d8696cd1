// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package builder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/flags"
	"github.com/gatewaylabs/contract-cli/pkg/project"
	"github.com/stretchr/testify/require"
)

func testManifest(t *testing.T, content string) *project.Manifest {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, constants.ManifestFileName), []byte(content), 0o644)
	require.NoError(t, err)
	m, err := project.Load(dir)
	require.NoError(t, err)
	return m
}

func TestBuildArgs(t *testing.T) {
	m := testManifest(t, "name: flipper")

	tests := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{
			name:     "defaults",
			opts:     Options{},
			expected: []string{"build", "--manifest", m.Dir()},
		},
		{
			name:     "quiet",
			opts:     Options{Verbosity: flags.VerbosityQuiet},
			expected: []string{"build", "--manifest", m.Dir(), "--quiet"},
		},
		{
			name:     "verbose with original manifest",
			opts:     Options{Verbosity: flags.VerbosityVerbose, Unstable: flags.UnstableFlags{OriginalManifest: true}},
			expected: []string{"build", "--manifest", m.Dir(), "--original-manifest", "--verbose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, buildArgs("build", m, "", tt.opts))
		})
	}
}

func TestBuildArgsWithComponent(t *testing.T) {
	m := testManifest(t, "name: flipper")
	args := buildArgs("build", m, "comp_a", Options{})
	require.Equal(t, []string{"build", "--manifest", m.Dir(), "--component", "comp_a"}, args)
}

func TestScheduleComponentsFromExplicitList(t *testing.T) {
	m := testManifest(t, `
name: flipper
composable:
  components: [comp_a, comp_b]
  deploy:
    - compose: comp_a
      url: ws://node-a:9944
`)
	components, err := scheduleComponents(m)
	require.NoError(t, err)
	require.Equal(t, []string{"comp_a", "comp_b"}, components)
}

func TestScheduleComponentsFromDeployTargets(t *testing.T) {
	m := testManifest(t, `
name: flipper
composable:
  deploy:
    - compose: comp_a
      url: ws://node-a:9944
    - compose: comp_b
      url: ws://node-b:9944
    - compose: comp_a
      url: ws://node-c:9944
`)
	components, err := scheduleComponents(m)
	require.NoError(t, err)
	require.Equal(t, []string{"comp_a", "comp_b"}, components)
}

func TestScheduleComponentsRequiresComposable(t *testing.T) {
	m := testManifest(t, "name: flipper")
	_, err := scheduleComponents(m)
	require.ErrorIs(t, err, constants.ErrMetadataRead)
}
