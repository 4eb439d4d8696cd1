// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"
	"testing"

	"github.com/gatewaylabs/contract-cli/pkg/config"
	"github.com/gatewaylabs/contract-cli/pkg/constants"
	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	baseDir := t.TempDir()
	projectDir := t.TempDir()

	app := New()
	app.Setup(baseDir, luxlog.NewNoOpLogger(), config.New(), projectDir)

	require.Equal(t, baseDir, app.GetBaseDir())
	require.Equal(t, filepath.Join(baseDir, constants.LogDir), app.GetLogDir())
	require.Equal(t, filepath.Join(projectDir, constants.ManifestFileName), app.ManifestPath())
	require.False(t, app.ConfigFileExists())
}
