// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/gatewaylabs/contract-cli/pkg/config"
	"github.com/gatewaylabs/contract-cli/pkg/constants"
	luxlog "github.com/luxfi/log"
)

// App is the container injected into every command package. It owns the
// logger, the CLI configuration and the directory the command runs against.
type App struct {
	Log     luxlog.Logger
	Conf    *config.Config
	baseDir string
	// ProjectDir is the contract project the command operates on,
	// the working directory unless overridden.
	ProjectDir string
}

func New() *App {
	return &App{}
}

func (app *App) Setup(baseDir string, log luxlog.Logger, conf *config.Config, projectDir string) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.ProjectDir = projectDir
}

func (app *App) GetBaseDir() string {
	return app.baseDir
}

func (app *App) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *App) ConfigFileExists() bool {
	return app.Conf.ConfigFileExists()
}

// ManifestPath returns the project manifest location.
func (app *App) ManifestPath() string {
	return filepath.Join(app.ProjectDir, constants.ManifestFileName)
}
