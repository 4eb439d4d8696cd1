// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package extrinsicscmd implements the extrinsic-bearing commands: deploy,
// composable-deploy, instantiate and the call variants. The package is only
// registered when the extrinsics capability is compiled in.
package extrinsicscmd

import (
	"github.com/gatewaylabs/contract-cli/pkg/application"
	"github.com/gatewaylabs/contract-cli/pkg/extrinsics"
	"github.com/gatewaylabs/contract-cli/pkg/gateway"
	"github.com/gatewaylabs/contract-cli/pkg/project"
	"github.com/spf13/cobra"
)

var (
	app *application.App

	// dial is swapped by tests; production always talks to a real node.
	dial gateway.Dialer = gateway.Dial
)

// NewCommands returns the extrinsic-bearing commands for registration on the
// root command.
func NewCommands(injectedApp *application.App) []*cobra.Command {
	app = injectedApp
	return []*cobra.Command{
		newDeployCmd(),
		newComposableDeployCmd(),
		newInstantiateCmd(),
		newCallRuntimeGatewayCmd(),
		newCallContractsGatewayCmd(),
		newCallContractCmd(),
	}
}

// ExtrinsicFlags is the flag surface shared by every extrinsic-bearing
// command: where to send the extrinsic and who signs it.
type ExtrinsicFlags struct {
	URL      string
	SURI     string
	Password string
}

// AddToCmd binds the shared extrinsic flags to cmd.
func (ef *ExtrinsicFlags) AddToCmd(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ef.URL, "url", "", "websockets url of a chain node (default ws://localhost:9944)")
	cmd.Flags().StringVarP(&ef.SURI, "suri", "s", "", "secret key URI for the account signing the extrinsic")
	cmd.Flags().StringVarP(&ef.Password, "password", "p", "", "password for the secret key")
	_ = cmd.MarkFlagRequired("suri")
}

// Opts resolves the final extrinsic options, applying the configured default
// endpoint when --url was not given.
func (ef *ExtrinsicFlags) Opts() extrinsics.Opts {
	url := ef.URL
	if url == "" {
		url = app.Conf.NodeURL()
	}
	return extrinsics.Opts{
		URL:      url,
		SURI:     ef.SURI,
		Password: ef.Password,
	}
}

// loadProjectIfNeeded loads the manifest only when the default artifact path
// has to be derived from it. Callers decide whether a load failure is fatal.
func loadProjectIfNeeded(wasmPath string) (*project.Manifest, error) {
	if wasmPath != "" {
		return nil, nil
	}
	return project.Load(app.ProjectDir)
}

func optionalWasmPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
