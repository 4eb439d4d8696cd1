// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package extrinsicscmd

import (
	"context"

	"github.com/gatewaylabs/contract-cli/pkg/extrinsics"
	"github.com/gatewaylabs/contract-cli/pkg/project"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var composableDeploySURI string

// contract composable-deploy
func newComposableDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "composable-deploy",
		Short: "Upload all smart contracts selected in composable schedule to appointed by urls chains",
		Long: `Upload all smart contracts selected in the composable schedule to the
chains appointed by their urls.

The schedule is read from the composable section of the project manifest.
Targets deploy strictly in schedule order; the first failure aborts the run
without rolling back earlier deployments. One secret signs for every target.`,
		Args: cobra.ExactArgs(0),
		RunE: runComposableDeploy,
	}
	cmd.Flags().StringVarP(&composableDeploySURI, "suri", "s", "", "secret key URI for the account deploying the contracts")
	_ = cmd.MarkFlagRequired("suri")
	return cmd
}

func runComposableDeploy(_ *cobra.Command, _ []string) error {
	m, err := project.Load(app.ProjectDir)
	if err != nil {
		return err
	}
	msg, err := extrinsics.ComposableDeploy(context.Background(), dial, composableDeploySURI, m)
	if err != nil {
		return err
	}
	ux.Logger.PrintResult("%s", msg)
	return nil
}
