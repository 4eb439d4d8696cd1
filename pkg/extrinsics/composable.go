// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package extrinsics

import (
	"context"
	"fmt"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/gateway"
	"github.com/gatewaylabs/contract-cli/pkg/project"
	"github.com/gatewaylabs/contract-cli/pkg/signer"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	luxlog "github.com/luxfi/log"
)

// ComposableDeploy deploys every component of the composable schedule to its
// appointed endpoint, strictly in schedule order. The loop is sequential and
// fails fast: the first failing target aborts the run, prior deployments are
// not rolled back, remaining targets are not attempted. One suri signs for
// every target.
func ComposableDeploy(ctx context.Context, dial gateway.Dialer, suri string, m *project.Manifest) (string, error) {
	schedule, err := m.DeploySchedule()
	if err != nil {
		return "", err
	}
	if len(schedule) == 0 {
		return "", constants.ErrNothingToDeploy
	}

	// The aggregate message names the derived account, never the secret.
	account, err := signer.AccountIDFromSURI(suri)
	if err != nil {
		return "", err
	}

	ux.Logger.PrintToUser("%s", luxlog.Blue.Wrap(luxlog.Bold.Wrap("Deploy composable components to appointed urls")))
	rows := make([]ux.DeployTargetRow, len(schedule))
	for i, target := range schedule {
		rows[i] = ux.DeployTargetRow{Compose: target.Compose, URL: target.URL}
	}
	ux.Logger.PrintDeploySchedule(rows)

	for _, target := range schedule {
		ux.Logger.PrintToUser("Deploying: %s -> %s", target.Compose, target.URL)
		opts := Opts{
			URL:  target.URL,
			SURI: suri,
		}
		codeHash, err := Deploy(ctx, dial, opts, m, m.ComponentWasmPath(target.Compose))
		if err != nil {
			ux.Logger.RedXToUser("failed deploying %s to %s", target.Compose, target.URL)
			return "", fmt.Errorf("deploying %s to %s: %w", target.Compose, target.URL, err)
		}
		ux.Logger.GreenCheckmarkToUser("%s - %s %s",
			luxlog.Blue.Wrap(luxlog.Bold.Wrap(target.Compose)),
			luxlog.Blue.Wrap("successfully deployed byte code with hash:"),
			codeHash,
		)
	}

	return fmt.Sprintf("All components successfully deployed for %s", account), nil
}
