// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package builder invokes the external WASM toolchain. Compilation itself is
// not this tool's business; this package only assembles the invocation and
// reports where the artifacts landed.
package builder

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/flags"
	"github.com/gatewaylabs/contract-cli/pkg/project"
)

// Options selects how the toolchain is driven.
type Options struct {
	// Toolchain is the toolchain binary, resolved by the caller
	// (flag > env > config > PATH default).
	Toolchain string
	Verbosity flags.Verbosity
	Unstable  flags.UnstableFlags
}

// buildArgs assembles the toolchain argument list for one package or
// component. Kept separate from execution so it can be tested without a
// toolchain installed.
func buildArgs(subcommand string, m *project.Manifest, component string, opts Options) []string {
	args := []string{subcommand, "--manifest", m.Dir()}
	if component != "" {
		args = append(args, "--component", component)
	}
	if opts.Unstable.OriginalManifest {
		args = append(args, "--original-manifest")
	}
	switch opts.Verbosity {
	case flags.VerbosityQuiet:
		args = append(args, "--quiet")
	case flags.VerbosityVerbose:
		args = append(args, "--verbose")
	}
	return args
}

func run(m *project.Manifest, args []string, opts Options) error {
	cmd := exec.Command(opts.Toolchain, args...)
	cmd.Dir = m.Dir()
	if opts.Verbosity != flags.VerbosityQuiet {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("toolchain %s failed: %w", opts.Toolchain, err)
	}
	return nil
}

// Build compiles the package and returns the pruned bytecode artifact path.
func Build(m *project.Manifest, opts Options) (string, error) {
	if err := run(m, buildArgs("build", m, "", opts), opts); err != nil {
		return "", err
	}
	return m.WasmPath(), nil
}

// ComposableBuild compiles every component of the composable schedule, in
// manifest order, and returns the target directory holding the artifacts.
func ComposableBuild(m *project.Manifest, opts Options) (string, error) {
	components, err := scheduleComponents(m)
	if err != nil {
		return "", err
	}
	for _, component := range components {
		if err := run(m, buildArgs("build", m, component, opts), opts); err != nil {
			return "", fmt.Errorf("building component %s: %w", component, err)
		}
	}
	return filepath.Join(m.Dir(), constants.TargetDirName), nil
}

// GenerateMetadata produces the metadata artifact and returns its path.
func GenerateMetadata(m *project.Manifest, opts Options) (string, error) {
	if err := run(m, buildArgs("generate-metadata", m, "", opts), opts); err != nil {
		return "", err
	}
	return m.MetadataPath(), nil
}

// scheduleComponents lists the composable components to build: the explicit
// components list when given, otherwise the distinct deploy targets.
func scheduleComponents(m *project.Manifest) ([]string, error) {
	schedule, err := m.DeploySchedule()
	if err != nil {
		return nil, err
	}
	if m.Composable != nil && len(m.Composable.Components) > 0 {
		return m.Composable.Components, nil
	}
	seen := map[string]bool{}
	var components []string
	for _, target := range schedule {
		if !seen[target.Compose] {
			seen[target.Compose] = true
			components = append(components, target.Compose)
		}
	}
	if len(components) == 0 {
		return nil, fmt.Errorf("composable schedule declares no components to build")
	}
	return components, nil
}
