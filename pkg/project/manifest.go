// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package project reads the contract project manifest (contract.yaml) and
// derives artifact paths from it.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"gopkg.in/yaml.v3"
)

// DeployTarget is one entry of the composable deploy schedule: a component
// identifier and the endpoint its bytecode goes to.
type DeployTarget struct {
	Compose string `yaml:"compose"`
	URL     string `yaml:"url"`
}

// Composable is the optional composable schedule section of the manifest.
type Composable struct {
	// Components lists the component contracts built by composable-build.
	Components []string `yaml:"components,omitempty"`
	// Deploy is the ordered deploy schedule consumed by composable-deploy.
	Deploy []DeployTarget `yaml:"deploy,omitempty"`
}

// Manifest is the parsed contract.yaml.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`

	Composable *Composable `yaml:"composable,omitempty"`

	// dir is the project root the manifest was loaded from.
	dir string
}

// Load reads and parses the manifest of the project rooted at dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, constants.ManifestFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", constants.ErrMetadataRead, path, err)
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(raw, m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", constants.ErrMetadataRead, path, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: %s: missing package name", constants.ErrMetadataRead, path)
	}
	m.dir = dir
	return m, nil
}

// Dir returns the project root.
func (m *Manifest) Dir() string {
	return m.dir
}

// WasmPath is the default bytecode artifact of the package:
// <dir>/target/<name>-pruned.wasm.
func (m *Manifest) WasmPath() string {
	return filepath.Join(m.dir, constants.TargetDirName, m.Name+constants.PrunedWasmSuffix)
}

// ComponentWasmPath is the bytecode artifact of a composable component.
func (m *Manifest) ComponentWasmPath(compose string) string {
	return filepath.Join(m.dir, constants.TargetDirName, compose+constants.PrunedWasmSuffix)
}

// MetadataPath is where generate-metadata writes the metadata artifact.
func (m *Manifest) MetadataPath() string {
	return filepath.Join(m.dir, constants.TargetDirName, constants.MetadataFileName)
}

// DeploySchedule returns the ordered composable deploy targets. The manifest
// must declare a composable section; absence is a metadata error, while a
// declared but empty deploy list is reported as such to the caller.
func (m *Manifest) DeploySchedule() ([]DeployTarget, error) {
	if m.Composable == nil {
		return nil, fmt.Errorf(
			"%w: %s: missing composable section, make sure the manifest follows the composable metadata format",
			constants.ErrMetadataRead, filepath.Join(m.dir, constants.ManifestFileName),
		)
	}
	return m.Composable.Deploy, nil
}
