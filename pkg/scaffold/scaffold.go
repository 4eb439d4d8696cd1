// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scaffold creates new contract projects from the template repository.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/project"
	"gopkg.in/yaml.v3"
)

// Create clones the template repository into <targetDir>/<name>, detaches it
// from the template's git history and stamps the manifest with the new
// project name. Returns the created project path.
func Create(name string, targetDir string, templateRepo string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("project name is required")
	}
	if targetDir == "" {
		targetDir = "."
	}
	dest := filepath.Join(targetDir, name)
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("directory %s already exists", dest)
	}

	if _, err := git.PlainClone(dest, false, &git.CloneOptions{
		URL:   templateRepo,
		Depth: 1,
	}); err != nil {
		return "", fmt.Errorf("failed to clone template %s: %w", templateRepo, err)
	}
	if err := os.RemoveAll(filepath.Join(dest, ".git")); err != nil {
		return "", err
	}

	if err := stampManifest(dest, name); err != nil {
		return "", err
	}
	return dest, nil
}

// stampManifest rewrites the template manifest's name field. A template
// without a manifest gets a minimal one.
func stampManifest(dir string, name string) error {
	path := filepath.Join(dir, constants.ManifestFileName)

	m := &project.Manifest{}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, m); err != nil {
			return fmt.Errorf("template manifest %s is malformed: %w", path, err)
		}
	}
	m.Name = name
	if m.Version == "" {
		m.Version = "0.1.0"
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, constants.UserOnlyWriteAllReadPerms)
}
