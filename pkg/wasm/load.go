// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wasm resolves compiled bytecode artifacts from disk.
package wasm

import (
	"fmt"
	"os"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/project"
)

// LoadCode reads the bytecode artifact. An explicit path wins; otherwise the
// package default (target/<name>-pruned.wasm) is read. A missing or
// unreadable file fails with the attempted path; callers decide whether that
// is fatal.
func LoadCode(explicitPath string, m *project.Manifest) ([]byte, error) {
	path := explicitPath
	if path == "" {
		if m == nil {
			return nil, fmt.Errorf("%w: no project manifest to derive the default artifact path", constants.ErrCodeNotFound)
		}
		path = m.WasmPath()
	}
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", constants.ErrCodeNotFound, path, err)
	}
	return code, nil
}
