// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"
	"strings"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/spf13/cobra"
)

const OptionOriginalManifest = "original-manifest"

// validUnstableOptions is the closed allowlist for -Z/--unstable-options.
var validUnstableOptions = []string{OptionOriginalManifest}

// UnstableOptions holds the raw option names given via -Z/--unstable-options.
type UnstableOptions struct {
	Options []string
}

// UnstableFlags is the validated form, one boolean effect per known option.
type UnstableFlags struct {
	// OriginalManifest builds against the unmodified project manifest,
	// skipping build optimizations.
	OriginalManifest bool
}

// AddToCmd binds the unstable options flag to cmd.
func (uo *UnstableOptions) AddToCmd(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&uo.Options, "unstable-options", "Z", nil,
		"enable unstable options (allowed: original-manifest)")
}

// Validate checks every given name against the allowlist. A single foreign
// name invalidates the whole set; the error names all of them, not just the
// first.
func (uo *UnstableOptions) Validate() (UnstableFlags, error) {
	var invalid []string
	for _, opt := range uo.Options {
		known := false
		for _, valid := range validUnstableOptions {
			if opt == valid {
				known = true
				break
			}
		}
		if !known {
			invalid = append(invalid, opt)
		}
	}
	if len(invalid) > 0 {
		return UnstableFlags{}, fmt.Errorf("%w: %s", constants.ErrUnknownOption, strings.Join(invalid, ", "))
	}
	flags := UnstableFlags{}
	for _, opt := range uo.Options {
		if opt == OptionOriginalManifest {
			flags.OriginalManifest = true
		}
	}
	return flags, nil
}
