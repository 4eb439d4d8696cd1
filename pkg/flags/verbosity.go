// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package flags validates the raw CLI flag surface shared by every
// subcommand before any command logic runs.
package flags

import (
	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/spf13/cobra"
)

// Verbosity is the validated output level selected by --quiet/--verbose.
type Verbosity int

const (
	VerbosityDefault Verbosity = iota
	VerbosityQuiet
	VerbosityVerbose
)

// VerbosityFlags holds the raw, unvalidated booleans bound to the command line.
type VerbosityFlags struct {
	Quiet   bool
	Verbose bool
}

// AddToCmd binds the verbosity flags to cmd.
func (vf *VerbosityFlags) AddToCmd(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&vf.Quiet, "quiet", false, "suppress build output")
	cmd.Flags().BoolVar(&vf.Verbose, "verbose", false, "show full build output")
}

// Validate turns the raw booleans into a Verbosity. Setting both flags is
// rejected before any further processing.
func (vf *VerbosityFlags) Validate() (Verbosity, error) {
	switch {
	case vf.Quiet && vf.Verbose:
		return VerbosityDefault, constants.ErrConflictingFlags
	case vf.Quiet:
		return VerbosityQuiet, nil
	case vf.Verbose:
		return VerbosityVerbose, nil
	default:
		return VerbosityDefault, nil
	}
}
