// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	// ErrConflictingFlags is returned when --quiet and --verbose are both set.
	ErrConflictingFlags = errors.New("cannot pass both --quiet and --verbose flags")

	// ErrUnknownOption is returned when -Z/--unstable-options carries a name
	// outside the allowlist. Wrapping errors name every offending entry.
	ErrUnknownOption = errors.New("unknown unstable option")

	// ErrKeyDerivation is returned when a secret URI cannot be turned into a
	// key pair. It is never wrapped with the secret itself.
	ErrKeyDerivation = errors.New("secret string error")

	// ErrCodeNotFound is returned when a bytecode artifact cannot be read.
	// Wrapping errors carry the attempted path.
	ErrCodeNotFound = errors.New("contract code not found")

	// ErrMetadataRead is returned when the project manifest is missing or
	// malformed.
	ErrMetadataRead = errors.New("failed to read project metadata")

	// ErrNothingToDeploy is returned by composable deploy when the manifest
	// declares no deploy targets.
	ErrNothingToDeploy = errors.New("nothing to deploy: empty deploy key of composable metadata")

	// ErrInvalidHex is returned when hex-encoded input cannot be decoded.
	ErrInvalidHex = errors.New("invalid hex input")

	// ErrCodeHashLength is returned when a code hash does not decode to
	// exactly CodeHashLength bytes.
	ErrCodeHashLength = errors.New("code hash should be 32 bytes in length")
)
