// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"testing"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/stretchr/testify/require"
)

func TestVerbosityValidate(t *testing.T) {
	tests := []struct {
		name     string
		quiet    bool
		verbose  bool
		expected Verbosity
		wantErr  error
	}{
		{
			name:     "neither flag",
			expected: VerbosityDefault,
		},
		{
			name:     "quiet only",
			quiet:    true,
			expected: VerbosityQuiet,
		},
		{
			name:     "verbose only",
			verbose:  true,
			expected: VerbosityVerbose,
		},
		{
			name:    "both flags conflict",
			quiet:   true,
			verbose: true,
			wantErr: constants.ErrConflictingFlags,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vf := VerbosityFlags{Quiet: tt.quiet, Verbose: tt.verbose}
			v, err := vf.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}
