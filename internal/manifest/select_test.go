// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest_test

import (
	"testing"

	"github.com/aibor/uefirun/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name        string
		candidates  []string
		binary      string
		expected    string
		expectedErr error
	}{
		{
			name:       "single candidate",
			candidates: []string{"boot-shell"},
			expected:   "boot-shell",
		},
		{
			name:        "no candidates",
			expectedErr: &manifest.AmbiguousTargetError{},
		},
		{
			name:        "multiple candidates",
			candidates:  []string{"boot-shell", "boot-demo"},
			expectedErr: &manifest.AmbiguousTargetError{},
		},
		{
			name:       "requested from multiple",
			candidates: []string{"boot-shell", "boot-demo"},
			binary:     "boot-demo",
			expected:   "boot-demo",
		},
		{
			name:       "requested from single",
			candidates: []string{"boot-shell"},
			binary:     "boot-shell",
			expected:   "boot-shell",
		},
		{
			name:        "requested not declared",
			candidates:  []string{"boot-shell"},
			binary:      "boot-demo",
			expectedErr: &manifest.TargetNotFoundError{},
		},
		{
			name:        "requested with no candidates",
			binary:      "boot-demo",
			expectedErr: &manifest.TargetNotFoundError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := manifest.Select(tt.candidates, tt.binary)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, actual)
		})
	}
}
