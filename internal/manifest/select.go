// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest

import "slices"

// Select picks the binary target to run from the given candidates.
//
// If name is empty, the candidates must contain exactly one entry, which is
// returned. Otherwise [AmbiguousTargetError] is returned. A non-empty name
// must be one of the candidates. Otherwise [TargetNotFoundError] is
// returned.
func Select(candidates []string, name string) (string, error) {
	if name == "" {
		if len(candidates) == 1 {
			return candidates[0], nil
		}

		return "", &AmbiguousTargetError{Candidates: candidates}
	}

	if !slices.Contains(candidates, name) {
		return "", &TargetNotFoundError{Name: name}
	}

	return name, nil
}
