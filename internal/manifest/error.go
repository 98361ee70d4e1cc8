// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest

import "strings"

// ParseError wraps errors for manifest files with invalid TOML.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *ParseError) Error() string {
	return "parse manifest " + e.Path + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (e *ParseError) Is(other error) bool {
	_, ok := other.(*ParseError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// AmbiguousTargetError is returned if no binary target was requested
// explicitly and the project does not declare exactly one.
type AmbiguousTargetError struct {
	Candidates []string
}

// Error implements the [error] interface.
func (e *AmbiguousTargetError) Error() string {
	if len(e.Candidates) == 0 {
		return "no binary target declared"
	}

	return "cannot determine binary target, candidates: " +
		strings.Join(e.Candidates, ", ")
}

// Is implements the [errors.Is] interface.
func (e *AmbiguousTargetError) Is(other error) bool {
	_, ok := other.(*AmbiguousTargetError)
	return ok
}

// TargetNotFoundError is returned if a requested binary target is not
// declared by the project.
type TargetNotFoundError struct {
	Name string
}

// Error implements the [error] interface.
func (e *TargetNotFoundError) Error() string {
	return "binary target not declared: " + e.Name
}

// Is implements the [errors.Is] interface.
func (e *TargetNotFoundError) Is(other error) bool {
	_, ok := other.(*TargetNotFoundError)
	return ok
}
