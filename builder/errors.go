// SPDX-License-Identifier: MIT
// Package: netforge/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with errors.Wrapf; the sentinel stays reachable
//     through Unwrap.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Classes:
//   • Configuration (recoverable): ErrInvalidConfig and its refinements
//     ErrTooFewVertices, ErrInvalidProbability, ErrInvalidDegree,
//     ErrInvalidLinkCount, ErrBadParam. Reported by Configure before any
//     state changes.
//   • Lifecycle: ErrNotConfigured (Generate before a successful Configure).
//   • Lookup: ErrUnknownModel (registry).
//   • Sampling: ErrNoCandidate (exclusion covers the whole range).
//   • Fixtures: ErrConstructFailed (nil constructor, core rejection).

package builder

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfig is the umbrella class of every configuration error.
// All refinements below satisfy errors.Is(err, ErrInvalidConfig) once wrapped
// by invalidConfig.
var ErrInvalidConfig = errors.New("builder: invalid configuration")

// ErrTooFewVertices indicates that the node count is below the model minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the admissible range.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidDegree indicates a degree parameter (d or k) outside its range.
var ErrInvalidDegree = errors.New("builder: degree out of range")

// ErrInvalidLinkCount indicates m outside [0, n(n-1)/2].
var ErrInvalidLinkCount = errors.New("builder: link count out of range")

// ErrBadParam indicates a parameter value that cannot be converted to the
// type the model expects.
var ErrBadParam = errors.New("builder: malformed parameter")

// ErrNotConfigured indicates Generate was called before Configure succeeded.
var ErrNotConfigured = errors.New("builder: model not configured")

// ErrUnknownModel indicates that the registry has no model under that name.
var ErrUnknownModel = errors.New("builder: unknown model")

// ErrNoCandidate indicates that every value of the sampling range is excluded.
var ErrNoCandidate = errors.New("builder: no candidate left to sample")

// ErrConstructFailed indicates that a fixture constructor could not complete.
var ErrConstructFailed = errors.New("builder: construction failed")

// configError ties a specific validation sentinel to ErrInvalidConfig so that
// both errors.Is(err, ErrInvalidConfig) and errors.Is(err, specific) hold.
type configError struct {
	specific error
}

func (e *configError) Error() string { return e.specific.Error() }

// Is reports ErrInvalidConfig as an ancestor of every configuration error.
func (e *configError) Is(target error) bool { return target == ErrInvalidConfig }

func (e *configError) Unwrap() error { return e.specific }

// invalidConfig wraps specific with method context, e.g.
// "ER: m=11 not in [0,10]: builder: link count out of range".
func invalidConfig(specific error, method, format string, args ...interface{}) error {
	return errors.Wrapf(&configError{specific: specific}, method+": "+format, args...)
}
