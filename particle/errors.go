// SPDX-License-Identifier: MIT
// Package: particula/particle
//
// errors.go — sentinel errors for the particle package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Every resolution or attribute failure wraps its kind sentinel with
//     context and is also marked with ErrAtomic, so a caller that only cares
//     "did particle resolution fail" can test ErrAtomic alone.
//   • ErrArgumentType is deliberately NOT marked with ErrAtomic: a wrong Go
//     type is a programming error, not an unresolvable particle.
//   • Nothing is retried: every computation here is deterministic.

package particle

import "github.com/cockroachdb/errors"

var (
	// ErrAtomic is the composite resolution error. Every other sentinel in this
	// package except ErrArgumentType also matches it.
	ErrAtomic = errors.New("particle: atomic error")

	// ErrInvalidParticle indicates unparseable, unknown or contradictory input.
	ErrInvalidParticle = errors.New("particle: invalid particle")

	// ErrInvalidElement indicates an element-only attribute on a particle that
	// is not an element, isotope or ion.
	ErrInvalidElement = errors.New("particle: not an element")

	// ErrInvalidIsotope indicates an isotope-only attribute on a particle
	// without a mass number.
	ErrInvalidIsotope = errors.New("particle: not an isotope")

	// ErrInvalidIon indicates an ion-only attribute on a particle without a
	// nonzero charge.
	ErrInvalidIon = errors.New("particle: not an ion")

	// ErrCharge indicates that no charge is known (neutral element or isotope
	// given without an explicit ionization state).
	ErrCharge = errors.New("particle: charge is undefined")

	// ErrMissingData indicates an applicable attribute that the reference
	// tables do not publish.
	ErrMissingData = errors.New("particle: missing atomic data")

	// ErrClassification indicates an unknown category name or an unsupported
	// combination of require/exclude sets.
	ErrClassification = errors.New("particle: invalid category query")

	// ErrArgumentType indicates an argument of the wrong Go type: an identifier
	// that is neither a string, an integer atomic number nor a Particle, a
	// non-integer charge or mass number, or an integer that overflows int.
	ErrArgumentType = errors.New("particle: wrong argument type")
)

// fail wraps kind with context and marks the result as an ErrAtomic.
func fail(kind error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(kind, format, args...), ErrAtomic)
}

// failHint is fail plus a user-facing hint.
func failHint(kind error, hint string, format string, args ...any) error {
	return errors.WithHint(fail(kind, format, args...), hint)
}
