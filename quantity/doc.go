// SPDX-License-Identifier: MIT
// Package quantity is the small physical-quantity collaborator used by
// particula: a float64 magnitude tagged with a Unit, where every Unit is an
// SI scale factor plus a dimension vector over (mass, length, time, current).
//
// What it covers:
//
//   - Arithmetic: Add/Sub require equal dimensions; Mul/Div combine them.
//   - Conversion: To(unit) rescales between units of the same dimension.
//   - Cross-unit equality: Equal compares SI magnitudes with a relative
//     tolerance, so 1 u equals 1.66053906660e-27 kg.
//   - CODATA 2018 constants used by the particle package (ProtonMass,
//     NeutronMass, ElectronMass, ElementaryCharge, SpeedOfLight, ...).
//
// What it does not cover: affine units (temperature offsets), prefixes
// beyond the handful of named units, or symbolic unit algebra.
//
// Errors:
//
//	ErrDimensionMismatch - operands or target unit have different dimensions.
package quantity
