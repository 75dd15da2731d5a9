// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrDimensionMismatch indicates an operation between incompatible dimensions,
// e.g. adding a mass to an energy or converting seconds into kilograms.
var ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

// relTolerance is the relative tolerance used by Equal.
const relTolerance = 1e-12

// Dimension holds the integer exponents of the SI base dimensions in use.
type Dimension struct {
	M int8 // mass
	L int8 // length
	T int8 // time
	I int8 // electric current
}

func (d Dimension) add(o Dimension) Dimension {
	return Dimension{M: d.M + o.M, L: d.L + o.L, T: d.T + o.T, I: d.I + o.I}
}

func (d Dimension) sub(o Dimension) Dimension {
	return Dimension{M: d.M - o.M, L: d.L - o.L, T: d.T - o.T, I: d.I - o.I}
}

// Unit is a named SI scale factor for one Dimension.
type Unit struct {
	Name  string
	Scale float64 // SI value of one unit
	Dim   Dimension
}

// Named units used across the module.
var (
	Dimensionless    = Unit{Name: "", Scale: 1}
	Kilogram         = Unit{Name: "kg", Scale: 1, Dim: Dimension{M: 1}}
	Gram             = Unit{Name: "g", Scale: 1e-3, Dim: Dimension{M: 1}}
	AtomicMassUnit   = Unit{Name: "u", Scale: atomicMassKg, Dim: Dimension{M: 1}}
	Joule            = Unit{Name: "J", Scale: 1, Dim: Dimension{M: 1, L: 2, T: -2}}
	ElectronVolt     = Unit{Name: "eV", Scale: elementaryChargeC, Dim: Dimension{M: 1, L: 2, T: -2}}
	MegaElectronVolt = Unit{Name: "MeV", Scale: 1e6 * elementaryChargeC, Dim: Dimension{M: 1, L: 2, T: -2}}
	Coulomb          = Unit{Name: "C", Scale: 1, Dim: Dimension{T: 1, I: 1}}
	Second           = Unit{Name: "s", Scale: 1, Dim: Dimension{T: 1}}
	Year             = Unit{Name: "yr", Scale: 365.25 * 86400, Dim: Dimension{T: 1}}
	MeterPerSecond   = Unit{Name: "m / s", Scale: 1, Dim: Dimension{L: 1, T: -1}}
)

// Quantity is a magnitude expressed in a Unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// New returns value·unit.
func New(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// SI returns the magnitude in coherent SI units.
func (q Quantity) SI() float64 {
	return q.Value * q.Unit.Scale
}

// Dim returns the dimension of q.
func (q Quantity) Dim() Dimension {
	return q.Unit.Dim
}

// To converts q into unit. Fails with ErrDimensionMismatch on a dimension change.
func (q Quantity) To(unit Unit) (Quantity, error) {
	if q.Unit.Dim != unit.Dim {
		return Quantity{}, errors.Wrapf(ErrDimensionMismatch, "cannot convert %q to %q", q.Unit.Name, unit.Name)
	}
	if q.Unit == unit {
		return q, nil
	}

	return Quantity{Value: q.SI() / unit.Scale, Unit: unit}, nil
}

// Add returns q+o expressed in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	ov, err := o.To(q.Unit)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: q.Value + ov.Value, Unit: q.Unit}, nil
}

// Sub returns q-o expressed in q's unit.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	return q.Add(o.Scale(-1))
}

// Scale multiplies the magnitude by a dimensionless factor.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{Value: q.Value * f, Unit: q.Unit}
}

// Mul returns q·o in coherent SI units.
func (q Quantity) Mul(o Quantity) Quantity {
	dim := q.Unit.Dim.add(o.Unit.Dim)

	return Quantity{Value: q.SI() * o.SI(), Unit: siUnit(dim)}
}

// Div returns q/o in coherent SI units.
func (q Quantity) Div(o Quantity) Quantity {
	dim := q.Unit.Dim.sub(o.Unit.Dim)

	return Quantity{Value: q.SI() / o.SI(), Unit: siUnit(dim)}
}

// IsInf reports whether the magnitude is ±Inf.
func (q Quantity) IsInf() bool {
	return math.IsInf(q.Value, 0)
}

// Equal reports whether q and o describe the same physical amount,
// regardless of the units they are expressed in.
func (q Quantity) Equal(o Quantity) bool {
	if q.Unit.Dim != o.Unit.Dim {
		return false
	}
	a, b := q.SI(), o.SI()
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// String renders "<value> <unit>", e.g. "1.67262192369e-27 kg".
func (q Quantity) String() string {
	if q.Unit.Name == "" {
		return fmt.Sprintf("%g", q.Value)
	}

	return fmt.Sprintf("%g %s", q.Value, q.Unit.Name)
}

// siUnit builds the coherent SI unit for dim, reusing a named unit when one fits.
func siUnit(dim Dimension) Unit {
	for _, u := range []Unit{Dimensionless, Kilogram, Joule, Coulomb, Second, MeterPerSecond} {
		if u.Dim == dim {
			return u
		}
	}

	return Unit{Name: dimName(dim), Scale: 1, Dim: dim}
}

// dimName renders a dimension as "kg m2 / s2" style text.
func dimName(d Dimension) string {
	var num, den []string
	part := func(sym string, exp int8) {
		switch {
		case exp == 1:
			num = append(num, sym)
		case exp > 1:
			num = append(num, fmt.Sprintf("%s%d", sym, exp))
		case exp == -1:
			den = append(den, sym)
		case exp < -1:
			den = append(den, fmt.Sprintf("%s%d", sym, -exp))
		}
	}
	part("kg", d.M)
	part("m", d.L)
	part("s", d.T)
	part("A", d.I)

	s := strings.Join(num, " ")
	if s == "" {
		s = "1"
	}
	if len(den) > 0 {
		s += " / " + strings.Join(den, " ")
	}

	return s
}
