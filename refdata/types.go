// SPDX-License-Identifier: MIT
// Package: particula/refdata
//
// types.go — immutable reference records and the Store lookup contract.
//
// Contract:
//   • Records are values. Slices inside a record (aliases, names) are shared
//     with the tables and MUST be treated as read-only by callers.
//   • Optional data is carried by Optional[T]; a missing value is never
//     represented by a zero or NaN placeholder.
//   • Every lookup is O(1) and returns (record, false) on a miss.

package refdata

// Optional holds a value that the reference tables may not publish.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a published value.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns the empty Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is published.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// Valid reports whether a value is published.
func (o Optional[T]) Valid() bool { return o.ok }

// fromPtr converts a decoded optional field.
func fromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// Element is one row of the periodic table.
type Element struct {
	Symbol       string
	Name         string
	AtomicNumber int

	// StandardAtomicWeight is in unified atomic mass units (u).
	StandardAtomicWeight Optional[float64]
}

// Isotope is a known nuclide of an element.
type Isotope struct {
	Symbol     string // element symbol
	MassNumber int

	AtomicMass Optional[float64] // neutral-atom mass in u
	HalfLife   Optional[float64] // seconds, +Inf when stable
	Spin       Optional[float64] // nuclear spin in units of ħ
	Stable     bool
}

// SpecialParticle is a subatomic particle or antiparticle addressed by symbol.
type SpecialParticle struct {
	Symbol  string
	Aliases []string // case-sensitive alternative symbols
	Names   []string // case-insensitive names

	Mass         Optional[float64] // kg
	Charge       int               // in units of the elementary charge
	Spin         float64
	BaryonNumber int
	LeptonNumber int
	HalfLife     Optional[float64] // seconds, +Inf when stable
	Neutrino     bool

	// Antiparticle is the symbol of the charge conjugate. Self-conjugate
	// particles reference themselves.
	Antiparticle string

	// Nuclide is the canonical nuclide notation for bare nuclei ("H-1 1+"),
	// empty otherwise.
	Nuclide string
}

// IsAntimatter reports the sign convention: negative baryon or lepton number.
func (s SpecialParticle) IsAntimatter() bool {
	return s.BaryonNumber < 0 || s.LeptonNumber < 0
}

// Store is the read-only lookup surface the particle resolver depends on.
type Store interface {
	// ElementBySymbol looks up a case-sensitive element symbol ("Fe").
	ElementBySymbol(symbol string) (Element, bool)

	// ElementByName looks up a case-insensitive element name ("iron").
	ElementByName(name string) (Element, bool)

	// ElementByAtomicNumber looks up an element by proton count.
	ElementByAtomicNumber(z int) (Element, bool)

	// IsotopeBySymbolAndMassNumber returns the nuclide record when
	// (symbol, massNumber) is a known nuclide.
	IsotopeBySymbolAndMassNumber(symbol string, massNumber int) (Isotope, bool)

	// SpecialParticleByAlias looks up a symbol, alias (case-sensitive) or
	// name (case-insensitive).
	SpecialParticleByAlias(alias string) (SpecialParticle, bool)
}
