// SPDX-License-Identifier: MIT

package refdata

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
)

type nuclideKey struct {
	symbol     string
	massNumber int
}

type massRange struct{ lo, hi int }

// Tables is the in-memory Store built from decoded reference files.
// A Tables value is never mutated after build, so it is safe for
// concurrent readers without locking.
type Tables struct {
	elementsBySymbol map[string]Element
	elementsByName   map[string]Element // folded name → element
	elementsByZ      map[int]Element

	massRanges map[string]massRange
	nuclides   map[nuclideKey]Isotope

	specialsByAlias map[string]SpecialParticle // symbol and aliases
	specialsByName  map[string]SpecialParticle // folded names
	specialSymbols  []string
}

var _ Store = (*Tables)(nil)

// fold normalises a case-insensitive name. cases.Caser is stateful, so a
// fresh one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// ElementBySymbol implements Store.
func (t *Tables) ElementBySymbol(symbol string) (Element, bool) {
	e, ok := t.elementsBySymbol[symbol]

	return e, ok
}

// ElementByName implements Store.
func (t *Tables) ElementByName(name string) (Element, bool) {
	e, ok := t.elementsByName[fold(name)]

	return e, ok
}

// ElementByAtomicNumber implements Store.
func (t *Tables) ElementByAtomicNumber(z int) (Element, bool) {
	e, ok := t.elementsByZ[z]

	return e, ok
}

// IsotopeBySymbolAndMassNumber implements Store. Mass numbers inside the
// element's known range without tabulated data yield a record whose optional
// fields are all empty.
func (t *Tables) IsotopeBySymbolAndMassNumber(symbol string, massNumber int) (Isotope, bool) {
	if iso, ok := t.nuclides[nuclideKey{symbol, massNumber}]; ok {
		return iso, true
	}
	r, ok := t.massRanges[symbol]
	if !ok || massNumber < r.lo || massNumber > r.hi {
		return Isotope{}, false
	}

	return Isotope{Symbol: symbol, MassNumber: massNumber}, true
}

// MassNumbers returns the inclusive range of known mass numbers for symbol.
func (t *Tables) MassNumbers(symbol string) (lo, hi int, ok bool) {
	r, ok := t.massRanges[symbol]

	return r.lo, r.hi, ok
}

// SpecialParticleByAlias implements Store.
func (t *Tables) SpecialParticleByAlias(alias string) (SpecialParticle, bool) {
	if s, ok := t.specialsByAlias[alias]; ok {
		return s, true
	}
	s, ok := t.specialsByName[fold(alias)]

	return s, ok
}

// Elements returns every element ordered by atomic number.
func (t *Tables) Elements() []Element {
	out := make([]Element, 0, len(t.elementsByZ))
	for _, e := range t.elementsByZ {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AtomicNumber < out[j].AtomicNumber })

	return out
}

// SpecialParticles returns every special particle, antiparticles included,
// in table order.
func (t *Tables) SpecialParticles() []SpecialParticle {
	out := make([]SpecialParticle, 0, len(t.specialSymbols))
	for _, sym := range t.specialSymbols {
		out = append(out, t.specialsByAlias[sym])
	}

	return out
}

// ---- build & validation -----------------------------------------------------

func build(ef elementsFile, isf isotopesFile, pf particlesFile) (*Tables, error) {
	t := &Tables{
		elementsBySymbol: make(map[string]Element, len(ef.Elements)),
		elementsByName:   make(map[string]Element, len(ef.Elements)),
		elementsByZ:      make(map[int]Element, len(ef.Elements)),
		massRanges:       make(map[string]massRange, len(isf.Isotopes)),
		nuclides:         make(map[nuclideKey]Isotope),
		specialsByAlias:  make(map[string]SpecialParticle),
		specialsByName:   make(map[string]SpecialParticle),
	}
	if err := t.addElements(ef.Elements); err != nil {
		return nil, err
	}
	if err := t.addIsotopes(isf.Isotopes); err != nil {
		return nil, err
	}
	if err := t.addParticles(pf.Particles); err != nil {
		return nil, err
	}

	return t, nil
}

func invalid(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidTable, format, args...)
}

func (t *Tables) addElements(entries []elementEntry) error {
	for _, e := range entries {
		if e.Symbol == "" || e.Name == "" || e.AtomicNumber < 1 {
			return invalid("element %+v: symbol, name and atomic_number are required", e)
		}
		folded := fold(e.Name)
		if _, dup := t.elementsBySymbol[e.Symbol]; dup {
			return invalid("duplicate element symbol %q", e.Symbol)
		}
		if _, dup := t.elementsByName[folded]; dup {
			return invalid("duplicate element name %q", e.Name)
		}
		if _, dup := t.elementsByZ[e.AtomicNumber]; dup {
			return invalid("duplicate atomic number %d", e.AtomicNumber)
		}
		rec := Element{
			Symbol:               e.Symbol,
			Name:                 e.Name,
			AtomicNumber:         e.AtomicNumber,
			StandardAtomicWeight: fromPtr(e.StandardAtomicWeight),
		}
		t.elementsBySymbol[e.Symbol] = rec
		t.elementsByName[folded] = rec
		t.elementsByZ[e.AtomicNumber] = rec
	}

	return nil
}

func (t *Tables) addIsotopes(entries []isotopeEntry) error {
	for _, e := range entries {
		el, ok := t.elementsBySymbol[e.Symbol]
		if !ok {
			return invalid("isotopes for unknown element %q", e.Symbol)
		}
		if _, dup := t.massRanges[e.Symbol]; dup {
			return invalid("duplicate isotope entry for %q", e.Symbol)
		}
		if len(e.MassNumbers) != 2 || e.MassNumbers[0] > e.MassNumbers[1] {
			return invalid("%s: mass_numbers must be [min, max], got %v", e.Symbol, e.MassNumbers)
		}
		r := massRange{lo: e.MassNumbers[0], hi: e.MassNumbers[1]}
		if r.lo < el.AtomicNumber {
			return invalid("%s: mass number %d is below atomic number %d", e.Symbol, r.lo, el.AtomicNumber)
		}
		t.massRanges[e.Symbol] = r

		for _, n := range e.Nuclides {
			if n.MassNumber < r.lo || n.MassNumber > r.hi {
				return invalid("%s-%d: outside known range %v", e.Symbol, n.MassNumber, e.MassNumbers)
			}
			key := nuclideKey{e.Symbol, n.MassNumber}
			if _, dup := t.nuclides[key]; dup {
				return invalid("duplicate nuclide %s-%d", e.Symbol, n.MassNumber)
			}
			if n.HalfLife != nil && n.Stable != math.IsInf(*n.HalfLife, 1) {
				return invalid("%s-%d: stable flag disagrees with half_life", e.Symbol, n.MassNumber)
			}
			t.nuclides[key] = Isotope{
				Symbol:     e.Symbol,
				MassNumber: n.MassNumber,
				AtomicMass: fromPtr(n.AtomicMass),
				HalfLife:   fromPtr(n.HalfLife),
				Spin:       fromPtr(n.Spin),
				Stable:     n.Stable,
			}
		}
	}

	return nil
}

func (t *Tables) addParticles(entries []particleEntry) error {
	for _, e := range entries {
		if e.Symbol == "" {
			return invalid("special particle without symbol")
		}
		rec := SpecialParticle{
			Symbol:       e.Symbol,
			Aliases:      e.Aliases,
			Names:        e.Names,
			Mass:         fromPtr(e.Mass),
			Charge:       e.Charge,
			Spin:         e.Spin,
			BaryonNumber: e.BaryonNumber,
			LeptonNumber: e.LeptonNumber,
			HalfLife:     fromPtr(e.HalfLife),
			Neutrino:     e.Neutrino,
			Antiparticle: e.Symbol,
			Nuclide:      e.Nuclide,
		}
		if e.Antiparticle != nil && e.Antiparticle.Symbol != e.Symbol {
			rec.Antiparticle = e.Antiparticle.Symbol
			if err := t.addSpecial(conjugate(rec, *e.Antiparticle)); err != nil {
				return err
			}
		}
		if err := t.addSpecial(rec); err != nil {
			return err
		}
	}

	return nil
}

// conjugate derives the antiparticle: same mass, spin and half-life; charge,
// baryon number and lepton number negated.
func conjugate(p SpecialParticle, c conjugateEntry) SpecialParticle {
	return SpecialParticle{
		Symbol:       c.Symbol,
		Aliases:      c.Aliases,
		Names:        c.Names,
		Mass:         p.Mass,
		Charge:       -p.Charge,
		Spin:         p.Spin,
		BaryonNumber: -p.BaryonNumber,
		LeptonNumber: -p.LeptonNumber,
		HalfLife:     p.HalfLife,
		Neutrino:     p.Neutrino,
		Antiparticle: p.Symbol,
		Nuclide:      c.Nuclide,
	}
}

func (t *Tables) addSpecial(rec SpecialParticle) error {
	keys := append([]string{rec.Symbol}, rec.Aliases...)
	for _, k := range keys {
		if _, dup := t.specialsByAlias[k]; dup {
			return invalid("duplicate special particle alias %q", k)
		}
		t.specialsByAlias[k] = rec
	}
	for _, n := range rec.Names {
		f := fold(n)
		if _, dup := t.specialsByName[f]; dup {
			return invalid("duplicate special particle name %q", n)
		}
		t.specialsByName[f] = rec
	}
	t.specialSymbols = append(t.specialSymbols, rec.Symbol)

	return nil
}
