// SPDX-License-Identifier: MIT
// Package: particula/particle
//
// resolver.go — Identity tokens + reference tables → canonical Particle.
//
// Validation order (first failure wins):
//  1. special particle symbol must exist in the special-particle table;
//  2. element symbol must exist and agree with any atomic number token;
//  3. a mass number must name a known nuclide of that element (the isotope
//     table is the only plausibility bound);
//  4. a positive charge may not exceed the proton count.

package particle

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/particula/refdata"
)

// massRanger is implemented by stores that can report the known mass-number
// range of an element; used only to enrich error hints.
type massRanger interface {
	MassNumbers(symbol string) (lo, hi int, ok bool)
}

func resolve(id Identity, store refdata.Store) (*Particle, error) {
	p := &Particle{
		kind:  id.Kind,
		input: id.Input,
		store: store,
		cache: new(sync.Map),
	}

	if id.Kind == KindSpecial {
		rec, ok := store.SpecialParticleByAlias(id.Symbol)
		if !ok {
			return nil, fail(ErrInvalidParticle, "%q: unknown special particle %q", id.Input, id.Symbol)
		}
		p.special = rec
		p.charge = refdata.Some(rec.Charge)
		p.finish()

		return p, nil
	}

	el, ok := store.ElementBySymbol(id.Symbol)
	if !ok {
		return nil, fail(ErrInvalidParticle, "%q: unknown element %q", id.Input, id.Symbol)
	}
	if z, ok := id.AtomicNumber.Get(); ok && z != el.AtomicNumber {
		return nil, fail(ErrInvalidParticle, "%q: atomic number %d does not match %s (Z=%d)",
			id.Input, z, el.Symbol, el.AtomicNumber)
	}
	p.element = el

	if a, ok := id.MassNumber.Get(); ok {
		iso, known := store.IsotopeBySymbolAndMassNumber(el.Symbol, a)
		if !known {
			return nil, unknownNuclide(store, id, el, a)
		}
		p.isotope, p.hasIsotope = iso, true
	}

	if q, ok := id.Charge.Get(); ok {
		if q > el.AtomicNumber {
			return nil, fail(ErrInvalidParticle, "%q: charge %d+ exceeds the %d protons of %s",
				id.Input, q, el.AtomicNumber, el.Symbol)
		}
		p.charge = id.Charge
	}
	p.finish()

	return p, nil
}

func unknownNuclide(store refdata.Store, id Identity, el refdata.Element, a int) error {
	if r, ok := store.(massRanger); ok {
		if lo, hi, ok := r.MassNumbers(el.Symbol); ok {
			return failHint(ErrInvalidParticle,
				fmt.Sprintf("known mass numbers for %s are %d through %d", el.Symbol, lo, hi),
				"%q: %s-%d is not a known nuclide", id.Input, el.Symbol, a)
		}
	}

	return fail(ErrInvalidParticle, "%q: %s-%d is not a known nuclide", id.Input, el.Symbol, a)
}

// finish derives the canonical symbol and category set; both are pure
// functions of the resolved record and never change afterwards.
func (p *Particle) finish() {
	p.symbol = canonicalSymbol(p)
	p.categories = classify(p)
}

// canonicalSymbol renders the short form used for display and round-trips:
// "e-", "Fe", "Fe-56", "D", "Fe-56 17+", "D 1+", "p+".
func canonicalSymbol(p *Particle) string {
	if p.kind == KindSpecial {
		return p.special.Symbol
	}
	base := p.element.Symbol
	if p.hasIsotope {
		base = isotopeSymbol(p.element.Symbol, p.isotope.MassNumber)
	}
	q, ok := p.charge.Get()
	if !ok {
		return base
	}
	if p.isBareProton() {
		return "p+"
	}

	return base + " " + chargeNotation(q)
}

func isotopeSymbol(symbol string, massNumber int) string {
	if symbol == "H" {
		switch massNumber {
		case 2:
			return "D"
		case 3:
			return "T"
		}
	}

	return fmt.Sprintf("%s-%d", symbol, massNumber)
}

func chargeNotation(q int) string {
	if q < 0 {
		return fmt.Sprintf("%d-", -q)
	}

	return fmt.Sprintf("%d+", q)
}
