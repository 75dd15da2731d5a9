// SPDX-License-Identifier: MIT
// Package: particula/particle
//
// attributes.go — lazily computed physical attributes.
//
// Every accessor checks applicability against the particle kind first and
// fails with a specific sentinel rather than a placeholder value:
//
//	Mass                  any kind with a known value        ErrMissingData
//	NuclideMass           isotope/ion (neutron: m_n)         ErrInvalidIsotope
//	StandardAtomicWeight  element without mass number        ErrInvalidElement / ErrMissingData
//	AtomicNumber          element/isotope/ion                ErrInvalidElement
//	MassNumber            isotope/ion with mass number       ErrInvalidIsotope
//	IntegerCharge, Charge known charge                       ErrCharge
//	ElementName           element/isotope/ion                ErrInvalidElement
//	HalfLife              published value                    ErrMissingData (ErrInvalidIsotope for elements)
//	Spin                  published value                    ErrMissingData
//	BaryonNumber          all but mass-number-less elements  ErrAtomic
//	BindingEnergy         isotope/ion, single nucleons = 0   ErrInvalidIsotope
//
// Results (values and errors alike) are memoised per particle in a sync.Map.
// Concurrent first accesses may compute twice; both results are identical
// and LoadOrStore keeps the first.

package particle

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/particula/quantity"
	"go.uber.org/zap"
)

type attr uint8

const (
	attrMass attr = iota
	attrNuclideMass
	attrStandardAtomicWeight
	attrHalfLife
	attrBindingEnergy
)

type cached[T any] struct {
	val T
	err error
}

// memo computes fn once per (particle, key).
func memo[T any](p *Particle, key attr, fn func() (T, error)) (T, error) {
	if v, ok := p.cache.Load(key); ok {
		c := v.(cached[T])

		return c.val, c.err
	}
	val, err := fn()
	v, _ := p.cache.LoadOrStore(key, cached[T]{val: val, err: err})
	c := v.(cached[T])

	return c.val, c.err
}

// Mass returns the particle mass in kg. Ions lose q electron masses from the
// neutral value; fully stripped nuclei report the nuclide mass.
func (p *Particle) Mass() (quantity.Quantity, error) {
	return memo(p, attrMass, p.mass)
}

func (p *Particle) mass() (quantity.Quantity, error) {
	if p.kind == KindSpecial {
		m, ok := p.special.Mass.Get()
		if !ok {
			return quantity.Quantity{}, fail(ErrMissingData, "mass of %s is not known", p.symbol)
		}

		return quantity.New(m, quantity.Kilogram), nil
	}

	q, _ := p.charge.Get()
	var neutral quantity.Quantity
	if p.hasIsotope {
		if q == p.element.AtomicNumber {
			return p.NuclideMass()
		}
		u, ok := p.isotope.AtomicMass.Get()
		if !ok {
			return quantity.Quantity{}, fail(ErrMissingData, "atomic mass of %s is not tabulated", p.symbol)
		}
		neutral = quantity.New(u, quantity.AtomicMassUnit)
	} else {
		w, ok := p.element.StandardAtomicWeight.Get()
		if !ok {
			return quantity.Quantity{}, fail(ErrMissingData, "%s has no standard atomic weight", p.element.Symbol)
		}
		neutral = quantity.New(w, quantity.AtomicMassUnit)
	}

	m, err := neutral.To(quantity.Kilogram)
	if err != nil {
		return quantity.Quantity{}, err
	}

	return m.Sub(quantity.ElectronMass.Scale(float64(q)))
}

// NuclideMass returns the mass of the bare nucleus in kg.
func (p *Particle) NuclideMass() (quantity.Quantity, error) {
	return memo(p, attrNuclideMass, p.nuclideMass)
}

func (p *Particle) nuclideMass() (quantity.Quantity, error) {
	if p.isSingleNucleon() {
		m, _ := p.special.Mass.Get()

		return quantity.New(m, quantity.Kilogram), nil
	}
	if p.kind == KindSpecial || !p.hasIsotope {
		return quantity.Quantity{}, fail(ErrInvalidIsotope, "nuclide mass of %s: not an isotope", p.symbol)
	}

	z, a := p.element.AtomicNumber, p.isotope.MassNumber
	switch {
	case z == 1 && a == 1:
		return quantity.ProtonMass, nil
	case z == 1 && a == 2:
		return quantity.DeuteronMass, nil
	case z == 1 && a == 3:
		return quantity.TritonMass, nil
	case z == 2 && a == 4:
		return quantity.AlphaMass, nil
	}

	u, ok := p.isotope.AtomicMass.Get()
	if !ok {
		return quantity.Quantity{}, fail(ErrMissingData, "atomic mass of %s is not tabulated",
			isotopeSymbol(p.element.Symbol, a))
	}
	atom, err := quantity.New(u, quantity.AtomicMassUnit).To(quantity.Kilogram)
	if err != nil {
		return quantity.Quantity{}, err
	}

	return atom.Sub(quantity.ElectronMass.Scale(float64(z)))
}

// StandardAtomicWeight returns the element's standard atomic weight in kg.
func (p *Particle) StandardAtomicWeight() (quantity.Quantity, error) {
	return memo(p, attrStandardAtomicWeight, func() (quantity.Quantity, error) {
		if p.kind == KindSpecial || p.hasIsotope {
			return quantity.Quantity{}, fail(ErrInvalidElement,
				"standard atomic weight applies to elements without a mass number, not %s", p.symbol)
		}
		w, ok := p.element.StandardAtomicWeight.Get()
		if !ok {
			return quantity.Quantity{}, fail(ErrMissingData, "%s has no standard atomic weight", p.element.Symbol)
		}

		return quantity.New(w, quantity.AtomicMassUnit).To(quantity.Kilogram)
	})
}

// AtomicNumber returns the proton count.
func (p *Particle) AtomicNumber() (int, error) {
	if p.kind == KindSpecial {
		return 0, fail(ErrInvalidElement, "atomic number of %s: not an element", p.symbol)
	}

	return p.element.AtomicNumber, nil
}

// MassNumber returns the nucleon count.
func (p *Particle) MassNumber() (int, error) {
	if !p.hasIsotope {
		return 0, fail(ErrInvalidIsotope, "mass number of %s: not an isotope", p.symbol)
	}

	return p.isotope.MassNumber, nil
}

// ElementName returns the lower-case element name ("iron").
func (p *Particle) ElementName() (string, error) {
	if p.kind == KindSpecial {
		return "", fail(ErrInvalidElement, "element name of %s: not an element", p.symbol)
	}

	return p.element.Name, nil
}

// IntegerCharge returns the charge in units of the elementary charge.
func (p *Particle) IntegerCharge() (int, error) {
	q, ok := p.charge.Get()
	if !ok {
		return 0, failHint(ErrCharge,
			"give the ionization state explicitly, e.g. WithCharge(0) or \""+p.symbol+" 1+\"",
			"charge of %s is undefined", p.symbol)
	}

	return q, nil
}

// Charge returns the electric charge in coulombs.
func (p *Particle) Charge() (quantity.Quantity, error) {
	q, err := p.IntegerCharge()
	if err != nil {
		return quantity.Quantity{}, err
	}

	return quantity.ElementaryCharge.Scale(float64(q)), nil
}

// HalfLife returns the half-life in seconds; +Inf for stable particles.
func (p *Particle) HalfLife() (quantity.Quantity, error) {
	return memo(p, attrHalfLife, func() (quantity.Quantity, error) {
		if p.kind == KindSpecial {
			hl, ok := p.special.HalfLife.Get()
			if !ok {
				return quantity.Quantity{}, fail(ErrMissingData, "half-life of %s is not known", p.symbol)
			}

			return quantity.New(hl, quantity.Second), nil
		}
		if !p.hasIsotope {
			return quantity.Quantity{}, fail(ErrInvalidIsotope, "half-life of %s: not an isotope", p.symbol)
		}
		hl, ok := p.isotope.HalfLife.Get()
		if !ok {
			return quantity.Quantity{}, fail(ErrMissingData, "half-life of %s is not tabulated", p.symbol)
		}

		return quantity.New(hl, quantity.Second), nil
	})
}

// Spin returns the intrinsic (or nuclear) spin in units of ħ.
func (p *Particle) Spin() (float64, error) {
	if p.kind == KindSpecial {
		return p.special.Spin, nil
	}
	if p.hasIsotope {
		if s, ok := p.isotope.Spin.Get(); ok {
			return s, nil
		}
	}

	return 0, fail(ErrMissingData, "spin of %s is not tabulated", p.symbol)
}

// BaryonNumber returns the baryon number. A nuclide's baryon number is its
// mass number, so an element given without one has no defined value.
func (p *Particle) BaryonNumber() (int, error) {
	if p.kind == KindSpecial {
		return p.special.BaryonNumber, nil
	}
	if !p.hasIsotope {
		return 0, errors.WithHint(
			fail(ErrAtomic, "baryon number of %s is undefined without a mass number", p.symbol),
			"specify the isotope, e.g. WithMassNumber(A)")
	}

	return p.isotope.MassNumber, nil
}

// LeptonNumber returns the lepton number; zero for every nuclide.
func (p *Particle) LeptonNumber() int {
	if p.kind == KindSpecial {
		return p.special.LeptonNumber
	}

	return 0
}

// BindingEnergy returns the nuclear binding energy in joules:
// (Z·m_p + (A−Z)·m_n − m_nuclide)·c². Single nucleons are zero.
func (p *Particle) BindingEnergy() (quantity.Quantity, error) {
	return memo(p, attrBindingEnergy, func() (quantity.Quantity, error) {
		zero := quantity.New(0, quantity.Joule)
		if p.isSingleNucleon() {
			return zero, nil
		}
		if p.kind == KindSpecial || !p.hasIsotope {
			return quantity.Quantity{}, fail(ErrInvalidIsotope, "binding energy of %s: not an isotope", p.symbol)
		}
		if p.isotope.MassNumber == 1 {
			return zero, nil
		}

		nuclide, err := p.NuclideMass()
		if err != nil {
			return quantity.Quantity{}, err
		}
		z, a := float64(p.element.AtomicNumber), float64(p.isotope.MassNumber)
		nucleons, err := quantity.ProtonMass.Scale(z).Add(quantity.NeutronMass.Scale(a - z))
		if err != nil {
			return quantity.Quantity{}, err
		}
		defect, err := nucleons.Sub(nuclide)
		if err != nil {
			return quantity.Quantity{}, err
		}

		return defect.Mul(quantity.SpeedOfLight).Mul(quantity.SpeedOfLight), nil
	})
}

// ReducedMass returns m₁·m₂/(m₁+m₂) in kg. other may be a Particle, an
// identifier string (resolved against the same tables) or a mass Quantity.
// Two massless particles have no reduced mass and fail with ErrMissingData.
func (p *Particle) ReducedMass(other any) (quantity.Quantity, error) {
	m1, err := p.Mass()
	if err != nil {
		return quantity.Quantity{}, err
	}

	var m2 quantity.Quantity
	switch v := other.(type) {
	case *Particle:
		if v == nil {
			return quantity.Quantity{}, errors.Wrap(ErrArgumentType, "reduced mass with a nil *Particle")
		}
		m2, err = v.Mass()
	case Particle:
		m2, err = v.Mass()
	case string:
		q, perr := New(v, WithStore(p.store), WithLogger(zap.NewNop()))
		if perr != nil {
			return quantity.Quantity{}, errors.Wrapf(errors.Mark(perr, ErrArgumentType), "reduced mass with %q", v)
		}
		m2, err = q.Mass()
	case quantity.Quantity:
		if v.Dim() != quantity.Kilogram.Dim {
			return quantity.Quantity{}, errors.Wrapf(ErrArgumentType, "reduced mass with %v: not a mass", v)
		}
		m2 = v
	default:
		return quantity.Quantity{}, errors.Wrapf(ErrArgumentType, "reduced mass with %T", other)
	}
	if err != nil {
		return quantity.Quantity{}, err
	}

	sum, err := m1.Add(m2)
	if err != nil {
		return quantity.Quantity{}, err
	}
	if sum.SI() == 0 {
		return quantity.Quantity{}, fail(ErrMissingData, "reduced mass of %s with %v: both masses are zero", p.symbol, m2)
	}

	return m1.Mul(m2).Div(sum), nil
}

// isSingleNucleon reports the neutron (and antineutron), whose nuclide mass
// is its own mass and whose binding energy is zero by convention.
func (p *Particle) isSingleNucleon() bool {
	return p.kind == KindSpecial && p.special.Charge == 0 &&
		(p.special.BaryonNumber == 1 || p.special.BaryonNumber == -1) && p.special.Mass.Valid()
}
