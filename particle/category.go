// SPDX-License-Identifier: MIT
// Package: particula/particle
//
// category.go — closed category vocabulary and the IsCategory query.
//
// Tags are derived once, at resolution time, from the canonical record:
//
//	element, isotope, ion, nuclide   shape of a nuclide particle
//	charged, uncharged               only when a charge is known
//	lepton/antilepton, neutrino/antineutrino, baryon/antibaryon
//	                                 sign of lepton/baryon number (special particles, bare proton)
//	fermion, boson                   spin; for nuclides the parity of A + bound electrons
//	matter, antimatter               nuclides are matter; special particles by sign convention
//	stable, unstable                 only when a half-life (or stability flag) is known
//
// Query rules (IsCategory):
//   • every requested and excluded name must be in the vocabulary;
//   • the same tag may not be both required and excluded;
//   • MatchAny with an empty require set but a non-empty exclude set is
//     rejected (the intent is ambiguous);
//   • any excluded tag present → false; otherwise all-of (default) or
//     any-of (MatchAny) over the required tags.

package particle

import (
	"math"
	"math/bits"
	"strings"

	"github.com/cockroachdb/errors"
)

// Category is one recognised classification tag.
type Category uint8

const (
	CategoryElement Category = iota
	CategoryIsotope
	CategoryIon
	CategoryCharged
	CategoryUncharged
	CategoryLepton
	CategoryAntilepton
	CategoryNeutrino
	CategoryAntineutrino
	CategoryBaryon
	CategoryAntibaryon
	CategoryFermion
	CategoryBoson
	CategoryMatter
	CategoryAntimatter
	CategoryStable
	CategoryUnstable
	CategoryNuclide

	numCategories
)

var categoryNames = [numCategories]string{
	CategoryElement:      "element",
	CategoryIsotope:      "isotope",
	CategoryIon:          "ion",
	CategoryCharged:      "charged",
	CategoryUncharged:    "uncharged",
	CategoryLepton:       "lepton",
	CategoryAntilepton:   "antilepton",
	CategoryNeutrino:     "neutrino",
	CategoryAntineutrino: "antineutrino",
	CategoryBaryon:       "baryon",
	CategoryAntibaryon:   "antibaryon",
	CategoryFermion:      "fermion",
	CategoryBoson:        "boson",
	CategoryMatter:       "matter",
	CategoryAntimatter:   "antimatter",
	CategoryStable:       "stable",
	CategoryUnstable:     "unstable",
	CategoryNuclide:      "nuclide",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}

	return "invalid"
}

// ParseCategory maps a tag name to its Category.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}

	return 0, failHint(ErrClassification,
		"valid categories: "+strings.Join(categoryNames[:], ", "),
		"unknown category %q", name)
}

// CategorySet is a set of categories.
type CategorySet uint32

// NewCategorySet builds a set from tags.
func NewCategorySet(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s |= 1 << c
	}

	return s
}

// Has reports membership.
func (s CategorySet) Has(c Category) bool { return s&(1<<c) != 0 }

// Len returns the number of tags in s.
func (s CategorySet) Len() int { return bits.OnesCount32(uint32(s)) }

// Names lists the tag names in vocabulary order.
func (s CategorySet) Names() []string {
	out := make([]string, 0, s.Len())
	for c := Category(0); c < numCategories; c++ {
		if s.Has(c) {
			out = append(out, c.String())
		}
	}

	return out
}

func (s CategorySet) String() string { return "{" + strings.Join(s.Names(), ", ") + "}" }

func parseCategorySet(names []string) (CategorySet, error) {
	var s CategorySet
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return 0, err
		}
		s |= 1 << c
	}

	return s, nil
}

// QueryOption adjusts an IsCategory query.
type QueryOption func(*categoryQuery)

type categoryQuery struct {
	exclude []string
	any     bool
}

// Exclude rejects particles carrying any of tags.
func Exclude(tags ...string) QueryOption {
	return func(q *categoryQuery) { q.exclude = append(q.exclude, tags...) }
}

// MatchAny switches the query from all-of to any-of over the required tags.
func MatchAny() QueryOption {
	return func(q *categoryQuery) { q.any = true }
}

// Categories returns every tag p carries.
func (p *Particle) Categories() CategorySet { return p.categories }

// IsCategory reports whether p satisfies the query. A single tag is passed
// as a one-element slice; a set as CategorySet.Names().
//
//	p.IsCategory([]string{"fermion"})
//	p.IsCategory([]string{"boson", "fermion"}, particle.MatchAny())
//	p.IsCategory([]string{"matter"}, particle.Exclude("antimatter"))
func (p *Particle) IsCategory(require []string, opts ...QueryOption) (bool, error) {
	var q categoryQuery
	for _, opt := range opts {
		opt(&q)
	}

	req, err := parseCategorySet(require)
	if err != nil {
		return false, err
	}
	excl, err := parseCategorySet(q.exclude)
	if err != nil {
		return false, err
	}
	if overlap := req & excl; overlap != 0 {
		return false, fail(ErrClassification, "categories %v are both required and excluded", overlap)
	}
	if q.any && req == 0 && excl != 0 {
		return false, errors.WithHint(
			fail(ErrClassification, "any-of query with exclusions but no required categories"),
			"pass at least one required category, or drop MatchAny")
	}

	if p.categories&excl != 0 {
		return false, nil
	}
	if q.any {
		return p.categories&req != 0, nil
	}

	return p.categories&req == req, nil
}

// classify derives the category set from the resolved record.
func classify(p *Particle) CategorySet {
	var s CategorySet
	add := func(c Category) { s |= 1 << c }

	if q, ok := p.charge.Get(); ok {
		if q == 0 {
			add(CategoryUncharged)
		} else {
			add(CategoryCharged)
		}
	}

	if p.kind == KindSpecial {
		rec := p.special
		switch {
		case rec.LeptonNumber > 0:
			add(CategoryLepton)
		case rec.LeptonNumber < 0:
			add(CategoryAntilepton)
		}
		if rec.Neutrino {
			if rec.LeptonNumber < 0 {
				add(CategoryAntineutrino)
			} else {
				add(CategoryNeutrino)
			}
		}
		switch {
		case rec.BaryonNumber > 0:
			add(CategoryBaryon)
		case rec.BaryonNumber < 0:
			add(CategoryAntibaryon)
		}
		if isHalfInteger(rec.Spin) {
			add(CategoryFermion)
		} else {
			add(CategoryBoson)
		}
		switch {
		case rec.IsAntimatter():
			add(CategoryAntimatter)
		case rec.BaryonNumber > 0 || rec.LeptonNumber > 0:
			add(CategoryMatter)
		}
		addStability(add, rec.HalfLife.Get)

		return s
	}

	add(CategoryElement)
	add(CategoryMatter)
	if p.hasIsotope {
		add(CategoryIsotope)
		add(CategoryNuclide)
	}
	if p.kind == KindIon {
		add(CategoryIon)
	}
	if p.isBareProton() {
		add(CategoryBaryon)
	}
	if q, ok := p.charge.Get(); ok && p.hasIsotope {
		// Fermions in the bound system: nucleons plus remaining electrons.
		if (p.isotope.MassNumber+p.element.AtomicNumber-q)%2 != 0 {
			add(CategoryFermion)
		} else {
			add(CategoryBoson)
		}
	}
	if p.hasIsotope {
		iso := p.isotope
		addStability(add, func() (float64, bool) {
			if hl, ok := iso.HalfLife.Get(); ok {
				return hl, true
			}
			if iso.Stable {
				return math.Inf(1), true
			}

			return 0, false
		})
	}

	return s
}

func addStability(add func(Category), halfLife func() (float64, bool)) {
	hl, ok := halfLife()
	if !ok {
		return
	}
	if math.IsInf(hl, 1) {
		add(CategoryStable)
	} else {
		add(CategoryUnstable)
	}
}

func isHalfInteger(spin float64) bool {
	return math.Mod(math.Abs(spin)*2, 2) == 1
}
