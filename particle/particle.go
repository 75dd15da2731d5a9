// SPDX-License-Identifier: MIT

package particle

import (
	"math"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/particula/refdata"
)

// Particle is a resolved, immutable particle identity: exactly one of a
// special particle, an element, an isotope or an ion (element or isotope
// plus integer charge). Derived attributes are computed on first access and
// cached; the cache never invalidates because the identity cannot change.
//
// A *Particle is safe for concurrent use.
type Particle struct {
	kind Kind

	special refdata.SpecialParticle // KindSpecial only

	element    refdata.Element
	isotope    refdata.Isotope
	hasIsotope bool

	// charge is intrinsic for special particles, explicit for nuclides.
	charge refdata.Optional[int]

	symbol     string
	categories CategorySet

	input    string
	warnings []Warning

	store refdata.Store
	cache *sync.Map // attr → cached result
}

// New resolves identifier into a Particle.
//
// identifier is a string (symbol, name, alias, isotope or ion notation), an
// integer atomic number, or an existing Particle / *Particle, which is copied
// through its canonical form against the tables it was resolved with. Any
// other type fails with ErrArgumentType.
//
//	p, err := particle.New("Fe", particle.WithCharge(17), particle.WithMassNumber(56))
//	p.String() // "Fe-56 17+"
//	q, err := particle.New(26) // "Fe"
func New(identifier any, opts ...Option) (*Particle, error) {
	var (
		input        string
		atomicNumber refdata.Optional[int]
	)
	switch v := identifier.(type) {
	case string:
		input = v
	case *Particle:
		if v == nil {
			return nil, errors.Wrap(ErrArgumentType, "identifier is a nil *Particle")
		}
		input, opts = v.symbol, copyOptions(v.store, opts)
	case Particle:
		input, opts = v.symbol, copyOptions(v.store, opts)
	default:
		z, ok, err := asInt("identifier", identifier)
		if err != nil || !ok {
			return nil, errors.Wrapf(ErrArgumentType, "identifier of type %T; want string, integer or Particle", identifier)
		}
		atomicNumber = refdata.Some(z)
	}

	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if z, ok := atomicNumber.Get(); ok {
		el, known := c.store.ElementByAtomicNumber(z)
		if !known {
			return nil, fail(ErrInvalidParticle, "no element has atomic number %d", z)
		}
		input = el.Symbol
	}
	id, ws, err := parse(input, c)
	if err != nil {
		return nil, err
	}
	p, err := resolve(id, c.store)
	if err != nil {
		return nil, err
	}
	p.warnings = ws
	emit(c.logger, p.symbol, ws)

	return p, nil
}

// MustNew is New that panics on error, for tests, examples and package-level
// variables holding literal identifiers.
func MustNew(identifier any, opts ...Option) *Particle {
	p, err := New(identifier, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// NewLoose is New for decoded, untyped input (YAML, JSON, CLI rows): z and
// massNumb may be nil or any Go integer type; anything else fails with
// ErrArgumentType.
func NewLoose(identifier, z, massNumb any, opts ...Option) (*Particle, error) {
	if q, ok, err := asInt("Z", z); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, WithCharge(q))
	}
	if a, ok, err := asInt("mass_numb", massNumb); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, WithMassNumber(a))
	}

	return New(identifier, opts...)
}

// copyOptions puts the source particle's tables ahead of the caller's
// options, so a copy resolves where the original did unless overridden.
func copyOptions(store refdata.Store, opts []Option) []Option {
	if store == nil {
		return opts
	}

	return append([]Option{WithStore(store)}, opts...)
}

func asInt(name string, v any) (int, bool, error) {
	switch n := v.(type) {
	case nil:
		return 0, false, nil
	case int:
		return n, true, nil
	case int8:
		return int(n), true, nil
	case int16:
		return int(n), true, nil
	case int32:
		return int(n), true, nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false, errOverflow(name, v)
		}

		return int(n), true, nil
	case uint:
		return fromUint(name, v, uint64(n))
	case uint8:
		return int(n), true, nil
	case uint16:
		return int(n), true, nil
	case uint32:
		return fromUint(name, v, uint64(n))
	case uint64:
		return fromUint(name, v, n)
	default:
		return 0, false, errors.Wrapf(ErrArgumentType, "%s of type %T; want an integer", name, v)
	}
}

func fromUint(name string, v any, n uint64) (int, bool, error) {
	if n > math.MaxInt {
		return 0, false, errOverflow(name, v)
	}

	return int(n), true, nil
}

func errOverflow(name string, v any) error {
	return errors.Wrapf(ErrArgumentType, "%s %v (%T) overflows int", name, v, v)
}

// Kind reports which shape of particle p is.
func (p *Particle) Kind() Kind { return p.kind }

// String returns the canonical short form, e.g. "Fe-56 17+".
func (p *Particle) String() string { return p.symbol }

// Repr returns the constructor-replay form, e.g. `Particle("Fe-56 17+")`.
func (p *Particle) Repr() string { return "Particle(" + strconv.Quote(p.symbol) + ")" }

// GoString implements fmt.GoStringer with the replay form.
func (p *Particle) GoString() string { return p.Repr() }

// Input returns the raw identifier text p was built from.
func (p *Particle) Input() string { return p.input }

// Warnings returns the non-fatal warnings raised while constructing p.
func (p *Particle) Warnings() []Warning {
	return append([]Warning(nil), p.warnings...)
}

// Element returns the element symbol.
func (p *Particle) Element() (string, error) {
	if p.kind == KindSpecial {
		return "", fail(ErrInvalidElement, "%s is not an element, isotope or ion", p.symbol)
	}

	return p.element.Symbol, nil
}

// Isotope returns the isotope symbol ("Fe-56", "D", "H-1").
func (p *Particle) Isotope() (string, error) {
	if !p.hasIsotope {
		return "", fail(ErrInvalidIsotope, "%s has no mass number", p.symbol)
	}

	return isotopeSymbol(p.element.Symbol, p.isotope.MassNumber), nil
}

// Ion returns the ion symbol ("Fe-56 17+", "p+").
func (p *Particle) Ion() (string, error) {
	if p.kind != KindIon {
		return "", fail(ErrInvalidIon, "%s is not an ion", p.symbol)
	}

	return p.symbol, nil
}

// Antiparticle returns the charge conjugate of a special particle (or of the
// bare proton). Nuclides have no antiparticle in the reference tables.
func (p *Particle) Antiparticle() (*Particle, error) {
	rec, ok := p.special, p.kind == KindSpecial
	if !ok {
		rec, ok = p.store.SpecialParticleByAlias(p.symbol)
	}
	if !ok || rec.Antiparticle == "" {
		return nil, fail(ErrInvalidParticle, "%s has no tabulated antiparticle", p.symbol)
	}

	return New(rec.Antiparticle, WithStore(p.store))
}

// Equal reports whether other is a Particle with the same canonical identity.
// Non-Particle values compare unequal without error.
func (p *Particle) Equal(other any) bool {
	var q *Particle
	switch v := other.(type) {
	case *Particle:
		q = v
	case Particle:
		q = &v
	default:
		return false
	}
	if p == nil || q == nil {
		return p == q
	}

	return p.identity() == q.identity()
}

// identityKey is the tuple that fully determines equality.
type identityKey struct {
	kind       Kind
	special    string
	z, a       int
	charge     int
	hasCharge  bool
	hasIsotope bool
}

func (p *Particle) identity() identityKey {
	k := identityKey{kind: p.kind, hasIsotope: p.hasIsotope}
	if p.kind == KindSpecial {
		k.special = p.special.Symbol

		return k
	}
	k.z = p.element.AtomicNumber
	if p.hasIsotope {
		k.a = p.isotope.MassNumber
	}
	k.charge, k.hasCharge = p.charge.Get()

	return k
}

// isBareProton reports the H-1 1+ nuclide, rendered as "p+".
func (p *Particle) isBareProton() bool {
	q, ok := p.charge.Get()

	return p.kind == KindIon && p.hasIsotope && p.element.AtomicNumber == 1 &&
		p.isotope.MassNumber == 1 && ok && q == 1
}

