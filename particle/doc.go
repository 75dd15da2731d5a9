// SPDX-License-Identifier: MIT
// Package particle turns loosely written particle identifiers into validated,
// immutable Particle values and answers questions about them.
//
// Overview:
//
//   - New parses an identifier ("e-", "positron", "Fe", "iron-56", "D 1+",
//     "He-4++", "alpha", "p") together with optional explicit charge and mass
//     number, validates it against the reference tables in package refdata,
//     and returns a *Particle of one of four kinds: special, element, isotope
//     or ion.
//   - Every Particle has a canonical short form (String) that round-trips:
//     New(p.String()) is Equal to p.
//   - Derived physical attributes (mass, nuclide mass, charge, half-life,
//     spin, baryon/lepton number, binding energy, reduced mass) are computed
//     on first access and cached for the life of the Particle.
//   - Categories classify a particle over a closed vocabulary (lepton,
//     baryon, fermion, isotope, stable, ...); IsCategory queries that set
//     with all-of, any-of and exclusion semantics.
//
// Identifier rules:
//
//   - Element symbols, special-particle symbols and aliases are
//     case-sensitive ("Fe", "e-", "mu+"); element and particle names are not
//     ("IRON", "Positron").
//   - An integer identifier is an atomic number: New(26) is "Fe", and
//     WithCharge/WithMassNumber apply as they do to the symbol.
//   - Charge is written after the nuclide: "Fe-56 17+", "Fe-56 +17",
//     "He-4++", "H-1+". WithCharge supplies it explicitly.
//   - The bare proton is both a special particle ("p", "p+", "proton") and
//     the nuclide H-1 1+; it always renders as "p+".
//   - Explicit arguments that repeat what the identifier implies are
//     accepted with a Warning; contradicting ones fail.
//
// Attribute gating:
//
//	Mass                       Fe, Fe-56, Fe-56 17+, e-, n       (not nu_e: ErrMissingData)
//	NuclideMass, BindingEnergy Fe-56, D 1+, p+, n               (not Fe: ErrInvalidIsotope)
//	StandardAtomicWeight       Fe                                (not Fe-56, alpha: ErrInvalidElement)
//	IntegerCharge, Charge      e-, Fe 0+, Fe-56 17+              (not Fe: ErrCharge)
//	BaryonNumber               e-, Fe-56                         (not Fe: ErrAtomic)
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrAtomic: matched by every resolution and attribute failure.
//   - ErrInvalidParticle: unparseable, unknown or contradictory identifier.
//   - ErrInvalidElement, ErrInvalidIsotope, ErrInvalidIon: an attribute that
//     needs an element, a mass number or a nonzero charge.
//   - ErrCharge: no charge is known.
//   - ErrMissingData: the attribute applies but is not tabulated.
//   - ErrClassification: unknown category or contradictory query.
//   - ErrArgumentType: a Go value of the wrong type (not matched by ErrAtomic).
//
// Warnings are returned by Particle.Warnings and logged at Warn level to the
// *zap.Logger given with WithLogger (zap.L() by default).
//
// Concurrency:
//
//	A *Particle is immutable apart from its attribute cache, which is a
//	sync.Map of write-once entries; share it freely across goroutines.
//
// Example:
//
//	p, err := particle.New("Fe", particle.WithMassNumber(56), particle.WithCharge(17))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p)                  // Fe-56 17+
//	m, _ := p.Mass()                // atomic mass − 17 mₑ
//	ok, _ := p.IsCategory([]string{"ion", "fermion"})
package particle
