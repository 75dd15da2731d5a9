// Package particula resolves loosely written particle identifiers into
// canonical, immutable particle identities and answers questions about them:
// mass, charge, spin, half-life, binding energy and classification.
//
// 🚀 What is particula?
//
//	A small, thread-safe library plus CLI that brings together:
//		• Parsing: "e-", "positron", "alpha", "Fe-56 17+", "He-4++", "iron", "D 1+"
//		• Resolution: symbols, names and aliases checked against reference tables
//		• Attributes: mass, nuclide mass, charge, spin, half-life, binding energy
//		• Classification: lepton, baryon, fermion, boson, ion, isotope, stable…
//		• Conjugation: antiparticles derived from the particle tables
//
// ✨ Why choose particula?
//
//   - Immutable particles – safe to share across goroutines, attributes cached
//   - Explicit failures – one sentinel per failure kind, hints on bad input
//   - Swappable data – embedded YAML tables or your own directory
//
// Under the hood, everything is organized under three subpackages:
//
//	particle/ — Particle construction, attributes, categories, antiparticles
//	refdata/  — elements, isotopes and special-particle tables (YAML or TOML)
//	quantity/ — float64 value + unit with SI conversion and physical constants
//
// The particula command (cmd/particula) exposes show, is, batch and list over
// the same packages.
//
// Quick example:
//
//	p, err := particle.New("Fe", particle.WithMassNumber(56), particle.WithCharge(17))
//	if err != nil { ... }
//	p.String()                              // "Fe-56 17+"
//	p.IsCategory([]string{"ion", "fermion"}) // true, nil
//
//	go get github.com/katalvlaran/particula/particle
package particula
