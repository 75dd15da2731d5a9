// SPDX-License-Identifier: MIT
// Package refdata is the read-only Reference Data Store behind particula:
// the periodic table, the known nuclides of every element and the special
// particles (leptons, nucleons, neutrinos, photon) with their antiparticles.
//
// Tables are decoded from YAML (or TOML) files, validated once, and never
// mutated afterwards, so a *Tables value may be shared by any number of
// goroutines without locking. Default() serves the tables embedded in the
// module; LoadFS reads an alternative set from any fs.FS:
//
//	tables, err := refdata.LoadFS(os.DirFS("/etc/particula"))
//
// Lookups (all O(1)):
//
//	ElementBySymbol("Fe")                    // case-sensitive symbol
//	ElementByName("IRON")                    // case-insensitive name
//	ElementByAtomicNumber(26)
//	IsotopeBySymbolAndMassNumber("Fe", 56)   // ok=false for unknown nuclides
//	SpecialParticleByAlias("positron")       // symbol, alias or name
//
// The isotope table is the ground truth for which mass numbers exist: each
// element lists the inclusive range of observed mass numbers, plus measured
// data for the nuclides where it is tabulated. Only the matter member of a
// particle/antiparticle pair is stored in the particles table; the
// antiparticle record is derived at load time by negating charge, baryon
// number and lepton number while keeping mass, spin and half-life.
//
// Errors:
//
//	ErrInvalidTable   - a table decodes but violates an invariant.
//	ErrSchemaVersion  - schema_version missing or not ^1.0.
//	ErrTableNotFound  - no elements/isotopes/particles file in the FS.
package refdata
