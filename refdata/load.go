// SPDX-License-Identifier: MIT
// Package: particula/refdata
//
// load.go — decoding of the three reference tables from an fs.FS.
//
// Each table lives in its own file named elements, isotopes or particles with
// one of the extensions .yaml, .yml or .toml (first match wins). Every file
// carries a schema_version that must satisfy schemaConstraint.

package refdata

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// SchemaConstraint is the range of table schema versions this package reads.
const SchemaConstraint = "^1.0"

const (
	tableElements  = "elements"
	tableIsotopes  = "isotopes"
	tableParticles = "particles"
)

var tableExtensions = []string{".yaml", ".yml", ".toml"}

//go:embed data/*.yaml
var embedded embed.FS

var schemaConstraint = mustConstraint(SchemaConstraint)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic("refdata: bad schema constraint " + s)
	}

	return c
}

// defaultTables builds the embedded tables exactly once per process.
var defaultTables = sync.OnceValues(func() (*Tables, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}

	return LoadFS(sub)
})

// Default returns the embedded reference tables. The tables are built on
// first use and shared, read-only, by every caller.
func Default() (*Tables, error) {
	return defaultTables()
}

// MustDefault is Default for package initialisation and examples; it panics
// if the embedded tables are corrupt, which is a build defect.
func MustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}

	return t
}

// ---- file schemas -----------------------------------------------------------

type elementsFile struct {
	SchemaVersion string         `yaml:"schema_version" toml:"schema_version"`
	Elements      []elementEntry `yaml:"elements" toml:"elements"`
}

type elementEntry struct {
	Symbol               string   `yaml:"symbol" toml:"symbol"`
	Name                 string   `yaml:"name" toml:"name"`
	AtomicNumber         int      `yaml:"atomic_number" toml:"atomic_number"`
	StandardAtomicWeight *float64 `yaml:"standard_atomic_weight" toml:"standard_atomic_weight"`
}

type isotopesFile struct {
	SchemaVersion string         `yaml:"schema_version" toml:"schema_version"`
	Isotopes      []isotopeEntry `yaml:"isotopes" toml:"isotopes"`
}

type isotopeEntry struct {
	Symbol      string         `yaml:"symbol" toml:"symbol"`
	MassNumbers []int          `yaml:"mass_numbers" toml:"mass_numbers"`
	Nuclides    []nuclideEntry `yaml:"nuclides" toml:"nuclides"`
}

type nuclideEntry struct {
	MassNumber int      `yaml:"mass_number" toml:"mass_number"`
	AtomicMass *float64 `yaml:"atomic_mass" toml:"atomic_mass"`
	HalfLife   *float64 `yaml:"half_life" toml:"half_life"`
	Spin       *float64 `yaml:"spin" toml:"spin"`
	Stable     bool     `yaml:"stable" toml:"stable"`
}

type particlesFile struct {
	SchemaVersion string          `yaml:"schema_version" toml:"schema_version"`
	Particles     []particleEntry `yaml:"particles" toml:"particles"`
}

type particleEntry struct {
	Symbol       string          `yaml:"symbol" toml:"symbol"`
	Aliases      []string        `yaml:"aliases" toml:"aliases"`
	Names        []string        `yaml:"names" toml:"names"`
	Mass         *float64        `yaml:"mass" toml:"mass"`
	Charge       int             `yaml:"charge" toml:"charge"`
	Spin         float64         `yaml:"spin" toml:"spin"`
	BaryonNumber int             `yaml:"baryon_number" toml:"baryon_number"`
	LeptonNumber int             `yaml:"lepton_number" toml:"lepton_number"`
	HalfLife     *float64        `yaml:"half_life" toml:"half_life"`
	Neutrino     bool            `yaml:"neutrino" toml:"neutrino"`
	Nuclide      string          `yaml:"nuclide" toml:"nuclide"`
	Antiparticle *conjugateEntry `yaml:"antiparticle" toml:"antiparticle"`
}

type conjugateEntry struct {
	Symbol  string   `yaml:"symbol" toml:"symbol"`
	Aliases []string `yaml:"aliases" toml:"aliases"`
	Names   []string `yaml:"names" toml:"names"`
	Nuclide string   `yaml:"nuclide" toml:"nuclide"`
}

// ---- loading ----------------------------------------------------------------

// LoadFS decodes and validates the elements, isotopes and particles tables
// found at the root of fsys.
func LoadFS(fsys fs.FS) (*Tables, error) {
	var (
		ef  elementsFile
		isf isotopesFile
		pf  particlesFile
	)
	if err := decodeTable(fsys, tableElements, &ef, &ef.SchemaVersion); err != nil {
		return nil, err
	}
	if err := decodeTable(fsys, tableIsotopes, &isf, &isf.SchemaVersion); err != nil {
		return nil, err
	}
	if err := decodeTable(fsys, tableParticles, &pf, &pf.SchemaVersion); err != nil {
		return nil, err
	}

	return build(ef, isf, pf)
}

// decodeTable locates name.{yaml,yml,toml}, decodes it into out and checks
// the schema version written to *version.
func decodeTable(fsys fs.FS, name string, out any, version *string) error {
	for _, ext := range tableExtensions {
		file := name + ext
		raw, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", file)
		}
		if err := decode(file, raw, out); err != nil {
			return errors.Wrapf(errors.Mark(err, ErrInvalidTable), "decode %s", file)
		}

		return checkSchema(file, *version)
	}

	return errors.Wrapf(ErrTableNotFound, "%s%v", name, tableExtensions)
}

func decode(file string, raw []byte, out any) error {
	if path.Ext(file) == ".toml" {
		_, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(out)

		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	return dec.Decode(out)
}

func checkSchema(file, version string) error {
	if version == "" {
		return errors.Wrapf(ErrSchemaVersion, "%s: schema_version is missing", file)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, ErrSchemaVersion), "%s: schema_version %q", file, version)
	}
	if !schemaConstraint.Check(v) {
		return errors.WithHintf(
			errors.Wrapf(ErrSchemaVersion, "%s: schema_version %s", file, v),
			"supported schema versions: %s", SchemaConstraint)
	}

	return nil
}
