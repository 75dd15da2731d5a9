// SPDX-License-Identifier: MIT

// Package particle_test covers identifier parsing, resolution, canonical
// rendering and equality of particle.Particle.
package particle_test

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/particula/particle"
	"github.com/katalvlaran/particula/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// requireKind asserts that err matches every sentinel in kinds.
func requireKind(t *testing.T, err error, kinds ...error) {
	t.Helper()
	require.Error(t, err)
	for _, k := range kinds {
		assert.True(t, errors.Is(err, k), "error %q should match %q", err, k)
	}
}

// ------------------------------------------------------------------------
// 1. Resolution table: identifier (+ explicit arguments) → canonical form.
// ------------------------------------------------------------------------

func TestNew_Resolution(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		opts     []particle.Option
		want     string
		kind     particle.Kind
		element  string // "" for special particles
		massNumb int    // 0 when undefined
	}{
		{"electron symbol", "e-", nil, "e-", particle.KindSpecial, "", 0},
		{"positron name", "positron", nil, "e+", particle.KindSpecial, "", 0},
		{"antimuon", "mu+", nil, "mu+", particle.KindSpecial, "", 0},
		{"tau neutrino", "nu_tau", nil, "nu_tau", particle.KindSpecial, "", 0},
		{"neutron alias", "n-1", nil, "n", particle.KindSpecial, "", 0},
		{"antiproton", "antiproton", nil, "p-", particle.KindSpecial, "", 0},
		{"photon", "photon", nil, "gamma", particle.KindSpecial, "", 0},
		{"proton short", "p", nil, "p+", particle.KindIon, "H", 1},
		{"proton as ion", "H-1 +1", nil, "p+", particle.KindIon, "H", 1},
		{"element symbol", "Fe", nil, "Fe", particle.KindElement, "Fe", 0},
		{"element name any case", "IrOn", nil, "Fe", particle.KindElement, "Fe", 0},
		{"isotope notation", "Fe-56", nil, "Fe-56", particle.KindIsotope, "Fe", 56},
		{"isotope by name", "iron-56", nil, "Fe-56", particle.KindIsotope, "Fe", 56},
		{"isotope by argument", "Fe", []particle.Option{particle.WithMassNumber(56)}, "Fe-56", particle.KindIsotope, "Fe", 56},
		{"ion by arguments", "Fe", []particle.Option{particle.WithMassNumber(56), particle.WithCharge(17)}, "Fe-56 17+", particle.KindIon, "Fe", 56},
		{"ion plus-first", "Fe-56 +17", nil, "Fe-56 17+", particle.KindIon, "Fe", 56},
		{"element ion", "Fe 3+", nil, "Fe 3+", particle.KindIon, "Fe", 0},
		{"sign run", "He-4++", nil, "He-4 2+", particle.KindIon, "He", 4},
		{"alpha", "alpha", nil, "He-4 2+", particle.KindIon, "He", 4},
		{"deuterium", "deuterium", nil, "D", particle.KindIsotope, "H", 2},
		{"deuteron", "deuteron", nil, "D 1+", particle.KindIon, "H", 2},
		{"tritium symbol", "T", nil, "T", particle.KindIsotope, "H", 3},
		{"triton", "triton", nil, "T 1+", particle.KindIon, "H", 3},
		{"hydride", "H-1-", nil, "H-1 1-", particle.KindIon, "H", 1},
		{"explicit zero charge", "H", []particle.Option{particle.WithCharge(0)}, "H 0+", particle.KindElement, "H", 0},
		{"surrounding space", "  Au-197 ", nil, "Au-197", particle.KindIsotope, "Au", 197},
		{"untabulated nuclide in range", "Cn-276", []particle.Option{particle.WithCharge(22)}, "Cn-276 22+", particle.KindIon, "Cn", 276},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := particle.New(tc.id, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
			assert.Equal(t, tc.kind, p.Kind())
			assert.Equal(t, tc.id, p.Input())

			el, err := p.Element()
			if tc.element == "" {
				requireKind(t, err, particle.ErrInvalidElement, particle.ErrAtomic)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.element, el)
			}

			a, err := p.MassNumber()
			if tc.massNumb == 0 {
				requireKind(t, err, particle.ErrInvalidIsotope)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.massNumb, a)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Alias groups and round trips.
// ------------------------------------------------------------------------

func TestNew_AliasGroupsAreEqual(t *testing.T) {
	groups := [][]string{
		{"H", "hydrogen", "hYdRoGeN"},
		{"p+", "proton", "p", "H-1+", "H-1 1+", "H-1 +1"},
		{"D", "H-2", "Hydrogen-2", "deuterium"},
		{"T", "H-3", "Hydrogen-3", "tritium"},
		{"alpha", "He-4++", "He-4 2+", "He-4 +2", "helium-4 2+"},
		{"e-", "electron", "e"},
		{"e+", "positron", "antielectron"},
		{"p-", "antiproton"},
		{"n", "n-1", "neutron", "NEUTRON"},
		{"muon", "mu-", "muon-"},
		{"tau", "tau-"},
	}

	for _, group := range groups {
		first := particle.MustNew(group[0])
		for _, id := range group[1:] {
			p, err := particle.New(id)
			require.NoError(t, err, id)
			assert.True(t, first.Equal(p), "%q should equal %q", id, group[0])
			assert.Equal(t, first.String(), p.String(), id)
		}
	}
}

func TestNew_DistinctIdentitiesDiffer(t *testing.T) {
	pairs := [][2]string{
		{"H", "H-1"},
		{"H-1", "p+"},
		{"H", "H 0+"},
		{"e-", "e+"},
		{"n", "antineutron"},
		{"Fe-56", "Fe-57"},
		{"Fe 2+", "Fe 3+"},
	}
	for _, pair := range pairs {
		a, b := particle.MustNew(pair[0]), particle.MustNew(pair[1])
		assert.False(t, a.Equal(b), "%q vs %q", pair[0], pair[1])
	}
}

func TestNew_RoundTrip(t *testing.T) {
	ids := []string{
		"e-", "e+", "mu+", "tau-", "nu_tau", "anti_nu_e", "n", "antineutron",
		"gamma", "p+", "p-", "H", "H 0+", "D", "T", "D 1+", "He-4 2+",
		"Fe", "Fe-56", "Fe-56 17+", "Fe 3+", "Au-197 1-", "U-235", "Cn-276 22+",
	}
	for _, id := range ids {
		p, err := particle.New(id, particle.WithLogger(zap.NewNop()))
		require.NoError(t, err, id)
		assert.Equal(t, id, p.String(), "canonical form of %q", id)

		again, err := particle.New(p.String())
		require.NoError(t, err)
		assert.True(t, p.Equal(again), id)
	}
}

func TestNew_CopiesExistingParticle(t *testing.T) {
	orig := particle.MustNew("Fe", particle.WithMassNumber(56), particle.WithCharge(17))

	fromPtr, err := particle.New(orig)
	require.NoError(t, err)
	assert.True(t, orig.Equal(fromPtr))

	fromVal, err := particle.New(*orig)
	require.NoError(t, err)
	assert.True(t, orig.Equal(fromVal))
	assert.True(t, orig.Equal(*fromVal), "Equal accepts Particle values")
}

func TestNew_CopyKeepsSourceTables(t *testing.T) {
	custom, err := refdata.LoadFS(fstest.MapFS{
		"elements.yaml": {Data: []byte("schema_version: 1.0.0\nelements:\n" +
			"  - {symbol: Xq, name: exemplium, atomic_number: 1}\n")},
		"isotopes.yaml":  {Data: []byte("schema_version: 1.0.0\nisotopes: []\n")},
		"particles.yaml": {Data: []byte("schema_version: 1.0.0\nparticles: []\n")},
	})
	require.NoError(t, err)

	orig := particle.MustNew("Xq", particle.WithStore(custom), particle.WithCharge(1))
	assert.Equal(t, "Xq 1+", orig.String())

	cp, err := particle.New(orig)
	require.NoError(t, err, "copy resolves against the tables of its source")
	assert.True(t, orig.Equal(cp))
	name, err := cp.ElementName()
	require.NoError(t, err)
	assert.Equal(t, "exemplium", name)

	_, err = particle.New(*orig, particle.WithStore(refdata.MustDefault()))
	requireKind(t, err, particle.ErrInvalidParticle)
}

func TestNew_AtomicNumber(t *testing.T) {
	fe, err := particle.New(26)
	require.NoError(t, err)
	assert.Equal(t, "Fe", fe.String())
	assert.True(t, fe.Equal(particle.MustNew("Fe")))
	assert.Equal(t, particle.KindElement, fe.Kind())

	ion, err := particle.New(26, particle.WithMassNumber(56), particle.WithCharge(17))
	require.NoError(t, err)
	assert.Equal(t, "Fe-56 17+", ion.String())

	for _, z := range []any{int8(1), int64(2), uint16(118)} {
		_, err := particle.New(z)
		require.NoError(t, err, "%T(%v)", z, z)
	}
	h, err := particle.New(uint8(1))
	require.NoError(t, err)
	assert.Equal(t, "H", h.String())

	for _, z := range []int{0, 119, -26} {
		_, err := particle.New(z)
		requireKind(t, err, particle.ErrInvalidParticle, particle.ErrAtomic)
	}

	_, err = particle.New(26, particle.WithMassNumber(300))
	requireKind(t, err, particle.ErrInvalidParticle)
}

func TestParticle_Repr(t *testing.T) {
	p := particle.MustNew("deuteron")
	assert.Equal(t, `Particle("D 1+")`, p.Repr())
	assert.Equal(t, p.Repr(), p.GoString())
}

func TestParticle_EqualNonParticle(t *testing.T) {
	p := particle.MustNew("e-")
	assert.False(t, p.Equal("e-"), "strings are not particles")
	assert.False(t, p.Equal(nil))
	assert.False(t, p.Equal(42))
	assert.False(t, p.Equal((*particle.Particle)(nil)))
}

func TestParticle_SymbolAccessors(t *testing.T) {
	p := particle.MustNew("p+")
	el, err := p.Element()
	require.NoError(t, err)
	assert.Equal(t, "H", el)
	iso, err := p.Isotope()
	require.NoError(t, err)
	assert.Equal(t, "H-1", iso)
	ion, err := p.Ion()
	require.NoError(t, err)
	assert.Equal(t, "p+", ion)

	d := particle.MustNew("deuterium")
	iso, err = d.Isotope()
	require.NoError(t, err)
	assert.Equal(t, "D", iso)
	_, err = d.Ion()
	requireKind(t, err, particle.ErrInvalidIon, particle.ErrAtomic)

	_, err = particle.MustNew("Fe").Isotope()
	requireKind(t, err, particle.ErrInvalidIsotope)
	_, err = particle.MustNew("H", particle.WithCharge(0)).Ion()
	requireKind(t, err, particle.ErrInvalidIon) // a zero charge is not an ion
}

// ------------------------------------------------------------------------
// 3. Rejected input.
// ------------------------------------------------------------------------

func TestNew_InvalidParticle(t *testing.T) {
	tests := []struct {
		name string
		id   string
		opts []particle.Option
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"unknown letter", "a", nil},
		{"lower-case deuteron symbol", "d+", []particle.Option{particle.WithMassNumber(9)}},
		{"case-sensitive special", "E-", nil},
		{"case-sensitive element", "fe", nil},
		{"mass number too high", "Au-818", nil},
		{"mass number too low", "Au-12", nil},
		{"argument below range", "Au", []particle.Option{particle.WithMassNumber(13)}},
		{"argument above range", "Au", []particle.Option{particle.WithMassNumber(921)}},
		{"hydrogen out of range", "H", []particle.Option{particle.WithMassNumber(99)}},
		{"malformed mass number", "Fe-5x", nil},
		{"mixed sign run", "He-4+-", nil},
		{"charge without nuclide", "++", nil},
		{"malformed charge token", "Fe-56 17", nil},
		{"too many fields", "Fe-56 17+ 2", nil},
		{"charge above Z", "H-1 2+", nil},
		{"charge argument on special", "e-", []particle.Option{particle.WithCharge(-1)}},
		{"mass number on special", "n", []particle.Option{particle.WithMassNumber(1)}},
		{"contradicting implied charge", "alpha", []particle.Option{particle.WithCharge(1)}},
		{"contradicting notation charge", "He-4 2+", []particle.Option{particle.WithCharge(1)}},
		{"contradicting mass number", "Fe-56", []particle.Option{particle.WithMassNumber(57)}},
		{"contradicting shorthand charge", "deuteron 2+", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := particle.New(tc.id, tc.opts...)
			requireKind(t, err, particle.ErrInvalidParticle, particle.ErrAtomic)
			assert.False(t, errors.Is(err, particle.ErrArgumentType))
		})
	}
}

func TestNew_CaseHint(t *testing.T) {
	_, err := particle.New("fe")
	requireKind(t, err, particle.ErrInvalidParticle)
	assert.Contains(t, errors.FlattenHints(err), `"Fe"`)

	_, err = particle.New("Au-818")
	requireKind(t, err, particle.ErrInvalidParticle)
	assert.Contains(t, errors.FlattenHints(err), "169 through 210")
}

func TestNew_ArgumentType(t *testing.T) {
	for _, id := range []any{3.14, nil, []string{"e-"}, (*particle.Particle)(nil), uint64(math.MaxUint64)} {
		_, err := particle.New(id)
		requireKind(t, err, particle.ErrArgumentType)
		assert.False(t, errors.Is(err, particle.ErrAtomic), "%T is a programming error", id)
	}
}

func TestNewLoose(t *testing.T) {
	p, err := particle.NewLoose("Fe", 17, int64(56))
	require.NoError(t, err)
	assert.Equal(t, "Fe-56 17+", p.String())

	p, err = particle.NewLoose("alpha", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "He-4 2+", p.String())

	p, err = particle.NewLoose("H", uint8(0), nil)
	require.NoError(t, err)
	assert.Equal(t, "H 0+", p.String())

	_, err = particle.NewLoose("Fe", "17", nil)
	requireKind(t, err, particle.ErrArgumentType)
	_, err = particle.NewLoose("Fe", nil, 56.0)
	requireKind(t, err, particle.ErrArgumentType)
	p, err = particle.NewLoose(26, 17, 56)
	require.NoError(t, err)
	assert.Equal(t, "Fe-56 17+", p.String())
	_, err = particle.NewLoose("Fe", uint(math.MaxUint), nil)
	requireKind(t, err, particle.ErrArgumentType)

	_, err = particle.NewLoose("e-", -1, nil)
	requireKind(t, err, particle.ErrInvalidParticle)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { particle.WithStore(nil) })
	assert.Panics(t, func() { particle.WithLogger(nil) })
}

// ------------------------------------------------------------------------
// 4. Warnings.
// ------------------------------------------------------------------------

func TestNew_Warnings(t *testing.T) {
	tests := []struct {
		name string
		id   string
		opts []particle.Option
		want string
		code particle.WarningCode
	}{
		{"unusual charge", "H----", nil, "H 4-", particle.WarnUnusualCharge},
		{"redundant mass number", "alpha", []particle.Option{particle.WithMassNumber(4)}, "He-4 2+", particle.WarnRedundantMassNumber},
		{"redundant charge", "alpha", []particle.Option{particle.WithCharge(2)}, "He-4 2+", particle.WarnRedundantCharge},
		{"redundant proton charge", "p+", []particle.Option{particle.WithCharge(1)}, "p+", particle.WarnRedundantCharge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			opts := append([]particle.Option{particle.WithLogger(zap.New(core))}, tc.opts...)

			p, err := particle.New(tc.id, opts...)
			require.NoError(t, err, "warnings never block construction")
			assert.Equal(t, tc.want, p.String())

			ws := p.Warnings()
			require.Len(t, ws, 1)
			assert.Equal(t, tc.code, ws[0].Code)
			assert.Equal(t, tc.id, ws[0].Input)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, zapcore.WarnLevel, entry.Level)
			fields := entry.ContextMap()
			assert.Equal(t, string(tc.code), fields["code"])
			assert.Equal(t, tc.want, fields["particle"])
		})
	}
}

func TestNew_NoWarningsForPlainInput(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := particle.New("Fe-56 3-", particle.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Empty(t, p.Warnings())
	assert.Zero(t, logs.Len())
}

func TestParticle_WarningsIsACopy(t *testing.T) {
	p := particle.MustNew("H----", particle.WithLogger(zap.NewNop()))
	ws := p.Warnings()
	require.Len(t, ws, 1)
	ws[0].Code = "mutated"
	assert.Equal(t, particle.WarnUnusualCharge, p.Warnings()[0].Code)
}
