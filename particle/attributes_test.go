// SPDX-License-Identifier: MIT

package particle_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/particula/particle"
	"github.com/katalvlaran/particula/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const relTol = 1e-9

func TestMass(t *testing.T) {
	tests := []struct {
		id   string
		want float64 // kg
	}{
		{"e-", 9.1093837015e-31},
		{"e+", 9.1093837015e-31},
		{"p+", 1.67262192369e-27},
		{"n", 1.67492749804e-27},
		{"H", 1.6738233791328e-27},           // standard atomic weight
		{"Fe-56 17+", 9.286666101145608e-26}, // atomic mass − 17 mₑ
		{"H-1 1-", 1.6744437766854692e-27},   // atomic mass + mₑ
		{"Li-7 3+", 1.1647614982763707e-26},  // fully stripped → nuclide mass
		{"alpha", 6.6446573357e-27},          // CODATA α mass
		{"gamma", 0},
	}
	for _, tc := range tests {
		m, err := particle.MustNew(tc.id).Mass()
		require.NoError(t, err, tc.id)
		assert.Equal(t, quantity.Kilogram.Dim, m.Dim(), tc.id)
		if tc.want == 0 {
			assert.Zero(t, m.SI(), tc.id)

			continue
		}
		assert.InEpsilon(t, tc.want, m.SI(), relTol, tc.id)
	}
}

func TestMass_Missing(t *testing.T) {
	for _, id := range []string{"nu_e", "anti_nu_tau", "Og", "Cn-276"} {
		_, err := particle.MustNew(id).Mass()
		requireKind(t, err, particle.ErrMissingData, particle.ErrAtomic)
	}
}

func TestNuclideMass(t *testing.T) {
	li7, err := particle.MustNew("Li-7").NuclideMass()
	require.NoError(t, err)
	assert.InEpsilon(t, 1.1647614982763707e-26, li7.SI(), relTol)

	cases := map[string]quantity.Quantity{
		"p+":       quantity.ProtonMass,
		"H-1":      quantity.ProtonMass,
		"D":        quantity.DeuteronMass,
		"triton":   quantity.TritonMass,
		"He-4":     quantity.AlphaMass,
		"n":        quantity.NeutronMass,
		"Fe-56 3+": quantity.New(9.285846256612472e-26, quantity.Kilogram),
	}
	for id, want := range cases {
		got, err := particle.MustNew(id).NuclideMass()
		require.NoError(t, err, id)
		assert.InEpsilon(t, want.SI(), got.SI(), relTol, id)
	}

	for _, id := range []string{"Fe", "e-", "p-", "He 2+"} {
		_, err := particle.MustNew(id).NuclideMass()
		requireKind(t, err, particle.ErrInvalidIsotope, particle.ErrAtomic)
	}
}

func TestStandardAtomicWeight(t *testing.T) {
	w, err := particle.MustNew("Fe").StandardAtomicWeight()
	require.NoError(t, err)
	assert.True(t, w.Equal(quantity.New(55.845, quantity.AtomicMassUnit)))

	_, err = particle.MustNew("Og").StandardAtomicWeight()
	requireKind(t, err, particle.ErrMissingData)

	for _, id := range []string{"alpha", "Fe-56", "e-"} {
		_, err := particle.MustNew(id).StandardAtomicWeight()
		requireKind(t, err, particle.ErrInvalidElement, particle.ErrAtomic)
	}
}

func TestIdentityAttributes(t *testing.T) {
	fe := particle.MustNew("Fe-56 17+")
	z, err := fe.AtomicNumber()
	require.NoError(t, err)
	assert.Equal(t, 26, z)
	name, err := fe.ElementName()
	require.NoError(t, err)
	assert.Equal(t, "iron", name)

	e := particle.MustNew("e-")
	_, err = e.AtomicNumber()
	requireKind(t, err, particle.ErrInvalidElement)
	_, err = e.ElementName()
	requireKind(t, err, particle.ErrInvalidElement)

	_, err = particle.MustNew("H", particle.WithCharge(0)).MassNumber()
	requireKind(t, err, particle.ErrInvalidIsotope)
}

func TestCharge(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"e-", -1},
		{"positron", 1},
		{"n", 0},
		{"p+", 1},
		{"alpha", 2},
		{"Fe-56 17+", 17},
		{"H 0+", 0},
	}
	for _, tc := range tests {
		p := particle.MustNew(tc.id)
		q, err := p.IntegerCharge()
		require.NoError(t, err, tc.id)
		assert.Equal(t, tc.want, q, tc.id)

		c, err := p.Charge()
		require.NoError(t, err, tc.id)
		assert.True(t, c.Equal(quantity.ElementaryCharge.Scale(float64(tc.want))), tc.id)
	}

	for _, id := range []string{"H", "Fe-56", "deuterium"} {
		_, err := particle.MustNew(id).IntegerCharge()
		requireKind(t, err, particle.ErrCharge, particle.ErrAtomic)
		_, err = particle.MustNew(id).Charge()
		requireKind(t, err, particle.ErrCharge)
	}
}

func TestHalfLife(t *testing.T) {
	hl, err := particle.MustNew("n").HalfLife()
	require.NoError(t, err)
	assert.True(t, hl.Equal(quantity.New(879.4, quantity.Second)))

	hl, err = particle.MustNew("Fe-56").HalfLife()
	require.NoError(t, err)
	assert.True(t, hl.IsInf())

	hl, err = particle.MustNew("T").HalfLife()
	require.NoError(t, err)
	assert.InEpsilon(t, 3.8879e8, hl.SI(), relTol)

	_, err = particle.MustNew("H").HalfLife()
	requireKind(t, err, particle.ErrInvalidIsotope)
	_, err = particle.MustNew("Cn-276", particle.WithCharge(22)).HalfLife()
	requireKind(t, err, particle.ErrMissingData)
}

func TestSpin(t *testing.T) {
	tests := map[string]float64{"e-": 0.5, "gamma": 1, "Li-7": 1.5, "D": 1, "Fe-56 2+": 0}
	for id, want := range tests {
		s, err := particle.MustNew(id).Spin()
		require.NoError(t, err, id)
		assert.Equal(t, want, s, id)
	}

	for _, id := range []string{"Fe", "Cn-276"} {
		_, err := particle.MustNew(id).Spin()
		requireKind(t, err, particle.ErrMissingData)
	}
}

func TestBaryonAndLeptonNumbers(t *testing.T) {
	tests := []struct {
		id             string
		baryon, lepton int
	}{
		{"e-", 0, 1},
		{"e+", 0, -1},
		{"anti_nu_mu", 0, -1},
		{"p+", 1, 0},
		{"p-", -1, 0},
		{"antineutron", -1, 0},
		{"Fe-56", 56, 0},
		{"alpha", 4, 0},
		{"gamma", 0, 0},
	}
	for _, tc := range tests {
		p := particle.MustNew(tc.id)
		b, err := p.BaryonNumber()
		require.NoError(t, err, tc.id)
		assert.Equal(t, tc.baryon, b, tc.id)
		assert.Equal(t, tc.lepton, p.LeptonNumber(), tc.id)
	}

	_, err := particle.MustNew("H").BaryonNumber()
	requireKind(t, err, particle.ErrAtomic)
	assert.Zero(t, particle.MustNew("Fe").LeptonNumber())
}

func TestBindingEnergy(t *testing.T) {
	mev := func(id string) float64 {
		be, err := particle.MustNew(id).BindingEnergy()
		require.NoError(t, err, id)
		inMeV, err := be.To(quantity.MegaElectronVolt)
		require.NoError(t, err, id)

		return inMeV.Value
	}

	assert.InDelta(t, 492.2596, mev("Fe-56"), 1e-3)
	assert.InDelta(t, 28.2956, mev("alpha"), 1e-3)
	assert.InDelta(t, mev("Fe-56"), mev("Fe-56 26+"), 1e-9, "binding energy ignores electrons")
	assert.Zero(t, mev("p+"))
	assert.Zero(t, mev("n"))
	assert.Zero(t, mev("H-1"))

	for _, id := range []string{"Fe", "e-", "p-"} {
		_, err := particle.MustNew(id).BindingEnergy()
		requireKind(t, err, particle.ErrInvalidIsotope, particle.ErrAtomic)
	}
	_, err := particle.MustNew("Cn-276").BindingEnergy()
	requireKind(t, err, particle.ErrMissingData)
}

func TestReducedMass(t *testing.T) {
	p := particle.MustNew("p")

	rm, err := p.ReducedMass("p")
	require.NoError(t, err)
	assert.InEpsilon(t, quantity.ProtonMass.SI()/2, rm.SI(), relTol)

	e := particle.MustNew("e-")
	rm, err = e.ReducedMass(quantity.ElectronMass)
	require.NoError(t, err)
	assert.InEpsilon(t, quantity.ElectronMass.SI()/2, rm.SI(), relTol)

	rm, err = e.ReducedMass(p)
	require.NoError(t, err)
	assert.InEpsilon(t, 9.104425276523571e-31, rm.SI(), relTol)
	assert.Equal(t, quantity.Kilogram.Dim, rm.Dim())

	rm2, err := p.ReducedMass(*e)
	require.NoError(t, err)
	assert.True(t, rm.Equal(rm2), "reduced mass is symmetric")

	for _, other := range []any{42, nil, quantity.New(1, quantity.Second), "not-a-particle", (*particle.Particle)(nil)} {
		_, err := e.ReducedMass(other)
		requireKind(t, err, particle.ErrArgumentType)
	}

	_, err = e.ReducedMass("nu_e")
	requireKind(t, err, particle.ErrMissingData)
	_, err = particle.MustNew("nu_e").ReducedMass(e)
	requireKind(t, err, particle.ErrMissingData)

	gamma := particle.MustNew("gamma")
	rm, err = gamma.ReducedMass(e)
	require.NoError(t, err)
	assert.Zero(t, rm.SI())
	_, err = gamma.ReducedMass(gamma)
	requireKind(t, err, particle.ErrMissingData, particle.ErrAtomic)
	_, err = gamma.ReducedMass(quantity.New(0, quantity.Kilogram))
	requireKind(t, err, particle.ErrMissingData)
}

func TestAttributes_CachedErrorsAreStable(t *testing.T) {
	p := particle.MustNew("Og")
	_, err1 := p.Mass()
	_, err2 := p.Mass()
	requireKind(t, err1, particle.ErrMissingData)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestAttributes_ConcurrentAccess(t *testing.T) {
	p := particle.MustNew("Fe-56 17+")

	const workers = 32
	results := make([]float64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = p.BindingEnergy()
			m, err := p.Mass()
			if err != nil {
				results[i] = math.NaN()

				return
			}
			results[i] = m.SI()
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Equal(t, results[0], results[i])
	}
	assert.False(t, math.IsNaN(results[0]))
}
