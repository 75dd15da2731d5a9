// SPDX-License-Identifier: MIT

package particle_test

import (
	"fmt"

	"github.com/katalvlaran/particula/particle"
	"github.com/katalvlaran/particula/quantity"
)

// ExampleNew resolves an ion from an element symbol plus explicit arguments.
func ExampleNew() {
	p, err := particle.New("Fe", particle.WithMassNumber(56), particle.WithCharge(17))
	if err != nil {
		fmt.Println(err)

		return
	}
	z, _ := p.AtomicNumber()
	fmt.Println(p)
	fmt.Println(p.Kind(), z)
	fmt.Println(p.Repr())
	// Output:
	// Fe-56 17+
	// ion 26
	// Particle("Fe-56 17+")
}

// ExampleNew_aliases shows that every spelling of the alpha particle
// resolves to the same canonical identity.
func ExampleNew_aliases() {
	for _, id := range []string{"alpha", "He-4++", "He-4 +2", "helium-4 2+"} {
		fmt.Println(particle.MustNew(id))
	}
	// Output:
	// He-4 2+
	// He-4 2+
	// He-4 2+
	// He-4 2+
}

// ExampleParticle_IsCategory queries classification tags.
func ExampleParticle_IsCategory() {
	e := particle.MustNew("electron")
	ok, err := e.IsCategory([]string{"lepton", "fermion"})
	fmt.Println(ok, err)
	ok, err = e.IsCategory([]string{"baryon", "boson"}, particle.MatchAny())
	fmt.Println(ok, err)
	fmt.Println(particle.MustNew("n").Categories())
	// Output:
	// true <nil>
	// false <nil>
	// {uncharged, baryon, fermion, matter, unstable}
}

// ExampleParticle_BindingEnergy converts the alpha binding energy to MeV.
func ExampleParticle_BindingEnergy() {
	be, err := particle.MustNew("alpha").BindingEnergy()
	if err != nil {
		fmt.Println(err)

		return
	}
	mev, _ := be.To(quantity.MegaElectronVolt)
	fmt.Printf("%.2f MeV\n", mev.Value)
	// Output:
	// 28.30 MeV
}

// ExampleParticle_Antiparticle flips a proton into an antiproton.
func ExampleParticle_Antiparticle() {
	anti, _ := particle.MustNew("proton").Antiparticle()
	q, _ := anti.IntegerCharge()
	b, _ := anti.BaryonNumber()
	fmt.Println(anti, q, b)
	// Output:
	// p- -1 -1
}
