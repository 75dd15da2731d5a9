// SPDX-License-Identifier: MIT

package quantity

// CODATA 2018 values in SI units.
const (
	atomicMassKg      = 1.66053906660e-27
	elementaryChargeC = 1.602176634e-19

	protonMassKg   = 1.67262192369e-27
	neutronMassKg  = 1.67492749804e-27
	electronMassKg = 9.1093837015e-31
	deuteronMassKg = 3.3435837724e-27
	tritonMassKg   = 5.0073567446e-27
	alphaMassKg    = 6.6446573357e-27
	speedOfLightMs = 299792458.0
)

// Physical constants as Quantities.
var (
	AtomicMass       = New(atomicMassKg, Kilogram)
	ProtonMass       = New(protonMassKg, Kilogram)
	NeutronMass      = New(neutronMassKg, Kilogram)
	ElectronMass     = New(electronMassKg, Kilogram)
	DeuteronMass     = New(deuteronMassKg, Kilogram)
	TritonMass       = New(tritonMassKg, Kilogram)
	AlphaMass        = New(alphaMassKg, Kilogram)
	ElementaryCharge = New(elementaryChargeC, Coulomb)
	SpeedOfLight     = New(speedOfLightMs, MeterPerSecond)
)
