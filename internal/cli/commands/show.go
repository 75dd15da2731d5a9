// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/particula/particle"
	"github.com/katalvlaran/particula/quantity"
	"github.com/spf13/cobra"
)

// attribute is one line of a particle report; Note replaces Value when the
// attribute does not apply.
type attribute struct {
	Name  string
	Value any
	Note  string
}

// describe evaluates every accessor of p in a fixed order.
func describe(p *particle.Particle) []attribute {
	var out []attribute
	add := func(name string, v any, err error) {
		if err != nil {
			out = append(out, attribute{Name: name, Note: unavailable(err)})

			return
		}
		out = append(out, attribute{Name: name, Value: v})
	}

	add("kind", p.Kind().String(), nil)
	el, err := p.Element()
	add("element", el, err)
	iso, err := p.Isotope()
	add("isotope", iso, err)
	ion, err := p.Ion()
	add("ion", ion, err)
	name, err := p.ElementName()
	add("element_name", name, err)
	z, err := p.AtomicNumber()
	add("atomic_number", z, err)
	a, err := p.MassNumber()
	add("mass_number", a, err)
	q, err := p.IntegerCharge()
	add("charge_number", q, err)
	c, err := p.Charge()
	add("charge", c, err)
	m, err := p.Mass()
	add("mass", m, err)
	nm, err := p.NuclideMass()
	add("nuclide_mass", nm, err)
	w, err := p.StandardAtomicWeight()
	add("standard_atomic_weight", w, err)
	hl, err := p.HalfLife()
	add("half_life", hl, err)
	s, err := p.Spin()
	add("spin", s, err)
	b, err := p.BaryonNumber()
	add("baryon_number", b, err)
	add("lepton_number", p.LeptonNumber(), nil)
	be, err := p.BindingEnergy()
	if err == nil {
		be, err = be.To(quantity.MegaElectronVolt)
	}
	add("binding_energy", be, err)
	anti, err := p.Antiparticle()
	if err == nil {
		add("antiparticle", anti.String(), nil)
	} else {
		add("antiparticle", nil, err)
	}

	return out
}

// report is the JSON form of show.
type report struct {
	Particle   string         `json:"particle"`
	Input      string         `json:"input"`
	Attributes map[string]any `json:"attributes"`
	Categories []string       `json:"categories"`
	Warnings   []string       `json:"warnings,omitempty"`
}

func newReport(p *particle.Particle) report {
	r := report{
		Particle:   p.String(),
		Input:      p.Input(),
		Attributes: make(map[string]any),
		Categories: p.Categories().Names(),
	}
	for _, at := range describe(p) {
		switch v := at.Value.(type) {
		case nil:
			r.Attributes[at.Name] = nil
		case quantity.Quantity:
			r.Attributes[at.Name] = jsonQuantity(v)
		default:
			r.Attributes[at.Name] = v
		}
	}
	for _, w := range p.Warnings() {
		r.Warnings = append(r.Warnings, w.String())
	}

	return r
}

// particleFlags registers --z and --mass-number on cmd.
func particleFlags(cmd *cobra.Command) {
	cmd.Flags().Int("z", 0, "explicit integer charge (ionization state)")
	cmd.Flags().Int("mass-number", 0, "explicit mass number")
}

// resolveArg builds the particle named by id plus any explicit --z and
// --mass-number flags.
func resolveArg(cmd *cobra.Command, env *Env, id string) (*particle.Particle, error) {
	opts := env.particleOptions()
	if cmd.Flags().Changed("z") {
		z, _ := cmd.Flags().GetInt("z")
		opts = append(opts, particle.WithCharge(z))
	}
	if cmd.Flags().Changed("mass-number") {
		a, _ := cmd.Flags().GetInt("mass-number")
		opts = append(opts, particle.WithMassNumber(a))
	}

	return particle.New(id, opts...)
}

// NewShowCommand creates the show command.
func NewShowCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <identifier>",
		Short: "Resolve a particle and print its attributes",
		Long: `Resolve an identifier such as "e-", "alpha", "Fe-56 17+" or "iron" and
print every derived attribute. Attributes that do not apply to the particle
are listed with the reason.`,
		Example: `  particula show "Fe-56 17+"
  particula show Fe --mass-number 56 --z 17 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveArg(cmd, env, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if env.jsonOutput() {
				return renderJSON(out, newReport(p))
			}

			rows := []table.Row{{"particle", p.String()}}
			for _, at := range describe(p) {
				if at.Value == nil {
					rows = append(rows, table.Row{at.Name, "(" + at.Note + ")"})

					continue
				}
				rows = append(rows, table.Row{at.Name, fmt.Sprint(at.Value)})
			}
			rows = append(rows, table.Row{"categories", strings.Join(p.Categories().Names(), ", ")})
			for _, w := range p.Warnings() {
				rows = append(rows, table.Row{"warning", w.String()})
			}
			renderTable(out, table.Row{"Attribute", "Value"}, rows)

			return nil
		},
	}
	particleFlags(cmd)

	return cmd
}
