// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command over the loaded reference tables.
func NewListCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:       "list <elements|particles>",
		Short:     "List the elements or special particles in the reference tables",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"elements", "particles"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "elements":
				return listElements(cmd, env)
			case "particles":
				return listParticles(cmd, env)
			default:
				return errors.WithHint(errors.Newf("unknown table %q", args[0]),
					"use \"particula list elements\" or \"particula list particles\"")
			}
		},
	}
}

type elementRow struct {
	Z      int      `json:"atomic_number"`
	Symbol string   `json:"symbol"`
	Name   string   `json:"name"`
	Weight *float64 `json:"standard_atomic_weight,omitempty"`
	MinA   int      `json:"min_mass_number,omitempty"`
	MaxA   int      `json:"max_mass_number,omitempty"`
}

func listElements(cmd *cobra.Command, env *Env) error {
	els := env.Tables.Elements()
	rows := make([]elementRow, 0, len(els))
	for _, e := range els {
		r := elementRow{Z: e.AtomicNumber, Symbol: e.Symbol, Name: e.Name}
		if w, ok := e.StandardAtomicWeight.Get(); ok {
			r.Weight = &w
		}
		r.MinA, r.MaxA, _ = env.Tables.MassNumbers(e.Symbol)
		rows = append(rows, r)
	}

	if env.jsonOutput() {
		return renderJSON(cmd.OutOrStdout(), rows)
	}
	tr := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		weight := ""
		if r.Weight != nil {
			weight = strconv.FormatFloat(*r.Weight, 'g', -1, 64)
		}
		massNumbers := ""
		if r.MaxA > 0 {
			massNumbers = strconv.Itoa(r.MinA) + "-" + strconv.Itoa(r.MaxA)
		}
		tr = append(tr, table.Row{r.Z, r.Symbol, r.Name, weight, massNumbers})
	}
	renderTable(cmd.OutOrStdout(), table.Row{"Z", "Symbol", "Name", "Weight (u)", "Mass numbers"}, tr)

	return nil
}

type particleRow struct {
	Symbol       string   `json:"symbol"`
	Names        []string `json:"names,omitempty"`
	Charge       int      `json:"charge"`
	Spin         float64  `json:"spin"`
	BaryonNumber int      `json:"baryon_number"`
	LeptonNumber int      `json:"lepton_number"`
	Antiparticle string   `json:"antiparticle"`
}

func listParticles(cmd *cobra.Command, env *Env) error {
	specials := env.Tables.SpecialParticles()
	rows := make([]particleRow, 0, len(specials))
	for _, s := range specials {
		rows = append(rows, particleRow{
			Symbol:       s.Symbol,
			Names:        append(append([]string(nil), s.Aliases...), s.Names...),
			Charge:       s.Charge,
			Spin:         s.Spin,
			BaryonNumber: s.BaryonNumber,
			LeptonNumber: s.LeptonNumber,
			Antiparticle: s.Antiparticle,
		})
	}

	if env.jsonOutput() {
		return renderJSON(cmd.OutOrStdout(), rows)
	}
	tr := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tr = append(tr, table.Row{r.Symbol, strings.Join(r.Names, ", "), r.Charge, r.Spin, r.BaryonNumber, r.LeptonNumber, r.Antiparticle})
	}
	renderTable(cmd.OutOrStdout(), table.Row{"Symbol", "Also known as", "Charge", "Spin", "B", "L", "Antiparticle"}, tr)

	return nil
}
