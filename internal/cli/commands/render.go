// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/particula/particle"
	"github.com/katalvlaran/particula/quantity"
)

func renderTable(w io.Writer, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// jsonQuantity renders q as {"value", "unit"}; infinities become the string
// "inf" because JSON has no encoding for them.
func jsonQuantity(q quantity.Quantity) map[string]any {
	var v any = q.Value
	if math.IsInf(q.Value, 1) {
		v = "inf"
	} else if math.IsInf(q.Value, -1) {
		v = "-inf"
	}

	return map[string]any{"value": v, "unit": q.Unit.Name}
}

// unavailable explains an attribute error in a few words.
func unavailable(err error) string {
	switch {
	case errors.Is(err, particle.ErrMissingData):
		return "not tabulated"
	case errors.Is(err, particle.ErrCharge):
		return "charge not specified"
	case errors.Is(err, particle.ErrInvalidElement):
		return "not an element"
	case errors.Is(err, particle.ErrInvalidIsotope):
		return "no mass number"
	case errors.Is(err, particle.ErrInvalidIon):
		return "not an ion"
	case errors.Is(err, particle.ErrInvalidParticle):
		return "none"
	default:
		return fmt.Sprintf("n/a: %v", err)
	}
}
