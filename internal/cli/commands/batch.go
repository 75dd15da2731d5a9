// SPDX-License-Identifier: MIT

package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/particula/particle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrBatchFailed is returned when at least one batch row did not resolve.
var ErrBatchFailed = errors.New("batch: some rows failed")

// batchRow is one input row. Fields stay untyped so that a float or string
// where an integer belongs surfaces as particle.ErrArgumentType.
type batchRow struct {
	ID       any `yaml:"id"`
	Z        any `yaml:"z"`
	MassNumb any `yaml:"mass_numb"`
}

// batchResult is one output row, in input order.
type batchResult struct {
	Row      int      `json:"row"`
	Input    any      `json:"input"`
	Particle string   `json:"particle,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	Mass     any      `json:"mass,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`

	massText string
}

func decodeBatch(r io.Reader) ([]batchRow, error) {
	var rows []batchRow
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "decode batch")
	}

	return rows, nil
}

// resolveBatch resolves rows on at most workers goroutines. Row failures are
// recorded in the result, never returned; only cancellation aborts the run.
func resolveBatch(cmd *cobra.Command, env *Env, rows []batchRow) ([]batchResult, error) {
	results := make([]batchResult, len(rows))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(env.Config.Workers)

	for i, row := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := batchResult{Row: i + 1, Input: row.ID}
			p, err := particle.NewLoose(row.ID, row.Z, row.MassNumb, env.particleOptions()...)
			if err != nil {
				res.Error = err.Error()
				env.Logger.Debug("batch row failed", zap.Int("row", i+1), zap.Error(err))
				results[i] = res

				return nil
			}
			res.Particle, res.Kind = p.String(), p.Kind().String()
			if m, err := p.Mass(); err == nil {
				res.Mass, res.massText = jsonQuantity(m), m.String()
			}
			for _, w := range p.Warnings() {
				res.Warnings = append(res.Warnings, w.String())
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml|->",
		Short: "Resolve a YAML list of particles concurrently",
		Long: `Read a YAML sequence of rows with keys id, z (charge) and mass_numb,
resolve every row, and print the results in input order. Rows that fail are
reported individually; the command exits non-zero if any row failed.`,
		Example: `  particula batch particles.yaml
  printf -- '- {id: Fe, z: 17, mass_numb: 56}\n- {id: alpha}\n' | particula batch -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open batch file")
				}
				defer f.Close()
				in = f
			}
			rows, err := decodeBatch(in)
			if err != nil {
				return err
			}
			results, err := resolveBatch(cmd, env, rows)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}

			out := cmd.OutOrStdout()
			if env.jsonOutput() {
				if err := renderJSON(out, results); err != nil {
					return err
				}
			} else {
				tr := make([]table.Row, 0, len(results))
				for _, r := range results {
					tr = append(tr, table.Row{r.Row, r.Input, r.Particle, r.Kind, r.massText, r.Error})
				}
				renderTable(out, table.Row{"#", "Input", "Particle", "Kind", "Mass", "Error"}, tr)
			}

			if failed > 0 {
				return errors.Wrapf(ErrBatchFailed, "%d of %d rows failed", failed, len(results))
			}

			return nil
		},
	}
}
