// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/katalvlaran/particula/particle"
	"github.com/spf13/cobra"
)

// NewIsCommand creates the is command, a thin shell over IsCategory.
func NewIsCommand(env *Env) *cobra.Command {
	var (
		exclude  []string
		matchAny bool
	)
	cmd := &cobra.Command{
		Use:   "is <identifier> [category...]",
		Short: "Test a particle against classification categories",
		Long: `Print true when the particle carries every listed category (or, with
--any, at least one of them) and none of the --exclude categories.`,
		Example: `  particula is e- lepton fermion
  particula is alpha baryon lepton --any
  particula is positron fermion --exclude antimatter`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveArg(cmd, env, args[0])
			if err != nil {
				return err
			}
			var opts []particle.QueryOption
			if len(exclude) > 0 {
				opts = append(opts, particle.Exclude(exclude...))
			}
			if matchAny {
				opts = append(opts, particle.MatchAny())
			}
			ok, err := p.IsCategory(args[1:], opts...)
			if err != nil {
				return err
			}

			if env.jsonOutput() {
				return renderJSON(cmd.OutOrStdout(), map[string]any{
					"particle":   p.String(),
					"require":    args[1:],
					"exclude":    exclude,
					"any":        matchAny,
					"result":     ok,
					"categories": p.Categories().Names(),
				})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ok)

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "categories that must be absent")
	cmd.Flags().BoolVar(&matchAny, "any", false, "match any listed category instead of all")
	particleFlags(cmd)

	return cmd
}
