// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/katalvlaran/particula/refdata"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the particula version and the reference-table schema it accepts.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "particula v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reference table schema %s\n", refdata.SchemaConstraint)
		},
	}
}
