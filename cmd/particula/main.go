// SPDX-License-Identifier: MIT

// Command particula is the command-line front end of the particle
// identification library.
package main

import (
	"os"

	"github.com/katalvlaran/particula/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
