// SPDX-License-Identifier: MIT

// Package commands implements the particula subcommands.
package commands

import (
	"github.com/katalvlaran/particula/internal/cli/config"
	"github.com/katalvlaran/particula/particle"
	"github.com/katalvlaran/particula/refdata"
	"go.uber.org/zap"
)

// Env carries what every subcommand needs. The root command fills it in
// its PersistentPreRunE, after flags are parsed and config is loaded.
type Env struct {
	Config *config.Config
	Tables *refdata.Tables
	Logger *zap.Logger
}

// particleOptions returns the options binding a resolution to env's tables
// and logger.
func (e *Env) particleOptions() []particle.Option {
	return []particle.Option{particle.WithStore(e.Tables), particle.WithLogger(e.Logger)}
}

// jsonOutput reports whether --output json is in effect.
func (e *Env) jsonOutput() bool {
	return e.Config != nil && e.Config.Output == config.OutputJSON
}
