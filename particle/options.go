// SPDX-License-Identifier: MIT
// Package: particula/particle
//
// options.go — functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • WithStore and WithLogger panic on nil; a nil collaborator is a
//     programming error and must surface at the call site.
//   • Explicit charge and mass number are recorded with a "set" flag so
//     that an explicit zero is distinguishable from "not given".

package particle

import (
	"github.com/katalvlaran/particula/refdata"
	"go.uber.org/zap"
)

// Option customises one call to New.
type Option func(*config)

type config struct {
	store  refdata.Store
	logger *zap.Logger

	charge    int
	hasCharge bool

	massNumber    int
	hasMassNumber bool
}

// WithCharge sets an explicit integer charge (ionization state), the Z
// argument of the classic constructor.
func WithCharge(z int) Option {
	return func(c *config) {
		c.charge, c.hasCharge = z, true
	}
}

// WithMassNumber sets an explicit mass number to disambiguate an isotope.
func WithMassNumber(a int) Option {
	return func(c *config) {
		c.massNumber, c.hasMassNumber = a, true
	}
}

// WithStore resolves against tables other than refdata.Default().
func WithStore(s refdata.Store) Option {
	if s == nil {
		panic("particle: WithStore(nil)")
	}

	return func(c *config) { c.store = s }
}

// WithLogger routes construction warnings to l instead of zap.L().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("particle: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// newConfig applies opts over the defaults.
func newConfig(opts []Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.L()
	}
	if c.store == nil {
		t, err := refdata.Default()
		if err != nil {
			return nil, err
		}
		c.store = t
	}

	return c, nil
}
