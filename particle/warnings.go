// SPDX-License-Identifier: MIT

package particle

import (
	"fmt"

	"go.uber.org/zap"
)

// WarningCode identifies why accepted input was flagged.
type WarningCode string

const (
	// WarnRedundantCharge: an explicit charge equals the one the identifier implies.
	WarnRedundantCharge WarningCode = "redundant-charge"

	// WarnRedundantMassNumber: an explicit mass number equals the implied one.
	WarnRedundantMassNumber WarningCode = "redundant-mass-number"

	// WarnUnusualCharge: a negative charge below -3, accepted but physically unlikely.
	WarnUnusualCharge WarningCode = "unusual-charge"
)

// unusualChargeBelow is the most negative charge accepted without a warning.
const unusualChargeBelow = -3

// Warning is a non-fatal note raised while constructing a Particle.
type Warning struct {
	Code    WarningCode
	Input   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// emit sends every warning to the logger at Warn level.
func emit(log *zap.Logger, particle string, ws []Warning) {
	for _, w := range ws {
		log.Warn(w.Message,
			zap.String("code", string(w.Code)),
			zap.String("input", w.Input),
			zap.String("particle", particle),
		)
	}
}
