// SPDX-License-Identifier: MIT

package refdata

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidTable indicates a reference table that decodes but violates an
	// invariant (duplicate symbol, empty range, nuclide outside its range, ...).
	ErrInvalidTable = errors.New("refdata: invalid reference table")

	// ErrSchemaVersion indicates a table whose schema_version is missing or
	// outside the supported constraint.
	ErrSchemaVersion = errors.New("refdata: unsupported schema version")

	// ErrTableNotFound indicates that none of the accepted file names for a
	// table exist in the loaded file system.
	ErrTableNotFound = errors.New("refdata: table file not found")
)
