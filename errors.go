package nsga3

import "errors"

// Sentinel errors raised by the selection engine. Callers should use
// errors.Is against these, not string matching; every error from the
// engine is one of these or wraps one via fmt.Errorf("...: %w", err).
// File and JSON errors from LoadConfigFromFile/SaveConfigToFile wrap
// the underlying os or encoding/json error instead.
//
// Singular is recovered internally by the Normalizer and never reaches
// a caller; the other three terminate the current select() pass and
// leave the population untouched.
var (
	// ErrInvalidParam marks a malformed configuration: M<1, P<1, N<1,
	// or a dimension mismatch between a fitness vector and M.
	ErrInvalidParam = errors.New("nsga3: invalid parameter")

	// ErrSingular marks a matrix whose LU pivot magnitude falls below
	// epsilonPivot. The Normalizer recovers from it with the per-axis
	// intercept fallback; never surfaced to the caller.
	ErrSingular = errors.New("nsga3: singular extreme-point matrix")

	// ErrDegenerateFront marks a non-positive intercept surviving the
	// singularity fallback.
	ErrDegenerateFront = errors.New("nsga3: degenerate front")

	// ErrEmptyFront marks an empty population passed to select().
	ErrEmptyFront = errors.New("nsga3: empty population")
)
