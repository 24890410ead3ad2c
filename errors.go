package ladybug

import "errors"

// Sentinel errors. Input problems wrap ErrInvalidInput so callers can tell a
// rejected configuration apart from a run that found no sky data for its
// period (ErrNoSkyData), which is an internal fatal condition rather than a
// validation failure.
var (
	// ErrInvalidInput marks a configuration value rejected before any
	// computation started.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSkyMatrix marks a sky radiation matrix whose patch count or
	// series length does not match a supported sky discretization.
	ErrInvalidSkyMatrix = errors.New("invalid sky matrix")

	// ErrNoSkyData is returned when period selection over the sky matrix
	// yields no radiation data at all.
	ErrNoSkyData = errors.New("no sky data for the requested period")
)
