package ladybug

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

/*
A Config carries every input of a run that is not the radiation data
itself. The radiation input (sky matrix or direct/diffuse series) lives on
the method, because it is what selects the computation method.

All fields are read before dispatch and never written afterwards, so a
validated Config is safe to share between workers.
*/
type Config struct {
	// Location of the analysis. Required.
	Location Location

	// Period selects the analysis hours. DefaultConfig uses the full year.
	Period AnalysisPeriod

	// Posture of the body. DefaultConfig uses seated.
	Posture Posture

	// BodyLocation is the center-of-gravity point of the body in model
	// coordinates. The zero value keeps the body at the origin.
	BodyLocation r3.Vec

	// RotationAngle turns the body in plan, degrees. It shifts the relative
	// solar azimuth of the projected-area lookup.
	RotationAngle float64

	// GroundReflectivity is the fraction of solar radiation the ground
	// reflects, open interval (0, 1). Default 0.25 (grass / light soil).
	GroundReflectivity float64

	// ClothingAbsorptivity is the fraction of solar radiation the body
	// absorbs, open interval (0, 1). Default 0.7 (average skin and clothing).
	ClothingAbsorptivity float64

	// WindowTransmissivity is either one value or 8760 hourly values in
	// [0, 1]. Default 1 (fully outdoor).
	WindowTransmissivity []float64

	// BaselineMRT is the longwave mean radiant temperature the solar delta
	// is added onto: one value broadcast to all hours, or 8760 values,
	// degrees C. Required.
	BaselineMRT []float64

	// Context holds optional opaque obstruction meshes. A missing context
	// simply means an unobstructed sky.
	Context []Mesh

	// Parallel dispatches hours over a bounded worker pool; off means the
	// strictly sequential fallback. Workers limits the pool; values < 1
	// mean one worker per CPU.
	Parallel bool
	Workers  int
}

// DefaultConfig returns a Config with the usual outdoor defaults. Location
// and BaselineMRT remain to be filled in.
func DefaultConfig() Config {
	return Config{
		Period:               FullYear(),
		Posture:              PostureSeated,
		GroundReflectivity:   0.25,
		ClothingAbsorptivity: 0.7,
		WindowTransmissivity: []float64{1.0},
	}
}

/*
validate checks every input and returns all problems found, not only the
first: a run with three bad inputs reports three errors in one go.
*/
func (c *Config) validate() []error {
	errs := c.Location.Validate()
	errs = append(errs, c.Period.Validate()...)

	if !c.Posture.Valid() {
		errs = append(errs, fmt.Errorf("%w: posture code %d is not one of 0..5", ErrInvalidInput, int(c.Posture)))
	}

	if !openUnitInterval(c.GroundReflectivity) {
		errs = append(errs, fmt.Errorf("%w: ground reflectivity %v must be strictly between 0 and 1", ErrInvalidInput, c.GroundReflectivity))
	}
	if !openUnitInterval(c.ClothingAbsorptivity) {
		errs = append(errs, fmt.Errorf("%w: clothing absorptivity %v must be strictly between 0 and 1", ErrInvalidInput, c.ClothingAbsorptivity))
	}

	switch len(c.WindowTransmissivity) {
	case 1, HoursPerYear:
		for i, v := range c.WindowTransmissivity {
			if v < 0 || v > 1 {
				errs = append(errs, fmt.Errorf("%w: window transmissivity %v at index %d must be within [0, 1]", ErrInvalidInput, v, i))
				break
			}
		}
	default:
		errs = append(errs, fmt.Errorf("%w: window transmissivity needs 1 or %d values, got %d", ErrInvalidInput, HoursPerYear, len(c.WindowTransmissivity)))
	}

	switch len(c.BaselineMRT) {
	case 1, HoursPerYear:
	case 0:
		errs = append(errs, errors.New("baseline mean radiant temperature is required"))
	default:
		errs = append(errs, fmt.Errorf("%w: baseline MRT needs 1 or %d values, got %d", ErrInvalidInput, HoursPerYear, len(c.BaselineMRT)))
	}

	return errs
}

// joinedContext returns all context meshes joined into one. An absent
// context joins into an empty mesh, which blocks nothing.
func (c *Config) joinedContext() Mesh {
	return JoinMeshes(c.Context...)
}

// annualize broadcasts a 1-value series to the full year; 8760-value series
// pass through.
func annualize(series []float64) []float64 {
	if len(series) != 1 {
		return series
	}
	out := make([]float64, HoursPerYear)
	for i := range out {
		out[i] = series[0]
	}
	return out
}

func openUnitInterval(v float64) bool {
	return v > 0 && v < 1
}
