package ladybug

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

/*
Projected-area factors for the low-resolution (SolarCal) method: the
fraction of the body's surface projected toward the sun, as an empirical
surface over solar azimuth relative to the body (0..180 degrees) and solar
altitude (0..90 degrees). One surface for standing bodies, one for seated;
lying bodies use the standing surface mirrored at 90 degrees altitude.

The grids are digitized at 15-degree steps from the SolarCal empirical
surfaces and interpolated bilinearly between nodes.
*/

const fpGridStep = 15.0

// rows: azimuth 0..180, cols: altitude 0..90, both in 15-degree steps.
var fpStandingGrid = []float64{
	0.35, 0.35, 0.31, 0.26, 0.21, 0.14, 0.08,
	0.35, 0.35, 0.31, 0.26, 0.20, 0.14, 0.08,
	0.34, 0.34, 0.30, 0.26, 0.20, 0.14, 0.08,
	0.34, 0.33, 0.30, 0.25, 0.20, 0.14, 0.08,
	0.33, 0.32, 0.29, 0.25, 0.20, 0.14, 0.08,
	0.32, 0.31, 0.28, 0.24, 0.19, 0.13, 0.08,
	0.31, 0.30, 0.27, 0.23, 0.19, 0.13, 0.08,
	0.30, 0.30, 0.27, 0.23, 0.18, 0.13, 0.08,
	0.30, 0.29, 0.26, 0.22, 0.18, 0.13, 0.08,
	0.29, 0.29, 0.26, 0.22, 0.18, 0.13, 0.08,
	0.29, 0.28, 0.25, 0.22, 0.18, 0.13, 0.08,
	0.29, 0.28, 0.25, 0.21, 0.17, 0.13, 0.08,
	0.28, 0.28, 0.25, 0.21, 0.17, 0.12, 0.08,
}

var fpSeatedGrid = []float64{
	0.25, 0.25, 0.23, 0.19, 0.15, 0.10, 0.06,
	0.25, 0.25, 0.23, 0.19, 0.15, 0.10, 0.06,
	0.25, 0.25, 0.23, 0.19, 0.15, 0.10, 0.06,
	0.25, 0.25, 0.23, 0.19, 0.14, 0.10, 0.06,
	0.24, 0.24, 0.22, 0.18, 0.14, 0.10, 0.06,
	0.24, 0.24, 0.22, 0.18, 0.14, 0.10, 0.06,
	0.23, 0.23, 0.21, 0.18, 0.14, 0.10, 0.06,
	0.23, 0.23, 0.21, 0.17, 0.13, 0.10, 0.06,
	0.22, 0.22, 0.20, 0.17, 0.13, 0.10, 0.06,
	0.22, 0.22, 0.20, 0.16, 0.13, 0.10, 0.06,
	0.21, 0.21, 0.19, 0.16, 0.13, 0.10, 0.06,
	0.21, 0.21, 0.19, 0.16, 0.12, 0.10, 0.06,
	0.20, 0.20, 0.18, 0.15, 0.12, 0.10, 0.06,
}

// A ProjAreaSurface is one posture's projected-area-factor lookup surface.
type ProjAreaSurface struct {
	grid *mat.Dense
}

var (
	fpStanding = &ProjAreaSurface{grid: mat.NewDense(13, 7, fpStandingGrid)}
	fpSeated   = &ProjAreaSurface{grid: mat.NewDense(13, 7, fpSeatedGrid)}
)

/*
At interpolates the surface at the given angles.

	Args:
	    azimuthDeg: azimuth relative to the body, degrees, [0, 180]
	    altitudeDeg: solar altitude, degrees, [0, 90]

	Returns:
	    the projected area factor, dimensionless
*/
func (s *ProjAreaSurface) At(azimuthDeg, altitudeDeg float64) float64 {
	rows, cols := s.grid.Dims()

	ar := clamp(azimuthDeg/fpGridStep, 0, float64(rows-1))
	ac := clamp(altitudeDeg/fpGridStep, 0, float64(cols-1))

	r0 := int(math.Floor(ar))
	c0 := int(math.Floor(ac))
	r1 := min(r0+1, rows-1)
	c1 := min(c0+1, cols-1)
	fr := ar - float64(r0)
	fc := ac - float64(c0)

	top := s.grid.At(r0, c0)*(1-fc) + s.grid.At(r0, c1)*fc
	bot := s.grid.At(r1, c0)*(1-fc) + s.grid.At(r1, c1)*fc
	return top*(1-fr) + bot*fr
}

/*
ProjectedAreaFactor evaluates the posture's surface for the given sun
position: the azimuth is folded into [0, 180] by repeated 180-degree
shifts, altitudes beyond 90 degrees wrap back by 90, and the lying postures
look up the standing surface at the mirrored altitude.

	Args:
	    posture: the body posture
	    azimuthDeg: solar azimuth from north plus any north/rotation
	        angle offsets, degrees
	    altitudeDeg: solar altitude, degrees
*/
func ProjectedAreaFactor(posture Posture, azimuthDeg, altitudeDeg float64) float64 {
	az := azimuthDeg
	for az > 180 {
		az -= 180
	}
	for az < 0 {
		az += 180
	}

	alt := altitudeDeg
	if alt > 90 {
		alt -= 90
	}

	switch posture {
	case PostureStanding, PostureStandingSimple:
		return fpStanding.At(az, alt)
	case PostureSeated, PostureSeatedSimple:
		return fpSeated.At(az, alt)
	case PostureLying, PostureLyingSimple:
		return fpStanding.At(az, 90-alt)
	default:
		panic("invalid posture")
	}
}

/*
skyViewFactor estimates the fraction of the sky hemisphere visible from a
point: occlusion rays are cast along the 145 Tregenza patch directions (a
fixed, uniformly distributed direction set) and the blocked fraction is
subtracted.

	Args:
	    point: the body's sky-view reference point
	    context: the joined obstruction mesh

	Returns:
	    the sky-view factor in [0, 1]; 1 when there is no context
*/
func skyViewFactor(point r3.Vec, context Mesh) float64 {
	if context.IsEmpty() {
		return 1.0
	}
	directions := TregenzaDirections()
	blocked := 0
	for _, dir := range directions {
		if context.IntersectsRay(point, dir) {
			blocked++
		}
	}
	return 1.0 - float64(blocked)/float64(len(directions))
}

/*
directSunFraction computes fBes, the fraction of the body visible to the
sun: the share of the body-column points whose ray toward the sun is not
blocked by context geometry.

	Args:
	    column: the along-the-body points
	    sun: unit vector toward the sun
	    context: the joined obstruction mesh

	Returns:
	    fBes in [0, 1]; 1 when there is no context
*/
func directSunFraction(column []r3.Vec, sun r3.Vec, context Mesh) float64 {
	if context.IsEmpty() {
		return 1.0
	}
	visible := 0
	for _, pt := range column {
		if !context.IntersectsRay(pt, sun) {
			visible++
		}
	}
	return float64(visible) / float64(len(column))
}
