package ladybug

import "gonum.org/v1/gonum/floats"

/*
A FluxAccumulator turns a per-patch radiation vector into the total
shortwave flux incident on the body, using the precomputed visibility
index. It carries only read-only state and may be shared across workers.

The patch sum is a plain cosine-weighted accumulation over unobstructed
patches with no patch-to-point distance falloff; the sky dome is treated as
an infinitely distant diffuse source.
*/
type FluxAccumulator struct {
	vis      *VisibilityIndex
	areas    []float64 // per sample point, ground sample last
	bodyArea float64
	fracEff  float64
	groundR  float64
}

/*
NewFluxAccumulator prepares the accumulator.

	Args:
	    vis: the visibility index for the body sample
	    body: the body sample the index was built from
	    bodyArea: total body surface area, m2; when 0 it is summed from
	        the sample areas (the simple mannequins carry a fixed 1.775)
	    fracEff: posture-dependent effective-radiation-area fraction
	    groundReflectivity: fraction of radiation the ground reflects
*/
func NewFluxAccumulator(vis *VisibilityIndex, body BodySample, bodyArea, fracEff, groundReflectivity float64) *FluxAccumulator {
	areas := make([]float64, len(body.Points))
	for i, p := range body.Points {
		areas[i] = p.Area
	}
	if bodyArea == 0 {
		bodyArea = body.BodyArea()
	}
	return &FluxAccumulator{
		vis:      vis,
		areas:    areas,
		bodyArea: bodyArea,
		fracEff:  fracEff,
		groundR:  groundReflectivity,
	}
}

/*
PointRadiation accumulates, for every sample point, the radiation of the
patches visible from it weighted by the cosine of the incidence angle.

	Args:
	    patchRadiation: per-patch radiation vector (one hour or cumulative)

	Returns:
	    radiation reaching each sample point, same unit per m2 as the input
*/
func (f *FluxAccumulator) PointRadiation(patchRadiation []float64) []float64 {
	result := make([]float64, f.vis.Points())
	for i := range result {
		var rad float64
		for j, value := range patchRadiation {
			if f.vis.Unobstructed(i, j) {
				rad += value * f.vis.Cosine(i, j)
			}
		}
		result[i] = rad
	}
	return result
}

/*
BodyFlux reduces a per-patch radiation vector to the total flux incident on
the body for one hour:

	bodySum   = sum over body samples of pointRadiation x area
	groundRef = 0.5 x groundRadiation x fracEff x groundReflectivity
	flux      = (bodySum + groundRef) / bodyArea

both terms scaled by the hour's window transmissivity first. The 0.5 of the
ground term approximates the body's partial view of the reflecting plane.

	Args:
	    patchRadiation: per-patch radiation for the hour, Wh/m2
	    winTrans: window transmissivity for the hour, [0, 1]

	Returns:
	    incident flux on the body, W/m2
*/
func (f *FluxAccumulator) BodyFlux(patchRadiation []float64, winTrans float64) float64 {
	pointRad := f.PointRadiation(patchRadiation)

	personRad := pointRad[:len(pointRad)-1]
	groundRad := pointRad[len(pointRad)-1]

	bodySum := floats.Dot(personRad, f.areas[:len(f.areas)-1])
	if winTrans != 1 {
		bodySum *= winTrans
		groundRad *= winTrans
	}

	groundRef := 0.5 * groundRad * f.fracEff * f.groundR

	return (bodySum + groundRef) / f.bodyArea
}
