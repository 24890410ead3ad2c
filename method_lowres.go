package ladybug

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

/*
LowResMethod is the empirical (SolarCal) method: two annual irradiance
series and a closed-form ERF expression built from the sky-view factor, the
fraction of the body in direct sun and the posture's projected-area factor.

It carries no sky matrix, no mannequin mesh and no visibility index; the
only geometry it touches is the body column used for the two occlusion
factors.
*/
type LowResMethod struct {
	// DirectNormal is the annual direct normal irradiance series, W/m2,
	// 8760 values. Required.
	DirectNormal []float64

	// DiffuseHorizontal is the annual diffuse horizontal irradiance series,
	// W/m2, 8760 values. Required.
	DiffuseHorizontal []float64

	column  []r3.Vec
	skyView float64
}

// NewLowResMethod selects the low-resolution method for the given annual
// direct normal and diffuse horizontal irradiance series.
func NewLowResMethod(directNormal, diffuseHorizontal []float64) *LowResMethod {
	return &LowResMethod{DirectNormal: directNormal, DiffuseHorizontal: diffuseHorizontal}
}

func (m *LowResMethod) name() string { return "low-res empirical" }

func (m *LowResMethod) validate() []error {
	var errs []error
	if len(m.DirectNormal) != HoursPerYear {
		errs = append(errs, fmt.Errorf("%w: direct normal irradiance needs %d values, got %d", ErrInvalidInput, HoursPerYear, len(m.DirectNormal)))
	}
	if len(m.DiffuseHorizontal) != HoursPerYear {
		errs = append(errs, fmt.Errorf("%w: diffuse horizontal irradiance needs %d values, got %d", ErrInvalidInput, HoursPerYear, len(m.DiffuseHorizontal)))
	}
	return errs
}

// prepare builds the body column and its sky-view factor. Both depend only
// on the posture, the body location and the context, so one evaluation
// serves every hour.
func (m *LowResMethod) prepare(rc *runContext) error {
	m.column = bodyColumn(rc.cfg.Posture, rc.cfg.BodyLocation)
	m.skyView = skyViewFactor(bodyCenter(m.column), rc.context)
	return nil
}

func (m *LowResMethod) sunUp(rc *runContext, i int) bool {
	return rc.altitudes[i] > 0
}

/*
hourERF evaluates the empirical expression for one hour:

	erf = (0.5*fracEff*skyView*(diff + glob*groundR)
	       + fracEff*fp*fBes*dirNorm) * winTrans * (cloA/0.95)

with glob the global horizontal irradiance reconstructed from the direct
normal and diffuse components. When fBes is zero the whole hour is zeroed,
matching the SolarCal treatment of a fully shaded body.
*/
func (m *LowResMethod) hourERF(rc *runContext, i int) float64 {
	fBes := directSunFraction(m.column, sunVector(rc.altitudes[i], rc.azimuths[i]), rc.context)
	if fBes == 0 {
		return 0
	}

	hour := rc.hours[i]
	dirNorm := m.DirectNormal[hour-1]
	diff := m.DiffuseHorizontal[hour-1]
	glob := dirNorm*math.Sin(rc.altitudes[i]) + diff

	azDeg := radToDeg(rc.azimuths[i]) + rc.cfg.RotationAngle
	fp := ProjectedAreaFactor(rc.cfg.Posture, azDeg, radToDeg(rc.altitudes[i]))

	diffuseTerm := 0.5 * rc.fracEff * m.skyView * (diff + glob*rc.cfg.GroundReflectivity)
	directTerm := rc.fracEff * fp * fBes * dirNorm
	return (diffuseTerm + directTerm) * rc.winTrans[i] * (rc.cfg.ClothingAbsorptivity / lwEmissivity)
}

// samples is nil: the low-resolution method has no body sample points to
// aggregate over.
func (m *LowResMethod) samples() []SampleResult {
	return nil
}
