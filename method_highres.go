package ladybug

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

/*
HighResMethod is the discretized-sky radiative-transfer method: an annual
sky-patch matrix, a sampled body surface and a precomputed visibility index
between the two.

Construct with a sky matrix and body sample; the visibility index and the
per-sample cumulative pass are built once in prepare and reused by every
dispatched hour.
*/
type HighResMethod struct {
	// Sky is the annual per-patch radiation store. Required.
	Sky *SkyMatrix

	// Body is the sampled body surface, ground sample last. Required.
	Body BodySample

	// BodyArea overrides the body surface area, m2. Zero sums the sample
	// areas; the simple mannequins pass DefaultBodySurfaceArea because
	// their few samples do not carry real mesh areas.
	BodyArea float64

	vis           *VisibilityIndex
	flux          *FluxAccumulator
	sampleResults []SampleResult
}

// NewHighResMethod selects the high-resolution method for the given sky
// matrix and body sample.
func NewHighResMethod(sky *SkyMatrix, body BodySample) *HighResMethod {
	return &HighResMethod{Sky: sky, Body: body}
}

func (m *HighResMethod) name() string { return "high-res sky patch sum" }

func (m *HighResMethod) validate() []error {
	var errs []error
	if m.Sky == nil {
		errs = append(errs, errors.New("high-res method needs a sky matrix"))
	}
	if len(m.Body.Points) < 2 {
		errs = append(errs, fmt.Errorf("%w: body sample needs at least one body point and the ground sample, got %d points", ErrInvalidInput, len(m.Body.Points)))
	}
	for i, p := range m.Body.Points {
		if p.Area < 0 {
			errs = append(errs, fmt.Errorf("%w: sample %d has negative area %v", ErrInvalidInput, i, p.Area))
			break
		}
	}
	if m.BodyArea < 0 {
		errs = append(errs, fmt.Errorf("%w: body area %v must not be negative", ErrInvalidInput, m.BodyArea))
	}
	return errs
}

/*
prepare builds the visibility index against the joined context, body and
ground geometry, then runs the whole-period radiation pass that produces
the per-sample aggregates. The pass runs before any hour is dispatched, so
a period with no sky data aborts the run up front.

A ranged period aggregates the cumulative sky in kWh, recovered to an
average flux with the 500 conversion factor; a single hour uses the hourly
sky in Wh directly, with no conversion.
*/
func (m *HighResMethod) prepare(rc *runContext) error {
	obstruction := JoinMeshes(rc.context, m.Body.SurfaceMesh)
	m.vis = BuildVisibilityIndex(m.Body.Points, m.Sky.Directions(), obstruction, rc.cfg.Workers)
	m.flux = NewFluxAccumulator(m.vis, m.Body, m.BodyArea, rc.fracEff, rc.cfg.GroundReflectivity)

	var pointRad []float64
	energyFac := 500.0
	if rc.cfg.Period.IsSingleHour() {
		energyFac = 1.0
		hourly, err := m.Sky.HourlyRadiation(rc.cfg.Period.HOY())
		if err != nil {
			return err
		}
		pointRad = m.flux.PointRadiation(hourly.Total)
	} else {
		cumulative, err := m.Sky.CumulativeRadiation(rc.cfg.Period)
		if err != nil {
			return err
		}
		pointRad = m.flux.PointRadiation(cumulative.Total)
	}
	avgBaseline := stat.Mean(rc.baseline, nil)
	avgWinTrans := stat.Mean(rc.winTrans, nil)
	nHours := float64(len(rc.hours))

	m.sampleResults = make([]SampleResult, 0, len(m.Body.Points)-1)
	for i, p := range m.Body.Points[:len(m.Body.Points)-1] {
		avgFlux := pointRad[i] / nHours
		m.sampleResults = append(m.sampleResults, SampleResult{
			CumulativeRadiation: pointRad[i],
			RadiantTemperature: fluxToTemperature(
				avgFlux, rc.cfg.ClothingAbsorptivity, rc.fracEff, avgBaseline, avgWinTrans, energyFac),
			Area: p.Area,
		})
	}
	return nil
}

/*
sunUp tests the hour and both its neighbors (wrapping at the period
boundary): interpolated radiation can spill a little into the hours around
sunrise and sunset, so an hour only short-circuits to zero when its whole
three-hour window is below the horizon.
*/
func (m *HighResMethod) sunUp(rc *runContext, i int) bool {
	n := len(rc.altitudes)
	prev := (i + n - 1) % n
	next := (i + 1) % n
	return rc.altitudes[i] > 0 || rc.altitudes[prev] > 0 || rc.altitudes[next] > 0
}

func (m *HighResMethod) hourERF(rc *runContext, i int) float64 {
	rad, err := m.Sky.HourlyRadiation(rc.hours[i])
	if err != nil {
		// Hours were validated with the period before dispatch.
		panic(err)
	}
	flux := m.flux.BodyFlux(rad.Total, rc.winTrans[i])
	return ERFFromFlux(flux, rc.cfg.ClothingAbsorptivity)
}

func (m *HighResMethod) samples() []SampleResult {
	return m.sampleResults
}
