package ladybug

import (
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

/*
A Method is one of the two mutually exclusive ways to turn sky radiation
into an hourly ERF. Which one a run uses is decided by which radiation
input was supplied: a sky matrix selects HighResMethod, a direct/diffuse
series pair selects LowResMethod.

Methods carry the radiation input and any state built once in prepare;
after prepare they are read-only and shared by every dispatched hour.
*/
type Method interface {
	// name identifies the method in logs.
	name() string

	// validate contributes the method's own input checks to the collected
	// validation report.
	validate() []error

	// prepare builds the run's one-time state (visibility index, sky-view
	// factor, cumulative pass) before any hour is dispatched.
	prepare(rc *runContext) error

	// sunUp reports whether hour index i is worth computing at all.
	sunUp(rc *runContext, i int) bool

	// hourERF computes the effective radiant field, W/m2, for hour index i.
	// It must not mutate any state shared with other hours.
	hourERF(rc *runContext, i int) float64

	// samples returns the per-sample aggregates built during prepare, or
	// nil for methods that have none.
	samples() []SampleResult
}

/*
runContext is the shared, read-only view of one run handed to every worker:
the selected hours and, aligned with them, the per-hour solar positions and
input series.
*/
type runContext struct {
	cfg       *Config
	hours     []int
	altitudes []float64
	azimuths  []float64
	winTrans  []float64
	baseline  []float64
	fracEff   float64
	context   Mesh
}

// An Engine computes solar-adjusted mean radiant temperature over an
// analysis period. Build one with NewEngine, run it with Run.
type Engine struct {
	cfg    Config
	method Method
	log    *zap.SugaredLogger
}

/*
NewEngine validates the configuration and the method's radiation input.
Validation checks everything before rejecting, so the returned error joins
every problem found rather than only the first.

	Args:
	    cfg: the run configuration
	    method: the computation method carrying the radiation input
	    logger: run-phase logging; nil means silent
*/
func NewEngine(cfg Config, method Method, logger *zap.SugaredLogger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if method == nil {
		return nil, errors.New("a computation method is required")
	}

	errs := cfg.validate()
	errs = append(errs, method.validate()...)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Engine{cfg: cfg, method: method, log: logger}, nil
}

/*
Run executes the analysis: one-time preparation, per-hour dispatch
(sequential or over a bounded worker pool) and assembly of the tagged
output series.

Hours share only read-only inputs; under the parallel dispatch every worker
writes exclusively to its own pre-sized result slot, so completion order
does not matter and the output is chronological by construction. A run
either completes in full or fails before dispatch; there is no partial
output and no cancellation.
*/
func (e *Engine) Run() (*Result, error) {
	rc := e.newRunContext()

	e.log.Infow("preparing run",
		"method", e.method.name(),
		"hours", len(rc.hours),
		"posture", e.cfg.Posture.String(),
		"parallel", e.cfg.Parallel,
	)
	if err := e.method.prepare(rc); err != nil {
		return nil, err
	}

	n := len(rc.hours)
	erf := make([]float64, n)
	delta := make([]float64, n)
	mrt := make([]float64, n)

	compute := func(i int) {
		if !e.method.sunUp(rc, i) {
			mrt[i] = rc.baseline[i]
			return
		}
		v := e.method.hourERF(rc, i)
		erf[i] = v
		delta[i] = MRTDeltaFromERF(v, rc.fracEff)
		mrt[i] = rc.baseline[i] + delta[i]
	}

	if e.cfg.Parallel {
		workers := e.cfg.Workers
		if workers < 1 {
			workers = runtime.NumCPU()
		}
		g := new(errgroup.Group)
		g.SetLimit(workers)
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				compute(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := 0; i < n; i++ {
			compute(i)
		}
	}

	e.log.Infow("run complete", "hours", n)

	period := e.cfg.Period
	return &Result{
		Hours:    rc.hours,
		ERF:      newSeries("Effective Radiant Field", "W/m2", period, rc.hours, erf),
		MRTDelta: newSeries("Solar Mean Radiant Temp Delta", "C", period, rc.hours, delta),
		MRT:      newSeries("Solar-Adjusted Mean Radiant Temperature", "C", period, rc.hours, mrt),
		Samples:  e.method.samples(),
	}, nil
}

// newRunContext selects the analysis hours and aligns every annual input
// series with them, precomputing the solar position for each.
func (e *Engine) newRunContext() *runContext {
	hours := e.cfg.Period.Hours()

	baseline := annualize(e.cfg.BaselineMRT)
	winTrans := annualize(e.cfg.WindowTransmissivity)

	rc := &runContext{
		cfg:       &e.cfg,
		hours:     hours,
		altitudes: make([]float64, len(hours)),
		azimuths:  make([]float64, len(hours)),
		winTrans:  make([]float64, len(hours)),
		baseline:  make([]float64, len(hours)),
		fracEff:   e.cfg.Posture.FracEff(),
		context:   e.cfg.joinedContext(),
	}
	for i, h := range hours {
		rc.altitudes[i], rc.azimuths[i] = SunPosition(e.cfg.Location, h)
		rc.winTrans[i] = winTrans[h-1]
		rc.baseline[i] = baseline[h-1]
	}
	return rc
}
