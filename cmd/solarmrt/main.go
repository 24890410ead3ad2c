package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/barameteus/ladybug"
)

/*
solarmrt computes hourly solar-adjusted mean radiant temperature for one
location and body over an analysis period and writes the result as CSV.

The radiation input selects the method: -sky runs the high-resolution
sky-patch method, -irradiance the low-resolution empirical one. Exactly one
of the two must be given.
*/
func main() {
	var (
		latitude   = flag.Float64("lat", 0, "site latitude, degrees, positive north")
		longitude  = flag.Float64("lon", 0, "site longitude, degrees, positive east")
		timezone   = flag.Float64("tz", 0, "site time zone, hours from UTC")
		northAngle = flag.Float64("north", 0, "angle of model north from true north, degrees")

		skyPath        = flag.String("sky", "", "annual sky matrix CSV (high-resolution method)")
		irradiancePath = flag.String("irradiance", "", "annual direct/diffuse irradiance CSV (low-resolution method)")
		baselinePath   = flag.String("baseline", "", "annual baseline MRT CSV; or a single value via -baseline-value")
		baselineValue  = flag.Float64("baseline-value", 0, "constant baseline MRT, degrees C")

		posture  = flag.Int("posture", int(ladybug.PostureSeated), "body posture code 0..5")
		groundR  = flag.Float64("ground-reflectivity", 0.25, "ground reflectivity, (0, 1)")
		cloA     = flag.Float64("clothing-absorptivity", 0.7, "clothing absorptivity, (0, 1)")
		winTrans = flag.Float64("window-transmissivity", 1.0, "window transmissivity, [0, 1]")
		rotation = flag.Float64("rotation", 0, "body rotation in plan, degrees")

		hoy    = flag.Int("hoy", 0, "single hour of the year to analyze, 1..8760")
		period = flag.String("period", "", "analysis period as M/D/H-M/D/H, default full year")

		parallel = flag.Bool("parallel", false, "dispatch hours over a worker pool")
		workers  = flag.Int("workers", 0, "worker pool size, 0 means one per CPU")

		outPath = flag.String("o", "solar_mrt.csv", "output CSV path")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if *verbose {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg := ladybug.DefaultConfig()
	cfg.Location = ladybug.Location{
		Latitude:   *latitude,
		Longitude:  *longitude,
		TimeZone:   *timezone,
		NorthAngle: *northAngle,
	}
	cfg.Posture = ladybug.Posture(*posture)
	cfg.GroundReflectivity = *groundR
	cfg.ClothingAbsorptivity = *cloA
	cfg.WindowTransmissivity = []float64{*winTrans}
	cfg.RotationAngle = *rotation
	cfg.Parallel = *parallel
	cfg.Workers = *workers

	switch {
	case *hoy != 0:
		cfg.Period = ladybug.PeriodFromHOY(*hoy)
	case *period != "":
		p, err := parsePeriod(*period)
		if err != nil {
			log.Fatalw("parsing -period", "error", err)
		}
		cfg.Period = p
	}

	switch {
	case *baselinePath != "":
		values, err := ladybug.LoadSeriesCSV(*baselinePath)
		if err != nil {
			log.Fatalw("loading baseline MRT", "error", err)
		}
		cfg.BaselineMRT = values
	default:
		cfg.BaselineMRT = []float64{*baselineValue}
	}

	method, err := buildMethod(cfg, *skyPath, *irradiancePath)
	if err != nil {
		log.Fatalw("selecting method", "error", err)
	}

	engine, err := ladybug.NewEngine(cfg, method, log)
	if err != nil {
		log.Fatalw("building engine", "error", err)
	}
	result, err := engine.Run()
	if err != nil {
		log.Fatalw("running analysis", "error", err)
	}

	if err := ladybug.WriteResultCSV(*outPath, result); err != nil {
		log.Fatalw("writing output", "error", err)
	}
	log.Infow("done", "hours", len(result.Hours), "output", *outPath)
}

/*
buildMethod selects the computation method from the radiation input given
on the command line. For the high-resolution method the mannequin is the
simple one-sample body plus the default ground patch, since a meshed body
cannot be given on the command line.
*/
func buildMethod(cfg ladybug.Config, skyPath, irradiancePath string) (ladybug.Method, error) {
	switch {
	case skyPath != "" && irradiancePath != "":
		return nil, fmt.Errorf("-sky and -irradiance are mutually exclusive")
	case skyPath != "":
		sky, err := ladybug.LoadSkyMatrixCSV(skyPath)
		if err != nil {
			return nil, err
		}
		method := ladybug.NewHighResMethod(sky, ladybug.SimpleBodySample(cfg.Posture, cfg.BodyLocation))
		method.BodyArea = ladybug.DefaultBodySurfaceArea
		return method, nil
	case irradiancePath != "":
		dirNorm, diff, err := ladybug.LoadIrradianceCSV(irradiancePath)
		if err != nil {
			return nil, err
		}
		return ladybug.NewLowResMethod(dirNorm, diff), nil
	default:
		return nil, fmt.Errorf("one of -sky or -irradiance is required")
	}
}

// parsePeriod parses "M/D/H-M/D/H", for example "6/21/9-6/21/17".
func parsePeriod(s string) (ladybug.AnalysisPeriod, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return ladybug.AnalysisPeriod{}, fmt.Errorf("period %q is not of the form M/D/H-M/D/H", s)
	}
	start, err := parseDate(parts[0])
	if err != nil {
		return ladybug.AnalysisPeriod{}, err
	}
	end, err := parseDate(parts[1])
	if err != nil {
		return ladybug.AnalysisPeriod{}, err
	}
	return ladybug.AnalysisPeriod{Start: start, End: end}, nil
}

func parseDate(s string) (ladybug.MonthDayHour, error) {
	fields := strings.Split(s, "/")
	if len(fields) != 3 {
		return ladybug.MonthDayHour{}, fmt.Errorf("date %q is not of the form M/D/H", s)
	}
	var vals [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return ladybug.MonthDayHour{}, fmt.Errorf("date %q: %w", s, err)
		}
		vals[i] = v
	}
	return ladybug.MonthDayHour{Month: vals[0], Day: vals[1], Hour: vals[2]}, nil
}
