package ladybug

/*
A Series is one hourly output list tagged with what it is, its unit, its
frequency and the analysis period it covers. Values[i] belongs to Hours[i].
*/
type Series struct {
	Name      string
	Units     string
	Frequency string
	Start     MonthDayHour
	End       MonthDayHour
	Hours     []int
	Values    []float64
}

/*
A SampleResult is the period-aggregated outcome for one body sample point of
a high-resolution run: the radiation it received over the period (kWh/m2 for
a ranged period, Wh/m2 for a single-hour one), the resulting time-averaged
solar-adjusted radiant temperature, degrees C, and the sample's area, m2.
The ground sample is not included.
*/
type SampleResult struct {
	CumulativeRadiation float64
	RadiantTemperature  float64
	Area                float64
}

/*
A Result is the full outcome of a run: the three hourly series (ERF in W/m2,
MRT delta and solar-adjusted MRT in degrees C) in ascending hour-of-year
order, plus the per-sample aggregates when the run used the high-resolution
method.
*/
type Result struct {
	Hours    []int
	ERF      Series
	MRTDelta Series
	MRT      Series
	Samples  []SampleResult
}

func newSeries(name, units string, period AnalysisPeriod, hours []int, values []float64) Series {
	return Series{
		Name:      name,
		Units:     units,
		Frequency: "Hourly",
		Start:     period.Start,
		End:       period.End,
		Hours:     hours,
		Values:    values,
	}
}
