package ladybug

import "fmt"

// HoursPerYear is the number of hourly steps in the (non-leap) analysis year.
const HoursPerYear = 8760

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthDayHour is a calendar position within the analysis year.
// Month is 1..12, Day is 1..31 and Hour is 1..24 (the hour ending).
type MonthDayHour struct {
	Month int
	Day   int
	Hour  int
}

func (m MonthDayHour) String() string {
	return fmt.Sprintf("%d/%d %d:00", m.Month, m.Day, m.Hour)
}

/*
DateFromHOY converts an hour of the year into a calendar position.

	Args:
	    hoy: hour of the year, 1..8760 (1 = January 1st, hour ending 1:00)

	Returns:
	    the month, day and hour-of-day of the given hour
*/
func DateFromHOY(hoy int) MonthDayHour {
	day := (hoy - 1) / 24
	hour := (hoy-1)%24 + 1
	month := 0
	for day >= daysInMonth[month] {
		day -= daysInMonth[month]
		month++
	}
	return MonthDayHour{Month: month + 1, Day: day + 1, Hour: hour}
}

/*
HOYFromDate converts a calendar position into an hour of the year, 1..8760.
The inverse of DateFromHOY.
*/
func HOYFromDate(d MonthDayHour) int {
	days := d.Day - 1
	for m := 0; m < d.Month-1; m++ {
		days += daysInMonth[m]
	}
	return days*24 + d.Hour
}

/*
An AnalysisPeriod selects the hours of the year over which the engine runs.
It is either a start/end calendar range (possibly wrapping over the end of
the year) or a single hour of the year.

For a ranged period the start/end hours act as a per-day filter: a period of
(6/21 9:00)-(6/23 17:00) selects hours 9..17 on each of the three days, not a
contiguous block. Cumulative-sky tooling selects hours the same way, so the
two stay aligned.
*/
type AnalysisPeriod struct {
	Start MonthDayHour
	End   MonthDayHour

	// hoy is set for a single-hour period; 0 for a ranged one.
	hoy int
}

// FullYear returns the default period covering all 8760 hours.
func FullYear() AnalysisPeriod {
	return AnalysisPeriod{
		Start: MonthDayHour{Month: 1, Day: 1, Hour: 1},
		End:   MonthDayHour{Month: 12, Day: 31, Hour: 24},
	}
}

// PeriodFromHOY returns a single-hour period for the given hour of the year.
func PeriodFromHOY(hoy int) AnalysisPeriod {
	d := MonthDayHour{}
	if hoy >= 1 && hoy <= HoursPerYear {
		d = DateFromHOY(hoy)
	}
	return AnalysisPeriod{Start: d, End: d, hoy: hoy}
}

// IsSingleHour reports whether the period is a single hour of the year.
func (p AnalysisPeriod) IsSingleHour() bool {
	return p.hoy != 0
}

// HOY returns the hour of the year of a single-hour period, 0 otherwise.
func (p AnalysisPeriod) HOY() int {
	return p.hoy
}

// Validate checks the period bounds. All problems are reported, not just the
// first one found.
func (p AnalysisPeriod) Validate() []error {
	var errs []error
	if p.hoy != 0 {
		if p.hoy < 1 || p.hoy > HoursPerYear {
			errs = append(errs, fmt.Errorf("%w: hour of the year %d must be within [1, %d]", ErrInvalidInput, p.hoy, HoursPerYear))
		}
		return errs
	}
	for _, d := range []struct {
		name string
		mdh  MonthDayHour
	}{{"period start", p.Start}, {"period end", p.End}} {
		if d.mdh.Month < 1 || d.mdh.Month > 12 {
			errs = append(errs, fmt.Errorf("%w: %s month %d must be within [1, 12]", ErrInvalidInput, d.name, d.mdh.Month))
			continue
		}
		if d.mdh.Day < 1 || d.mdh.Day > daysInMonth[d.mdh.Month-1] {
			errs = append(errs, fmt.Errorf("%w: %s day %d is not valid for month %d", ErrInvalidInput, d.name, d.mdh.Day, d.mdh.Month))
		}
		if d.mdh.Hour < 1 || d.mdh.Hour > 24 {
			errs = append(errs, fmt.Errorf("%w: %s hour %d must be within [1, 24]", ErrInvalidInput, d.name, d.mdh.Hour))
		}
	}
	if len(errs) == 0 && p.Start.Hour > p.End.Hour {
		errs = append(errs, fmt.Errorf("%w: period start hour %d must not be after end hour %d", ErrInvalidInput, p.Start.Hour, p.End.Hour))
	}
	return errs
}

/*
Hours enumerates the hours of the year selected by the period, ascending in
hour of the year. For a period wrapping over December 31st the January hours
therefore come first; selection membership is unaffected.

	Returns:
	    hours of the year, each within [1, 8760]
*/
func (p AnalysisPeriod) Hours() []int {
	if p.hoy != 0 {
		return []int{p.hoy}
	}

	stAnnual := HOYFromDate(MonthDayHour{Month: p.Start.Month, Day: p.Start.Day, Hour: 1})
	endAnnual := HOYFromDate(MonthDayHour{Month: p.End.Month, Day: p.End.Day, Hour: 24})

	selected := func(hoy int) bool {
		if stAnnual <= endAnnual {
			if hoy < stAnnual || hoy > endAnnual {
				return false
			}
		} else if hoy < stAnnual && hoy > endAnnual {
			// The period runs over the end of the year into the next.
			return false
		}
		hod := (hoy-1)%24 + 1
		return hod >= p.Start.Hour && hod <= p.End.Hour
	}

	var hours []int
	for h := 1; h <= HoursPerYear; h++ {
		if selected(h) {
			hours = append(hours, h)
		}
	}
	return hours
}
