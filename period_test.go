package ladybug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromHOY(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hoy  int
		want MonthDayHour
	}{
		{1, MonthDayHour{Month: 1, Day: 1, Hour: 1}},
		{24, MonthDayHour{Month: 1, Day: 1, Hour: 24}},
		{25, MonthDayHour{Month: 1, Day: 2, Hour: 1}},
		{744, MonthDayHour{Month: 1, Day: 31, Hour: 24}},
		{745, MonthDayHour{Month: 2, Day: 1, Hour: 1}},
		{4093, MonthDayHour{Month: 6, Day: 21, Hour: 13}},
		{8760, MonthDayHour{Month: 12, Day: 31, Hour: 24}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DateFromHOY(c.hoy), "hoy %d", c.hoy)
	}
}

func TestHOYFromDateRoundTrip(t *testing.T) {
	t.Parallel()

	for hoy := 1; hoy <= HoursPerYear; hoy += 37 {
		assert.Equal(t, hoy, HOYFromDate(DateFromHOY(hoy)))
	}
	assert.Equal(t, HoursPerYear, HOYFromDate(DateFromHOY(HoursPerYear)))
}

func TestAnalysisPeriodHours(t *testing.T) {
	t.Parallel()

	t.Run("full year selects every hour", func(t *testing.T) {
		t.Parallel()
		hours := FullYear().Hours()
		require.Len(t, hours, HoursPerYear)
		assert.Equal(t, 1, hours[0])
		assert.Equal(t, HoursPerYear, hours[len(hours)-1])
	})

	t.Run("single hour", func(t *testing.T) {
		t.Parallel()
		p := PeriodFromHOY(4093)
		assert.True(t, p.IsSingleHour())
		assert.Equal(t, []int{4093}, p.Hours())
	})

	t.Run("start and end hours filter each day", func(t *testing.T) {
		t.Parallel()
		p := AnalysisPeriod{
			Start: MonthDayHour{Month: 6, Day: 21, Hour: 9},
			End:   MonthDayHour{Month: 6, Day: 23, Hour: 17},
		}
		hours := p.Hours()
		require.Len(t, hours, 3*9)
		for _, h := range hours {
			hod := (h-1)%24 + 1
			assert.GreaterOrEqual(t, hod, 9)
			assert.LessOrEqual(t, hod, 17)
		}
	})

	t.Run("wrapping period stays ascending", func(t *testing.T) {
		t.Parallel()
		p := AnalysisPeriod{
			Start: MonthDayHour{Month: 12, Day: 31, Hour: 1},
			End:   MonthDayHour{Month: 1, Day: 1, Hour: 24},
		}
		hours := p.Hours()
		require.Len(t, hours, 48)
		assert.Equal(t, 1, hours[0])
		assert.Equal(t, HoursPerYear, hours[len(hours)-1])
		for i := 1; i < len(hours); i++ {
			assert.Greater(t, hours[i], hours[i-1])
		}
	})
}

func TestAnalysisPeriodValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid period", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FullYear().Validate())
	})

	t.Run("all problems reported", func(t *testing.T) {
		t.Parallel()
		p := AnalysisPeriod{
			Start: MonthDayHour{Month: 13, Day: 1, Hour: 1},
			End:   MonthDayHour{Month: 2, Day: 30, Hour: 25},
		}
		errs := p.Validate()
		// bad start month, bad end day, bad end hour
		assert.Len(t, errs, 3)
	})

	t.Run("hour of year out of range", func(t *testing.T) {
		t.Parallel()
		errs := PeriodFromHOY(9000).Validate()
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrInvalidInput)
	})
}
