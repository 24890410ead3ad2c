package ladybug

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

/*
CSV input and output for the engine. Three file shapes are supported:

  - an irradiance file: one row per hour with the direct normal and diffuse
    horizontal components, feeding the low-resolution method
  - an annual series file: one row per hour with a single value, feeding
    the baseline MRT and window transmissivity inputs
  - a sky matrix file: one row per (patch, hour) pair with the diffuse and
    direct patch radiation, feeding the high-resolution method

All hours are 1..8760 and all files are expected in chronological order.
*/

type irradianceRow struct {
	Hour              int     `csv:"hour"`
	DirectNormal      float64 `csv:"direct_normal"`
	DiffuseHorizontal float64 `csv:"diffuse_horizontal"`
}

type seriesRow struct {
	Hour  int     `csv:"hour"`
	Value float64 `csv:"value"`
}

type skyMatrixRow struct {
	Patch   int     `csv:"patch"`
	Hour    int     `csv:"hour"`
	Diffuse float64 `csv:"diffuse"`
	Direct  float64 `csv:"direct"`
}

type resultRow struct {
	Hour     int     `csv:"hour"`
	ERF      float64 `csv:"erf"`
	MRTDelta float64 `csv:"mrt_delta"`
	MRT      float64 `csv:"mrt"`
}

/*
LoadIrradianceCSV reads an annual irradiance file.

	Args:
	    path: CSV file with columns hour, direct_normal, diffuse_horizontal

	Returns:
	    (1) direct normal irradiance, W/m2, 8760 values
	    (2) diffuse horizontal irradiance, W/m2, 8760 values
*/
func LoadIrradianceCSV(path string) ([]float64, []float64, error) {
	var rows []*irradianceRow
	if err := unmarshalCSV(path, &rows); err != nil {
		return nil, nil, err
	}
	if len(rows) != HoursPerYear {
		return nil, nil, fmt.Errorf("%w: %s has %d rows, want %d", ErrInvalidInput, path, len(rows), HoursPerYear)
	}
	dirNorm := make([]float64, HoursPerYear)
	diff := make([]float64, HoursPerYear)
	for i, row := range rows {
		if row.Hour != i+1 {
			return nil, nil, fmt.Errorf("%w: %s row %d has hour %d, want %d", ErrInvalidInput, path, i+1, row.Hour, i+1)
		}
		dirNorm[i] = row.DirectNormal
		diff[i] = row.DiffuseHorizontal
	}
	return dirNorm, diff, nil
}

/*
LoadSeriesCSV reads an annual single-value series file.

	Args:
	    path: CSV file with columns hour, value

	Returns:
	    the values in chronological order, 8760 of them
*/
func LoadSeriesCSV(path string) ([]float64, error) {
	var rows []*seriesRow
	if err := unmarshalCSV(path, &rows); err != nil {
		return nil, err
	}
	if len(rows) != HoursPerYear {
		return nil, fmt.Errorf("%w: %s has %d rows, want %d", ErrInvalidInput, path, len(rows), HoursPerYear)
	}
	values := make([]float64, HoursPerYear)
	for i, row := range rows {
		if row.Hour != i+1 {
			return nil, fmt.Errorf("%w: %s row %d has hour %d, want %d", ErrInvalidInput, path, i+1, row.Hour, i+1)
		}
		values[i] = row.Value
	}
	return values, nil
}

/*
LoadSkyMatrixCSV reads an annual sky matrix file. The patch count is taken
from the highest patch index in the file and must match one of the two
supported sky domes (145 Tregenza patches or 577 Reinhart patches).

	Args:
	    path: CSV file with columns patch, hour, diffuse, direct; patch
	        indices are 0-based, rows ordered patch-major

	Returns:
	    the validated sky matrix
*/
func LoadSkyMatrixCSV(path string) (*SkyMatrix, error) {
	var rows []*skyMatrixRow
	if err := unmarshalCSV(path, &rows); err != nil {
		return nil, err
	}

	patches := 0
	for _, row := range rows {
		if row.Patch+1 > patches {
			patches = row.Patch + 1
		}
	}
	if len(rows) != patches*HoursPerYear {
		return nil, fmt.Errorf("%w: %s has %d rows, want %d patches x %d hours", ErrInvalidSkyMatrix, path, len(rows), patches, HoursPerYear)
	}

	diffuse := make([][]float64, patches)
	direct := make([][]float64, patches)
	for p := range diffuse {
		diffuse[p] = make([]float64, HoursPerYear)
		direct[p] = make([]float64, HoursPerYear)
	}
	for i, row := range rows {
		wantPatch, wantHour := i/HoursPerYear, i%HoursPerYear+1
		if row.Patch != wantPatch || row.Hour != wantHour {
			return nil, fmt.Errorf("%w: %s row %d is patch %d hour %d, want patch %d hour %d",
				ErrInvalidSkyMatrix, path, i+1, row.Patch, row.Hour, wantPatch, wantHour)
		}
		diffuse[row.Patch][row.Hour-1] = row.Diffuse
		direct[row.Patch][row.Hour-1] = row.Direct
	}
	return NewSkyMatrix(diffuse, direct)
}

// WriteResultCSV writes the three hourly series of a run as one CSV file
// with columns hour, erf, mrt_delta, mrt.
func WriteResultCSV(path string, res *Result) error {
	rows := make([]*resultRow, len(res.Hours))
	for i, h := range res.Hours {
		rows[i] = &resultRow{
			Hour:     h,
			ERF:      res.ERF.Values[i],
			MRTDelta: res.MRTDelta.Values[i],
			MRT:      res.MRT.Values[i],
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}

func unmarshalCSV(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
