package ladybug

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func annualSeriesCSV(t *testing.T, value float64) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("hour,value\n")
	for h := 1; h <= HoursPerYear; h++ {
		fmt.Fprintf(&b, "%d,%g\n", h, value)
	}
	return writeTempCSV(t, "series.csv", b.String())
}

func TestLoadSeriesCSV(t *testing.T) {
	t.Parallel()

	t.Run("annual series", func(t *testing.T) {
		t.Parallel()
		values, err := LoadSeriesCSV(annualSeriesCSV(t, 21.5))
		require.NoError(t, err)
		require.Len(t, values, HoursPerYear)
		assert.Equal(t, 21.5, values[0])
		assert.Equal(t, 21.5, values[HoursPerYear-1])
	})

	t.Run("short file is rejected", func(t *testing.T) {
		t.Parallel()
		path := writeTempCSV(t, "short.csv", "hour,value\n1,20\n2,20\n")
		_, err := LoadSeriesCSV(path)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("hours must be chronological", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		b.WriteString("hour,value\n")
		for h := HoursPerYear; h >= 1; h-- {
			fmt.Fprintf(&b, "%d,%g\n", h, 1.0)
		}
		_, err := LoadSeriesCSV(writeTempCSV(t, "reversed.csv", b.String()))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadSeriesCSV(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

func TestLoadIrradianceCSV(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("hour,direct_normal,diffuse_horizontal\n")
	for h := 1; h <= HoursPerYear; h++ {
		fmt.Fprintf(&b, "%d,%g,%g\n", h, 800.0, 100.0)
	}
	path := writeTempCSV(t, "irradiance.csv", b.String())

	dirNorm, diff, err := LoadIrradianceCSV(path)
	require.NoError(t, err)
	require.Len(t, dirNorm, HoursPerYear)
	require.Len(t, diff, HoursPerYear)
	assert.Equal(t, 800.0, dirNorm[4000])
	assert.Equal(t, 100.0, diff[4000])
}

func TestLoadSkyMatrixCSV(t *testing.T) {
	t.Parallel()

	t.Run("unsupported patch count", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		b.WriteString("patch,hour,diffuse,direct\n")
		for h := 1; h <= HoursPerYear; h++ {
			fmt.Fprintf(&b, "0,%d,%g,%g\n", h, 1.0, 1.0)
		}
		_, err := LoadSkyMatrixCSV(writeTempCSV(t, "sky.csv", b.String()))
		assert.ErrorIs(t, err, ErrInvalidSkyMatrix)
	})

	t.Run("row count must cover every patch hour", func(t *testing.T) {
		t.Parallel()
		path := writeTempCSV(t, "sky.csv", "patch,hour,diffuse,direct\n0,1,1,1\n1,1,1,1\n")
		_, err := LoadSkyMatrixCSV(path)
		assert.ErrorIs(t, err, ErrInvalidSkyMatrix)
	})
}

func TestWriteResultCSV(t *testing.T) {
	t.Parallel()

	res := &Result{
		Hours:    []int{10, 11},
		ERF:      Series{Values: []float64{0, 50}},
		MRTDelta: Series{Values: []float64{0, 12}},
		MRT:      Series{Values: []float64{20, 32}},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteResultCSV(path, res))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "hour,erf,mrt_delta,mrt", lines[0])
	assert.Equal(t, "10,0,0,20", lines[1])
	assert.Equal(t, "11,50,12,32", lines[2])
}
