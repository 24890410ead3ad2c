package ladybug

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Supported sky-dome discretizations: the coarse Tregenza dome and the fine
// Reinhart subdivision. Patch counts exclude the ground patch (patch 0 of
// the radiative-transfer precomputation), which the store never holds.
const (
	TregenzaPatchCount = 145
	ReinhartPatchCount = 577
)

// Row layout of the Tregenza dome: azimuthal divisions per 12-degree
// altitude band, bottom up, plus a single zenith cap.
var tregenzaRowCounts = []int{30, 30, 24, 24, 18, 12, 6}

/*
skyDomeDirections generates the unit direction vector of each sky patch for
a dome with the given altitude-band layout.

	Args:
	    rowCounts: azimuthal divisions per band, bottom up
	    bandHeight: angular height of one band, degrees

	Returns:
	    patch direction unit vectors, band by band starting at north and
	    sweeping clockwise (east first), with the zenith patch last
*/
func skyDomeDirections(rowCounts []int, bandHeight float64) []r3.Vec {
	var dirs []r3.Vec
	for row, count := range rowCounts {
		altitude := degToRad(bandHeight/2.0 + float64(row)*bandHeight)
		for k := 0; k < count; k++ {
			azimuth := 2.0 * math.Pi * float64(k) / float64(count)
			dirs = append(dirs, sunVector(altitude, azimuth))
		}
	}
	return append(dirs, r3.Vec{Z: 1})
}

// TregenzaDirections returns the 145 patch directions of the Tregenza dome.
func TregenzaDirections() []r3.Vec {
	return skyDomeDirections(tregenzaRowCounts, 12.0)
}

// ReinhartDirections returns the 577 patch directions of the Reinhart dome
// (each Tregenza band split in two, azimuthal divisions doubled).
func ReinhartDirections() []r3.Vec {
	rows := make([]int, 0, len(tregenzaRowCounts)*2)
	for _, c := range tregenzaRowCounts {
		rows = append(rows, c*2, c*2)
	}
	return skyDomeDirections(rows, 6.0)
}

/*
A SkyMatrix holds the annual per-patch radiation series produced by an
external radiative-transfer precomputation: for every sky patch, 8760 pairs
of (diffuse, direct) radiation in Wh/m2. It is read-only for the engine's
lifetime and safe to share between workers.
*/
type SkyMatrix struct {
	diffuse    *mat.Dense // patches x 8760
	direct     *mat.Dense // patches x 8760
	directions []r3.Vec
}

/*
NewSkyMatrix builds the store from per-patch series.

	Args:
	    diffuse: diffuse radiation per patch per hour, [patches][8760]
	    direct: direct radiation per patch per hour, [patches][8760]

	Returns:
	    the store, or ErrInvalidSkyMatrix when the patch count matches
	    neither supported discretization or any series is not annual
*/
func NewSkyMatrix(diffuse, direct [][]float64) (*SkyMatrix, error) {
	patches := len(diffuse)
	if len(direct) != patches {
		return nil, fmt.Errorf("%w: %d diffuse patch series vs %d direct", ErrInvalidSkyMatrix, patches, len(direct))
	}

	var directions []r3.Vec
	switch patches {
	case TregenzaPatchCount:
		directions = TregenzaDirections()
	case ReinhartPatchCount:
		directions = ReinhartDirections()
	default:
		return nil, fmt.Errorf("%w: %d patches, want %d or %d", ErrInvalidSkyMatrix, patches, TregenzaPatchCount, ReinhartPatchCount)
	}

	dif := mat.NewDense(patches, HoursPerYear, nil)
	dir := mat.NewDense(patches, HoursPerYear, nil)
	for p := 0; p < patches; p++ {
		if len(diffuse[p]) != HoursPerYear || len(direct[p]) != HoursPerYear {
			return nil, fmt.Errorf("%w: patch %d series length %d/%d, want %d hours",
				ErrInvalidSkyMatrix, p+1, len(diffuse[p]), len(direct[p]), HoursPerYear)
		}
		dif.SetRow(p, diffuse[p])
		dir.SetRow(p, direct[p])
	}

	return &SkyMatrix{diffuse: dif, direct: dir, directions: directions}, nil
}

// Patches returns the number of sky patches (145 or 577).
func (s *SkyMatrix) Patches() int {
	return len(s.directions)
}

// Directions returns the fixed patch direction table for the matrix's
// discretization. Callers must not mutate it.
func (s *SkyMatrix) Directions() []r3.Vec {
	return s.directions
}

// PatchRadiation is a per-patch radiation vector for one hour or one
// cumulative period. Total is Diffuse+Direct per patch, which is what the
// flux accumulation consumes.
type PatchRadiation struct {
	Diffuse []float64
	Direct  []float64
	Total   []float64
}

/*
HourlyRadiation returns the single-hour radiation slice, Wh/m2 per patch.

	Args:
	    hoy: hour of the year, 1..8760
*/
func (s *SkyMatrix) HourlyRadiation(hoy int) (PatchRadiation, error) {
	if hoy < 1 || hoy > HoursPerYear {
		return PatchRadiation{}, fmt.Errorf("%w: hour of the year %d", ErrInvalidInput, hoy)
	}
	n := s.Patches()
	r := PatchRadiation{
		Diffuse: make([]float64, n),
		Direct:  make([]float64, n),
		Total:   make([]float64, n),
	}
	for p := 0; p < n; p++ {
		r.Diffuse[p] = s.diffuse.At(p, hoy-1)
		r.Direct[p] = s.direct.At(p, hoy-1)
		r.Total[p] = r.Diffuse[p] + r.Direct[p]
	}
	return r, nil
}

/*
CumulativeRadiation sums the stored series over every hour of the period and
converts to kWh/m2 per patch, matching the unit convention of cumulative
sky matrices.

	Returns:
	    the summed radiation vector, or ErrNoSkyData when the period
	    selects no hours at all
*/
func (s *SkyMatrix) CumulativeRadiation(period AnalysisPeriod) (PatchRadiation, error) {
	hours := period.Hours()
	if len(hours) == 0 {
		return PatchRadiation{}, ErrNoSkyData
	}
	n := s.Patches()
	r := PatchRadiation{
		Diffuse: make([]float64, n),
		Direct:  make([]float64, n),
		Total:   make([]float64, n),
	}
	for p := 0; p < n; p++ {
		var dif, dir float64
		for _, h := range hours {
			dif += s.diffuse.At(p, h-1)
			dir += s.direct.At(p, h-1)
		}
		r.Diffuse[p] = dif / 1000.0
		r.Direct[p] = dir / 1000.0
		r.Total[p] = r.Diffuse[p] + r.Direct[p]
	}
	return r, nil
}
