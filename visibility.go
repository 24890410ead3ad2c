package ladybug

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// rayOffset lifts ray origins off the emitting surface so a sample point
// does not occlude itself against its own face.
const rayOffset = 0.01

/*
A VisibilityIndex records, for every (sample point, sky patch) pair, whether
the patch is geometrically visible from the point and the cosine of the
incidence angle between the patch direction and the point's normal.

It is the single most expensive one-time cost of a high-resolution run,
O(points x patches x obstruction faces) ray casts, and is therefore built
once per run and shared, read-only, by every dispatched hour.
*/
type VisibilityIndex struct {
	unobstructed [][]bool
	cosine       *mat.Dense // points x patches
}

/*
BuildVisibilityIndex casts a ray from every sample point toward every patch
direction and tests it against the joined obstruction mesh (context plus
body and ground surfaces, so self-shadowing is included).

	Args:
	    points: the body sample points, ground sample last
	    directions: the sky-patch direction table
	    obstruction: the joined obstruction mesh; may be empty
	    workers: concurrent ray-cast workers; values < 1 mean one per CPU

	Returns:
	    the visibility index, never nil
*/
func BuildVisibilityIndex(points []SamplePoint, directions []r3.Vec, obstruction Mesh, workers int) *VisibilityIndex {
	v := &VisibilityIndex{
		unobstructed: make([][]bool, len(points)),
		cosine:       mat.NewDense(max(len(points), 1), max(len(directions), 1), nil),
	}

	buildPoint := func(i int) {
		pt := points[i]
		origin := r3.Add(pt.Position, r3.Scale(rayOffset, pt.Normal))
		row := make([]bool, len(directions))
		for j, dir := range directions {
			row[j] = obstruction.IsEmpty() || !obstruction.IntersectsRay(origin, dir)
			v.cosine.Set(i, j, max(0, r3.Dot(pt.Normal, dir)))
		}
		v.unobstructed[i] = row
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || len(points) < 2 {
		for i := range points {
			buildPoint(i)
		}
		return v
	}

	// Each worker writes only its own row, so the build needs no locking.
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := range points {
		i := i
		g.Go(func() error {
			buildPoint(i)
			return nil
		})
	}
	_ = g.Wait()

	return v
}

// Points returns the number of sample points in the index.
func (v *VisibilityIndex) Points() int {
	return len(v.unobstructed)
}

// Unobstructed reports whether patch j is visible from sample point i.
func (v *VisibilityIndex) Unobstructed(i, j int) bool {
	return v.unobstructed[i][j]
}

// Cosine returns max(0, n_i · d_j) for sample point i and patch j.
func (v *VisibilityIndex) Cosine(i, j int) float64 {
	return v.cosine.At(i, j)
}
