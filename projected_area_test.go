package ladybug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestProjAreaSurfaceAt(t *testing.T) {
	t.Parallel()

	t.Run("grid nodes return the grid values", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0.25, fpSeated.At(0, 0), 1e-12)
		assert.InDelta(t, 0.06, fpSeated.At(180, 90), 1e-12)
		assert.InDelta(t, 0.35, fpStanding.At(0, 0), 1e-12)
		assert.InDelta(t, 0.08, fpStanding.At(0, 90), 1e-12)
	})

	t.Run("midpoints interpolate linearly", func(t *testing.T) {
		t.Parallel()
		want := (fpStanding.At(0, 0) + fpStanding.At(0, 15)) / 2
		assert.InDelta(t, want, fpStanding.At(0, 7.5), 1e-12)

		want = (fpStanding.At(15, 30) + fpStanding.At(30, 30)) / 2
		assert.InDelta(t, want, fpStanding.At(22.5, 30), 1e-12)
	})

	t.Run("out of range clamps to the border", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, fpStanding.At(180, 90), fpStanding.At(200, 120))
		assert.Equal(t, fpStanding.At(0, 0), fpStanding.At(-10, -5))
	})
}

func TestProjectedAreaFactor(t *testing.T) {
	t.Parallel()

	t.Run("azimuth folds into half a turn", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			ProjectedAreaFactor(PostureStanding, 90, 30),
			ProjectedAreaFactor(PostureStanding, 270, 30))
		assert.Equal(t,
			ProjectedAreaFactor(PostureStanding, 45, 30),
			ProjectedAreaFactor(PostureStanding, -135, 30))
	})

	t.Run("altitude beyond the zenith wraps", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			ProjectedAreaFactor(PostureSeated, 60, 10),
			ProjectedAreaFactor(PostureSeated, 60, 100))
	})

	t.Run("lying mirrors the standing surface", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			fpStanding.At(60, 70),
			ProjectedAreaFactor(PostureLying, 60, 20))
		// A low sun projects the most onto a lying body.
		assert.Greater(t,
			ProjectedAreaFactor(PostureLying, 0, 85),
			ProjectedAreaFactor(PostureLying, 0, 5))
	})

	t.Run("simple postures share their full surfaces", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			ProjectedAreaFactor(PostureSeated, 30, 45),
			ProjectedAreaFactor(PostureSeatedSimple, 30, 45))
	})
}

func TestSkyViewFactor(t *testing.T) {
	t.Parallel()

	t.Run("open sky", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.0, skyViewFactor(r3.Vec{Z: 1}, Mesh{}))
	})

	t.Run("overhead plate blocks part of the dome", func(t *testing.T) {
		t.Parallel()
		plate := QuadMesh(
			r3.Vec{X: -3, Y: -3, Z: 4},
			r3.Vec{X: -3, Y: 3, Z: 4},
			r3.Vec{X: 3, Y: 3, Z: 4},
			r3.Vec{X: 3, Y: -3, Z: 4},
		)
		svf := skyViewFactor(r3.Vec{Z: 1}, plate)
		assert.Less(t, svf, 1.0)
		assert.Greater(t, svf, 0.0)
	})
}

func TestDirectSunFraction(t *testing.T) {
	t.Parallel()

	column := bodyColumn(PostureStanding, r3.Vec{})
	highSun := sunVector(degToRad(60), degToRad(180))

	t.Run("no context means full sun", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.0, directSunFraction(column, highSun, Mesh{}))
	})

	t.Run("a wall south of the body shades it", func(t *testing.T) {
		t.Parallel()
		wall := QuadMesh(
			r3.Vec{X: -5, Y: -1, Z: 0},
			r3.Vec{X: -5, Y: -1, Z: 10},
			r3.Vec{X: 5, Y: -1, Z: 10},
			r3.Vec{X: 5, Y: -1, Z: 0},
		)
		assert.Equal(t, 0.0, directSunFraction(column, highSun, wall))
	})

	t.Run("a short wall shades only the lower body", func(t *testing.T) {
		t.Parallel()
		lowSun := sunVector(degToRad(10), degToRad(180))
		wall := QuadMesh(
			r3.Vec{X: -5, Y: -1, Z: 0},
			r3.Vec{X: -5, Y: -1, Z: 0.9},
			r3.Vec{X: 5, Y: -1, Z: 0.9},
			r3.Vec{X: 5, Y: -1, Z: 0},
		)
		fBes := directSunFraction(column, lowSun, wall)
		assert.Greater(t, fBes, 0.0)
		assert.Less(t, fBes, 1.0)
	})
}
