package ladybug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// upFacingBody is a minimal two-sample body: one upward body sample of 2 m2
// at the origin and the default ground patch.
func upFacingBody() BodySample {
	ground, groundMesh := DefaultGroundSample(r3.Vec{})
	return BodySample{
		Points: []SamplePoint{
			{Position: r3.Vec{}, Normal: r3.Vec{Z: 1}, Area: 2.0},
			ground,
		},
		SurfaceMesh: groundMesh,
	}
}

// zenithOnly returns a Tregenza-sized radiation vector with all the energy
// in the zenith patch.
func zenithOnly(value float64) []float64 {
	rad := make([]float64, TregenzaPatchCount)
	rad[TregenzaPatchCount-1] = value
	return rad
}

func TestBuildVisibilityIndex(t *testing.T) {
	t.Parallel()

	body := upFacingBody()
	dirs := TregenzaDirections()

	t.Run("open sky sees every patch", func(t *testing.T) {
		t.Parallel()
		vis := BuildVisibilityIndex(body.Points, dirs, Mesh{}, 1)
		require.Equal(t, 2, vis.Points())
		for j := range dirs {
			assert.True(t, vis.Unobstructed(0, j))
		}
		// Upward normal: cosine 1 toward the zenith, 0 at grazing patches.
		assert.InDelta(t, 1.0, vis.Cosine(0, TregenzaPatchCount-1), 1e-12)
		assert.Less(t, vis.Cosine(0, 0), 0.2)
	})

	t.Run("overhead plate shades only the body sample", func(t *testing.T) {
		t.Parallel()
		plate := QuadMesh(
			r3.Vec{X: -0.5, Y: -0.5, Z: 3},
			r3.Vec{X: -0.5, Y: 0.5, Z: 3},
			r3.Vec{X: 0.5, Y: 0.5, Z: 3},
			r3.Vec{X: 0.5, Y: -0.5, Z: 3},
		)
		vis := BuildVisibilityIndex(body.Points, dirs, plate, 1)
		assert.False(t, vis.Unobstructed(0, TregenzaPatchCount-1))
		assert.True(t, vis.Unobstructed(1, TregenzaPatchCount-1))
	})

	t.Run("parallel build matches sequential", func(t *testing.T) {
		t.Parallel()
		plate := QuadMesh(
			r3.Vec{X: -2, Y: -2, Z: 3},
			r3.Vec{X: -2, Y: 2, Z: 3},
			r3.Vec{X: 2, Y: 2, Z: 3},
			r3.Vec{X: 2, Y: -2, Z: 3},
		)
		seq := BuildVisibilityIndex(body.Points, dirs, plate, 1)
		par := BuildVisibilityIndex(body.Points, dirs, plate, 4)
		for i := 0; i < seq.Points(); i++ {
			for j := range dirs {
				assert.Equal(t, seq.Unobstructed(i, j), par.Unobstructed(i, j))
				assert.Equal(t, seq.Cosine(i, j), par.Cosine(i, j))
			}
		}
	})
}

func TestFluxAccumulator(t *testing.T) {
	t.Parallel()

	body := upFacingBody()
	dirs := TregenzaDirections()
	vis := BuildVisibilityIndex(body.Points, dirs, Mesh{}, 1)

	fracEff := PostureSeated.FracEff()
	const groundR = 0.25
	acc := NewFluxAccumulator(vis, body, 0, fracEff, groundR)

	t.Run("point radiation is cosine weighted", func(t *testing.T) {
		t.Parallel()
		rad := acc.PointRadiation(zenithOnly(1000))
		require.Len(t, rad, 2)
		// Both samples face up and see the zenith patch head on.
		assert.InDelta(t, 1000, rad[0], 1e-9)
		assert.InDelta(t, 1000, rad[1], 1e-9)
	})

	t.Run("body flux adds the ground reflection term", func(t *testing.T) {
		t.Parallel()
		// bodySum = 1000 x 2 m2, groundRef = 0.5 x 1000 x fracEff x 0.25,
		// flux = (bodySum + groundRef) / 2 m2.
		want := (2000 + 0.5*1000*fracEff*groundR) / 2.0
		got := acc.BodyFlux(zenithOnly(1000), 1.0)
		assert.InDelta(t, want, got, 1e-9)
	})

	t.Run("window transmissivity scales the whole flux", func(t *testing.T) {
		t.Parallel()
		full := acc.BodyFlux(zenithOnly(1000), 1.0)
		half := acc.BodyFlux(zenithOnly(1000), 0.5)
		assert.InDelta(t, full/2, half, 1e-9)
	})

	t.Run("explicit body area overrides the sample sum", func(t *testing.T) {
		t.Parallel()
		fixed := NewFluxAccumulator(vis, body, 4.0, fracEff, groundR)
		assert.InDelta(t, acc.BodyFlux(zenithOnly(1000), 1.0)/2,
			fixed.BodyFlux(zenithOnly(1000), 1.0), 1e-9)
	})
}
