package ladybug

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

/*
Posture selects the shape and orientation of the human body model. The
numeric values match Ladybug's bodyPosture codes 0..5.

The three "simple" variants carry the same radiant-exchange constants as
their full counterparts but represent the body with a shorter column of
sample points in the low-resolution method.
*/
type Posture int

const (
	PostureStanding Posture = iota
	PostureSeated
	PostureLying
	PostureStandingSimple
	PostureSeatedSimple
	PostureLyingSimple
)

func (p Posture) String() string {
	switch p {
	case PostureStanding:
		return "standing"
	case PostureSeated:
		return "seated"
	case PostureLying:
		return "lying"
	case PostureStandingSimple:
		return "standing-simple"
	case PostureSeatedSimple:
		return "seated-simple"
	case PostureLyingSimple:
		return "lying-simple"
	default:
		return fmt.Sprintf("posture(%d)", int(p))
	}
}

// Valid reports whether p is one of the six posture codes.
func (p Posture) Valid() bool {
	return p >= PostureStanding && p <= PostureLyingSimple
}

/*
FracEff returns the fraction of the body surface that participates in
radiant exchange for the posture: 0.725 standing, 0.696 seated, 0.68 lying.
*/
func (p Posture) FracEff() float64 {
	switch p {
	case PostureStanding, PostureStandingSimple:
		return 0.725
	case PostureSeated, PostureSeatedSimple:
		return 0.696
	case PostureLying, PostureLyingSimple:
		return 0.68
	default:
		panic("invalid posture")
	}
}

// IsSimple reports whether the posture is one of the low-resolution
// ("simple") variants.
func (p Posture) IsSimple() bool {
	return p >= PostureStandingSimple
}

// DefaultBodySurfaceArea is the body surface area, m2, assumed when the
// sample set does not carry real mesh areas (the simple mannequins).
const DefaultBodySurfaceArea = 1.775

// A SamplePoint is one discretized patch of the body (or ground) surface:
// a position, an outward normal and the represented area, m2.
type SamplePoint struct {
	Position r3.Vec
	Normal   r3.Vec
	Area     float64
}

/*
A BodySample is the ordered set of sample points the high-resolution method
integrates over. The last point is always the ground sample: its accumulated
radiation feeds the ground-reflection term instead of the body sum.

The mannequin mesh itself is built by the host (it comes from anthropometric
templates and model-unit scaling the engine does not own); the engine only
consumes the resulting points, normals and areas, plus the joined mesh for
self-shadowing ray tests.
*/
type BodySample struct {
	Points []SamplePoint

	// SurfaceMesh is the joined body+ground mesh used for self-shadowing
	// in the visibility build. May be empty.
	SurfaceMesh Mesh
}

// BodyArea returns the summed area of the body samples, excluding the
// ground sample.
func (b BodySample) BodyArea() float64 {
	var total float64
	for _, p := range b.Points[:len(b.Points)-1] {
		total += p.Area
	}
	return total
}

// GroundSample returns the ground sample point (the last one).
func (b BodySample) GroundSample() SamplePoint {
	return b.Points[len(b.Points)-1]
}

/*
DefaultGroundSample builds the reflecting ground patch behind the mannequin:
a 1 m x 1 m quad one meter to the south, moved along with the body location.

	Returns:
	    (1) the ground sample point (center, normal up, area 1 m2)
	    (2) the ground mesh for self-shadowing tests
*/
func DefaultGroundSample(bodyLocation r3.Vec) (SamplePoint, Mesh) {
	at := func(x, y float64) r3.Vec {
		return r3.Vec{X: bodyLocation.X + x, Y: bodyLocation.Y + y, Z: bodyLocation.Z}
	}
	mesh := QuadMesh(at(-0.5, -1), at(-0.5, -2), at(0.5, -2), at(0.5, -1))
	sample := SamplePoint{
		Position: r3.Vec{X: bodyLocation.X, Y: bodyLocation.Y - 1.5, Z: bodyLocation.Z + rayOffset},
		Normal:   r3.Vec{Z: 1},
		Area:     1.0,
	}
	return sample, mesh
}

/*
SimpleBodySample builds the box mannequin for high-resolution runs that
have no meshed body available: a posture-sized box around the body
location, sampled at its five exposed face centers, plus the default
ground patch. Face areas are scaled so the body samples sum to
DefaultBodySurfaceArea.

Hosts with a real anthropometric mesh should build their own BodySample
from its face centroids instead.
*/
func SimpleBodySample(posture Posture, at r3.Vec) BodySample {
	var w, d, h float64
	switch posture {
	case PostureStanding, PostureStandingSimple:
		w, d, h = 0.35, 0.2, 1.7
	case PostureSeated, PostureSeatedSimple:
		w, d, h = 0.35, 0.4, 1.3
	case PostureLying, PostureLyingSimple:
		w, d, h = 0.35, 1.7, 0.2
	default:
		panic("invalid posture")
	}

	lo := r3.Vec{X: at.X - w/2, Y: at.Y - d/2, Z: at.Z}
	hi := r3.Vec{X: at.X + w/2, Y: at.Y + d/2, Z: at.Z + h}

	faces := []struct {
		corners [4]r3.Vec
		normal  r3.Vec
		area    float64
	}{
		{[4]r3.Vec{{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: lo.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z}}, r3.Vec{Y: -1}, w * h},
		{[4]r3.Vec{{X: hi.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: lo.Z}}, r3.Vec{Y: 1}, w * h},
		{[4]r3.Vec{{X: lo.X, Y: hi.Y, Z: lo.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: lo.Y, Z: hi.Z}, {X: lo.X, Y: lo.Y, Z: lo.Z}}, r3.Vec{X: -1}, d * h},
		{[4]r3.Vec{{X: hi.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z}}, r3.Vec{X: 1}, d * h},
		{[4]r3.Vec{{X: lo.X, Y: lo.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z}}, r3.Vec{Z: 1}, w * d},
	}

	var faceTotal float64
	for _, f := range faces {
		faceTotal += f.area
	}
	areaScale := DefaultBodySurfaceArea / faceTotal

	points := make([]SamplePoint, 0, len(faces)+1)
	meshes := make([]Mesh, 0, len(faces)+1)
	for _, f := range faces {
		c := f.corners
		pos := r3.Scale(0.25, r3.Add(r3.Add(c[0], c[1]), r3.Add(c[2], c[3])))
		points = append(points, SamplePoint{Position: pos, Normal: f.normal, Area: f.area * areaScale})
		meshes = append(meshes, QuadMesh(c[0], c[1], c[2], c[3]))
	}

	groundSample, groundMesh := DefaultGroundSample(at)
	points = append(points, groundSample)
	meshes = append(meshes, groundMesh)

	return BodySample{Points: points, SurfaceMesh: JoinMeshes(meshes...)}
}

/*
bodyColumn builds the along-the-body point set the low-resolution method
uses for its occlusion tests: nine points (three for the simple postures)
spread over the body's extent, centered on the body location.

Standing bodies spread vertically around a 0.85 m center over +-0.8 m,
seated around 0.65 m over +-0.58 m, and lying bodies spread horizontally
along Y at 0.1 m height over +-0.8 m.

	Args:
	    posture: the body posture
	    at: the body's center-of-gravity point; the zero value places the
	        body at the model origin with the posture's default height

	Returns:
	    the sample points; the middle one is the sky-view reference
*/
func bodyColumn(posture Posture, at r3.Vec) []r3.Vec {
	n := 9
	if posture.IsSimple() {
		n = 3
	}

	var center r3.Vec
	var step r3.Vec
	switch posture {
	case PostureStanding, PostureStandingSimple:
		center = r3.Vec{X: at.X, Y: at.Y, Z: at.Z + 0.85}
		step = r3.Vec{Z: 0.8}
	case PostureSeated, PostureSeatedSimple:
		center = r3.Vec{X: at.X, Y: at.Y, Z: at.Z + 0.65}
		step = r3.Vec{Z: 0.58}
	case PostureLying, PostureLyingSimple:
		center = r3.Vec{X: at.X, Y: at.Y, Z: at.Z + 0.1}
		step = r3.Vec{Y: 0.8}
	default:
		panic("invalid posture")
	}

	points := make([]r3.Vec, n)
	half := float64(n-1) / 2.0
	for i := 0; i < n; i++ {
		f := (float64(i) - half) / half
		points[i] = r3.Add(center, r3.Scale(f, step))
	}
	return points
}

// bodyCenter returns the sky-view reference point of a body column: the
// middle of the column.
func bodyCenter(column []r3.Vec) r3.Vec {
	return column[len(column)/2]
}
