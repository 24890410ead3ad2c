package ladybug

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Model coordinates: X east, Y north (before the north-angle rotation),
// Z up. All lengths are meters.

// A Triangle is one face of an obstruction mesh.
type Triangle struct {
	A, B, C r3.Vec
}

// A Mesh is a bag of triangles used purely for ray-occlusion queries.
// Obstruction meshes are read-only for the engine's lifetime.
type Mesh struct {
	Triangles []Triangle
}

// JoinMeshes concatenates meshes into one, so the mannequin, ground and
// context surfaces can be intersection-tested as a single obstruction.
func JoinMeshes(meshes ...Mesh) Mesh {
	var joined Mesh
	for _, m := range meshes {
		joined.Triangles = append(joined.Triangles, m.Triangles...)
	}
	return joined
}

// QuadMesh builds a two-triangle mesh from four corner points given in
// winding order.
func QuadMesh(p1, p2, p3, p4 r3.Vec) Mesh {
	return Mesh{Triangles: []Triangle{{A: p1, B: p2, C: p3}, {A: p1, B: p3, C: p4}}}
}

// IsEmpty reports whether the mesh has no faces.
func (m Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

/*
IntersectsRay reports whether a ray cast from origin along dir hits any face
of the mesh. Only forward hits count; hits closer than a small epsilon are
ignored so that a ray leaving a surface does not report the surface itself.
*/
func (m Mesh) IntersectsRay(origin, dir r3.Vec) bool {
	for _, tri := range m.Triangles {
		if _, ok := rayTriangle(origin, dir, tri); ok {
			return true
		}
	}
	return false
}

/*
rayTriangle runs the Möller–Trumbore intersection test.

	Args:
	    origin: ray origin
	    dir: ray direction, need not be normalized
	    tri: the triangle to test

	Returns:
	    (1) the ray parameter of the hit
	    (2) whether the ray hits the triangle in front of the origin
*/
func rayTriangle(origin, dir r3.Vec, tri Triangle) (float64, bool) {
	const eps = 1e-9

	e1 := r3.Sub(tri.B, tri.A)
	e2 := r3.Sub(tri.C, tri.A)
	p := r3.Cross(dir, e2)
	det := r3.Dot(e1, p)
	if math.Abs(det) < eps {
		return 0, false
	}
	inv := 1.0 / det

	s := r3.Sub(origin, tri.A)
	u := r3.Dot(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := r3.Cross(s, e1)
	v := r3.Dot(dir, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := r3.Dot(e2, q) * inv
	if t <= eps {
		return 0, false
	}
	return t, true
}

/*
sunVector returns the unit vector pointing from the ground toward the sun.

	Args:
	    altitude: solar altitude, rad
	    azimuth: solar azimuth from north, clockwise, rad
*/
func sunVector(altitude, azimuth float64) r3.Vec {
	cosAlt := math.Cos(altitude)
	return r3.Vec{
		X: cosAlt * math.Sin(azimuth),
		Y: cosAlt * math.Cos(azimuth),
		Z: math.Sin(altitude),
	}
}
