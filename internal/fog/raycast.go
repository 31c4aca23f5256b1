package fog

import "math"

// DefaultRayCount is the angular resolution of a visibility polygon: one ray
// per degree.
const DefaultRayCount = 360

// Denominators closer to zero than this are treated as parallel lines.
const parallelEpsilon = 1e-10

// ComputeVisibility casts rayCount rays from origin at fixed angular steps
// and clips each at the nearest occluder, producing the visibility polygon.
// The call is deterministic and never fails: a zero maxRange yields a
// degenerate polygon whose every vertex is the origin. Cost is
// O(rayCount * len(occluders)).
func ComputeVisibility(origin Point, maxRange float64, occluders []Segment, rayCount int) Polygon {
	if rayCount <= 0 {
		rayCount = DefaultRayCount
	}
	if maxRange < 0 {
		maxRange = 0
	}
	polygon := make(Polygon, rayCount)
	step := 2 * math.Pi / float64(rayCount)
	for i := 0; i < rayCount; i++ {
		angle := float64(i) * step
		dx := math.Cos(angle) * maxRange
		dy := math.Sin(angle) * maxRange
		nearest := 1.0
		for _, seg := range occluders {
			if t, ok := intersectRaySegment(origin, dx, dy, seg); ok && t < nearest {
				nearest = t
			}
		}
		polygon[i] = Point{X: origin.X + dx*nearest, Y: origin.Y + dy*nearest}
	}
	return polygon
}

// intersectRaySegment solves the 2x2 parametric system between the ray
// treated as the segment origin->origin+(dx,dy) and an occluder. The hit is
// valid only when the ray parameter t and the occluder parameter u both land
// in [0,1]; parallel lines are no intersection.
func intersectRaySegment(origin Point, dx, dy float64, seg Segment) (float64, bool) {
	sx := seg.B.X - seg.A.X
	sy := seg.B.Y - seg.A.Y
	denom := dx*sy - dy*sx
	if math.Abs(denom) < parallelEpsilon {
		return 0, false
	}
	wx := seg.A.X - origin.X
	wy := seg.A.Y - origin.Y
	t := (wx*sy - wy*sx) / denom
	u := (wx*dy - wy*dx) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
