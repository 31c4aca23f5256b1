package fog

import "time"

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Point is a 2D coordinate in map pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a single occluding edge. Degenerate segments (A == B) are never
// produced by extraction.
type Segment struct {
	A Point
	B Point
}

// Polyline is a wall as drawn on the map: consecutive raw points plus the
// placement transform applied when the wall was positioned. A zero Scale is
// treated as 1.
type Polyline struct {
	ID     string
	Points []Point
	Offset Point
	Scale  float64
}

// Door is a closable occluder spanning a footprint of Size centered at
// Center. Only closed doors block sight.
type Door struct {
	ID          string
	Center      Point
	Orientation Orientation
	Size        float64
	Open        bool
}

// VisionSource is a token capable of sight. Radius is already converted to
// map pixels by the caller; Scale records the grid scale used for that
// conversion so a scale change invalidates cached polygons.
type VisionSource struct {
	ID     string
	Origin Point
	Radius float64
	Scale  float64
	Active bool
}

// Polygon is a visibility polygon: one vertex per sampled ray angle, in
// increasing angle order, implicitly closed (last vertex connects to first).
type Polygon []Point

// ExploredRegion is a historical visibility snapshot. Immutable once
// appended.
type ExploredRegion struct {
	SourceID   string
	Polygon    Polygon
	ObservedAt time.Time
}
