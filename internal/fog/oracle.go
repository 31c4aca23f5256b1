package fog

// IsPointVisible reports whether the point lies inside any of the polygons.
// Multiple sources act as a union: one containing polygon is enough.
func IsPointVisible(p Point, polygons []Polygon) bool {
	for _, polygon := range polygons {
		if pointInPolygon(p, polygon) {
			return true
		}
	}
	return false
}

// IsRectVisible reports whether a rectangle counts as seen. The center is
// checked first, then the four corners. A rectangle overlapping a polygon
// only along an edge midpoint can be missed; the 5-point sampling trades that
// exactness for speed.
func IsRectVisible(x, y, width, height float64, polygons []Polygon) bool {
	if IsPointVisible(Point{X: x + width/2, Y: y + height/2}, polygons) {
		return true
	}
	corners := [4]Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x, Y: y + height},
		{X: x + width, Y: y + height},
	}
	for _, corner := range corners {
		if IsPointVisible(corner, polygons) {
			return true
		}
	}
	return false
}

// pointInPolygon is the standard parity ray-cast test over an implicitly
// closed vertex sequence. Polygons with fewer than 3 vertices contain
// nothing.
func pointInPolygon(p Point, polygon Polygon) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y
		if ((yi > p.Y) != (yj > p.Y)) &&
			(p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}
	return inside
}
