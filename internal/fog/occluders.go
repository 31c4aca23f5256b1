package fog

// ExtractOccluders flattens wall polylines and door records into the set of
// segments that currently block sight. Each polyline of N transformed points
// yields N-1 segments; each closed door yields one segment spanning its
// footprint; open doors yield nothing. Malformed walls are skipped, never
// rejected. Output order is unspecified.
func ExtractOccluders(walls []Polyline, doors []Door) []Segment {
	var segments []Segment
	for _, wall := range walls {
		points := wall.Transformed()
		if len(points) < 2 {
			continue
		}
		prev := points[0]
		for _, next := range points[1:] {
			if next != prev {
				segments = append(segments, Segment{A: prev, B: next})
			}
			prev = next
		}
	}
	for _, door := range doors {
		if door.Open {
			continue
		}
		if seg, ok := doorSegment(door); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

// Transformed returns the polyline's points with the placement transform
// p' = p*scale + offset applied. Skipping this transform would desynchronize
// the visual walls from their occluders.
func (p Polyline) Transformed() []Point {
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	points := make([]Point, len(p.Points))
	for i, raw := range p.Points {
		points[i] = Point{X: raw.X*scale + p.Offset.X, Y: raw.Y*scale + p.Offset.Y}
	}
	return points
}

// PolylineFromCoords builds a polyline from a flat x,y coordinate list.
// Odd-length lists are malformed and produce a polyline with no points, which
// extraction then skips.
func PolylineFromCoords(id string, coords []float64, offset Point, scale float64) Polyline {
	wall := Polyline{ID: id, Offset: offset, Scale: scale}
	if len(coords)%2 != 0 {
		return wall
	}
	wall.Points = make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		wall.Points = append(wall.Points, Point{X: coords[i], Y: coords[i+1]})
	}
	return wall
}

// doorSegment returns the occluding footprint of a closed door: horizontal
// doors span (x-s/2,y)-(x+s/2,y), vertical doors (x,y-s/2)-(x,y+s/2).
func doorSegment(d Door) (Segment, bool) {
	if d.Size <= 0 {
		return Segment{}, false
	}
	half := d.Size / 2
	if d.Orientation == Vertical {
		return Segment{
			A: Point{X: d.Center.X, Y: d.Center.Y - half},
			B: Point{X: d.Center.X, Y: d.Center.Y + half},
		}, true
	}
	return Segment{
		A: Point{X: d.Center.X - half, Y: d.Center.Y},
		B: Point{X: d.Center.X + half, Y: d.Center.Y},
	}, true
}
