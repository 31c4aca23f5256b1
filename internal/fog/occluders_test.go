package fog

import "testing"

func TestExtractOccluders_PolylineYieldsConsecutiveSegments(t *testing.T) {
	// Arrange
	walls := []Polyline{{
		ID:     "wall-1",
		Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		Scale:  1,
	}}

	// Act
	segments := ExtractOccluders(walls, nil)

	// Assert
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments from 3 points, got %d", len(segments))
	}
	want := []Segment{
		{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}},
		{A: Point{X: 10, Y: 0}, B: Point{X: 10, Y: 10}},
	}
	for i, seg := range segments {
		if seg != want[i] {
			t.Errorf("segment %d is %+v, expected %+v", i, seg, want[i])
		}
	}
}

func TestExtractOccluders_AppliesScaleAndOffset(t *testing.T) {
	// Arrange
	walls := []Polyline{{
		Points: []Point{{X: 10, Y: 10}, {X: 20, Y: 10}},
		Offset: Point{X: 5, Y: 7},
		Scale:  2,
	}}

	// Act
	segments := ExtractOccluders(walls, nil)

	// Assert: p' = p*scale + offset
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	want := Segment{A: Point{X: 25, Y: 27}, B: Point{X: 45, Y: 27}}
	if segments[0] != want {
		t.Errorf("got %+v, expected %+v", segments[0], want)
	}
}

func TestExtractOccluders_SkipsShortPolylines(t *testing.T) {
	// Arrange
	walls := []Polyline{
		{Points: nil},
		{Points: []Point{{X: 3, Y: 3}}},
	}

	// Act
	segments := ExtractOccluders(walls, nil)

	// Assert
	if len(segments) != 0 {
		t.Errorf("expected no segments from malformed polylines, got %d", len(segments))
	}
}

func TestExtractOccluders_DropsDegenerateSegments(t *testing.T) {
	// Arrange: repeated point would produce a zero-length segment
	walls := []Polyline{{
		Points: []Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}},
		Scale:  1,
	}}

	// Act
	segments := ExtractOccluders(walls, nil)

	// Assert
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment after dropping the degenerate one, got %d", len(segments))
	}
}

func TestExtractOccluders_ClosedDoorFootprint(t *testing.T) {
	// Arrange
	doors := []Door{
		{ID: "door-h", Center: Point{X: 150, Y: 100}, Orientation: Horizontal, Size: 20},
		{ID: "door-v", Center: Point{X: 60, Y: 40}, Orientation: Vertical, Size: 10},
	}

	// Act
	segments := ExtractOccluders(nil, doors)

	// Assert
	if len(segments) != 2 {
		t.Fatalf("expected 2 door segments, got %d", len(segments))
	}
	wantH := Segment{A: Point{X: 140, Y: 100}, B: Point{X: 160, Y: 100}}
	if segments[0] != wantH {
		t.Errorf("horizontal door segment %+v, expected %+v", segments[0], wantH)
	}
	wantV := Segment{A: Point{X: 60, Y: 35}, B: Point{X: 60, Y: 45}}
	if segments[1] != wantV {
		t.Errorf("vertical door segment %+v, expected %+v", segments[1], wantV)
	}
}

func TestExtractOccluders_OpenDoorContributesNothing(t *testing.T) {
	// Arrange
	doors := []Door{{ID: "door-1", Center: Point{X: 150, Y: 100}, Orientation: Horizontal, Size: 20, Open: true}}

	// Act
	segments := ExtractOccluders(nil, doors)

	// Assert
	if len(segments) != 0 {
		t.Errorf("open door produced %d segments, expected none", len(segments))
	}
}

func TestPolylineFromCoords_OddLengthIsMalformed(t *testing.T) {
	// Arrange & Act
	wall := PolylineFromCoords("wall-1", []float64{0, 0, 10, 0, 10}, Point{}, 1)

	// Assert: malformed list produces no points, extraction then skips it
	if len(wall.Points) != 0 {
		t.Errorf("expected no points from odd-length coordinate list, got %d", len(wall.Points))
	}
	if segs := ExtractOccluders([]Polyline{wall}, nil); len(segs) != 0 {
		t.Errorf("expected no segments, got %d", len(segs))
	}
}

func TestPolylineFromCoords_PairsPoints(t *testing.T) {
	// Arrange & Act
	wall := PolylineFromCoords("wall-1", []float64{0, 0, 10, 0, 10, 10}, Point{X: 1, Y: 1}, 1)

	// Assert
	if len(wall.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(wall.Points))
	}
	if wall.Points[2] != (Point{X: 10, Y: 10}) {
		t.Errorf("last point is %+v, expected (10,10)", wall.Points[2])
	}
}
