package fog

import "testing"

func testSource(id string, x, y float64) VisionSource {
	return VisionSource{
		ID:     id,
		Origin: Point{X: x, Y: y},
		Radius: 100,
		Scale:  1,
		Active: true,
	}
}

func sameBacking(a, b Polygon) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func TestCache_ReturnsCachedPolygonWhenNothingChanged(t *testing.T) {
	// Arrange
	cache := NewCache(DefaultRayCount)
	source := testSource("token-1", 100, 100)
	occluders := []Segment{{A: Point{X: 150, Y: 0}, B: Point{X: 150, Y: 200}}}

	// Act
	first := cache.GetVisibility(source, occluders)
	second := cache.GetVisibility(source, occluders)

	// Assert: the second call is a hit, not a recomputation
	if !sameBacking(first, second) {
		t.Error("expected cache hit to return the stored polygon")
	}
}

func TestCache_MovingOneSourceDoesNotInvalidateAnother(t *testing.T) {
	// Arrange
	cache := NewCache(DefaultRayCount)
	a := testSource("token-a", 100, 100)
	b := testSource("token-b", 300, 300)
	occluders := []Segment{{A: Point{X: 150, Y: 0}, B: Point{X: 150, Y: 200}}}

	// Act
	firstA := cache.GetVisibility(a, occluders)
	cache.GetVisibility(b, occluders)
	b.Origin = Point{X: 310, Y: 300}
	cache.GetVisibility(b, occluders)
	secondA := cache.GetVisibility(a, occluders)

	// Assert
	if !sameBacking(firstA, secondA) {
		t.Error("moving source B must not invalidate source A's cached polygon")
	}
}

func TestCache_SourceMoveInvalidatesItsOwnEntry(t *testing.T) {
	// Arrange
	cache := NewCache(DefaultRayCount)
	source := testSource("token-1", 100, 100)

	// Act
	first := cache.GetVisibility(source, nil)
	source.Origin = Point{X: 120, Y: 100}
	second := cache.GetVisibility(source, nil)

	// Assert
	if sameBacking(first, second) {
		t.Error("expected recomputation after the source moved")
	}
	if first[0] == second[0] {
		t.Error("expected the polygon to shift with the source")
	}
}

func TestCache_DoorToggleInvalidatesEverySource(t *testing.T) {
	// Arrange: a closed door straight ahead of the source
	cache := NewCache(DefaultRayCount)
	source := testSource("token-1", 100, 100)
	door := Door{ID: "door-1", Center: Point{X: 150, Y: 100}, Orientation: Vertical, Size: 40}

	closed := ExtractOccluders(nil, []Door{door})
	blocked := cache.GetVisibility(source, closed)

	// Act: open the door and re-extract
	door.Open = true
	open := ExtractOccluders(nil, []Door{door})
	unblocked := cache.GetVisibility(source, open)

	// Assert: the occluder digest changed, so the entry was recomputed and the
	// ray through the doorway now reaches full range
	if sameBacking(blocked, unblocked) {
		t.Fatal("expected recomputation after the occluder set changed")
	}
	if blocked[0].X > 150+1e-9 {
		t.Errorf("ray through closed door reached x=%f, expected clip at 150", blocked[0].X)
	}
	if unblocked[0].X < 200-1e-9 {
		t.Errorf("ray through open door stopped at x=%f, expected 200", unblocked[0].X)
	}
}

func TestCache_InactiveOrBlindSourceSeesNothing(t *testing.T) {
	// Arrange
	cache := NewCache(DefaultRayCount)
	inactive := testSource("token-1", 100, 100)
	inactive.Active = false
	blind := testSource("token-2", 100, 100)
	blind.Radius = 0

	// Act & Assert
	if p := cache.GetVisibility(inactive, nil); p != nil {
		t.Errorf("inactive source produced a polygon of %d vertices", len(p))
	}
	if p := cache.GetVisibility(blind, nil); p != nil {
		t.Errorf("zero-radius source produced a polygon of %d vertices", len(p))
	}
	if cache.Len() != 0 {
		t.Errorf("expected no cache entries, got %d", cache.Len())
	}
}

func TestCache_PruneDropsRemovedSources(t *testing.T) {
	// Arrange
	cache := NewCache(DefaultRayCount)
	cache.GetVisibility(testSource("token-a", 100, 100), nil)
	cache.GetVisibility(testSource("token-b", 200, 200), nil)

	// Act
	cache.Prune(map[string]bool{"token-a": true})

	// Assert
	if cache.Len() != 1 {
		t.Errorf("expected 1 entry after pruning, got %d", cache.Len())
	}
}

func TestOccluderDigest_OrderIndependent(t *testing.T) {
	// Arrange
	a := Segment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}}
	b := Segment{A: Point{X: 5, Y: 5}, B: Point{X: 5, Y: 15}}

	// Act & Assert
	if OccluderDigest([]Segment{a, b}) != OccluderDigest([]Segment{b, a}) {
		t.Error("digest must not depend on segment order")
	}
	if OccluderDigest([]Segment{a, b}) == OccluderDigest([]Segment{a}) {
		t.Error("digest must change when a segment is removed")
	}
}

func BenchmarkCache_Hit(b *testing.B) {
	cache := NewCache(DefaultRayCount)
	source := testSource("token-1", 100, 100)
	occluders := []Segment{{A: Point{X: 150, Y: 0}, B: Point{X: 150, Y: 200}}}
	cache.GetVisibility(source, occluders)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.GetVisibility(source, occluders)
	}
}
