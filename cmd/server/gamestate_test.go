package main

import (
	"testing"

	"github.com/kocheck/Hyle-sub001/internal/fog"
)

func TestAddWall_ExtendsOccluders(t *testing.T) {
	// Arrange
	state := NewMapState(DevMap())
	state.Lock.Lock()
	defer state.Lock.Unlock()
	before := len(state.Occluders())

	// Act
	state.AddWall(fog.Polyline{
		ID:     "wall-new",
		Points: []fog.Point{{X: 100, Y: 100}, {X: 100, Y: 200}},
		Scale:  1,
	})

	// Assert
	if got := len(state.Occluders()); got != before+1 {
		t.Errorf("expected %d occluders after adding a wall, got %d", before+1, got)
	}
}

func TestAddDoor_ClosedDoorOccludesOpenDoorDoesNot(t *testing.T) {
	// Arrange
	state := NewMapState(DevMap())
	state.Lock.Lock()
	defer state.Lock.Unlock()
	before := len(state.Occluders())

	// Act & Assert: a closed door adds a footprint segment
	state.AddDoor(DoorInfo{ID: "door-2", Center: fog.Point{X: 200, Y: 100}, Orientation: fog.Horizontal, Size: 40})
	if got := len(state.Occluders()); got != before+1 {
		t.Errorf("expected %d occluders with the new closed door, got %d", before+1, got)
	}

	// Act & Assert: replacing it open removes the segment again
	state.AddDoor(DoorInfo{ID: "door-2", Center: fog.Point{X: 200, Y: 100}, Orientation: fog.Horizontal, Size: 40, Open: true})
	if got := len(state.Occluders()); got != before {
		t.Errorf("expected %d occluders with the door open, got %d", before, got)
	}
}

func TestSetTokenPosition_UnknownToken(t *testing.T) {
	// Arrange
	state := NewMapState(DevMap())
	state.Lock.Lock()
	defer state.Lock.Unlock()

	// Act
	err := state.SetTokenPosition("nobody", fog.Point{X: 10, Y: 10})

	// Assert
	gameErr, ok := err.(*GameError)
	if !ok {
		t.Fatalf("expected GameError, got %T", err)
	}
	if gameErr.Code != "token_not_found" {
		t.Errorf("expected token_not_found, got %s", gameErr.Code)
	}
}

func TestRemoveToken_CacheEntryPruned(t *testing.T) {
	// Arrange
	state := NewMapState(DevMap())
	cache := fog.NewCache(fog.DefaultRayCount)
	state.Lock.Lock()
	computeVisibilityNow(cache, visionSources(state), state.Occluders())
	if cache.Len() != 1 {
		state.Lock.Unlock()
		t.Fatalf("expected one cached polygon, got %d", cache.Len())
	}

	// Act
	state.RemoveToken("hero-1")
	polygons := computeVisibilityNow(cache, visionSources(state), state.Occluders())
	state.Lock.Unlock()

	// Assert
	if len(polygons) != 0 {
		t.Errorf("expected no polygons after removing the only vision source, got %d", len(polygons))
	}
	if cache.Len() != 0 {
		t.Errorf("expected the removed token's cache entry to be pruned, got %d entries", cache.Len())
	}
}
