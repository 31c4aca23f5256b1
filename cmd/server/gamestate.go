package main

import (
	"sync"

	"github.com/kocheck/Hyle-sub001/internal/fog"
	"github.com/kocheck/Hyle-sub001/internal/maps"
)

type TokenKind string

const (
	TokenPlayer    TokenKind = "player"
	TokenAdversary TokenKind = "adversary"
)

type TokenInfo struct {
	ID         string
	Name       string
	Kind       TokenKind
	Pos        fog.Point
	SightRange float64 // grid distance units
	Size       float64 // bounding box edge, pixels
}

type DoorInfo struct {
	ID          string
	Center      fog.Point
	Orientation fog.Orientation
	Size        float64
	Open        bool
}

// MapState is the authoritative battlemap for one session. The occluder set
// is rebuilt whenever a wall or door changes; everything downstream keys off
// it through the fog cache fingerprints.
type MapState struct {
	MapID     string
	MapName   string
	Width     float64
	Height    float64
	GridScale float64
	Walls     []fog.Polyline
	Doors     map[string]*DoorInfo
	Tokens    map[string]*TokenInfo
	Lock      sync.Mutex

	occluders []fog.Segment
}

func NewMapState(def *maps.Definition) *MapState {
	state := &MapState{
		MapID:     def.ID,
		MapName:   def.Name,
		Width:     def.Width,
		Height:    def.Height,
		GridScale: def.GridScale,
		Walls:     def.Polylines(),
		Doors:     make(map[string]*DoorInfo),
		Tokens:    make(map[string]*TokenInfo),
	}
	for _, door := range def.FogDoors() {
		state.Doors[door.ID] = &DoorInfo{
			ID:          door.ID,
			Center:      door.Center,
			Orientation: door.Orientation,
			Size:        door.Size,
			Open:        door.Open,
		}
	}
	for _, td := range def.Tokens {
		kind := TokenAdversary
		if td.Kind == string(TokenPlayer) {
			kind = TokenPlayer
		}
		size := td.Size
		if size <= 0 {
			size = state.GridScale
		}
		state.Tokens[td.ID] = &TokenInfo{
			ID:         td.ID,
			Name:       td.Name,
			Kind:       kind,
			Pos:        fog.Point{X: td.X, Y: td.Y},
			SightRange: td.SightRange,
			Size:       size,
		}
	}
	state.rebuildOccluders()
	return state
}

// rebuildOccluders re-extracts the occluder set. Callers hold Lock.
func (ms *MapState) rebuildOccluders() {
	doors := make([]fog.Door, 0, len(ms.Doors))
	for _, d := range ms.Doors {
		doors = append(doors, fog.Door{
			ID:          d.ID,
			Center:      d.Center,
			Orientation: d.Orientation,
			Size:        d.Size,
			Open:        d.Open,
		})
	}
	ms.occluders = fog.ExtractOccluders(ms.Walls, doors)
}

// Occluders returns the current occluder set. Callers hold Lock; the slice is
// read-only once published.
func (ms *MapState) Occluders() []fog.Segment {
	return ms.occluders
}

// AddWall appends a wall polyline and rebuilds occluders. Callers hold Lock.
func (ms *MapState) AddWall(wall fog.Polyline) {
	ms.Walls = append(ms.Walls, wall)
	ms.rebuildOccluders()
}

// AddDoor inserts or replaces a door and rebuilds occluders. Callers hold
// Lock.
func (ms *MapState) AddDoor(door DoorInfo) {
	ms.Doors[door.ID] = &door
	ms.rebuildOccluders()
}

// SetTokenPosition moves a token. Callers hold Lock and have validated the
// position against map bounds.
func (ms *MapState) SetTokenPosition(tokenID string, pos fog.Point) error {
	token, ok := ms.Tokens[tokenID]
	if !ok {
		return &GameError{Code: "token_not_found", Message: "no token with id " + tokenID}
	}
	token.Pos = pos
	return nil
}

// ToggleDoor flips a door between open and closed and rebuilds occluders.
// Callers hold Lock.
func (ms *MapState) ToggleDoor(doorID string) (*DoorInfo, error) {
	info, ok := ms.Doors[doorID]
	if !ok {
		return nil, &GameError{Code: "door_not_found", Message: "no door with id " + doorID}
	}
	info.Open = !info.Open
	ms.rebuildOccluders()
	return info, nil
}

// RemoveToken deletes a token. Callers hold Lock and prune the fog cache
// afterwards.
func (ms *MapState) RemoveToken(tokenID string) {
	delete(ms.Tokens, tokenID)
}
