package main

import "github.com/kocheck/Hyle-sub001/internal/maps"

// DevMap returns the built-in demo battlemap: two rooms split by a wall with
// one closed door between them, a seeing hero on the left and an adversary
// waiting behind the door.
func DevMap() *maps.Definition {
	return &maps.Definition{
		ID:        "dev-map",
		Name:      "Dev Map",
		Width:     800,
		Height:    600,
		GridScale: 20,
		Walls: []maps.WallDefinition{
			{ID: "wall-outline", Points: []float64{0, 0, 800, 0, 800, 600, 0, 600, 0, 0}, Scale: 1},
			{ID: "wall-split-upper", Points: []float64{400, 0, 400, 260}, Scale: 1},
			{ID: "wall-split-lower", Points: []float64{400, 300, 400, 600}, Scale: 1},
		},
		Doors: []maps.DoorDefinition{
			{ID: "door-1", X: 400, Y: 280, Orientation: "vertical", Size: 40, Open: false},
		},
		Tokens: []maps.TokenDefinition{
			{ID: "hero-1", Name: "Sera", Kind: "player", X: 200, Y: 280, SightRange: 30, Size: 20},
			{ID: "ghoul-1", Name: "Ghoul", Kind: "adversary", X: 600, Y: 280, Size: 20},
		},
	}
}
