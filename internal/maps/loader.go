package maps

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kocheck/Hyle-sub001/internal/fog"
)

// WallDefinition is a wall polyline as stored in a map file. Points is a flat
// x,y coordinate list; odd-length lists are malformed and yield no occluders.
type WallDefinition struct {
	ID      string    `json:"id"`
	Points  []float64 `json:"points"`
	OffsetX float64   `json:"offsetX"`
	OffsetY float64   `json:"offsetY"`
	Scale   float64   `json:"scale"`
}

type DoorDefinition struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation string  `json:"orientation"`
	Size        float64 `json:"size"`
	Open        bool    `json:"open"`
}

type TokenDefinition struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	SightRange float64 `json:"sightRange"`
	Size       float64 `json:"size"`
}

// Definition is a complete battlemap as persisted by the editor. GridScale is
// the pixels-per-distance-unit conversion for sight ranges.
type Definition struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Width     float64           `json:"width"`
	Height    float64           `json:"height"`
	GridScale float64           `json:"gridScale"`
	Walls     []WallDefinition  `json:"walls"`
	Doors     []DoorDefinition  `json:"doors"`
	Tokens    []TokenDefinition `json:"tokens"`
}

// Load reads a map definition from disk.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}
	if def.GridScale <= 0 {
		def.GridScale = 1
	}
	return &def, nil
}

// Polylines converts the wall definitions to fog polylines. Malformed walls
// become empty polylines, which occluder extraction skips.
func (d *Definition) Polylines() []fog.Polyline {
	walls := make([]fog.Polyline, 0, len(d.Walls))
	for _, w := range d.Walls {
		scale := w.Scale
		if scale == 0 {
			scale = 1
		}
		offset := fog.Point{X: w.OffsetX, Y: w.OffsetY}
		walls = append(walls, fog.PolylineFromCoords(w.ID, w.Points, offset, scale))
	}
	return walls
}

// FogDoors converts the door definitions to fog doors. Anything not marked
// vertical is treated as horizontal.
func (d *Definition) FogDoors() []fog.Door {
	doors := make([]fog.Door, 0, len(d.Doors))
	for _, dd := range d.Doors {
		orientation := fog.Horizontal
		if dd.Orientation == string(fog.Vertical) {
			orientation = fog.Vertical
		}
		doors = append(doors, fog.Door{
			ID:          dd.ID,
			Center:      fog.Point{X: dd.X, Y: dd.Y},
			Orientation: orientation,
			Size:        dd.Size,
			Open:        dd.Open,
		})
	}
	return doors
}
