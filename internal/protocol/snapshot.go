package protocol

type PointLite struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PolygonLite []PointLite

type TokenLite struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	SightRange float64 `json:"sightRange"`
	Size       float64 `json:"size"`
}

type DoorLite struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation string  `json:"orientation"`
	Size        float64 `json:"size"`
	Open        bool    `json:"open"`
}

type WallLite struct {
	ID     string      `json:"id"`
	Points []PointLite `json:"points"`
}

type ExploredRegionLite struct {
	SourceID   string      `json:"sourceId"`
	Polygon    PolygonLite `json:"polygon"`
	ObservedAt int64       `json:"observedAt"`
}

type Snapshot struct {
	MapID           string                 `json:"mapId"`
	MapName         string                 `json:"mapName"`
	Role            string                 `json:"role"`
	MapWidth        float64                `json:"mapWidth"`
	MapHeight       float64                `json:"mapHeight"`
	GridScale       float64                `json:"gridScale"`
	Walls           []WallLite             `json:"walls"`
	Doors           []DoorLite             `json:"doors"`
	Tokens          []TokenLite            `json:"tokens"`
	Visibility      map[string]PolygonLite `json:"visibility"`
	Explored        []ExploredRegionLite   `json:"explored"`
	ProtocolVersion string                 `json:"protocolVersion"`
}
