package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type VariablesChanged struct {
	Entries map[string]any `json:"entries"`
}

type TokenUpdated struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type DoorStateChanged struct {
	DoorID string `json:"doorId"`
	Open   bool   `json:"open"`
}

type VisibilityChanged struct {
	Polygons map[string]PolygonLite `json:"polygons"`
}

type RegionsExplored struct {
	Regions []ExploredRegionLite `json:"regions"`
}

type TokensVisible struct {
	Tokens []TokenLite `json:"tokens"`
}
