package main

import (
	"github.com/kocheck/Hyle-sub001/internal/fog"
	"github.com/kocheck/Hyle-sub001/internal/protocol"
	"github.com/kocheck/Hyle-sub001/internal/ws"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
	BroadcastEventTo(role ws.Role, eventType string, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...any)
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// FogEngine drives visibility recomputation for a session
type FogEngine interface {
	ProcessMoveToken(req protocol.RequestMoveToken) (*MoveResult, error)
	ProcessToggleDoor(req protocol.RequestToggleDoor) (*DoorToggleResult, error)
	CurrentVisibility() map[string]fog.Polygon
	VisibleTokens(polygons map[string]fog.Polygon) []protocol.TokenLite
	ExploredHistory() []fog.ExploredRegion
	State() *MapState
}

// MoveResult contains the results of a token move
type MoveResult struct {
	TokenUpdated  *protocol.TokenUpdated
	Visibility    map[string]fog.Polygon
	Explored      []fog.ExploredRegion
	VisibleTokens []protocol.TokenLite
}

// DoorToggleResult contains the results of a door toggle
type DoorToggleResult struct {
	StateChange   *protocol.DoorStateChanged
	Visibility    map[string]fog.Polygon
	Explored      []fog.ExploredRegion
	VisibleTokens []protocol.TokenLite
}
