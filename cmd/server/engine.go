package main

import (
	"fmt"
	"time"

	"github.com/kocheck/Hyle-sub001/internal/fog"
	"github.com/kocheck/Hyle-sub001/internal/protocol"
)

// FogEngineImpl implements FogEngine. The cache and tracker are owned by the
// session and injected here; the engine never reaches for global state.
type FogEngineImpl struct {
	state   *MapState
	cache   *fog.Cache
	tracker *fog.Tracker
	logger  Logger
	now     func() time.Time
}

func NewFogEngine(state *MapState, cache *fog.Cache, tracker *fog.Tracker, logger Logger) *FogEngineImpl {
	return &FogEngineImpl{
		state:   state,
		cache:   cache,
		tracker: tracker,
		logger:  logger,
		now:     time.Now,
	}
}

func (e *FogEngineImpl) State() *MapState {
	return e.state
}

func (e *FogEngineImpl) ProcessMoveToken(req protocol.RequestMoveToken) (*MoveResult, error) {
	e.state.Lock.Lock()
	if req.X < 0 || req.Y < 0 || req.X > e.state.Width || req.Y > e.state.Height {
		e.state.Lock.Unlock()
		return nil, &GameError{
			Code:    "out_of_bounds",
			Message: fmt.Sprintf("position (%.1f,%.1f) outside %gx%g map", req.X, req.Y, e.state.Width, e.state.Height),
		}
	}
	if err := e.state.SetTokenPosition(req.TokenID, fog.Point{X: req.X, Y: req.Y}); err != nil {
		e.state.Lock.Unlock()
		return nil, err
	}
	sources := visionSources(e.state)
	occluders := e.state.Occluders()
	e.state.Lock.Unlock()

	polygons := computeVisibilityNow(e.cache, sources, occluders)
	explored := e.tracker.Tick(e.now(), polygons)
	visibleTokens := e.VisibleTokens(polygons)

	e.logger.Printf("token %s moved to (%.1f,%.1f); %d sources seeing, %d regions recorded",
		req.TokenID, req.X, req.Y, len(polygons), len(explored))

	return &MoveResult{
		TokenUpdated:  &protocol.TokenUpdated{ID: req.TokenID, X: req.X, Y: req.Y},
		Visibility:    polygons,
		Explored:      explored,
		VisibleTokens: visibleTokens,
	}, nil
}

func (e *FogEngineImpl) ProcessToggleDoor(req protocol.RequestToggleDoor) (*DoorToggleResult, error) {
	e.state.Lock.Lock()
	info, err := e.state.ToggleDoor(req.DoorID)
	if err != nil {
		e.state.Lock.Unlock()
		return nil, err
	}
	sources := visionSources(e.state)
	occluders := e.state.Occluders()
	e.state.Lock.Unlock()

	// The occluder digest changed, so every source recomputes exactly once.
	polygons := computeVisibilityNow(e.cache, sources, occluders)
	explored := e.tracker.Tick(e.now(), polygons)
	visibleTokens := e.VisibleTokens(polygons)

	e.logger.Printf("door %s now open=%v; recomputed %d sources", info.ID, info.Open, len(polygons))

	return &DoorToggleResult{
		StateChange:   &protocol.DoorStateChanged{DoorID: info.ID, Open: info.Open},
		Visibility:    polygons,
		Explored:      explored,
		VisibleTokens: visibleTokens,
	}, nil
}

// CurrentVisibility resolves the polygons for every source against the
// current occluder set. When nothing changed since the last call this is all
// cache hits.
func (e *FogEngineImpl) CurrentVisibility() map[string]fog.Polygon {
	e.state.Lock.Lock()
	sources := visionSources(e.state)
	occluders := e.state.Occluders()
	e.state.Lock.Unlock()

	return computeVisibilityNow(e.cache, sources, occluders)
}

func (e *FogEngineImpl) VisibleTokens(polygons map[string]fog.Polygon) []protocol.TokenLite {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()
	return sanitizeTokens(e.state, polygons)
}

func (e *FogEngineImpl) ExploredHistory() []fog.ExploredRegion {
	return e.tracker.History()
}
