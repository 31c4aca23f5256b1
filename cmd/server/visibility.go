package main

import (
	"sort"

	"github.com/kocheck/Hyle-sub001/internal/fog"
	"github.com/kocheck/Hyle-sub001/internal/protocol"
)

// visionSources derives the vision sources from the current tokens. Only
// player tokens with positive sight are active; their stored sight range in
// grid units is converted to pixels with the map's grid scale here, before
// the raycaster ever sees it.
func visionSources(state *MapState) []fog.VisionSource {
	sources := make([]fog.VisionSource, 0, len(state.Tokens))
	for _, token := range state.Tokens {
		sources = append(sources, fog.VisionSource{
			ID:     token.ID,
			Origin: token.Pos,
			Radius: token.SightRange * state.GridScale,
			Scale:  state.GridScale,
			Active: token.Kind == TokenPlayer && token.SightRange > 0,
		})
	}
	return sources
}

// computeVisibilityNow resolves the per-source polygons through the cache and
// prunes entries for tokens that no longer exist.
func computeVisibilityNow(cache *fog.Cache, sources []fog.VisionSource, occluders []fog.Segment) map[string]fog.Polygon {
	polygons := make(map[string]fog.Polygon, len(sources))
	current := make(map[string]bool, len(sources))
	for _, src := range sources {
		current[src.ID] = true
		if polygon := cache.GetVisibility(src, occluders); len(polygon) > 0 {
			polygons[src.ID] = polygon
		}
	}
	cache.Prune(current)
	return polygons
}

// sanitizeTokens returns the tokens the player display may see: player tokens
// always, everything else only while its bounding box intersects current
// visibility. With no polygons at all this fails closed and hides every
// non-player token.
func sanitizeTokens(state *MapState, polygons map[string]fog.Polygon) []protocol.TokenLite {
	polys := make([]fog.Polygon, 0, len(polygons))
	for _, p := range polygons {
		polys = append(polys, p)
	}

	ids := make([]string, 0, len(state.Tokens))
	for id := range state.Tokens {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	visible := make([]protocol.TokenLite, 0, len(ids))
	for _, id := range ids {
		token := state.Tokens[id]
		if token.Kind != TokenPlayer {
			half := token.Size / 2
			if !fog.IsRectVisible(token.Pos.X-half, token.Pos.Y-half, token.Size, token.Size, polys) {
				continue
			}
		}
		visible = append(visible, tokenLite(token))
	}
	return visible
}

func tokenLite(token *TokenInfo) protocol.TokenLite {
	return protocol.TokenLite{
		ID:         token.ID,
		Name:       token.Name,
		Kind:       string(token.Kind),
		X:          token.Pos.X,
		Y:          token.Pos.Y,
		SightRange: token.SightRange,
		Size:       token.Size,
	}
}

func polygonLite(polygon fog.Polygon) protocol.PolygonLite {
	out := make(protocol.PolygonLite, len(polygon))
	for i, p := range polygon {
		out[i] = protocol.PointLite{X: p.X, Y: p.Y}
	}
	return out
}

func visibilityLite(polygons map[string]fog.Polygon) map[string]protocol.PolygonLite {
	out := make(map[string]protocol.PolygonLite, len(polygons))
	for id, polygon := range polygons {
		out[id] = polygonLite(polygon)
	}
	return out
}

func exploredLite(regions []fog.ExploredRegion) []protocol.ExploredRegionLite {
	out := make([]protocol.ExploredRegionLite, len(regions))
	for i, region := range regions {
		out[i] = protocol.ExploredRegionLite{
			SourceID:   region.SourceID,
			Polygon:    polygonLite(region.Polygon),
			ObservedAt: region.ObservedAt.UnixMilli(),
		}
	}
	return out
}

func wallLites(walls []fog.Polyline) []protocol.WallLite {
	out := make([]protocol.WallLite, 0, len(walls))
	for _, wall := range walls {
		points := wall.Transformed()
		lite := protocol.WallLite{ID: wall.ID, Points: make([]protocol.PointLite, len(points))}
		for i, p := range points {
			lite.Points[i] = protocol.PointLite{X: p.X, Y: p.Y}
		}
		out = append(out, lite)
	}
	return out
}

func doorLites(doors map[string]*DoorInfo) []protocol.DoorLite {
	ids := make([]string, 0, len(doors))
	for id := range doors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]protocol.DoorLite, 0, len(ids))
	for _, id := range ids {
		door := doors[id]
		out = append(out, protocol.DoorLite{
			ID:          door.ID,
			X:           door.Center.X,
			Y:           door.Center.Y,
			Orientation: string(door.Orientation),
			Size:        door.Size,
			Open:        door.Open,
		})
	}
	return out
}

func allTokenLites(tokens map[string]*TokenInfo) []protocol.TokenLite {
	ids := make([]string, 0, len(tokens))
	for id := range tokens {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]protocol.TokenLite, 0, len(ids))
	for _, id := range ids {
		out = append(out, tokenLite(tokens[id]))
	}
	return out
}
