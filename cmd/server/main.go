package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/coder/websocket"

	"github.com/kocheck/Hyle-sub001/internal/fog"
	"github.com/kocheck/Hyle-sub001/internal/maps"
	"github.com/kocheck/Hyle-sub001/internal/protocol"
	"github.com/kocheck/Hyle-sub001/internal/web/views"
	"github.com/kocheck/Hyle-sub001/internal/ws"
)

func main() {
	def := loadMapDefinition()
	state := NewMapState(def)
	log.Printf("loaded map %s (%gx%g, grid scale %g): %d walls, %d doors, %d tokens",
		state.MapID, state.Width, state.Height, state.GridScale,
		len(state.Walls), len(state.Doors), len(state.Tokens))

	cache := fog.NewCache(fog.DefaultRayCount)
	tracker := fog.NewTracker(fog.DefaultThrottleInterval)

	var engine FogEngine = NewFogEngine(state, cache, tracker, log.Default())
	metrics := NewPerformanceMetrics()
	engine = NewInstrumentedFogEngine(engine, metrics)

	profiling := GetProfilingConfigFromEnv()
	StartProfiling(profiling)
	if profiling.Enabled {
		StartMetricsReporting(metrics, time.Minute)
	}

	hub := ws.NewHub()
	var broadcaster Broadcaster = NewHubBroadcaster(hub, &AtomicSequence{}, log.Default())

	publishVisibility := func(polygons map[string]fog.Polygon, explored []fog.ExploredRegion, visibleTokens []protocol.TokenLite) {
		broadcaster.BroadcastEvent("VisibilityChanged", protocol.VisibilityChanged{Polygons: visibilityLite(polygons)})
		if len(explored) > 0 {
			broadcaster.BroadcastEvent("RegionsExplored", protocol.RegionsExplored{Regions: exploredLite(explored)})
		}
		// Players only ever learn about tokens the oracle lets through.
		broadcaster.BroadcastEventTo(ws.RolePlayer, "TokensVisible", protocol.TokensVisible{Tokens: visibleTokens})
	}

	mux := http.NewServeMux()
	fileServer := http.FileServer(http.Dir("internal/web/static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		role := ws.RolePlayer
		if r.URL.Query().Get("role") == string(ws.RoleDM) {
			role = ws.RoleDM
		}
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn, role)

		hello, _ := json.Marshal(protocol.PatchEnvelope{
			Sequence: 0,
			EventID:  0,
			Type:     "VariablesChanged",
			Payload:  protocol.VariablesChanged{Entries: map[string]any{"role": string(role)}},
		})
		_ = conn.Write(context.Background(), websocket.MessageText, hello)

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				var env protocol.IntentEnvelope
				if err := json.Unmarshal(data, &env); err != nil {
					continue
				}
				switch env.Type {
				case "RequestMoveToken":
					var req protocol.RequestMoveToken
					if err := json.Unmarshal(env.Payload, &req); err != nil {
						continue
					}
					result, err := engine.ProcessMoveToken(req)
					if err != nil {
						log.Printf("move rejected: %v", err)
						continue
					}
					broadcaster.BroadcastEventTo(ws.RoleDM, "TokenUpdated", *result.TokenUpdated)
					publishVisibility(result.Visibility, result.Explored, result.VisibleTokens)
				case "RequestToggleDoor":
					var req protocol.RequestToggleDoor
					if err := json.Unmarshal(env.Payload, &req); err != nil {
						continue
					}
					result, err := engine.ProcessToggleDoor(req)
					if err != nil {
						log.Printf("door toggle rejected: %v", err)
						continue
					}
					broadcaster.BroadcastEvent("DoorStateChanged", *result.StateChange)
					publishVisibility(result.Visibility, result.Explored, result.VisibleTokens)
				default:
				}
			}
		}(conn)
	})

	mux.HandleFunc("/player", func(w http.ResponseWriter, r *http.Request) {
		s := buildSnapshot(engine, ws.RolePlayer)
		if err := views.PlayerPage(s).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s := buildSnapshot(engine, ws.RoleDM)
		if err := views.IndexPage(s).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}

func loadMapDefinition() *maps.Definition {
	path := os.Getenv("MAP_PATH")
	if path == "" {
		return DevMap()
	}
	def, err := maps.Load(path)
	if err != nil {
		log.Fatalf("failed to load map from %s: %v", path, err)
	}
	return def
}

// buildSnapshot assembles the initial page state for one window. The DM sees
// every token; the player display only gets what the oracle admits.
func buildSnapshot(engine FogEngine, role ws.Role) protocol.Snapshot {
	polygons := engine.CurrentVisibility()
	state := engine.State()

	state.Lock.Lock()
	defer state.Lock.Unlock()

	var tokens []protocol.TokenLite
	if role == ws.RoleDM {
		tokens = allTokenLites(state.Tokens)
	} else {
		tokens = sanitizeTokens(state, polygons)
	}

	return protocol.Snapshot{
		MapID:           state.MapID,
		MapName:         state.MapName,
		Role:            string(role),
		MapWidth:        state.Width,
		MapHeight:       state.Height,
		GridScale:       state.GridScale,
		Walls:           wallLites(state.Walls),
		Doors:           doorLites(state.Doors),
		Tokens:          tokens,
		Visibility:      visibilityLite(polygons),
		Explored:        exploredLite(engine.ExploredHistory()),
		ProtocolVersion: "v0",
	}
}
