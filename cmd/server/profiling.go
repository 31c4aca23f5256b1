package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"time"

	"github.com/kocheck/Hyle-sub001/internal/fog"
	"github.com/kocheck/Hyle-sub001/internal/protocol"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	Enabled bool
	Port    string
}

// StartProfiling starts the pprof server when profiling is enabled
func StartProfiling(config ProfilingConfig) {
	if !config.Enabled {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	if config.Port != "" {
		go func() {
			log.Printf("Starting pprof server on :%s", config.Port)
			if err := http.ListenAndServe(":"+config.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}
}

// GetProfilingConfigFromEnv creates profiling config from environment variables
func GetProfilingConfigFromEnv() ProfilingConfig {
	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = "42069"
	}
	return ProfilingConfig{
		Enabled: os.Getenv("ENABLE_PROFILING") == "true",
		Port:    port,
	}
}

// PerformanceMetrics holds performance tracking data
type PerformanceMetrics struct {
	MovesProcessed  int64
	DoorsToggled    int64
	AvgMoveTime     time.Duration
	AvgToggleTime   time.Duration
	PeakGoroutines  int
	PeakMemoryUsage uint64
	StartTime       time.Time
}

func NewPerformanceMetrics() *PerformanceMetrics {
	return &PerformanceMetrics{StartTime: time.Now()}
}

// TrackMove records metrics for a token move
func (pm *PerformanceMetrics) TrackMove(duration time.Duration) {
	pm.MovesProcessed++
	pm.AvgMoveTime = (pm.AvgMoveTime*time.Duration(pm.MovesProcessed-1) + duration) / time.Duration(pm.MovesProcessed)
}

// TrackDoorToggle records metrics for a door toggle
func (pm *PerformanceMetrics) TrackDoorToggle(duration time.Duration) {
	pm.DoorsToggled++
	pm.AvgToggleTime = (pm.AvgToggleTime*time.Duration(pm.DoorsToggled-1) + duration) / time.Duration(pm.DoorsToggled)
}

// UpdateSystemMetrics updates system-level metrics
func (pm *PerformanceMetrics) UpdateSystemMetrics() {
	goroutines := runtime.NumGoroutine()
	if goroutines > pm.PeakGoroutines {
		pm.PeakGoroutines = goroutines
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.Alloc > pm.PeakMemoryUsage {
		pm.PeakMemoryUsage = m.Alloc
	}
}

// LogMetrics logs current performance metrics
func (pm *PerformanceMetrics) LogMetrics() {
	uptime := time.Since(pm.StartTime)
	log.Printf("=== Performance Metrics ===")
	log.Printf("Uptime: %v", uptime)
	log.Printf("Moves processed: %d (avg %v)", pm.MovesProcessed, pm.AvgMoveTime)
	log.Printf("Doors toggled: %d (avg %v)", pm.DoorsToggled, pm.AvgToggleTime)
	log.Printf("Peak goroutines: %d", pm.PeakGoroutines)
	log.Printf("Peak memory usage: %d bytes", pm.PeakMemoryUsage)
}

// InstrumentedFogEngine wraps FogEngine with performance tracking
type InstrumentedFogEngine struct {
	engine  FogEngine
	metrics *PerformanceMetrics
}

func NewInstrumentedFogEngine(engine FogEngine, metrics *PerformanceMetrics) *InstrumentedFogEngine {
	return &InstrumentedFogEngine{engine: engine, metrics: metrics}
}

func (ie *InstrumentedFogEngine) ProcessMoveToken(req protocol.RequestMoveToken) (*MoveResult, error) {
	start := time.Now()
	result, err := ie.engine.ProcessMoveToken(req)
	ie.metrics.TrackMove(time.Since(start))
	ie.metrics.UpdateSystemMetrics()
	return result, err
}

func (ie *InstrumentedFogEngine) ProcessToggleDoor(req protocol.RequestToggleDoor) (*DoorToggleResult, error) {
	start := time.Now()
	result, err := ie.engine.ProcessToggleDoor(req)
	ie.metrics.TrackDoorToggle(time.Since(start))
	ie.metrics.UpdateSystemMetrics()
	return result, err
}

func (ie *InstrumentedFogEngine) CurrentVisibility() map[string]fog.Polygon {
	return ie.engine.CurrentVisibility()
}

func (ie *InstrumentedFogEngine) VisibleTokens(polygons map[string]fog.Polygon) []protocol.TokenLite {
	return ie.engine.VisibleTokens(polygons)
}

func (ie *InstrumentedFogEngine) ExploredHistory() []fog.ExploredRegion {
	return ie.engine.ExploredHistory()
}

func (ie *InstrumentedFogEngine) State() *MapState {
	return ie.engine.State()
}

// StartMetricsReporting starts periodic metrics reporting
func StartMetricsReporting(metrics *PerformanceMetrics, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			metrics.LogMetrics()
		}
	}()
}
