package fog

import (
	"sort"
	"time"
)

// DefaultThrottleInterval bounds how often exploration snapshots accumulate.
const DefaultThrottleInterval = time.Second

// Tracker folds current visibility polygons into an append-only history of
// explored regions. Snapshots are throttled; overlapping regions are kept as
// recorded and unioned visually during compositing, never merged here.
// Durable storage of the history belongs to the caller.
type Tracker struct {
	throttle   time.Duration
	lastUpdate time.Time
	history    []ExploredRegion
}

func NewTracker(throttle time.Duration) *Tracker {
	if throttle <= 0 {
		throttle = DefaultThrottleInterval
	}
	return &Tracker{throttle: throttle}
}

// Tick appends one explored region per source with a non-empty polygon and
// returns the newly appended regions. Calls inside the throttle window append
// nothing. Sources whose polygon is empty (inactive, zero radius) contribute
// nothing to history.
func (t *Tracker) Tick(now time.Time, polygons map[string]Polygon) []ExploredRegion {
	if now.Sub(t.lastUpdate) < t.throttle {
		return nil
	}

	ids := make([]string, 0, len(polygons))
	for id := range polygons {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var appended []ExploredRegion
	for _, id := range ids {
		polygon := polygons[id]
		if len(polygon) == 0 {
			continue
		}
		appended = append(appended, ExploredRegion{
			SourceID:   id,
			Polygon:    polygon,
			ObservedAt: now,
		})
	}
	// Ticks that append nothing do not advance the window, so the first real
	// visibility after a blind stretch is recorded immediately.
	if len(appended) > 0 {
		t.history = append(t.history, appended...)
		t.lastUpdate = now
	}
	return appended
}

// History returns the accumulated explored regions, oldest first. Entries are
// immutable once appended.
func (t *Tracker) History() []ExploredRegion {
	return t.history
}
