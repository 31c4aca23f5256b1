package fog

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"
)

type cacheEntry struct {
	fingerprint uint64
	polygon     Polygon
}

// Cache memoizes visibility polygons per vision source. A cached polygon is
// reused only while the source parameters and the occluder set are unchanged;
// because every fingerprint folds in the shared occluder digest, a single
// door toggle forces every source to recompute once.
//
// The cache is owned by the host session and passed explicitly; it holds at
// most one entry per source id.
type Cache struct {
	mu       sync.Mutex
	rayCount int
	entries  map[string]cacheEntry
}

func NewCache(rayCount int) *Cache {
	if rayCount <= 0 {
		rayCount = DefaultRayCount
	}
	return &Cache{rayCount: rayCount, entries: make(map[string]cacheEntry)}
}

// GetVisibility returns the visibility polygon for source, recomputing only
// when the cached fingerprint no longer matches. Inactive sources and sources
// without positive radius see nothing and return a nil polygon.
func (c *Cache) GetVisibility(source VisionSource, occluders []Segment) Polygon {
	if !source.Active || source.Radius <= 0 {
		return nil
	}
	fp := sourceFingerprint(source, OccluderDigest(occluders))

	c.mu.Lock()
	entry, ok := c.entries[source.ID]
	c.mu.Unlock()
	if ok && entry.fingerprint == fp {
		return entry.polygon
	}

	polygon := ComputeVisibility(source.Origin, source.Radius, occluders, c.rayCount)
	c.mu.Lock()
	c.entries[source.ID] = cacheEntry{fingerprint: fp, polygon: polygon}
	c.mu.Unlock()
	return polygon
}

// Prune drops entries for sources that no longer exist, so polygons for
// removed tokens are not retained for the rest of the session.
func (c *Cache) Prune(activeIDs map[string]bool) {
	c.mu.Lock()
	for id := range c.entries {
		if !activeIDs[id] {
			delete(c.entries, id)
		}
	}
	c.mu.Unlock()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// OccluderDigest hashes the occluder set without regard to order, so two
// extractions of the same walls and doors always agree.
func OccluderDigest(occluders []Segment) uint64 {
	var digest uint64
	for _, seg := range occluders {
		h := fnv.New64a()
		var buf [32]byte
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(seg.A.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(seg.A.Y))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(seg.B.X))
		binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(seg.B.Y))
		h.Write(buf[:])
		digest ^= h.Sum64()
	}
	return digest
}

func sourceFingerprint(source VisionSource, occluderDigest uint64) uint64 {
	h := fnv.New64a()
	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(source.Origin.X))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(source.Origin.Y))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(source.Radius))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(source.Scale))
	binary.LittleEndian.PutUint64(buf[32:], occluderDigest)
	h.Write(buf[:])
	return h.Sum64()
}
