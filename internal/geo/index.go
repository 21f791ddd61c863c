package geo

import (
	"hash/fnv"
	"math"
	"sort"
	"sync"
	"time"
)

// shardCount controls how many independent locks the agent table is split
// across. Cross-agent operations on different shards never block each
// other; only operations on the same agent id ever contend.
const shardCount = 32

// Record is a point-in-time snapshot of one driver's reported position and
// status (spec.md §3, "agent record"). Index never hands out a pointer into
// its own state — every Record returned to a caller is an independent copy,
// matching the ownership rule in spec.md §3 ("agent records are copied on
// read").
type Record struct {
	ID         string
	Lat        float64
	Lng        float64
	Status     Status
	LastUpdate int64 // wall-clock seconds since the Unix epoch
}

// Candidate pairs a Record with its computed distance from a search point,
// the unit Search returns (spec.md §4.3).
type Candidate struct {
	Record     Record
	DistanceKm float64
}

// Stats is the read-only snapshot exposed by Index.Stats (spec.md §4.5).
// Each field is independently observed; the struct as a whole is not a
// point-in-time-consistent snapshot across the two underlying maps.
type Stats struct {
	Total     int
	Active    int
	Available int
	Buckets   int
	Precision int
}

// shard holds one slice of the agent table behind its own lock. Go Learning
// Note — Sharded Maps: this generalizes the teacher's single
// sync.RWMutex-guarded map (DriverRepository, LocationRepository) to a ring
// of independently-locked maps, so updates to two different agent ids never
// serialize against each other — only operations on the SAME id (routed to
// the same shard by a hash of its id) ever contend, which is exactly the
// per-agent serializability spec.md §5 requires and nothing more.
type shard struct {
	mu     sync.RWMutex
	agents map[string]*Record
}

// bucket is one grid cell's occupancy set, guarded independently of the
// shard locks so that agents from different shards landing in the same cell
// don't serialize against each other either.
type bucket struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// Index is the concurrent geo-spatial index core (spec.md §4.3): two
// logically coupled structures — the agent table (sharded here) and the
// grid (cell id -> occupancy set) — kept consistent under concurrent
// mutation per invariants I1-I5. It unifies what the teacher split into two
// separately cell-indexed structures (geo.SpatialIndex and
// memory.LocationRepository) into the single owned object the original
// Rust GeoIndex struct also keeps: one drivers map, one grid map.
type Index struct {
	precision int
	shards    [shardCount]*shard

	gridMu sync.RWMutex
	grid   map[string]*bucket
}

// NewIndex creates an empty Index at the given cell precision. A precision
// of 0 or less falls back to DefaultPrecision (~150m cells).
func NewIndex(precision int) *Index {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	ix := &Index{
		precision: precision,
		grid:      make(map[string]*bucket),
	}
	for i := range ix.shards {
		ix.shards[i] = &shard{agents: make(map[string]*Record)}
	}
	return ix
}

func (ix *Index) shardFor(id string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return ix.shards[h.Sum32()%shardCount]
}

func validCoord(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Update writes (or overwrites) an agent's record, moving it between grid
// cells as needed (spec.md §4.3). The entire operation runs under the
// target id's shard lock, so a concurrent reader observes either the
// complete pre-state or the complete post-state, never a partial move
// (spec.md §5).
func (ix *Index) Update(id string, lat, lng float64, status Status) error {
	if id == "" || !validCoord(lat, lng) {
		return ErrInvalidArgument
	}

	sh := ix.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if old, exists := sh.agents[id]; exists && old.Status != StatusOffline {
		ix.removeFromCell(Encode(old.Lat, old.Lng, ix.precision), id)
	}

	rec := &Record{
		ID:         id,
		Lat:        lat,
		Lng:        lng,
		Status:     status,
		LastUpdate: time.Now().Unix(),
	}
	sh.agents[id] = rec

	if status != StatusOffline {
		cell := Encode(lat, lng, ix.precision)
		ix.addToCell(cell, id)
	}

	return nil
}

// Remove deletes an agent from the table and its grid cell (if any),
// reporting whether the agent existed (spec.md §4.3).
func (ix *Index) Remove(id string) bool {
	sh := ix.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	old, exists := sh.agents[id]
	if !exists {
		return false
	}
	delete(sh.agents, id)
	if old.Status != StatusOffline {
		ix.removeFromCell(Encode(old.Lat, old.Lng, ix.precision), id)
	}
	return true
}

// Get returns a copy of an agent's current record, or (Record{}, false) if
// the agent is not present.
func (ix *Index) Get(id string) (Record, bool) {
	sh := ix.shardFor(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	rec, exists := sh.agents[id]
	if !exists {
		return Record{}, false
	}
	return *rec, true
}

// Search finds the k nearest Available agents to (lat, lng) within
// radiusKm, ordered by ascending distance with a lexicographic agent-id
// tie-break (spec.md §4.3, §9.4). Invalid input (bad coordinates, k < 1,
// radiusKm <= 0) returns an empty slice rather than an error — adapters are
// expected to reject those before calling in (spec.md §4.3).
func (ix *Index) Search(lat, lng float64, k int, radiusKm float64) []Candidate {
	if !validCoord(lat, lng) || k < 1 || radiusKm <= 0 {
		return nil
	}

	center := Encode(lat, lng, ix.precision)
	ringRadius := searchRingRadius(ix.precision, radiusKm)
	cells := cellsInSquare(center, ringRadius)

	ids := make(map[string]struct{})
	for _, cell := range cells {
		ix.gridMu.RLock()
		b, ok := ix.grid[cell]
		ix.gridMu.RUnlock()
		if !ok {
			continue
		}
		b.mu.Lock()
		for id := range b.ids {
			ids[id] = struct{}{}
		}
		b.mu.Unlock()
	}

	candidates := make([]Candidate, 0, len(ids))
	for id := range ids {
		rec, ok := ix.Get(id)
		if !ok || rec.Status != StatusAvailable {
			continue
		}
		d := DistanceKm(lat, lng, rec.Lat, rec.Lng)
		if d <= radiusKm {
			candidates = append(candidates, Candidate{Record: rec, DistanceKm: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].Record.ID < candidates[j].Record.ID
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

// Stats reports table/grid sizes (spec.md §4.5). Each count is taken under
// its own lock; the tuple as a whole is not guaranteed to reflect a single
// instant under concurrent load, matching spec.md §4.5.
func (ix *Index) Stats() Stats {
	var total, active, available int
	for _, sh := range ix.shards {
		sh.mu.RLock()
		for _, rec := range sh.agents {
			total++
			if rec.Status != StatusOffline {
				active++
			}
			if rec.Status == StatusAvailable {
				available++
			}
		}
		sh.mu.RUnlock()
	}

	ix.gridMu.RLock()
	buckets := len(ix.grid)
	ix.gridMu.RUnlock()

	return Stats{
		Total:     total,
		Active:    active,
		Available: available,
		Buckets:   buckets,
		Precision: ix.precision,
	}
}

// ReapStale removes every agent whose last update is older than
// maxAgeSeconds, returning how many were actually removed (spec.md §4.3).
// Each candidate's age is re-checked under its shard lock immediately
// before removal, so an agent that refreshes between the scan and the
// sweep is never removed (spec.md §4.3, §5).
func (ix *Index) ReapStale(maxAgeSeconds int64) int {
	now := time.Now().Unix()
	removed := 0

	for _, sh := range ix.shards {
		sh.mu.RLock()
		var stale []string
		for id, rec := range sh.agents {
			if now-rec.LastUpdate > maxAgeSeconds {
				stale = append(stale, id)
			}
		}
		sh.mu.RUnlock()

		if len(stale) == 0 {
			continue
		}

		sh.mu.Lock()
		for _, id := range stale {
			rec, exists := sh.agents[id]
			if !exists || now-rec.LastUpdate <= maxAgeSeconds {
				continue
			}
			delete(sh.agents, id)
			if rec.Status != StatusOffline {
				ix.removeFromCell(Encode(rec.Lat, rec.Lng, ix.precision), id)
			}
			removed++
		}
		sh.mu.Unlock()
	}

	return removed
}

// Snapshot returns a copy of every currently-indexed (non-Offline) agent.
// Neither adapter calls it; it is not part of any external surface.
func (ix *Index) Snapshot() []Record {
	var out []Record
	for _, sh := range ix.shards {
		sh.mu.RLock()
		for _, rec := range sh.agents {
			if rec.Status == StatusOffline {
				continue
			}
			out = append(out, *rec)
		}
		sh.mu.RUnlock()
	}
	return out
}

// addToCell and removeFromCell must only be called while the caller holds
// the lock on the shard owning `id` — they assume per-agent serializability
// is already established and only need to protect the grid itself.

func (ix *Index) addToCell(cell, id string) {
	ix.gridMu.Lock()
	b, ok := ix.grid[cell]
	if !ok {
		b = &bucket{ids: make(map[string]struct{})}
		ix.grid[cell] = b
	}
	ix.gridMu.Unlock()

	b.mu.Lock()
	b.ids[id] = struct{}{}
	b.mu.Unlock()
}

func (ix *Index) removeFromCell(cell, id string) {
	ix.gridMu.RLock()
	b, ok := ix.grid[cell]
	ix.gridMu.RUnlock()
	if !ok {
		return
	}

	b.mu.Lock()
	delete(b.ids, id)
	empty := len(b.ids) == 0
	b.mu.Unlock()

	if !empty {
		return
	}

	// Re-check under the grid's write lock before deleting the cell entry,
	// so a concurrent addToCell for a different agent landing in the same
	// cell between the unlock above and here isn't silently discarded
	// (invariant I4: no grid cell exists with an empty set).
	ix.gridMu.Lock()
	if cur, ok := ix.grid[cell]; ok && cur == b {
		cur.mu.Lock()
		if len(cur.ids) == 0 {
			delete(ix.grid, cell)
		}
		cur.mu.Unlock()
	}
	ix.gridMu.Unlock()
}
