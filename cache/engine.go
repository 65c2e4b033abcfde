package cache

// Outcome classifies one cache access.
type Outcome int

// The three possible outcomes of an access.
const (
	OutcomeHit Outcome = iota
	OutcomeMiss
	OutcomeMissEvict
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeMissEvict:
		return "miss evict"
	default:
		return "unknown"
	}
}

// Stats aggregates the outcomes of all accesses an engine has served. An
// access that evicts counts as both a miss and an eviction.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// An Engine owns the sets of one simulated cache and applies the LRU
// replacement policy access by access. Engines are not safe for concurrent
// use; a trace is replayed strictly sequentially.
type Engine struct {
	name     string
	geometry Geometry
	sets     []*set
	stats    Stats
}

// Name returns the name of the engine.
func (e *Engine) Name() string {
	return e.name
}

// Geometry returns the cache geometry the engine simulates.
func (e *Engine) Geometry() Geometry {
	return e.geometry
}

// Stats returns the counters accumulated so far.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Access runs one memory reference through the cache and reports whether
// it hit, missed, or missed and evicted a resident line. An access is
// applied fully before Access returns; there is no partial state.
func (e *Engine) Access(addr uint64) Outcome {
	tag, setID := e.geometry.Decode(addr)
	set := e.sets[setID]

	if lineID, found := set.find(tag); found {
		e.stats.Hits++
		set.order.Touch(lineID)

		return OutcomeHit
	}

	e.stats.Misses++

	// The victim is always the least recently used line, whether or not it
	// currently holds anything. A cold set fills in recency order.
	victim := set.order.Oldest()
	evicting := set.lines[victim].Valid

	set.install(victim, tag)

	if evicting {
		e.stats.Evictions++

		return OutcomeMissEvict
	}

	return OutcomeMiss
}

// Reset returns the engine to the cold state: all lines invalid, recency
// order back to line order, counters cleared.
func (e *Engine) Reset() {
	for i := range e.sets {
		e.sets[i] = newSet(e.geometry.LinesPerSet)
	}

	e.stats = Stats{}
}
