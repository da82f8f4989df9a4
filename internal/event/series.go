package event

import (
	"math"

	"hardsphere/internal/gas"
	"hardsphere/internal/geometry"
)

// entry is one slot of the indexed binary heap: a pair-key and the
// absolute global time at which it is predicted to fire.
type entry struct {
	key  Key
	time float64
}

// Series is the event series: a mapping from pair-key to predicted event
// time, supporting lookup, insertion/overwrite and find-minimum. It is
// realized as an indexed binary heap keyed by absolute predicted time
// (rather than a time-until-collision delta), so that advancing the global
// clock never requires touching every entry — only Refresh, called for the
// one or two particles a collision actually affects, rewrites entries. This
// is the optimisation the design notes recommend in place of an O(n) sweep
// per event.
type Series struct {
	heap    []entry
	slot    map[Key]int // key -> index into heap
	Backend PairTimeBatcher
}

// PairTimeBatcher evaluates the pair-collision time kernel for one particle
// against many partners in a single call, letting Refresh route that work
// through a selectable compute backend instead of one geometry call per
// partner. A nil Backend (the default) makes Refresh fall back to calling
// geometry.TimeToPair directly, once per partner.
type PairTimeBatcher interface {
	BatchTimeToPair(p gas.Particle, others []gas.Particle) []float64
}

// NewSeries returns an empty series sized for capacity entries.
func NewSeries(capacity int) *Series {
	return &Series{
		heap: make([]entry, 0, capacity),
		slot: make(map[Key]int, capacity),
	}
}

// Init populates one entry per pair-key — the 2*d wall keys for every
// particle and the N(N-1)/2 particle-pair keys — using the geometry kernel,
// with predictions expressed as absolute times relative to now.
func Init(store *gas.Store, now float64) *Series {
	n := store.N()
	dim := store.Dim()
	s := NewSeries(n*(n-1)/2 + 2*dim*n)

	for i := 0; i < n; i++ {
		for _, wk := range geometry.WallKeys(dim) {
			dt := geometry.TimeToWall(store.Particles[i], wk.Axis, wk.Side, store.Box)
			s.set(WallKey(i, wk.Axis, wk.Side), addTime(now, dt))
		}
		for j := i + 1; j < n; j++ {
			dt := geometry.TimeToPair(store.Particles[i], store.Particles[j])
			s.set(PairKey(i, j), addTime(now, dt))
		}
	}
	return s
}

func addTime(now, dt float64) float64 {
	if math.IsInf(dt, 1) {
		return math.Inf(1)
	}
	return now + dt
}

// Len returns the number of tracked pair-keys.
func (s *Series) Len() int {
	return len(s.heap)
}

// Min returns the pair-key with the smallest predicted absolute time and
// that time. Panics if the series is empty.
func (s *Series) Min() (Key, float64) {
	if len(s.heap) == 0 {
		panic("event: Min called on empty series")
	}
	return s.heap[0].key, s.heap[0].time
}

// At returns the currently stored absolute time for key, and whether the
// key is tracked at all.
func (s *Series) At(key Key) (float64, bool) {
	idx, ok := s.slot[key]
	if !ok {
		return 0, false
	}
	return s.heap[idx].time, true
}

// Forbid sets a single key's predicted time to +Inf, preventing it from
// being selected as the next event until a future Refresh brings it back.
// This is the re-collision guard: after resolving a collision, floating
// point slack can otherwise leave the just-collided pair predicted to
// collide again at dt~=0.
func (s *Series) Forbid(key Key) {
	s.set(key, math.Inf(1))
}

// Refresh recomputes every entry that mentions particle i — its 2*d wall
// keys and its N-1 pair keys — against the current store state, expressed
// as absolute times relative to now.
func (s *Series) Refresh(i int, store *gas.Store, now float64) {
	dim := store.Dim()
	for _, wk := range geometry.WallKeys(dim) {
		dt := geometry.TimeToWall(store.Particles[i], wk.Axis, wk.Side, store.Box)
		s.set(WallKey(i, wk.Axis, wk.Side), addTime(now, dt))
	}

	if s.Backend == nil {
		for j := 0; j < store.N(); j++ {
			if j == i {
				continue
			}
			dt := geometry.TimeToPair(store.Particles[i], store.Particles[j])
			s.set(PairKey(i, j), addTime(now, dt))
		}
		return
	}

	partners := make([]gas.Particle, 0, store.N()-1)
	indices := make([]int, 0, store.N()-1)
	for j := 0; j < store.N(); j++ {
		if j == i {
			continue
		}
		partners = append(partners, store.Particles[j])
		indices = append(indices, j)
	}
	times := s.Backend.BatchTimeToPair(store.Particles[i], partners)
	for k, j := range indices {
		s.set(PairKey(i, j), addTime(now, times[k]))
	}
}

// set inserts or overwrites the time associated with key and restores the
// heap property.
func (s *Series) set(key Key, t float64) {
	if idx, ok := s.slot[key]; ok {
		old := s.heap[idx].time
		s.heap[idx].time = t
		if t < old {
			s.siftUp(idx)
		} else {
			s.siftDown(idx)
		}
		return
	}

	idx := len(s.heap)
	s.heap = append(s.heap, entry{key: key, time: t})
	s.slot[key] = idx
	s.siftUp(idx)
}

func (s *Series) siftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if s.heap[idx].time >= s.heap[parent].time {
			break
		}
		s.swap(idx, parent)
		idx = parent
	}
}

func (s *Series) siftDown(idx int) {
	n := len(s.heap)
	for {
		left := 2*idx + 1
		right := 2*idx + 2
		smallest := idx
		if left < n && s.heap[left].time < s.heap[smallest].time {
			smallest = left
		}
		if right < n && s.heap[right].time < s.heap[smallest].time {
			smallest = right
		}
		if smallest == idx {
			break
		}
		s.swap(idx, smallest)
		idx = smallest
	}
}

func (s *Series) swap(i, j int) {
	s.heap[i], s.heap[j] = s.heap[j], s.heap[i]
	s.slot[s.heap[i].key] = i
	s.slot[s.heap[j].key] = j
}
