// Package buffer implements the byte-buffer free-list and memory pressure
// monitor the protocol writers draw on for their hot paths (spec.md §4.2).
package buffer

import (
	"sync"
	"sync/atomic"
)

// classFor rounds n up to the nearest power-of-two bucket so buffers of
// similar size share a free-list, the way the teacher's database pool keys
// connections by path rather than by exact request shape.
func classFor(n int) int {
	if n <= 64 {
		return 64
	}
	class := 64
	for class < n {
		class <<= 1
	}
	return class
}

// Pool is a bounded, capacity-classed free-list of byte slices. Unlike
// sync.Pool it never discards entries under GC pressure on its own — it's
// sized and drained explicitly by the Monitor instead, so the server can
// account for exactly how many bytes it's holding.
type Pool struct {
	mu          sync.Mutex
	classes     map[int][][]byte
	maxPoolSize int
	maxCapacity int
	monitor     *Monitor

	discards atomic.Int64
}

// NewPool builds a Pool bounded by maxPoolSize entries per capacity class
// and maxCapacity bytes per buffer; buffers larger than maxCapacity are
// never pooled, only allocated and dropped on release.
func NewPool(maxPoolSize, maxCapacity int, monitor *Monitor) *Pool {
	p := &Pool{
		classes:     make(map[int][][]byte),
		maxPoolSize: maxPoolSize,
		maxCapacity: maxCapacity,
		monitor:     monitor,
	}
	if monitor != nil {
		monitor.RegisterCleanup(p.trim)
	}
	return p
}

// Acquire returns a buffer with at least the requested capacity, reused from
// the free-list when available, freshly allocated otherwise. Bytes-in-use
// only grows here on a fresh allocation — a buffer reused from the
// free-list was already counted as in-use by the pool, not idle.
func (p *Pool) Acquire(size int) []byte {
	class := classFor(size)

	p.mu.Lock()
	bucket := p.classes[class]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.classes[class] = bucket[:n-1]
		p.mu.Unlock()
		return buf[:0]
	}
	p.mu.Unlock()

	buf := make([]byte, 0, class)
	if p.monitor != nil {
		p.monitor.add(int64(cap(buf)))
	}
	return buf
}

// Release returns buf to its capacity class's free-list, or drops it
// (counted as a discard and freed from bytes-in-use) if it's oversized or
// the class is already full. A buffer kept in the free-list stays counted
// as in-use — it's still memory the pool owns, whether held by a writer or
// sitting idle waiting for the next Acquire.
func (p *Pool) Release(buf []byte) {
	c := cap(buf)
	if c > p.maxCapacity {
		p.discards.Add(1)
		if p.monitor != nil {
			p.monitor.sub(int64(c))
			p.monitor.recordDiscard()
		}
		return
	}
	class := classFor(c)

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.classes[class]) >= p.maxPoolSize {
		p.discards.Add(1)
		if p.monitor != nil {
			p.monitor.sub(int64(c))
			p.monitor.recordDiscard()
		}
		return
	}
	p.classes[class] = append(p.classes[class], buf)
}

// Discards reports the number of buffers dropped instead of pooled, either
// for exceeding maxCapacity or because their class was already full.
func (p *Pool) Discards() int64 {
	return p.discards.Load()
}

// trim drops up to half the pooled entries in every capacity class, called
// by the Monitor when bytes-in-use crosses a cleanup threshold.
func (p *Pool) trim() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for class, bucket := range p.classes {
		keep := len(bucket) / 2
		for _, buf := range bucket[keep:] {
			if p.monitor != nil {
				p.monitor.sub(int64(cap(buf)))
			}
		}
		p.classes[class] = bucket[:keep]
	}
}
