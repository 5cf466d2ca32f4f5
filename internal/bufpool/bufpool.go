// Package bufpool provides the fixed-capacity buffer pool the request
// pipeline uses to drain inbound request bodies.
//
// Unlike the teacher's sync.Pool-backed tiers (core/pools/buffer_pool.go,
// fast_pool.go), this pool has a hard capacity: it never allocates past its
// configured size, and acquisition past that limit is reported to the
// caller as exhaustion rather than silently growing the heap. A sync.Pool
// cannot express that — its New func always manufactures a fresh object —
// so the pool is backed by a fixed-length buffered channel instead, the
// standard Go idiom for a bounded object pool.
package bufpool

import (
	"bytes"
	"sync"
	"sync/atomic"
)

// Defaults match the spec: 1,024 buffers of initial capacity 4,096 bytes.
const (
	DefaultCapacity    = 1024
	DefaultBufferBytes = 4096
)

// Pool is a fixed-size collection of reusable *bytes.Buffer values.
type Pool struct {
	slots chan *bytes.Buffer
	size  int

	gets      atomic.Uint64
	hits      atomic.Uint64
	exhausted atomic.Uint64
}

// New creates a pool of capacity buffers, each pre-allocated with
// bufferBytes of backing storage.
func New(capacity, bufferBytes int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if bufferBytes <= 0 {
		bufferBytes = DefaultBufferBytes
	}

	p := &Pool{
		slots: make(chan *bytes.Buffer, capacity),
		size:  capacity,
	}
	for i := 0; i < capacity; i++ {
		buf := bytes.NewBuffer(make([]byte, 0, bufferBytes))
		p.slots <- buf
	}
	return p
}

// TryAcquire returns a borrowed buffer and true, or (nil, false) if the
// pool is exhausted. It never blocks.
func (p *Pool) TryAcquire() (*bytes.Buffer, bool) {
	p.gets.Add(1)
	select {
	case buf := <-p.slots:
		p.hits.Add(1)
		return buf, true
	default:
		p.exhausted.Add(1)
		return nil, false
	}
}

// Release clears buf and returns it to the pool. A buffer not obtained
// from this pool (or already released) must not be passed here.
func (p *Pool) Release(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	select {
	case p.slots <- buf:
	default:
		// Pool is already full; drop it and let the GC reclaim it.
	}
}

// Stats reports pool utilization counters.
type Stats struct {
	Capacity  int
	Gets      uint64
	Hits      uint64
	Exhausted uint64
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Capacity:  p.size,
		Gets:      p.gets.Load(),
		Hits:      p.hits.Load(),
		Exhausted: p.exhausted.Load(),
	}
}

var (
	globalOnce sync.Once
	global     *Pool
)

// Global returns the process-wide pool, lazily initialized on first use
// with the spec's default dimensions.
func Global() *Pool {
	globalOnce.Do(func() {
		global = New(DefaultCapacity, DefaultBufferBytes)
	})
	return global
}
