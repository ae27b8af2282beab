package textio

import (
	"sync"

	"lesiw.io/zeros"
)

// MaxPooled is the number of released buffers a [Pool] keeps
// per capacity.
const MaxPooled = 4

// A Pool caches released buffers by capacity so that reads and writes do
// not allocate a new buffer on every call.
//
// The zero Pool is empty and ready to use.
// A Pool is safe for concurrent use. It is advisory: a buffer missing
// from the pool is simply allocated.
type Pool struct {
	mu   sync.Mutex
	free zeros.Map[int, []*CharBuffer]
}

// DefaultPool is the process-wide pool used by handles that were not
// given one with [WithPool].
var DefaultPool = new(Pool)

// Acquire returns an empty buffer holding capacity characters.
func (p *Pool) Acquire(capacity int) *CharBuffer {
	p.mu.Lock()
	bufs, _ := p.free.CheckGet(capacity)
	if n := len(bufs); n > 0 {
		b := bufs[n-1]
		bufs[n-1] = nil
		p.free.Set(capacity, bufs[:n-1])
		p.mu.Unlock()
		b.Reset()
		return b
	}
	p.mu.Unlock()
	return NewCharBuffer(capacity)
}

// Release returns b to the pool.
// The caller must not use b afterwards.
// Releasing nil does nothing.
func (p *Pool) Release(b *CharBuffer) {
	if b == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	bufs, _ := p.free.CheckGet(b.Cap())
	if len(bufs) >= MaxPooled {
		return
	}
	p.free.Set(b.Cap(), append(bufs, b))
}

// Pooled returns the number of buffers of the given capacity
// currently held by p.
func (p *Pool) Pooled(capacity int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	bufs, _ := p.free.CheckGet(capacity)
	return len(bufs)
}
