package buffer

import "sync"

// Pool provides sync.Pool-based Planar reuse to reduce GC pressure when
// buffers of similar size are needed repeatedly.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Planar{}
			},
		},
	}
}

// Get returns a zeroed buffer with the requested layout. Callers must return
// it via Put when done.
func (p *Pool) Get(channels, frames int) *Planar {
	b := p.pool.Get().(*Planar)
	b.Reshape(channels, frames)

	return b
}

// Put returns a buffer to the pool. The caller must not use it afterwards.
func (p *Pool) Put(b *Planar) {
	if b == nil {
		return
	}

	p.pool.Put(b)
}
