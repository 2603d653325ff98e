// File: pool/ringpool.go
// Package pool implements capacity-classed reuse of ring buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Rings are pooled per power-of-two capacity class on channel free lists.
// A recycled ring is always handed out empty. The pool itself is safe for
// concurrent use; the rings it hands out keep their SPSC contract.

package pool

import (
	"sync"

	"github.com/momentics/spsc-ring/ring"
)

// classDepth bounds each per-class free list.
const classDepth = 64

// RingPool keeps deallocated-but-warm rings for reuse.
type RingPool struct {
	mu      sync.Mutex
	classes map[uint64]chan *ring.Buffer
}

// NewRingPool creates an empty pool.
func NewRingPool() *RingPool {
	return &RingPool{classes: make(map[uint64]chan *ring.Buffer)}
}

func (p *RingPool) class(capacity uint64) chan *ring.Buffer {
	p.mu.Lock()
	ch, ok := p.classes[capacity]
	if !ok {
		ch = make(chan *ring.Buffer, classDepth)
		p.classes[capacity] = ch
	}
	p.mu.Unlock()
	return ch
}

// Get returns an empty ring of at least minCapacity bytes, reusing a pooled
// ring of the matching capacity class when one is available.
func (p *RingPool) Get(minCapacity uint64) (*ring.Buffer, error) {
	capacity, err := ring.CapacityFor(minCapacity)
	if err != nil {
		return nil, err
	}
	select {
	case rb := <-p.class(capacity):
		rb.Reset()
		return rb, nil
	default:
		return ring.New(capacity)
	}
}

// Put recycles a ring. The caller must guarantee no producer or consumer is
// still active on it. Rings beyond the class depth are deallocated.
func (p *RingPool) Put(rb *ring.Buffer) {
	if rb == nil || !rb.Allocated() {
		return
	}
	rb.Reset()
	select {
	case p.class(rb.Capacity()) <- rb:
	default:
		rb.Deallocate()
	}
}
