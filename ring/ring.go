// File: ring/ring.go
// Package ring implements the lock-free SPSC byte ring buffer core.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Positions are free-running uint64 counters: they only ever increase, and
// writePos-readPos (wrapping subtraction) is the exact number of buffered
// bytes because capacity is a power of two. Buffer indices are derived by
// masking a position with capacity-1.

package ring

import (
	"math/bits"
	"sync/atomic"

	"github.com/momentics/spsc-ring/api"
	"github.com/momentics/spsc-ring/internal/mem"
)

const cacheLine = 64

const (
	// MinCapacity is the smallest supported ring capacity in bytes.
	MinCapacity uint64 = 2
	// MaxCapacity is the largest supported ring capacity in bytes.
	// Half the range of the position counters, so occupancy arithmetic
	// keeps one bit of slack.
	MaxCapacity uint64 = 1 << 63
)

// Ensure compile-time contract compliance.
var _ api.ByteRing = (*Buffer)(nil)

// Buffer is a lock-free SPSC byte ring buffer.
//
// The zero value is an unallocated ring: every operation no-ops with a zero
// result until Allocate succeeds. A Buffer must not be copied after first use.
type Buffer struct {
	region *mem.Region
	data   []byte
	// capacity is always a power of two, mask is capacity-1.
	capacity uint64
	mask     uint64

	writePos atomic.Uint64
	_        [cacheLine - 8]byte // keep the producer and consumer counters on separate lines
	readPos  atomic.Uint64
	_        [cacheLine - 8]byte
}

// New creates a ring buffer whose capacity is the smallest power of two not
// less than minCapacity.
//
// Returns api.ErrInvalidCapacity when minCapacity is outside
// [MinCapacity, MaxCapacity] and api.ErrAllocationFailed when backing memory
// could not be obtained.
func New(minCapacity uint64) (*Buffer, error) {
	b := &Buffer{}
	if err := b.Allocate(minCapacity); err != nil {
		return nil, err
	}
	return b, nil
}

// CapacityFor returns the actual capacity New or Allocate would choose for
// minCapacity, or an error when the request is out of range.
func CapacityFor(minCapacity uint64) (uint64, error) {
	if minCapacity < MinCapacity || minCapacity > MaxCapacity {
		return 0, api.NewError(api.ErrCodeInvalidCapacity, "ring capacity out of range").
			WithContext("minCapacity", minCapacity)
	}
	return nextPowerOfTwo(minCapacity), nil
}

// Allocate (re)allocates backing storage, discarding any buffered data and
// resetting both positions to zero.
//
// Not thread safe: no producer or consumer may be active during the call.
// An out-of-range request leaves the previous allocation untouched; an
// allocation failure leaves the ring unallocated.
func (b *Buffer) Allocate(minCapacity uint64) error {
	capacity, err := CapacityFor(minCapacity)
	if err != nil {
		return err
	}

	b.Deallocate()

	region, err := mem.Alloc(capacity)
	if err != nil {
		return err
	}

	b.region = region
	b.data = region.Bytes()
	b.capacity = capacity
	b.mask = capacity - 1

	b.writePos.Store(0)
	b.readPos.Store(0)

	return nil
}

// Deallocate frees the backing storage and returns the ring to the
// unallocated state. Idempotent. Not thread safe.
func (b *Buffer) Deallocate() {
	if b.region == nil {
		return
	}
	b.region.Release()
	b.region = nil
	b.data = nil
	b.capacity = 0
	b.mask = 0
	b.writePos.Store(0)
	b.readPos.Store(0)
}

// Reset empties the ring without freeing memory. Not thread safe.
func (b *Buffer) Reset() {
	b.writePos.Store(0)
	b.readPos.Store(0)
}

// Allocated reports whether the ring has backing storage.
func (b *Buffer) Allocated() bool {
	return b.region != nil
}

// Capacity returns the ring capacity in bytes. Safe from either side.
func (b *Buffer) Capacity() uint64 {
	return b.capacity
}

// FreeSpace returns the number of bytes available for writing.
// Accurate only when called from the producer.
func (b *Buffer) FreeSpace() uint64 {
	writePos := b.writePos.Load()
	readPos := b.readPos.Load()
	return b.capacity - (writePos - readPos)
}

// AvailableBytes returns the number of bytes available for reading.
// Accurate only when called from the consumer.
func (b *Buffer) AvailableBytes() uint64 {
	writePos := b.writePos.Load()
	readPos := b.readPos.Load()
	return writePos - readPos
}

// IsFull reports whether the ring is full. Producer-side accurate.
func (b *Buffer) IsFull() bool {
	return b.FreeSpace() == 0
}

// IsEmpty reports whether the ring is empty. Consumer-side accurate.
func (b *Buffer) IsEmpty() bool {
	return b.AvailableBytes() == 0
}

// Write copies as many bytes of p as currently fit and returns the count.
// Producer only.
func (b *Buffer) Write(p []byte) int {
	return b.WriteItems(p, 1, true)
}

// WriteItems copies whole items of itemSize bytes from p into the ring and
// returns the number of items written. len(p)/itemSize is the item count;
// trailing bytes of a partial item are ignored. When allowPartial is false
// the write is all-or-nothing. Producer only.
func (b *Buffer) WriteItems(p []byte, itemSize int, allowPartial bool) int {
	if len(p) == 0 || itemSize <= 0 || b.capacity == 0 {
		return 0
	}
	itemCount := uint64(len(p) / itemSize)
	if itemCount == 0 {
		return 0
	}

	writePos := b.writePos.Load()
	readPos := b.readPos.Load()

	bytesFree := b.capacity - (writePos - readPos)
	itemsFree := bytesFree / uint64(itemSize)
	if itemsFree == 0 || (itemsFree < itemCount && !allowPartial) {
		return 0
	}

	items := min(itemsFree, itemCount)
	n := items * uint64(itemSize)

	idx := writePos & b.mask
	if tail := b.capacity - idx; n <= tail {
		copy(b.data[idx:], p[:n])
	} else {
		copy(b.data[idx:], p[:tail])
		copy(b.data, p[tail:n])
	}

	b.writePos.Store(writePos + n)

	return int(items)
}

// Read copies up to len(p) buffered bytes into p and returns the count.
// Consumer only.
func (b *Buffer) Read(p []byte) int {
	return b.ReadItems(p, 1, true)
}

// ReadItems copies whole items of itemSize bytes into p and returns the
// number of items read, with the same partial policy as WriteItems.
// Consumer only.
func (b *Buffer) ReadItems(p []byte, itemSize int, allowPartial bool) int {
	if len(p) == 0 || itemSize <= 0 || b.capacity == 0 {
		return 0
	}
	itemCount := uint64(len(p) / itemSize)
	if itemCount == 0 {
		return 0
	}

	writePos := b.writePos.Load()
	readPos := b.readPos.Load()

	bytesUsed := writePos - readPos
	itemsAvailable := bytesUsed / uint64(itemSize)
	if itemsAvailable == 0 || (itemsAvailable < itemCount && !allowPartial) {
		return 0
	}

	items := min(itemsAvailable, itemCount)
	n := items * uint64(itemSize)

	idx := readPos & b.mask
	if tail := b.capacity - idx; n <= tail {
		copy(p[:n], b.data[idx:])
	} else {
		copy(p[:tail], b.data[idx:])
		copy(p[tail:n], b.data)
	}

	b.readPos.Store(readPos + n)

	return int(items)
}

// Peek copies exactly len(p) bytes into p without advancing the read
// position. Returns false, copying nothing, when fewer bytes are buffered.
// Consumer only.
func (b *Buffer) Peek(p []byte) bool {
	if len(p) == 0 || b.capacity == 0 {
		return false
	}

	writePos := b.writePos.Load()
	readPos := b.readPos.Load()

	n := uint64(len(p))
	if writePos-readPos < n {
		return false
	}

	idx := readPos & b.mask
	if tail := b.capacity - idx; n <= tail {
		copy(p, b.data[idx:])
	} else {
		copy(p[:tail], b.data[idx:])
		copy(p[tail:], b.data)
	}

	return true
}

// Skip discards up to itemCount items of itemSize bytes without copying and
// returns the number of items discarded. Consumer only.
func (b *Buffer) Skip(itemSize, itemCount int) int {
	if itemSize <= 0 || itemCount <= 0 || b.capacity == 0 {
		return 0
	}

	writePos := b.writePos.Load()
	readPos := b.readPos.Load()

	itemsAvailable := (writePos - readPos) / uint64(itemSize)
	if itemsAvailable == 0 {
		return 0
	}

	items := min(itemsAvailable, uint64(itemCount))
	b.readPos.Store(readPos + items*uint64(itemSize))

	return int(items)
}

// Drain advances the read position to the write position, discarding all
// currently readable data, and returns the number of bytes discarded.
// Consumer only.
func (b *Buffer) Drain() uint64 {
	writePos := b.writePos.Load()
	readPos := b.readPos.Load()

	bytesUsed := writePos - readPos
	if bytesUsed == 0 {
		return 0
	}

	b.readPos.Store(writePos)
	return bytesUsed
}

// nextPowerOfTwo returns the smallest power of two >= n.
// Valid for n in [1, 1<<63].
func nextPowerOfTwo(n uint64) uint64 {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len64(n)
}
