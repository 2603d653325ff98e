// File: ring/move.go
// Package ring: ownership transfer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// MoveFrom transfers src's allocation and position state into b, leaving src
// unallocated. Any allocation previously held by b is freed.
//
// Copying a live ring has no safe meaning, so transfer is the only way to
// hand a ring to a new owner. Not thread safe with respect to src: no
// producer or consumer may touch src during the move.
func (b *Buffer) MoveFrom(src *Buffer) {
	if b == src || src == nil {
		return
	}

	b.Deallocate()

	b.region = src.region
	b.data = src.data
	b.capacity = src.capacity
	b.mask = src.mask
	src.region = nil
	src.data = nil
	src.capacity = 0
	src.mask = 0

	b.writePos.Store(src.writePos.Swap(0))
	b.readPos.Store(src.readPos.Swap(0))
}
