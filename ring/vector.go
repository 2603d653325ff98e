// File: ring/vector.go
// Package ring: zero-copy vectored access.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The two-call protocol (vector, then commit) lets producers fill and
// consumers drain ring memory in place, with no staging copy. A vector has
// two segments only when the region wraps past the end of the allocation;
// either segment may be empty and callers must check both.

package ring

// WriteVector returns the currently writable free region as up to two
// in-place segments of the backing array, first segment first. The producer
// fills some prefix of the combined region and publishes it with
// CommitWrite. Producer only.
func (b *Buffer) WriteVector() (first, second []byte) {
	if b.capacity == 0 {
		return nil, nil
	}

	writePos := b.writePos.Load()
	readPos := b.readPos.Load()

	bytesFree := b.capacity - (writePos - readPos)
	if bytesFree == 0 {
		return nil, nil
	}

	idx := writePos & b.mask
	if tail := b.capacity - idx; bytesFree <= tail {
		return b.data[idx : idx+bytesFree], nil
	} else {
		return b.data[idx : idx+tail], b.data[:bytesFree-tail]
	}
}

// CommitWrite publishes n bytes previously written into the write vector,
// advancing the write position. Committing more than the free space of the
// matching WriteVector call is undefined; builds with the ringdebug tag
// panic on it. Producer only.
func (b *Buffer) CommitWrite(n uint64) {
	if b.capacity == 0 {
		return
	}
	b.checkCommitWrite(n)
	writePos := b.writePos.Load()
	b.writePos.Store(writePos + n)
}

// ReadVector returns the currently readable region as up to two in-place
// segments, first segment first. The consumer processes some prefix of the
// combined region and releases it with CommitRead; committing less than the
// full region is allowed. Consumer only.
func (b *Buffer) ReadVector() (first, second []byte) {
	if b.capacity == 0 {
		return nil, nil
	}

	writePos := b.writePos.Load()
	readPos := b.readPos.Load()

	bytesUsed := writePos - readPos
	if bytesUsed == 0 {
		return nil, nil
	}

	idx := readPos & b.mask
	if tail := b.capacity - idx; bytesUsed <= tail {
		return b.data[idx : idx+bytesUsed], nil
	} else {
		return b.data[idx : idx+tail], b.data[:bytesUsed-tail]
	}
}

// CommitRead consumes n bytes previously read from the read vector,
// advancing the read position. Committing more than the data of the matching
// ReadVector call is undefined; builds with the ringdebug tag panic on it.
// Consumer only.
func (b *Buffer) CommitRead(n uint64) {
	if b.capacity == 0 {
		return
	}
	b.checkCommitRead(n)
	readPos := b.readPos.Load()
	b.readPos.Store(readPos + n)
}
