// File: ring/tx.go
// Package ring: multi-value all-or-nothing transactions.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A transaction reserves a byte total against the current vector up front,
// stages heterogeneous values with a cursor that walks the first segment and
// spills into the second, and publishes everything with a single commit.
// Either all values arrive or none do: Begin fails when the combined vector
// cannot hold the total, and an uncommitted transaction leaves the ring
// untouched.

package ring

import "unsafe"

// WriteTx is a staged multi-value write. Producer only; a Buffer supports at
// most one outstanding WriteTx.
type WriteTx struct {
	b      *Buffer
	first  []byte
	second []byte
	total  uint64
	cursor uint64
}

// BeginWrite starts a write transaction for exactly total bytes.
// Returns ok=false when the ring cannot currently hold total bytes.
func (b *Buffer) BeginWrite(total uint64) (*WriteTx, bool) {
	if total == 0 || b.capacity == 0 {
		return nil, false
	}
	first, second := b.WriteVector()
	if uint64(len(first))+uint64(len(second)) < total {
		return nil, false
	}
	return &WriteTx{b: b, first: first, second: second, total: total}, true
}

// PutBytes stages p at the transaction cursor, clamped to the reserved
// total. Returns the number of bytes staged.
func (tx *WriteTx) PutBytes(p []byte) int {
	n := uint64(len(p))
	if remaining := tx.total - tx.cursor; n > remaining {
		n = remaining
	}
	copySplit(tx.first, tx.second, tx.cursor, p[:n])
	tx.cursor += n
	return int(n)
}

// Put stages a single value of type T at the transaction cursor.
// Returns false when the value does not fit in the reserved total.
func Put[T any](tx *WriteTx, v T) bool {
	size := uint64(unsafe.Sizeof(v))
	if size == 0 {
		return true
	}
	if tx.cursor+size > tx.total {
		return false
	}
	p := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	tx.PutBytes(p)
	return true
}

// Staged returns the number of bytes staged so far.
func (tx *WriteTx) Staged() uint64 { return tx.cursor }

// Commit publishes the staged bytes. The transaction must not be used
// afterwards.
func (tx *WriteTx) Commit() {
	tx.b.CommitWrite(tx.cursor)
}

// ReadTx is a staged multi-value read. Consumer only; a Buffer supports at
// most one outstanding ReadTx. A ReadTx that is never committed behaves as a
// multi-value peek.
type ReadTx struct {
	b      *Buffer
	first  []byte
	second []byte
	total  uint64
	cursor uint64
}

// BeginRead starts a read transaction for exactly total bytes.
// Returns ok=false when fewer than total bytes are buffered.
func (b *Buffer) BeginRead(total uint64) (*ReadTx, bool) {
	if total == 0 || b.capacity == 0 {
		return nil, false
	}
	first, second := b.ReadVector()
	if uint64(len(first))+uint64(len(second)) < total {
		return nil, false
	}
	return &ReadTx{b: b, first: first, second: second, total: total}, true
}

// TakeBytes copies staged bytes at the cursor into p, clamped to the
// reserved total. Returns the number of bytes copied.
func (tx *ReadTx) TakeBytes(p []byte) int {
	n := uint64(len(p))
	if remaining := tx.total - tx.cursor; n > remaining {
		n = remaining
	}
	copyFromSplit(p[:n], tx.first, tx.second, tx.cursor)
	tx.cursor += n
	return int(n)
}

// Take copies a single value of type T at the transaction cursor.
func Take[T any](tx *ReadTx) (T, bool) {
	var v T
	size := uint64(unsafe.Sizeof(v))
	if size == 0 {
		return v, true
	}
	if tx.cursor+size > tx.total {
		var zero T
		return zero, false
	}
	p := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	tx.TakeBytes(p)
	return v, true
}

// Taken returns the number of bytes consumed from the vector so far.
func (tx *ReadTx) Taken() uint64 { return tx.cursor }

// Commit releases the taken bytes from the ring. Skipping Commit leaves the
// read position where it was.
func (tx *ReadTx) Commit() {
	tx.b.CommitRead(tx.cursor)
}

// copySplit copies src into the logical region formed by first then second,
// starting at offset cursor. The caller guarantees the copy fits.
func copySplit(first, second []byte, cursor uint64, src []byte) {
	frontLen := uint64(len(first))
	switch {
	case cursor >= frontLen:
		copy(second[cursor-frontLen:], src)
	case cursor+uint64(len(src)) <= frontLen:
		copy(first[cursor:], src)
	default:
		toFront := frontLen - cursor
		copy(first[cursor:], src[:toFront])
		copy(second, src[toFront:])
	}
}

// copyFromSplit copies from the logical region formed by first then second,
// starting at offset cursor, into dst. The caller guarantees the copy fits.
func copyFromSplit(dst []byte, first, second []byte, cursor uint64) {
	frontLen := uint64(len(first))
	switch {
	case cursor >= frontLen:
		copy(dst, second[cursor-frontLen:])
	case cursor+uint64(len(dst)) <= frontLen:
		copy(dst, first[cursor:])
	default:
		fromFront := frontLen - cursor
		copy(dst[:fromFront], first[cursor:])
		copy(dst[fromFront:], second)
	}
}
