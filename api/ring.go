// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte-level SPSC ring buffer contract.

package api

// ByteRing is the byte-oriented contract of a single-producer single-consumer
// ring buffer.
//
// Exactly one goroutine may act as the producer and exactly one as the
// consumer. Producer-only methods: Write, WriteItems, WriteVector,
// CommitWrite, FreeSpace, IsFull. Consumer-only methods: Read, ReadItems,
// Peek, Skip, Drain, ReadVector, CommitRead, AvailableBytes, IsEmpty.
// Capacity is safe from either side.
type ByteRing interface {
	// Capacity returns the fixed capacity in bytes (0 when unallocated).
	Capacity() uint64

	// FreeSpace returns the bytes available for writing.
	// Accurate only when called from the producer.
	FreeSpace() uint64

	// AvailableBytes returns the bytes available for reading.
	// Accurate only when called from the consumer.
	AvailableBytes() uint64

	// IsFull reports whether the ring is full. Producer-side accurate.
	IsFull() bool

	// IsEmpty reports whether the ring is empty. Consumer-side accurate.
	IsEmpty() bool

	// Write copies as many bytes of p as fit and returns the count.
	Write(p []byte) int

	// WriteItems copies whole items of itemSize bytes from p.
	// When allowPartial is false, either every item fits or nothing is
	// written. Returns the number of items written.
	WriteItems(p []byte, itemSize int, allowPartial bool) int

	// Read copies up to len(p) bytes into p and returns the count.
	Read(p []byte) int

	// ReadItems copies whole items of itemSize bytes into p, with the same
	// all-or-nothing policy as WriteItems. Returns the number of items read.
	ReadItems(p []byte, itemSize int, allowPartial bool) int

	// Peek copies exactly len(p) bytes without consuming them.
	// Returns false (copying nothing) if fewer bytes are available.
	Peek(p []byte) bool

	// Skip discards up to itemCount items of itemSize bytes and returns the
	// number of items discarded.
	Skip(itemSize, itemCount int) int

	// Drain discards everything currently readable and returns the byte count.
	Drain() uint64

	// WriteVector returns the writable region as up to two in-place segments.
	WriteVector() (first, second []byte)

	// CommitWrite publishes n bytes previously written into the write vector.
	CommitWrite(n uint64)

	// ReadVector returns the readable region as up to two in-place segments.
	ReadVector() (first, second []byte)

	// CommitRead consumes n bytes previously read from the read vector.
	CommitRead(n uint64)
}
