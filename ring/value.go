// File: ring/value.go
// Package ring: typed single-value convenience operations.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Values move through the ring as their raw in-memory representation, the
// way fixed-size records do in the byte-level API. T must be a fixed-size
// plain-data type (no pointers, slices, maps or strings): the bytes are
// only meaningful inside the producing process.

package ring

import "unsafe"

// PutValue writes a single value of type T. All-or-nothing: returns false
// without writing when free space is insufficient. Producer only.
func PutValue[T any](b *Buffer, v T) bool {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return true
	}
	p := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	return b.WriteItems(p, size, false) == 1
}

// TakeValue reads a single value of type T, advancing the read position.
// Returns the zero value and false when insufficient data is buffered.
// Consumer only.
func TakeValue[T any](b *Buffer) (T, bool) {
	var v T
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return v, true
	}
	p := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	if b.ReadItems(p, size, false) != 1 {
		var zero T
		return zero, false
	}
	return v, true
}

// PeekValue reads a single value of type T without advancing the read
// position. Consumer only.
func PeekValue[T any](b *Buffer) (T, bool) {
	var v T
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		return v, true
	}
	p := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	if !b.Peek(p) {
		var zero T
		return zero, false
	}
	return v, true
}
