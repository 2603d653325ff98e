// File: internal/mem/mem.go
// Package mem provides aligned backing storage for ring buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Regions are page-backed where the platform allows it (mmap on Linux,
// VirtualAlloc on Windows), which guarantees cache-line alignment of the
// first byte. When the platform path is unavailable the region falls back
// to the Go heap.

package mem

import (
	"math"

	"github.com/momentics/spsc-ring/api"
)

// Region is a single owned allocation. Not safe for concurrent Release.
type Region struct {
	data   []byte
	mapped bool
}

// Bytes returns the full backing slice of the region.
func (r *Region) Bytes() []byte { return r.data }

// Mapped reports whether the region is page-backed rather than heap-backed.
func (r *Region) Mapped() bool { return r.mapped }

// Release returns the region's memory to the OS or the heap. Idempotent.
func (r *Region) Release() {
	if r.data == nil {
		return
	}
	if r.mapped {
		platformRelease(r.data)
	}
	r.data = nil
	r.mapped = false
}

// Alloc allocates a region of exactly size bytes.
func Alloc(size uint64) (*Region, error) {
	if size == 0 || size > math.MaxInt {
		return nil, api.NewError(api.ErrCodeAllocationFailed, "region size not representable").
			WithContext("size", size)
	}
	return platformAlloc(int(size)), nil
}
