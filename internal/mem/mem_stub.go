// File: internal/mem/mem_stub.go
//go:build !linux && !windows

// Package mem: heap allocation for platforms without a page-backed path.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

func platformAlloc(size int) *Region {
	return &Region{data: make([]byte, size)}
}

func platformRelease(data []byte) {}
