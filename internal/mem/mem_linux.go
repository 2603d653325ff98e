// File: internal/mem/mem_linux.go
//go:build linux

// Package mem: Linux-specific page-backed allocation.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Regions are allocated via anonymous private mmap. Page alignment implies
// cache-line alignment of the first byte. Fallback to Go heap if mmap fails.

package mem

import (
	"golang.org/x/sys/unix"
)

func platformAlloc(size int) *Region {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return &Region{data: make([]byte, size)}
	}
	return &Region{data: data[:size], mapped: true}
}

func platformRelease(data []byte) {
	_ = unix.Munmap(data)
}
