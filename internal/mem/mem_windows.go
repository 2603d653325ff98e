// File: internal/mem/mem_windows.go
//go:build windows

// Package mem: Windows-specific page-backed allocation.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func platformAlloc(size int) *Region {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT,
		windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return &Region{data: make([]byte, size)}
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &Region{data: data, mapped: true}
}

func platformRelease(data []byte) {
	_ = windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}
