// File: ring/concurrent_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSC stress: one producer, one consumer, a monotonic sequence, and no
// tolerance for gaps, duplicates or reordering.

package ring

import (
	"encoding/binary"
	"runtime"
	"testing"
)

func TestSPSCStressSequentialValues(t *testing.T) {
	const iterations = 1_000_000
	n := iterations
	if testing.Short() {
		n = 50_000
	}

	rb, err := New(1024)
	if err != nil {
		t.Fatal(err)
	}
	defer rb.Deallocate()

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 4)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(buf, uint32(i))
			for rb.WriteItems(buf, 4, false) != 1 {
				runtime.Gosched()
			}
		}
	}()

	buf := make([]byte, 4)
	for i := 0; i < n; i++ {
		for rb.ReadItems(buf, 4, false) != 1 {
			runtime.Gosched()
		}
		if got := binary.LittleEndian.Uint32(buf); got != uint32(i) {
			t.Fatalf("value %d: got %d", i, got)
		}
	}

	<-done
	if !rb.IsEmpty() {
		t.Errorf("ring not empty after stress: %d bytes", rb.AvailableBytes())
	}
}

func TestSPSCStressVectored(t *testing.T) {
	const totalBytes = 1 << 20

	rb, err := New(4096)
	if err != nil {
		t.Fatal(err)
	}
	defer rb.Deallocate()

	done := make(chan struct{})
	go func() {
		defer close(done)
		var written int
		var v byte
		for written < totalBytes {
			first, _ := rb.WriteVector()
			if len(first) == 0 {
				runtime.Gosched()
				continue
			}
			if remaining := totalBytes - written; len(first) > remaining {
				first = first[:remaining]
			}
			for i := range first {
				first[i] = v
				v++
			}
			rb.CommitWrite(uint64(len(first)))
			written += len(first)
		}
	}()

	var read int
	var want byte
	for read < totalBytes {
		first, _ := rb.ReadVector()
		if len(first) == 0 {
			runtime.Gosched()
			continue
		}
		if remaining := totalBytes - read; len(first) > remaining {
			first = first[:remaining]
		}
		for i := range first {
			if first[i] != want {
				t.Fatalf("byte %d: got %d, want %d", read+i, first[i], want)
			}
			want++
		}
		rb.CommitRead(uint64(len(first)))
		read += len(first)
	}

	<-done
	if !rb.IsEmpty() {
		t.Errorf("ring not empty after vectored stress: %d bytes", rb.AvailableBytes())
	}
}
