// File: ring/tx_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"bytes"
	"testing"
)

func TestWriteTxHeterogeneousValues(t *testing.T) {
	rb, err := New(64)
	if err != nil {
		t.Fatal(err)
	}
	defer rb.Deallocate()

	const total = 1 + 4 + 8
	tx, ok := rb.BeginWrite(total)
	if !ok {
		t.Fatal("BeginWrite failed with free space")
	}
	if !Put(tx, byte(0xAB)) || !Put(tx, uint32(1234)) || !Put(tx, uint64(567890)) {
		t.Fatal("Put rejected a value within the reserved total")
	}
	if tx.Staged() != total {
		t.Fatalf("staged = %d, want %d", tx.Staged(), total)
	}
	tx.Commit()

	if rb.AvailableBytes() != total {
		t.Fatalf("available = %d, want %d", rb.AvailableBytes(), total)
	}

	rtx, ok := rb.BeginRead(total)
	if !ok {
		t.Fatal("BeginRead failed with buffered data")
	}
	b, _ := Take[byte](rtx)
	u, _ := Take[uint32](rtx)
	v, _ := Take[uint64](rtx)
	if b != 0xAB || u != 1234 || v != 567890 {
		t.Errorf("read (%#x, %d, %d)", b, u, v)
	}
	rtx.Commit()

	if !rb.IsEmpty() {
		t.Error("ring not empty after committed read transaction")
	}
}

func TestBeginWriteAllOrNothing(t *testing.T) {
	rb, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	defer rb.Deallocate()

	rb.Write(make([]byte, 5))

	// 3 bytes free: a 4-byte transaction must be refused outright.
	if _, ok := rb.BeginWrite(4); ok {
		t.Error("BeginWrite reserved more than the free space")
	}
	if rb.AvailableBytes() != 5 {
		t.Errorf("failed BeginWrite changed occupancy: %d", rb.AvailableBytes())
	}

	if _, ok := rb.BeginWrite(3); !ok {
		t.Error("BeginWrite refused a fitting total")
	}
}

func TestUncommittedReadTxIsAPeek(t *testing.T) {
	rb, err := New(32)
	if err != nil {
		t.Fatal(err)
	}
	defer rb.Deallocate()

	PutValue(rb, uint64(99))

	tx, ok := rb.BeginRead(8)
	if !ok {
		t.Fatal("BeginRead failed")
	}
	v, _ := Take[uint64](tx)
	if v != 99 {
		t.Fatalf("Take = %d", v)
	}
	// No Commit: the value must still be buffered.
	if rb.AvailableBytes() != 8 {
		t.Errorf("uncommitted read transaction advanced the ring: %d", rb.AvailableBytes())
	}
	again, ok := TakeValue[uint64](rb)
	if !ok || again != 99 {
		t.Errorf("re-read = (%d, %v)", again, ok)
	}
}

func TestTxValueStraddlesWrap(t *testing.T) {
	rb, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	defer rb.Deallocate()

	// Park the write index at 13 so an 8-byte value splits 3/5.
	rb.Write(make([]byte, 13))
	rb.Skip(1, 13)

	tx, ok := rb.BeginWrite(8)
	if !ok {
		t.Fatal("BeginWrite failed")
	}
	if len(tx.first) >= 8 {
		t.Fatalf("test setup: first segment %d bytes, expected a split", len(tx.first))
	}
	if !Put(tx, uint64(0xDEADBEEFCAFE)) {
		t.Fatal("Put failed")
	}
	tx.Commit()

	got, ok := TakeValue[uint64](rb)
	if !ok || got != 0xDEADBEEFCAFE {
		t.Errorf("straddled value = (%#x, %v)", got, ok)
	}
}

func TestTxPutBytesClampsToTotal(t *testing.T) {
	rb, err := New(32)
	if err != nil {
		t.Fatal(err)
	}
	defer rb.Deallocate()

	tx, ok := rb.BeginWrite(4)
	if !ok {
		t.Fatal("BeginWrite failed")
	}
	if n := tx.PutBytes([]byte{1, 2, 3, 4, 5, 6}); n != 4 {
		t.Errorf("PutBytes staged %d bytes past the reserved total", n)
	}
	tx.Commit()

	got := make([]byte, 4)
	rb.Read(got)
	if !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("committed bytes = %v", got)
	}
}
