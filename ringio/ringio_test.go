// File: ringio/ringio_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	r, w, err := Pipe(64)
	if err != nil {
		t.Fatal(err)
	}

	payload := bytes.Repeat([]byte("spsc"), 4096) // much larger than the ring

	errc := make(chan error, 1)
	go func() {
		if _, err := w.Write(payload); err != nil {
			errc <- err
			return
		}
		errc <- w.Close()
	}()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("writer: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("read %d bytes, want %d, contents differ", len(got), len(payload))
	}
}

func TestReadAfterWriterCloseDrainsThenEOF(t *testing.T) {
	r, w, err := Pipe(16)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.Write([]byte("tail")); err != nil {
		t.Fatal(err)
	}
	w.Close()

	buf := make([]byte, 16)
	n, err := r.Read(buf)
	if err != nil || string(buf[:n]) != "tail" {
		t.Fatalf("Read = (%d, %v)", n, err)
	}
	if _, err := r.Read(buf); err != io.EOF {
		t.Fatalf("Read after drain: err = %v, want io.EOF", err)
	}
}

func TestWriterCloseWithErrorPropagates(t *testing.T) {
	r, w, err := Pipe(16)
	if err != nil {
		t.Fatal(err)
	}

	sentinel := errors.New("upstream failed")
	w.CloseWithError(sentinel)

	if _, err := r.Read(make([]byte, 4)); !errors.Is(err, sentinel) {
		t.Fatalf("Read err = %v, want %v", err, sentinel)
	}
}

func TestReaderClosePropagatesToWriter(t *testing.T) {
	r, w, err := Pipe(16)
	if err != nil {
		t.Fatal(err)
	}

	r.Close()
	if _, err := w.Write([]byte("x")); err != io.ErrClosedPipe {
		t.Fatalf("Write err = %v, want io.ErrClosedPipe", err)
	}

	sentinel := errors.New("consumer gone")
	r2, w2, _ := Pipe(16)
	r2.CloseWithError(sentinel)
	if _, err := w2.Write([]byte("x")); !errors.Is(err, sentinel) {
		t.Fatalf("Write err = %v, want %v", err, sentinel)
	}
}

func TestWriteToAndReadFrom(t *testing.T) {
	r, w, err := Pipe(32)
	if err != nil {
		t.Fatal(err)
	}

	const text = "the vectored path avoids the staging copy entirely"

	errc := make(chan error, 1)
	go func() {
		if _, err := w.ReadFrom(strings.NewReader(text)); err != nil {
			errc <- err
			return
		}
		errc <- w.Close()
	}()

	var sink bytes.Buffer
	n, err := r.WriteTo(&sink)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if n != int64(len(text)) || sink.String() != text {
		t.Fatalf("WriteTo moved %d bytes, got %q", n, sink.String())
	}
}

func TestPipeRejectsBadCapacity(t *testing.T) {
	if _, _, err := Pipe(1); err == nil {
		t.Fatal("Pipe(1) succeeded")
	}
}
