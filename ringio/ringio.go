// File: ringio/ringio.go
// Package ringio bridges a ring.Buffer to the io.Reader/io.Writer world.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The ring core never blocks; the retry loop the core leaves to callers
// lives here instead. Writer is the producer half and Reader the consumer
// half of the SPSC contract, so the close flags need no lock: each flag has
// a single writer and the error slot is published before it.

package ringio

import (
	"io"
	"runtime"
	"sync/atomic"

	"github.com/momentics/spsc-ring/ring"
)

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.WriterTo   = (*Reader)(nil)
	_ io.Closer     = (*Reader)(nil)
	_ io.Writer     = (*Writer)(nil)
	_ io.ReaderFrom = (*Writer)(nil)
	_ io.Closer     = (*Writer)(nil)
)

type pipe struct {
	rb *ring.Buffer

	writeErr atomic.Pointer[error]
	readErr  atomic.Pointer[error]

	writerDone atomic.Bool
	readerDone atomic.Bool
}

func (p *pipe) writerErr() error {
	if e := p.writeErr.Load(); e != nil {
		return *e
	}
	return io.EOF
}

func (p *pipe) readerErr() error {
	if e := p.readErr.Load(); e != nil {
		return *e
	}
	return io.ErrClosedPipe
}

// New wraps an allocated ring in reader and writer halves. The caller must
// not use the ring directly afterwards: the halves own the producer and
// consumer sides.
func New(rb *ring.Buffer) (*Reader, *Writer) {
	p := &pipe{rb: rb}
	return &Reader{p: p}, &Writer{p: p}
}

// Pipe allocates a ring of at least minCapacity bytes and returns its
// reader and writer halves.
func Pipe(minCapacity uint64) (*Reader, *Writer, error) {
	rb, err := ring.New(minCapacity)
	if err != nil {
		return nil, nil, err
	}
	r, w := New(rb)
	return r, w, nil
}

// Reader is the consumer half.
type Reader struct {
	p *pipe
}

// Read copies buffered bytes into b, polling while the ring is empty.
// Once the writer half is closed and the ring drained, Read returns io.EOF
// or the error passed to the writer's CloseWithError.
func (r *Reader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	for {
		if n := r.p.rb.Read(b); n > 0 {
			return n, nil
		}
		if r.p.readerDone.Load() {
			return 0, io.ErrClosedPipe
		}
		if r.p.writerDone.Load() {
			// Re-check: the writer may have published between the empty
			// read and the flag load.
			if n := r.p.rb.Read(b); n > 0 {
				return n, nil
			}
			return 0, r.p.writerErr()
		}
		runtime.Gosched()
	}
}

// WriteTo drains the ring into w using the read vector, committing only
// what w accepted. Returns when the writer half closes and the ring is
// empty.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		first, _ := r.p.rb.ReadVector()
		if len(first) > 0 {
			n, err := w.Write(first)
			if n > 0 {
				r.p.rb.CommitRead(uint64(n))
				total += int64(n)
			}
			if err != nil {
				return total, err
			}
			if n < len(first) {
				return total, io.ErrShortWrite
			}
			continue
		}
		if r.p.readerDone.Load() {
			return total, io.ErrClosedPipe
		}
		if r.p.writerDone.Load() {
			if first, _ := r.p.rb.ReadVector(); len(first) > 0 {
				continue
			}
			if e := r.p.writeErr.Load(); e != nil {
				return total, *e
			}
			return total, nil
		}
		runtime.Gosched()
	}
}

// Close closes the reader half. Subsequent writes fail with
// io.ErrClosedPipe.
func (r *Reader) Close() error {
	return r.CloseWithError(nil)
}

// CloseWithError closes the reader half; err is returned to future writes.
func (r *Reader) CloseWithError(err error) error {
	if err != nil {
		r.p.readErr.CompareAndSwap(nil, &err)
	}
	r.p.readerDone.Store(true)
	return nil
}

// Writer is the producer half.
type Writer struct {
	p *pipe
}

// Write copies b into the ring, polling while the ring is full. Returns
// io.ErrClosedPipe (or the reader's CloseWithError error) once either half
// is closed.
func (w *Writer) Write(b []byte) (int, error) {
	var n int
	for len(b) > 0 {
		if w.p.readerDone.Load() {
			return n, w.p.readerErr()
		}
		if w.p.writerDone.Load() {
			return n, io.ErrClosedPipe
		}
		if wrote := w.p.rb.Write(b); wrote > 0 {
			n += wrote
			b = b[wrote:]
			continue
		}
		runtime.Gosched()
	}
	return n, nil
}

// ReadFrom fills the ring directly from src through the write vector,
// avoiding a staging copy. Returns when src reaches EOF.
func (w *Writer) ReadFrom(src io.Reader) (int64, error) {
	var total int64
	for {
		if w.p.readerDone.Load() {
			return total, w.p.readerErr()
		}
		if w.p.writerDone.Load() {
			return total, io.ErrClosedPipe
		}
		first, _ := w.p.rb.WriteVector()
		if len(first) == 0 {
			runtime.Gosched()
			continue
		}
		n, err := src.Read(first)
		if n > 0 {
			w.p.rb.CommitWrite(uint64(n))
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Close closes the writer half. The reader drains what remains, then sees
// io.EOF.
func (w *Writer) Close() error {
	return w.CloseWithError(nil)
}

// CloseWithError closes the writer half; err is returned to the reader
// instead of io.EOF once the ring is drained.
func (w *Writer) CloseWithError(err error) error {
	if err != nil {
		w.p.writeErr.CompareAndSwap(nil, &err)
	}
	w.p.writerDone.Store(true)
	return nil
}
