// Package limitio provides byte-limited views over shared readers: a
// non-owning counterpart of io.LimitReader that leaves the underlying
// stream usable by its owner after the view is dropped.
package limitio

import (
	"io"
)

// LimitedReader reads from a shared io.Reader but returns io.EOF after a
// fixed number of bytes. Unlike io.LimitReader it does not take the reader
// for itself: the caller keeps its own reference and continues reading from
// where the view stopped once the view is no longer used. The limit can be
// replaced at any time, so one view can serve several bounded segments of
// the same stream.
//
// The view assumes exclusive access to src while it is in use. Reading from
// src through another path at the same time leaves the limit accounting
// meaningless.
type LimitedReader struct {
	src       io.Reader
	remaining uint64
}

// NewLimitedReader wraps src into a view that yields at most limit bytes.
// No I/O happens until the first Read.
func NewLimitedReader(src io.Reader, limit uint64) *LimitedReader {
	return &LimitedReader{
		src:       src,
		remaining: limit,
	}
}

// SetLimit replaces the number of bytes still allowed through the view.
// It never touches the source, and may reopen an exhausted view.
func (r *LimitedReader) SetLimit(limit uint64) {
	r.remaining = limit
}

// Limit returns the number of bytes still allowed through the view.
func (r *LimitedReader) Limit() uint64 {
	return r.remaining
}

// Read reads up to min(len(p), Limit()) bytes into p. Once the limit is
// exhausted it returns io.EOF without calling the source, which may
// otherwise block waiting for data nobody wants. Errors from the source
// are returned unchanged; bytes delivered alongside an error are still
// charged against the limit.
func (r *LimitedReader) Read(p []byte) (int, error) {
	if r.remaining == 0 {
		return 0, io.EOF
	}
	if uint64(len(p)) > r.remaining {
		p = p[:r.remaining]
	}
	n, err := r.src.Read(p)
	if uint64(n) > r.remaining {
		panic("limitio: source returned more bytes than requested")
	}
	r.remaining -= uint64(n)
	return n, err
}

// Limit wraps src into a view yielding at most limit bytes, without taking
// the source away from the caller. Sources with their own read-ahead buffer
// get a *LimitedBufferedReader, everything else a *LimitedReader.
func Limit(src io.Reader, limit uint64) io.Reader {
	if buffered, ok := src.(BufferedReader); ok {
		return NewLimitedBufferedReader(buffered, limit)
	}
	return NewLimitedReader(src, limit)
}
