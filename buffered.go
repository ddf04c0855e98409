package limitio

import (
	"bufio"
	"io"
)

// BufferedReader is the interface of readers with an internal read-ahead
// buffer, such as *bufio.Reader.
type BufferedReader interface {
	io.Reader
	// Peek returns the next n bytes without consuming them.
	Peek(n int) ([]byte, error)
	// Discard skips the next n bytes, reading more if needed.
	Discard(n int) (discarded int, err error)
	// Buffered returns the number of bytes already read into the buffer.
	Buffered() int
}

var (
	_ BufferedReader = (*bufio.Reader)(nil)
	_ BufferedReader = (*LimitedBufferedReader)(nil)
)

// LimitedBufferedReader is a LimitedReader over a source with a read-ahead
// buffer. Besides capping Read it caps look-ahead: FillBuffer never reveals
// bytes beyond the limit and Consume never advances the source past it,
// even though the source's buffer may hold more. The view satisfies
// BufferedReader itself, so limited views nest.
type LimitedBufferedReader struct {
	LimitedReader
	buf BufferedReader
}

// NewLimitedBufferedReader wraps src into a buffered view that yields at
// most limit bytes. Like NewLimitedReader it assumes exclusive access to
// src while the view is in use.
func NewLimitedBufferedReader(src BufferedReader, limit uint64) *LimitedBufferedReader {
	return &LimitedBufferedReader{
		LimitedReader: LimitedReader{src: src, remaining: limit},
		buf:           src,
	}
}

// FillBuffer returns the bytes sitting in the source's buffer, reading
// from the source once if the buffer is empty, truncated to the remaining
// limit. The slice is only valid until the next read, consume or discard
// on the view or the source. Once the limit is exhausted it returns io.EOF
// without calling the source.
func (r *LimitedBufferedReader) FillBuffer() ([]byte, error) {
	if r.remaining == 0 {
		return nil, io.EOF
	}
	if r.buf.Buffered() == 0 {
		// Peek fills the buffer without consuming anything
		if _, err := r.buf.Peek(1); err != nil {
			return nil, err
		}
	}
	buffered, err := r.buf.Peek(r.buf.Buffered())
	if err != nil {
		return nil, err
	}
	if uint64(len(buffered)) > r.remaining {
		buffered = buffered[:r.remaining]
	}
	return buffered, nil
}

// Consume drops n bytes from the front of the buffered data and charges
// them against the limit. Amounts beyond the remaining limit are clamped,
// so a caller can neither underflow the limit nor advance the source past
// its window. n must not exceed the length returned by the last
// FillBuffer; n <= 0 is a no-op.
func (r *LimitedBufferedReader) Consume(n int) {
	if n <= 0 {
		return
	}
	if uint64(n) > r.remaining {
		n = int(r.remaining)
	}
	r.remaining -= uint64(n)
	_, _ = r.buf.Discard(n)
}

// Peek returns the next n bytes without consuming them. A request reaching
// beyond the remaining limit returns the permitted prefix together with
// io.EOF, the same way bufio reports a short peek at end of stream.
func (r *LimitedBufferedReader) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, bufio.ErrNegativeCount
	}
	if uint64(n) <= r.remaining {
		return r.buf.Peek(n)
	}
	peeked, err := r.buf.Peek(int(r.remaining))
	if err == nil {
		err = io.EOF
	}
	return peeked, err
}

// Discard skips the next n bytes, reading from the source as needed, and
// charges them against the limit. Skipping is cut short at the limit with
// io.EOF.
func (r *LimitedBufferedReader) Discard(n int) (int, error) {
	if n < 0 {
		return 0, bufio.ErrNegativeCount
	}
	capped := n
	if uint64(capped) > r.remaining {
		capped = int(r.remaining)
	}
	discarded, err := r.buf.Discard(capped)
	if uint64(discarded) > r.remaining {
		panic("limitio: source discarded more bytes than requested")
	}
	r.remaining -= uint64(discarded)
	if err == nil && capped < n {
		err = io.EOF
	}
	return discarded, err
}

// Buffered returns the number of bytes the view still lets the caller read
// from the source's buffer without further I/O.
func (r *LimitedBufferedReader) Buffered() int {
	buffered := r.buf.Buffered()
	if uint64(buffered) > r.remaining {
		buffered = int(r.remaining)
	}
	return buffered
}
