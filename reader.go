package textio

import (
	"io"
	"sync"
)

type reader struct {
	sync.Mutex
	h      *Handle
	buf    []byte
	err    error
	closed bool
}

func (r *reader) Read(p []byte) (int, error) {
	r.Lock()
	defer r.Unlock()
	if r.closed {
		return 0, ErrClosed
	}
	for len(r.buf) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		var s string
		s, r.err = r.h.GetChunk()
		r.buf = append(r.buf[:0], s...)
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

func (r *reader) Close() error {
	r.Lock()
	if r.closed {
		r.Unlock()
		return nil
	}
	r.closed = true
	r.Unlock()

	return r.h.Close()
}

// NewReader returns a reader of the UTF-8 encoded text of h.
//
// Line terminators arrive normalized to '\n'. Close closes h.
func NewReader(h *Handle) io.ReadCloser { return &reader{h: h} }
