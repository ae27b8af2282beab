package textio

import (
	"io"
	"sync"
	"unicode/utf8"
)

type writer struct {
	sync.Mutex
	h       *Handle
	partial []byte
	closed  bool
}

func (w *writer) Write(p []byte) (int, error) {
	w.Lock()
	defer w.Unlock()
	if w.closed {
		return 0, ErrClosed
	}
	b := append(w.partial, p...)
	cut := incomplete(b)
	if err := w.h.PutStr(string(b[:cut])); err != nil {
		return 0, err
	}
	w.partial = append([]byte(nil), b[cut:]...)
	return len(p), nil
}

func (w *writer) Close() error {
	w.Lock()
	if w.closed {
		w.Unlock()
		return nil
	}
	w.closed = true
	rest := w.partial
	w.partial = nil
	w.Unlock()

	var err error
	if len(rest) > 0 {
		err = w.h.PutStr(string(rest))
	}
	if cerr := w.h.Close(); err == nil {
		err = cerr
	}
	return err
}

// incomplete returns the offset of an incomplete UTF-8 sequence at the
// end of b, or len(b) if b ends on a character boundary.
func incomplete(b []byte) int {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return len(b) - i
			}
			break
		}
	}
	return len(b)
}

// NewWriter returns a writer that puts UTF-8 encoded text on h.
//
// A multi-byte character split between two writes is held back until it
// is complete. Every '\n' is expanded according to the newline convention
// of h. Close writes anything held back and closes h.
func NewWriter(h *Handle) io.WriteCloser { return &writer{h: h} }
