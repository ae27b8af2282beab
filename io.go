package textio

import (
	"errors"
	"fmt"
	"io"

	"lesiw.io/prefix"
)

// Trace receives one line per device-level event: open, flush, close.
// It is discarded by default.
var Trace io.Writer = io.Discard

func tracef(format string, a ...any) {
	if Trace == io.Discard {
		return
	}
	w := prefix.NewWriter("textio: ", Trace)
	_, _ = fmt.Fprintf(w, format+"\n", a...)
}

// ErrClosed is returned by operations on a closed handle, and by reads
// from a handle whose contents have already been read.
var ErrClosed = errors.New("textio: handle is closed")

// ErrNotReadable is returned when reading from a handle opened for
// writing only.
var ErrNotReadable = errors.New("textio: handle is not readable")

// ErrNotWritable is returned when writing to a handle opened for
// reading only.
var ErrNotWritable = errors.New("textio: handle is not writable")
