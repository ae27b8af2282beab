package textio

import (
	"fmt"
	"io"
)

// A CharBuffer is a fixed-capacity window of decoded characters.
//
// Unread characters live in [r, w). Characters before r have been
// consumed; slots from w onwards are free.
// A CharBuffer is owned by one component at a time and is never
// shared between goroutines.
type CharBuffer struct {
	buf  []rune
	r, w int
}

// NewCharBuffer allocates an empty buffer holding capacity characters.
func NewCharBuffer(capacity int) *CharBuffer {
	if capacity < 1 {
		panic(fmt.Sprintf("textio: bad buffer capacity %d", capacity))
	}
	return &CharBuffer{buf: make([]rune, capacity)}
}

// Cap returns the capacity of b.
func (b *CharBuffer) Cap() int { return len(b.buf) }

// Len returns the number of unread characters in b.
func (b *CharBuffer) Len() int { return b.w - b.r }

// Empty reports whether b has no unread characters.
func (b *CharBuffer) Empty() bool { return b.r == b.w }

// Free returns the number of slots after the write cursor.
func (b *CharBuffer) Free() int { return len(b.buf) - b.w }

// Unread returns the unread characters.
// The slice aliases b and is only valid until b is next modified.
func (b *CharBuffer) Unread() []rune { return b.buf[b.r:b.w] }

// Reset discards all content.
func (b *CharBuffer) Reset() { b.r, b.w = 0, 0 }

// Compact moves the unread characters to the start of b.
func (b *CharBuffer) Compact() {
	if b.r == 0 {
		return
	}
	n := copy(b.buf, b.buf[b.r:b.w])
	b.r, b.w = 0, n
}

func (b *CharBuffer) advance(n int) {
	b.r += n
	if b.r == b.w {
		b.r, b.w = 0, 0
	}
}

func (b *CharBuffer) put(c rune) {
	b.buf[b.w] = c
	b.w++
}

// maxEmptyReads bounds consecutive empty reads, as bufio does.
const maxEmptyReads = 100

// fill reads from d into the free slots of b.
// Data that arrives together with io.EOF is kept and the EOF is left
// for the next call to report.
func (b *CharBuffer) fill(d Device) error {
	free := b.Free()
	for range maxEmptyReads {
		n, err := d.ReadChunk(b.buf[b.w:])
		if n < 0 || n > free {
			panic(fmt.Sprintf(
				"textio: malformed buffer: %T read %d chars into %d slots",
				d, n, free,
			))
		}
		b.w += n
		if n > 0 {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err != nil {
			return err
		}
	}
	return io.ErrNoProgress
}
