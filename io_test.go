package textio

import (
	"io"
	"strings"
)

// chunkDevice serves each queued chunk from a single ReadChunk and
// records what is written to it.
type chunkDevice struct {
	chunks  [][]rune
	eofLast bool // report io.EOF together with the last chunk
	readErr error

	writes   []string
	flushes  int
	writeErr error
	flushErr error
	closeErr error
	closed   bool
}

func newChunkDevice(chunks ...string) *chunkDevice {
	d := new(chunkDevice)
	for _, c := range chunks {
		d.chunks = append(d.chunks, []rune(c))
	}
	return d
}

func (d *chunkDevice) ReadChunk(p []rune) (int, error) {
	if len(d.chunks) == 0 {
		if d.readErr != nil {
			return 0, d.readErr
		}
		return 0, io.EOF
	}
	n := copy(p, d.chunks[0])
	if n < len(d.chunks[0]) {
		d.chunks[0] = d.chunks[0][n:]
		return n, nil
	}
	d.chunks = d.chunks[1:]
	if d.eofLast && len(d.chunks) == 0 {
		return n, io.EOF
	}
	return n, nil
}

func (d *chunkDevice) WriteChunk(p []rune) error {
	if d.writeErr != nil {
		return d.writeErr
	}
	d.writes = append(d.writes, string(p))
	return nil
}

func (d *chunkDevice) Flush() error {
	if d.flushErr != nil {
		return d.flushErr
	}
	d.flushes++
	return nil
}

func (d *chunkDevice) Close() error {
	d.closed = true
	return d.closeErr
}

func (d *chunkDevice) written() string { return strings.Join(d.writes, "") }

// stallDevice never makes progress.
type stallDevice struct{ chunkDevice }

func (*stallDevice) ReadChunk([]rune) (int, error) { return 0, nil }

// greedyDevice claims to have read more than it was given room for.
type greedyDevice struct{ chunkDevice }

func (*greedyDevice) ReadChunk(p []rune) (int, error) {
	return len(p) + 1, nil
}

// closeTracker counts calls to Close().
type closeTracker struct {
	io.Reader
	closes int
}

func (*closeTracker) Write(p []byte) (int, error) { return len(p), nil }
func (c *closeTracker) Close() error {
	c.closes++
	return nil
}
