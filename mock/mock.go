// Package mock provides a Device implementation for testing that records
// every operation and serves queued input.
//
// The mock Device tracks each call in the Calls slice, including the
// characters read or written. Tests can inspect Calls using cmp.Diff or
// direct comparison.
//
// Input is queued with Return. Each queued chunk is served by a single
// ReadChunk, so tests control exactly where reads are split:
//
//	d := new(mock.Device)
//	d.SetNewline(textio.CRLF)
//	d.Return("one\r", "\ntwo")
//	h := textio.NewHandle(d)
//	line, _ := h.GetLine() // "one"
//
// An empty chunk makes ReadChunk return 0 characters and no error.
// Once the queue is exhausted ReadChunk reports io.EOF.
//
// Failures are injected per operation with Fail:
//
//	d.Fail("Flush", errors.New("disk full"))
//
// # Accessing Calls Through a Handle
//
// Use the package-level Calls() function with [textio.Handle.Device]
// to filter invocations by operation:
//
//	calls := mock.Calls(h.Device())              // All calls
//	flushes := mock.Calls(h.Device(), "Flush")   // Just flushes
package mock

import (
	"errors"
	"io"
	"slices"
	"strings"
	"sync"

	"lesiw.io/textio"
)

// Call represents a single operation captured by the mock Device.
type Call struct {
	Op   string
	Text string
}

// Device is a mock implementation of textio.Device.
// It also reports a controllable newline convention and size hint via
// the NewlineDevice and SizedDevice interfaces.
//
// The zero Device is ready to use. It reports [textio.LF] and no size.
type Device struct {
	mu      sync.Mutex
	Calls   []Call
	name    string
	reads   [][]rune
	errs    map[string]error
	nl      textio.Newline
	size    int64
	sized   bool
	written strings.Builder
	flushed int
	closed  bool
}

var (
	_ textio.NewlineDevice = (*Device)(nil)
	_ textio.SizedDevice   = (*Device)(nil)
)

var errUnsized = errors.New("mock: size unknown")

// Return adds chunks to the input queue.
func (d *Device) Return(chunk ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range chunk {
		d.reads = append(d.reads, []rune(c))
	}
}

// Fail makes every later call of op return err.
// Pass a nil err to clear the failure.
//
// For "ReadChunk" the failure takes effect once the input queue is
// exhausted, in place of io.EOF.
func (d *Device) Fail(op string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.errs == nil {
		d.errs = make(map[string]error)
	}
	d.errs[op] = err
}

// SetNewline sets the convention returned by Newline().
func (d *Device) SetNewline(nl textio.Newline) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nl = nl
}

// SetSize sets the hint returned by Size().
func (d *Device) SetSize(n int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.size, d.sized = n, true
}

// SetName sets the name returned by String().
func (d *Device) SetName(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.name = name
}

// ReadChunk implements textio.Device.
// A queued chunk longer than p is split, and the rest is served by the
// next call.
func (d *Device) ReadChunk(p []rune) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.reads) == 0 {
		d.Calls = append(d.Calls, Call{Op: "ReadChunk"})
		if err := d.errs["ReadChunk"]; err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	n := copy(p, d.reads[0])
	if n < len(d.reads[0]) {
		d.reads[0] = d.reads[0][n:]
	} else {
		d.reads = d.reads[1:]
	}
	d.Calls = append(d.Calls, Call{Op: "ReadChunk", Text: string(p[:n])})
	return n, nil
}

// WriteChunk implements textio.Device.
func (d *Device) WriteChunk(p []rune) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Calls = append(d.Calls, Call{Op: "WriteChunk", Text: string(p)})
	if err := d.errs["WriteChunk"]; err != nil {
		return err
	}
	for _, c := range p {
		d.written.WriteRune(c)
	}
	return nil
}

// Flush implements textio.Device.
func (d *Device) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Calls = append(d.Calls, Call{Op: "Flush"})
	if err := d.errs["Flush"]; err != nil {
		return err
	}
	d.flushed = d.written.Len()
	return nil
}

// Close implements textio.Device.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Calls = append(d.Calls, Call{Op: "Close"})
	if err := d.errs["Close"]; err != nil {
		return err
	}
	d.closed = true
	return nil
}

// Newline implements textio.NewlineDevice.
func (d *Device) Newline() textio.Newline {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nl
}

// Size implements textio.SizedDevice.
// It returns an error unless SetSize was called.
func (d *Device) Size() (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.sized {
		return 0, errUnsized
	}
	return d.size, nil
}

func (d *Device) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.name == "" {
		return "mock"
	}
	return d.name
}

// Written returns everything successfully written to the device.
func (d *Device) Written() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.written.String()
}

// Flushed returns the written text up to the most recent successful
// Flush.
func (d *Device) Flushed() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.written.String()[:d.flushed]
}

// Closed reports whether the device was closed successfully.
func (d *Device) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Calls returns the calls recorded by d, filtered by operation.
// If d is not a mock Device, it returns nil.
//
// With no op, all calls are returned.
func Calls(d textio.Device, op ...string) []Call {
	md, ok := d.(*Device)
	if !ok {
		return nil
	}
	md.mu.Lock()
	defer md.mu.Unlock()
	var calls []Call
	for _, c := range md.Calls {
		if len(op) == 0 || slices.Contains(op, c.Op) {
			calls = append(calls, c)
		}
	}
	return calls
}
