package textio

import (
	"errors"
	"io"
	"iter"
	"sync"
)

// A Handle reads and writes text on a [Device].
//
// A Handle serializes its operations; it is safe to share between
// goroutines, but concurrent readers will see interleaved lines.
// Characters read past a line terminator are kept by the handle for
// the next read.
type Handle struct {
	mu     sync.Mutex
	dev    Device
	name   string
	nl     Newline
	mode   BufferMode
	size   int
	pool   *Pool
	access Mode

	rbuf    *CharBuffer
	drained bool
	closed  bool
}

// NewHandle returns a handle on d.
//
// Unless configured otherwise the handle uses the device's newline
// convention, [BlockBuffering], [DefaultBufferSize], and [DefaultPool].
func NewHandle(d Device, opts ...Option) *Handle {
	o := newOptions(opts)
	h := &Handle{
		dev:    d,
		name:   o.name,
		nl:     o.nl,
		mode:   o.mode,
		size:   o.size,
		pool:   o.pool,
		access: o.access,
	}
	if h.name == "" {
		h.name = String(d)
	}
	if !o.nlSet {
		h.nl = NewlineOf(d)
	}
	if h.pool == nil {
		h.pool = DefaultPool
	}
	return h
}

// Name returns the name of the handle.
func (h *Handle) Name() string { return h.name }

func (h *Handle) String() string { return h.name }

// Device returns the device underlying the handle.
func (h *Handle) Device() Device { return h.dev }

// Newline returns the newline convention of the handle.
func (h *Handle) Newline() Newline { return h.nl }

// Buffering returns the output flush policy of the handle.
func (h *Handle) Buffering() BufferMode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mode
}

// SetBuffering changes the output flush policy.
// Output already handed to a writable device is flushed first.
func (h *Handle) SetBuffering(mode BufferMode) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return h.wrap("hSetBuffering", ErrClosed)
	}
	if h.access.writable() {
		if err := h.dev.Flush(); err != nil {
			return h.wrap("hSetBuffering", err)
		}
	}
	h.mode = mode
	return nil
}

// GetContents reads everything left on the handle.
//
// A lone '\r' at the very end of CRLF input is kept as is.
// Afterwards the handle is drained: later reads return [ErrClosed],
// and the read buffer has been returned to the pool.
func (h *Handle) GetContents() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	const op = "hGetContents"
	if err := h.checkRead(op); err != nil {
		return "", err
	}
	if h.rbuf == nil {
		h.rbuf = h.contentsBuffer()
	}
	defer h.drain()
	s, err := readAll(h.dev, h.rbuf, h.nl)
	if err != nil {
		return "", h.wrap(op, err)
	}
	return s, nil
}

// GetChunk reads the text available from a single refill.
//
// It blocks only if nothing is buffered and the device has nothing to
// offer yet. At the end of input it returns "" and io.EOF.
func (h *Handle) GetChunk() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	const op = "hGetChunk"
	buf, err := h.reader(op)
	if err != nil {
		return "", err
	}
	s, err := readChunk(h.dev, buf, h.nl)
	if err != nil && err != io.EOF {
		return "", h.wrap(op, err)
	}
	return s, err
}

// GetLine reads one line without its terminator.
//
// The last line is returned even if it has no terminator.
// GetLine returns io.EOF only when no input is left.
func (h *Handle) GetLine() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	const op = "hGetLine"
	buf, err := h.reader(op)
	if err != nil {
		return "", err
	}
	s, err := readLine(h.dev, buf, h.nl)
	if err != nil && err != io.EOF {
		return "", h.wrap(op, err)
	}
	return s, err
}

// PutStr writes s.
func (h *Handle) PutStr(s string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.put("hPutStr", Runes(s))
}

// PutStrLn writes s followed by a newline.
func (h *Handle) PutStrLn(s string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.put("hPutStrLn", Line(s))
}

// PutSeq writes the characters of seq.
// The sequence is consumed once, a buffer at a time.
func (h *Handle) PutSeq(seq iter.Seq[rune]) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.put("hPutStr", seq)
}

// Flush forces output held by the device to its destination.
func (h *Handle) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	const op = "hFlush"
	if err := h.checkWrite(op); err != nil {
		return err
	}
	tracef("flush %s", h.name)
	if err := h.dev.Flush(); err != nil {
		return h.wrap(op, err)
	}
	return nil
}

// Close flushes a writable handle and closes its device.
// Closing a closed handle does nothing.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.drain()

	var err error
	if h.access.writable() {
		err = h.dev.Flush()
	}
	err = errors.Join(err, h.dev.Close())
	tracef("close %s", h.name)
	if err != nil {
		return h.wrap("hClose", err)
	}
	return nil
}

func (h *Handle) put(op string, seq iter.Seq[rune]) error {
	if err := h.checkWrite(op); err != nil {
		return err
	}
	var buf *CharBuffer
	if h.mode != NoBuffering {
		buf = h.pool.Acquire(h.size)
		defer h.pool.Release(buf)
	}
	if err := writeAll(h.dev, buf, h.nl, h.mode, seq); err != nil {
		return h.wrap(op, err)
	}
	return nil
}

func (h *Handle) checkRead(op string) error {
	switch {
	case h.closed || h.drained:
		return h.wrap(op, ErrClosed)
	case !h.access.readable():
		return h.wrap(op, ErrNotReadable)
	}
	return nil
}

func (h *Handle) checkWrite(op string) error {
	switch {
	case h.closed:
		return h.wrap(op, ErrClosed)
	case !h.access.writable():
		return h.wrap(op, ErrNotWritable)
	}
	return nil
}

// reader returns the read buffer, acquiring it on first use.
func (h *Handle) reader(op string) (*CharBuffer, error) {
	if err := h.checkRead(op); err != nil {
		return nil, err
	}
	if h.rbuf == nil {
		h.rbuf = h.pool.Acquire(h.size)
	}
	return h.rbuf, nil
}

// contentsBuffer returns a read buffer large enough to take the rest of
// a sized device in one refill.
func (h *Handle) contentsBuffer() *CharBuffer {
	n := sizeOf(h.dev)
	if n < 0 {
		return h.pool.Acquire(h.size)
	}
	n = min(max(n+1, MinBufferSize), MaxContentsBuffer)
	if int(n) == h.size {
		return h.pool.Acquire(h.size)
	}
	return NewCharBuffer(int(n))
}

// drain gives the read buffer back. Buffers sized by contentsBuffer
// are left to the garbage collector.
func (h *Handle) drain() {
	h.drained = true
	if h.rbuf == nil {
		return
	}
	if h.rbuf.Cap() == h.size {
		h.pool.Release(h.rbuf)
	}
	h.rbuf = nil
}

func (h *Handle) wrap(op string, err error) error {
	return &Error{Op: op, Name: h.name, Err: err}
}
