package textio

import (
	"bufio"
	"errors"
	"io"
	"reflect"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errUnsized = errors.New("textio: size unknown")

// NewDevice returns a Device reading from r and writing to w.
// Either may be nil, in which case the corresponding operations fail with
// [ErrNotReadable] or [ErrNotWritable].
//
// Bytes are decoded with the encoding given by [WithEncoding], UTF-8 by
// default; invalid input decodes to U+FFFD. The device reports the
// newline convention given by [WithNewline], [DefaultNewline] otherwise.
//
// Output is held in a byte buffer until Flush. Writes to w that fail
// with EINTR or EAGAIN are retried.
//
// Close flushes nothing. It closes r and w if they implement io.Closer.
func NewDevice(r io.Reader, w io.Writer, opts ...Option) Device {
	o := newOptions(opts)
	enc := o.enc
	if enc == nil {
		enc = unicode.UTF8
	}
	d := &streamDevice{
		name: o.name,
		nl:   DefaultNewline,
		size: o.sizeFn,
	}
	if o.nlSet {
		d.nl = o.nl
	}
	if r != nil {
		d.br = bufio.NewReader(transform.NewReader(r, enc.NewDecoder()))
		d.closers = appendCloser(d.closers, r)
		if d.size == nil {
			d.size = lenSize(r)
		}
	}
	if w != nil {
		d.tw = transform.NewWriter(retryWriter{w}, enc.NewEncoder())
		d.bw = bufio.NewWriter(d.tw)
		if c, ok := w.(io.Closer); !ok || !sameCloser(r, c) {
			d.closers = appendCloser(d.closers, w)
		}
	}
	return d
}

type streamDevice struct {
	name    string
	nl      Newline
	br      *bufio.Reader
	bw      *bufio.Writer
	tw      io.WriteCloser
	size    func() (int64, error)
	closers []func() error
}

var _ NewlineDevice = (*streamDevice)(nil)
var _ SizedDevice = (*streamDevice)(nil)

// ReadChunk blocks for the first character only. After that it takes
// what is already buffered, so an interactive reader gets its line as
// soon as it is typed.
func (d *streamDevice) ReadChunk(p []rune) (n int, err error) {
	if d.br == nil {
		return 0, ErrNotReadable
	}
	for n < len(p) {
		if n > 0 && d.br.Buffered() == 0 {
			break
		}
		c, _, err := d.br.ReadRune()
		if err != nil {
			if n > 0 && err == io.EOF {
				err = nil
			}
			return n, err
		}
		p[n] = c
		n++
	}
	return n, nil
}

func (d *streamDevice) WriteChunk(p []rune) error {
	if d.bw == nil {
		return ErrNotWritable
	}
	_, err := d.bw.WriteString(string(p))
	return err
}

func (d *streamDevice) Flush() error {
	if d.bw == nil {
		return nil
	}
	return d.bw.Flush()
}

func (d *streamDevice) Close() error {
	var errs []error
	if d.tw != nil {
		errs = append(errs, d.tw.Close())
	}
	for _, c := range d.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func (d *streamDevice) Newline() Newline { return d.nl }

func (d *streamDevice) Size() (int64, error) {
	if d.size == nil || d.br == nil {
		return 0, errUnsized
	}
	return d.size()
}

func (d *streamDevice) String() string {
	if d.name == "" {
		return "<stream>"
	}
	return d.name
}

func appendCloser(closers []func() error, v any) []func() error {
	if c, ok := v.(io.Closer); ok {
		return append(closers, c.Close)
	}
	return closers
}

func sameCloser(r io.Reader, c io.Closer) bool {
	rc, ok := r.(io.Closer)
	if !ok || !reflect.TypeOf(rc).Comparable() {
		return false
	}
	return rc == c
}

// lenSize reports the unread length of readers like *strings.Reader
// and *bytes.Buffer.
func lenSize(r io.Reader) func() (int64, error) {
	l, ok := r.(interface{ Len() int })
	if !ok {
		return nil
	}
	return func() (int64, error) { return int64(l.Len()), nil }
}

const writeAttempts = 5

// retryWriter retries writes that were interrupted or would block.
type retryWriter struct{ w io.Writer }

func (rw retryWriter) Write(p []byte) (n int, err error) {
	err = retry.Do(
		func() error {
			m, err := rw.w.Write(p[n:])
			n += m
			return err
		},
		retry.Attempts(writeAttempts),
		retry.Delay(time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(transient),
		retry.LastErrorOnly(true),
	)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func transient(err error) bool {
	return errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN)
}
