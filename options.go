package textio

import "golang.org/x/text/encoding"

const (
	// DefaultBufferSize is the capacity, in characters, of the buffers a
	// handle uses when no size is given.
	DefaultBufferSize = 2048

	// MinBufferSize is the smallest usable buffer: a CRLF pair must fit.
	MinBufferSize = 2

	// MaxContentsBuffer caps the read buffer sized from a device's
	// size hint when reading whole contents.
	MaxContentsBuffer = 1 << 20
)

// An Option configures a [Handle] or a device created by this package.
type Option func(*options)

type options struct {
	name   string
	nl     Newline
	nlSet  bool
	mode   BufferMode
	size   int
	pool   *Pool
	access Mode
	enc    encoding.Encoding
	sizeFn func() (int64, error)
}

func newOptions(opts []Option) *options {
	o := &options{size: DefaultBufferSize}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithName names the handle or device in errors and traces.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithNewline overrides the newline convention.
// Without it a handle uses the device's negotiated convention.
func WithNewline(nl Newline) Option {
	return func(o *options) { o.nl, o.nlSet = nl, true }
}

// WithBuffering sets the output flush policy. The default is
// [BlockBuffering].
func WithBuffering(mode BufferMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithBufferSize sets the capacity of the handle's buffers in
// characters. Sizes below [MinBufferSize] are raised to it.
func WithBufferSize(n int) Option {
	return func(o *options) { o.size = max(n, MinBufferSize) }
}

// WithPool makes the handle take its buffers from p instead of
// [DefaultPool].
func WithPool(p *Pool) Option {
	return func(o *options) { o.pool = p }
}

// WithMode restricts the handle to the given access mode.
// The default is [ReadWriteMode].
func WithMode(m Mode) Option {
	return func(o *options) { o.access = m }
}

// WithEncoding sets the byte encoding of a device created by
// [NewDevice] or [Open]. The default is UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) { o.enc = enc }
}

func withSize(fn func() (int64, error)) Option {
	return func(o *options) { o.sizeFn = fn }
}
