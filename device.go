package textio

import "io"

// Device is a character device.
// Devices decode bytes into characters on read and encode characters into
// bytes on write. The engine in this package only ever sees characters.
//
// Devices may implement additional interfaces for extended capabilities:
//   - [NewlineDevice] - report the newline convention negotiated at open
//   - [SizedDevice] - report the size of the remaining input
type Device interface {
	// ReadChunk reads up to len(p) characters into p.
	// It blocks until at least one character is available.
	// Once the device is exhausted it must return 0 and io.EOF,
	// and keep doing so on every later call.
	// Implementations must never report more than len(p) characters.
	ReadChunk(p []rune) (n int, err error)

	// WriteChunk writes all of p to the device.
	// The device may hold the data in a byte-level buffer until Flush.
	WriteChunk(p []rune) error

	// Flush forces device-level buffered output to the underlying
	// resource.
	Flush() error

	// Close releases the device.
	// Buffered output must be flushed by the caller first.
	io.Closer
}

// NewlineDevice is an optional interface for devices that negotiate
// their newline convention when opened.
// The convention is fixed for the lifetime of the device.
type NewlineDevice interface {
	Device

	// Newline returns the on-device newline convention.
	Newline() Newline
}

// SizedDevice is an optional interface for devices that know
// how much input remains.
//
// The size is a hint used to choose a read buffer large enough to
// read the whole input in a single refill.
// It is measured in bytes, which is never less than the number of
// characters for the encodings this package deals with.
type SizedDevice interface {
	Device

	// Size returns the number of bytes left to read.
	// Implementations return an error if the size is unknown.
	Size() (int64, error)
}

// NewlineOf returns the newline convention of d.
// If d implements [NewlineDevice], it returns the negotiated convention.
// Otherwise, it returns [DefaultNewline].
func NewlineOf(d Device) Newline {
	if nd, ok := d.(NewlineDevice); ok {
		return nd.Newline()
	}
	return DefaultNewline
}

// sizeOf returns the size hint of d, or -1 if there is none.
func sizeOf(d Device) int64 {
	sd, ok := d.(SizedDevice)
	if !ok {
		return -1
	}
	n, err := sd.Size()
	if err != nil || n < 0 {
		return -1
	}
	return n
}
