package textio

import (
	"fmt"
	"runtime"
	"strings"
)

// Newline is the on-device newline convention.
type Newline int

const (
	// LF stores a newline as a single '\n'.
	LF Newline = iota
	// CRLF stores a newline as the pair "\r\n".
	// On input a lone '\r' is also accepted as a line terminator.
	CRLF
)

// DefaultNewline is the platform newline convention.
//
// On Windows it is [CRLF]. Elsewhere it is [LF].
var DefaultNewline = defaultNewline(runtime.GOOS)

func defaultNewline(goos string) Newline {
	if goos == "windows" {
		return CRLF
	}
	return LF
}

func (nl Newline) String() string {
	switch nl {
	case LF:
		return "LF"
	case CRLF:
		return "CRLF"
	default:
		return fmt.Sprintf("Newline(%d)", int(nl))
	}
}

// ParseNewline parses "lf" or "crlf", in any case.
// The aliases "unix" and "dos" are also accepted.
func ParseNewline(s string) (Newline, error) {
	switch strings.ToLower(s) {
	case "lf", "unix":
		return LF, nil
	case "crlf", "dos":
		return CRLF, nil
	default:
		return LF, fmt.Errorf("textio: unknown newline %q", s)
	}
}

// BufferMode is the output flush policy of a [Handle].
type BufferMode int

const (
	// BlockBuffering commits output only when the buffer fills
	// or the write completes.
	BlockBuffering BufferMode = iota
	// LineBuffering additionally flushes the device on every newline.
	LineBuffering
	// NoBuffering writes and flushes every character on its own.
	NoBuffering
)

func (m BufferMode) String() string {
	switch m {
	case BlockBuffering:
		return "BlockBuffering"
	case LineBuffering:
		return "LineBuffering"
	case NoBuffering:
		return "NoBuffering"
	default:
		return fmt.Sprintf("BufferMode(%d)", int(m))
	}
}

// Mode is the access mode a [Handle] was opened with.
type Mode int

const (
	// ReadWriteMode permits both reads and writes.
	ReadWriteMode Mode = iota
	// ReadMode permits reads only.
	ReadMode
	// WriteMode truncates the target and permits writes only.
	WriteMode
	// AppendMode appends to the target and permits writes only.
	AppendMode
)

func (m Mode) readable() bool { return m == ReadWriteMode || m == ReadMode }
func (m Mode) writable() bool { return m != ReadMode }

func (m Mode) String() string {
	switch m {
	case ReadWriteMode:
		return "ReadWriteMode"
	case ReadMode:
		return "ReadMode"
	case WriteMode:
		return "WriteMode"
	case AppendMode:
		return "AppendMode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
