package textio

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout

	stdmu   sync.Mutex
	stdinH  *Handle
	stdoutH *Handle
)

// Stdin returns the handle on the process standard input.
// It is block-buffered and uses [DefaultNewline].
func Stdin() *Handle {
	stdmu.Lock()
	defer stdmu.Unlock()
	if stdinH == nil {
		stdinH = NewHandle(
			NewDevice(stdin, nil, WithName("<stdin>")),
			WithMode(ReadMode),
			WithNewline(DefaultNewline),
		)
	}
	return stdinH
}

// Stdout returns the handle on the process standard output.
//
// It is line-buffered when standard output is a terminal, and
// block-buffered otherwise. Block-buffered output reaches the terminal
// or pipe only on [Handle.Flush] or [Handle.Close].
func Stdout() *Handle {
	stdmu.Lock()
	defer stdmu.Unlock()
	if stdoutH == nil {
		mode := BlockBuffering
		if isTerminal(stdout) {
			mode = LineBuffering
		}
		stdoutH = NewHandle(
			NewDevice(nil, stdout, WithName("<stdout>")),
			WithMode(WriteMode),
			WithBuffering(mode),
			WithNewline(DefaultNewline),
		)
	}
	return stdoutH
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// GetContents reads all of standard input.
func GetContents() (string, error) { return Stdin().GetContents() }

// GetLine reads one line from standard input.
func GetLine() (string, error) { return Stdin().GetLine() }

// PutStr writes s to standard output.
func PutStr(s string) error { return Stdout().PutStr(s) }

// PutStrLn writes s and a newline to standard output.
func PutStrLn(s string) error { return Stdout().PutStrLn(s) }

// Interact passes all of standard input through f and writes the result
// to standard output, then flushes it.
func Interact(f func(string) string) error {
	s, err := GetContents()
	if err != nil {
		return err
	}
	out := Stdout()
	if err := out.PutStr(f(s)); err != nil {
		return err
	}
	return out.Flush()
}
