package textio_test

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"lesiw.io/textio"
	"lesiw.io/textio/mock"
)

func TestHandleGetLine(t *testing.T) {
	d := new(mock.Device)
	d.SetNewline(textio.CRLF)
	d.Return("a\r\nb\nc")
	h := textio.NewHandle(d)

	var got []string
	for {
		line, err := h.GetLine()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		got = append(got, line)
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if _, err := h.GetLine(); err != io.EOF {
		t.Errorf("GetLine() after end = %v, want io.EOF", err)
	}
}

func TestHandleGetLineStraddlingPair(t *testing.T) {
	d := new(mock.Device)
	d.SetNewline(textio.CRLF)
	d.Return("one\r", "\ntwo\r", "\n")
	h := textio.NewHandle(d)

	for _, want := range []string{"one", "two"} {
		if got, err := h.GetLine(); err != nil || got != want {
			t.Errorf("GetLine() = %q, %v, want %q, nil", got, err, want)
		}
	}
	if got, err := h.GetLine(); err != io.EOF {
		t.Errorf("GetLine() = %q, %v, want io.EOF", got, err)
	}
}

func TestHandleNewlineOverride(t *testing.T) {
	d := new(mock.Device)
	d.SetNewline(textio.CRLF)
	h := textio.NewHandle(d, textio.WithNewline(textio.LF))

	if got := h.Newline(); got != textio.LF {
		t.Errorf("Newline() = %v, want LF", got)
	}
	if got := textio.NewHandle(d).Newline(); got != textio.CRLF {
		t.Errorf("Newline() without override = %v, want CRLF", got)
	}
}

func TestHandleGetContentsDrains(t *testing.T) {
	pool := new(textio.Pool)
	d := new(mock.Device)
	d.SetNewline(textio.CRLF)
	d.Return("x\r\n", "y\r")
	h := textio.NewHandle(d, textio.WithPool(pool))

	got, err := h.GetContents()
	if err != nil {
		t.Fatal(err)
	}
	if want := "x\ny\r"; got != want {
		t.Errorf("GetContents() = %q, want %q", got, want)
	}
	if n := pool.Pooled(textio.DefaultBufferSize); n != 1 {
		t.Errorf("Pooled() = %d, want 1", n)
	}

	_, err = h.GetLine()
	if !errors.Is(err, textio.ErrClosed) {
		t.Errorf("GetLine() after GetContents = %v, want ErrClosed", err)
	}
	if d.Closed() {
		t.Error("GetContents closed the device")
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if !d.Closed() {
		t.Error("Close did not close the device")
	}
}

func TestHandleGetContentsAfterLine(t *testing.T) {
	d := new(mock.Device)
	d.Return("head\nbody\nmore")
	h := textio.NewHandle(d)

	if line, err := h.GetLine(); err != nil || line != "head" {
		t.Fatalf("GetLine() = %q, %v, want head", line, err)
	}
	got, err := h.GetContents()
	if err != nil {
		t.Fatal(err)
	}
	if want := "body\nmore"; got != want {
		t.Errorf("GetContents() = %q, want %q", got, want)
	}
}

func TestHandleGetContentsSizeHint(t *testing.T) {
	pool := new(textio.Pool)
	text := strings.Repeat("z", 5000)
	d := new(mock.Device)
	d.SetSize(int64(len(text)))
	d.Return(text)
	h := textio.NewHandle(d, textio.WithPool(pool))

	got, err := h.GetContents()
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Errorf("GetContents() returned %d chars, want %d",
			len(got), len(text))
	}

	reads := mock.Calls(d, "ReadChunk")
	if len(reads) != 2 || reads[0].Text != text {
		t.Errorf("got %d reads, want whole input then end", len(reads))
	}
	if n := pool.Pooled(len(text) + 1); n != 0 {
		t.Errorf("hinted buffer pooled %d times, want 0", n)
	}
}

func TestHandleGetChunk(t *testing.T) {
	d := new(mock.Device)
	d.SetNewline(textio.CRLF)
	d.Return("ab\r", "\ncd")
	h := textio.NewHandle(d)

	var got []string
	for {
		s, err := h.GetChunk()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		got = append(got, s)
	}
	if diff := cmp.Diff([]string{"ab", "\ncd"}, got); diff != "" {
		t.Errorf("chunks (-want +got):\n%s", diff)
	}
}

func TestHandlePutStr(t *testing.T) {
	d := new(mock.Device)
	d.SetNewline(textio.CRLF)
	h := textio.NewHandle(d)

	if err := h.PutStr("a\nb"); err != nil {
		t.Fatal(err)
	}
	if err := h.PutStrLn("c"); err != nil {
		t.Fatal(err)
	}
	if got, want := d.Written(), "a\r\nbc\r\n"; got != want {
		t.Errorf("Written() = %q, want %q", got, want)
	}
	if n := len(mock.Calls(d, "Flush")); n != 0 {
		t.Errorf("block buffered writes flushed %d times", n)
	}

	if err := h.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := d.Flushed(); got != d.Written() {
		t.Errorf("Flushed() = %q, want %q", got, d.Written())
	}
}

func TestHandlePutSeq(t *testing.T) {
	d := new(mock.Device)
	h := textio.NewHandle(d, textio.WithBufferSize(3))

	seq := func(yield func(rune) bool) {
		for c := 'a'; c <= 'g'; c++ {
			if !yield(c) {
				return
			}
		}
	}
	if err := h.PutSeq(seq); err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, c := range mock.Calls(d, "WriteChunk") {
		got = append(got, c.Text)
	}
	if diff := cmp.Diff([]string{"abc", "def", "g"}, got); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}
}

func TestHandleLineBuffering(t *testing.T) {
	d := new(mock.Device)
	h := textio.NewHandle(d, textio.WithBuffering(textio.LineBuffering))

	if err := h.PutStr("one\ntw"); err != nil {
		t.Fatal(err)
	}
	if got, want := d.Flushed(), "one\n"; got != want {
		t.Errorf("Flushed() = %q, want %q", got, want)
	}
	if got, want := d.Written(), "one\ntw"; got != want {
		t.Errorf("Written() = %q, want %q", got, want)
	}
}

func TestHandleSetBuffering(t *testing.T) {
	d := new(mock.Device)
	h := textio.NewHandle(d)

	if err := h.PutStr("held"); err != nil {
		t.Fatal(err)
	}
	if err := h.SetBuffering(textio.NoBuffering); err != nil {
		t.Fatal(err)
	}
	if got := h.Buffering(); got != textio.NoBuffering {
		t.Errorf("Buffering() = %v, want NoBuffering", got)
	}
	if got := d.Flushed(); got != "held" {
		t.Errorf("Flushed() = %q, want %q", got, "held")
	}

	if err := h.PutStr("ab"); err != nil {
		t.Fatal(err)
	}
	if n := len(mock.Calls(d, "Flush")); n != 3 {
		t.Errorf("Flush calls = %d, want 3", n)
	}
}

func TestHandleNoBufferingSkipsPool(t *testing.T) {
	pool := new(textio.Pool)
	d := new(mock.Device)
	h := textio.NewHandle(d,
		textio.WithPool(pool),
		textio.WithBuffering(textio.NoBuffering),
	)

	if err := h.PutStr("abc"); err != nil {
		t.Fatal(err)
	}
	if n := pool.Pooled(textio.DefaultBufferSize); n != 0 {
		t.Errorf("Pooled() = %d, want 0", n)
	}
}

func TestHandleWriteErrorReleasesBuffer(t *testing.T) {
	pool := new(textio.Pool)
	errFull := errors.New("disk full")
	d := new(mock.Device)
	d.SetName("out.txt")
	d.Fail("WriteChunk", errFull)
	h := textio.NewHandle(d, textio.WithPool(pool))

	err := h.PutStr("data")
	if !errors.Is(err, errFull) {
		t.Fatalf("PutStr() err = %v, want %v", err, errFull)
	}
	if got, want := err.Error(), "hPutStr out.txt: disk full"; got != want {
		t.Errorf("PutStr() err = %q, want %q", got, want)
	}
	if n := pool.Pooled(textio.DefaultBufferSize); n != 1 {
		t.Errorf("Pooled() = %d, want 1", n)
	}
}

func TestHandleAccessModes(t *testing.T) {
	r := textio.NewHandle(new(mock.Device), textio.WithMode(textio.ReadMode))
	if err := r.PutStr("x"); !errors.Is(err, textio.ErrNotWritable) {
		t.Errorf("PutStr() on read handle = %v, want ErrNotWritable", err)
	}
	if err := r.Flush(); !errors.Is(err, textio.ErrNotWritable) {
		t.Errorf("Flush() on read handle = %v, want ErrNotWritable", err)
	}

	w := textio.NewHandle(new(mock.Device), textio.WithMode(textio.WriteMode))
	if _, err := w.GetLine(); !errors.Is(err, textio.ErrNotReadable) {
		t.Errorf("GetLine() on write handle = %v, want ErrNotReadable", err)
	}
	if _, err := w.GetContents(); !errors.Is(err, textio.ErrNotReadable) {
		t.Errorf("GetContents() on write handle = %v, want ErrNotReadable",
			err)
	}
}

func TestHandleClose(t *testing.T) {
	d := new(mock.Device)
	h := textio.NewHandle(d, textio.WithMode(textio.WriteMode))
	if err := h.PutStr("tail"); err != nil {
		t.Fatal(err)
	}

	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}

	want := []string{"WriteChunk", "Flush", "Close"}
	var got []string
	for _, c := range d.Calls {
		got = append(got, c.Op)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if err := h.PutStr("more"); !errors.Is(err, textio.ErrClosed) {
		t.Errorf("PutStr() after Close = %v, want ErrClosed", err)
	}
	err := h.SetBuffering(textio.LineBuffering)
	if !errors.Is(err, textio.ErrClosed) {
		t.Errorf("SetBuffering() after Close = %v, want ErrClosed", err)
	}
}

func TestHandleCloseReadOnly(t *testing.T) {
	d := new(mock.Device)
	h := textio.NewHandle(d, textio.WithMode(textio.ReadMode))
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if n := len(mock.Calls(d, "Flush")); n != 0 {
		t.Errorf("read handle flushed %d times on Close", n)
	}
}

func TestHandleCloseErrors(t *testing.T) {
	errFlush := errors.New("flush failed")
	errClose := errors.New("close failed")
	d := new(mock.Device)
	d.Fail("Flush", errFlush)
	d.Fail("Close", errClose)
	h := textio.NewHandle(d)

	err := h.Close()
	if !errors.Is(err, errFlush) || !errors.Is(err, errClose) {
		t.Errorf("Close() = %v, want both flush and close errors", err)
	}
	if n := len(mock.Calls(d, "Close")); n != 1 {
		t.Errorf("device closed %d times, want 1", n)
	}
}

func TestHandleConcurrentWriters(t *testing.T) {
	d := new(mock.Device)
	h := textio.NewHandle(d, textio.WithBufferSize(4))

	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			for j := range 10 {
				if err := h.PutStrLn(fmt.Sprintf("w%d-%d", i, j)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(d.Written(), "\n"), "\n")
	if len(lines) != 80 {
		t.Fatalf("got %d lines, want 80", len(lines))
	}
	slices.Sort(lines)
	if got := slices.Compact(lines); len(got) != 80 {
		t.Errorf("got %d distinct lines, want 80", len(got))
	}
	for _, line := range lines {
		var i, j int
		if _, err := fmt.Sscanf(line, "w%d-%d", &i, &j); err != nil {
			t.Errorf("interleaved line %q", line)
		}
	}
}

func TestHandleName(t *testing.T) {
	d := new(mock.Device)
	if got := textio.NewHandle(d).Name(); got != "mock" {
		t.Errorf("Name() = %q, want %q", got, "mock")
	}
	h := textio.NewHandle(d, textio.WithName("log"))
	if got := h.String(); got != "log" {
		t.Errorf("String() = %q, want %q", got, "log")
	}
	got := textio.String(textio.Fail(io.EOF))
	if !strings.HasPrefix(got, "<") {
		t.Errorf("String(Fail) = %q, want type in angle brackets", got)
	}
}
