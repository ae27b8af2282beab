package textio

import "iter"

// writeAll writes the characters of seq to d through buf.
//
// In CRLF mode every '\n' goes out as "\r\n". The buffer is committed to
// the device whenever the next character does not fit, and committed and
// flushed after every newline under [LineBuffering]. When seq is
// exhausted the remainder is committed without a flush.
//
// Under [NoBuffering] buf is unused and may be nil.
func writeAll(
	d Device, buf *CharBuffer, nl Newline, mode BufferMode,
	seq iter.Seq[rune],
) error {
	if mode == NoBuffering {
		return writeDirect(d, nl, seq)
	}
	commit := func(flush bool) error {
		if !buf.Empty() {
			if err := d.WriteChunk(buf.Unread()); err != nil {
				return err
			}
			buf.Reset()
		}
		if flush {
			return d.Flush()
		}
		return nil
	}
	for c := range seq {
		need := 1
		if c == '\n' && nl == CRLF {
			need = 2
		}
		if buf.Free() < need {
			if err := commit(false); err != nil {
				return err
			}
		}
		if need == 2 {
			buf.put('\r')
		}
		buf.put(c)
		if c == '\n' && mode == LineBuffering {
			if err := commit(true); err != nil {
				return err
			}
		}
	}
	return commit(false)
}

func writeDirect(d Device, nl Newline, seq iter.Seq[rune]) error {
	var pair [2]rune
	for c := range seq {
		p := pair[:1]
		if c == '\n' && nl == CRLF {
			p = pair[:2]
			p[0], p[1] = '\r', '\n'
		} else {
			p[0] = c
		}
		if err := d.WriteChunk(p); err != nil {
			return err
		}
		if err := d.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Runes returns a sequence over the characters of s.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, c := range s {
			if !yield(c) {
				return
			}
		}
	}
}

// Line returns a sequence over the characters of s followed by '\n'.
func Line(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, c := range s {
			if !yield(c) {
				return
			}
		}
		yield('\n')
	}
}
