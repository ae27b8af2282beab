package textio

import (
	"io"
	"unicode/utf8"
)

// Copy copies text from src to dst until src is exhausted.
// It returns the number of characters copied after normalization.
//
// Text moves a chunk at a time. Line terminators are normalized on the
// way in according to the newline convention of src and expanded on the
// way out according to that of dst, so Copy between handles with
// different conventions converts line endings.
//
// Copy neither flushes nor closes dst.
func Copy(dst, src *Handle) (written int64, err error) {
	for {
		s, err := src.GetChunk()
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
		if err := dst.PutStr(s); err != nil {
			return written, err
		}
		written += int64(utf8.RuneCountInString(s))
	}
}
