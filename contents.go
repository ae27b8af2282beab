package textio

import (
	"io"
	"strings"
)

// readChunk refills buf once and returns everything it makes available,
// with newlines normalized.
//
// In CRLF mode a trailing '\r' stays in buf until the next refill shows
// whether a '\n' follows. If the input ends first, the '\r' is returned
// as is. At a clean end of input readChunk returns "" and io.EOF.
func readChunk(d Device, buf *CharBuffer, nl Newline) (string, error) {
	if err := refill(d, buf, nl); err != nil {
		if err == io.EOF && pendingCR(buf, nl) {
			buf.Reset()
			return "\r", nil
		}
		return "", err
	}
	var sb strings.Builder
	sb.Grow(buf.Len())
	buf.advance(normalize(&sb, buf.Unread(), nl))
	return sb.String(), nil
}

// normalize writes p to sb with every CRLF line terminator replaced by
// '\n' and returns the number of characters consumed.
// A '\r' ending p is left unconsumed.
func normalize(sb *strings.Builder, p []rune, nl Newline) int {
	if nl == LF {
		writeRunes(sb, p)
		return len(p)
	}
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c != '\r' {
			sb.WriteRune(c)
			continue
		}
		if i+1 == len(p) {
			return i
		}
		sb.WriteByte('\n')
		if p[i+1] == '\n' {
			i++
		}
	}
	return len(p)
}

// readAll reads chunks from d until it is exhausted and joins them.
func readAll(d Device, buf *CharBuffer, nl Newline) (string, error) {
	var chunks []string
	for {
		s, err := readChunk(d, buf, nl)
		if err == io.EOF {
			return strings.Join(chunks, ""), nil
		}
		if err != nil {
			return "", err
		}
		chunks = append(chunks, s)
	}
}
