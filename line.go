package textio

import (
	"io"
	"strings"
)

// readLine reads one line from d through buf, without its terminator.
//
// Characters after the terminator stay in buf for the next call.
// A line cut short by the end of input is returned without error;
// io.EOF is only returned when there was nothing left at all.
func readLine(d Device, buf *CharBuffer, nl Newline) (string, error) {
	var (
		sb   strings.Builder
		some bool
	)
	for {
		if err := refill(d, buf, nl); err != nil {
			if err != io.EOF {
				return "", err
			}
			if pendingCR(buf, nl) {
				sb.WriteByte('\r')
				buf.Reset()
				some = true
			}
			if !some {
				return "", io.EOF
			}
			return sb.String(), nil
		}
		line, n, ok := scanLine(buf.Unread(), nl)
		writeRunes(&sb, line)
		buf.advance(n)
		if ok {
			return sb.String(), nil
		}
		some = some || len(line) > 0
	}
}

// scanLine finds the first line terminator in p.
//
// It returns the characters before the terminator, the number of
// characters consumed including the terminator, and whether a
// terminator was found. In CRLF mode a '\r' at the very end of p is
// undecided: it is neither returned nor consumed.
func scanLine(p []rune, nl Newline) (line []rune, n int, ok bool) {
	for i, c := range p {
		switch {
		case c == '\n':
			return p[:i], i + 1, true
		case c == '\r' && nl == CRLF:
			switch {
			case i+1 == len(p):
				return p[:i], i, false
			case p[i+1] == '\n':
				return p[:i], i + 2, true
			default:
				return p[:i], i + 1, true
			}
		}
	}
	return p, len(p), false
}

func writeRunes(sb *strings.Builder, p []rune) {
	for _, c := range p {
		sb.WriteRune(c)
	}
}
