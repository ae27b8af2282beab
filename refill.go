package textio

// refill pulls more characters from d into buf.
//
// An empty buffer is rewound and filled from the start.
// In CRLF mode a buffer holding only an undecided '\r' keeps it at
// position 0 and is filled after it; whether the '\r' starts a "\r\n"
// pair is left to the caller's scan.
// Any other buffer already has usable content and is left alone.
//
// refill returns io.EOF when d is exhausted and nothing was added.
// A pending '\r' is still in buf at that point.
func refill(d Device, buf *CharBuffer, nl Newline) error {
	switch n := buf.Len(); {
	case n == 0:
		buf.Reset()
	case n == 1 && nl == CRLF && buf.buf[buf.r] == '\r':
		buf.buf[0] = '\r'
		buf.r, buf.w = 0, 1
	default:
		return nil
	}
	return buf.fill(d)
}

// pendingCR reports whether buf holds only an undecided '\r'.
func pendingCR(buf *CharBuffer, nl Newline) bool {
	return nl == CRLF && buf.Len() == 1 && buf.buf[buf.r] == '\r'
}
