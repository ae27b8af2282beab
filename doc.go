// Package textio reads and writes text on character devices.
//
// A [Device] moves decoded characters (runes) in and out of some
// byte-oriented resource: a file, a pipe, a terminal. A [Handle] puts
// a buffer in front of a device and translates newlines:
//
//   - Reading normalizes the device's line terminators to '\n'.
//   - Writing expands '\n' to the device's convention.
//
// The convention is a [Newline]: [LF] stores a newline as '\n';
// [CRLF] stores it as "\r\n" and also accepts a lone '\r' on input.
// Devices report their convention by implementing [NewlineDevice].
//
// Use [NewDevice] to put a device over any [io.Reader] or [io.Writer].
//
//	h := textio.NewHandle(
//	    textio.NewDevice(conn, conn),
//	    textio.WithNewline(textio.CRLF),
//	)
//	line, err := h.GetLine()
//
// # Reading
//
// [Handle.GetLine] reads one line without its terminator. A "\r\n"
// pair split across two reads from the device is still one terminator.
// The last line of the input is returned even if it is not terminated;
// [io.EOF] is returned only when nothing at all is left.
//
// [Handle.GetChunk] returns whatever a single read from the device
// makes available, and [Handle.GetContents] reads everything that is
// left. A '\r' at the very end of CRLF input, with no '\n' to pair
// with, is returned as a literal '\r'.
//
// # Writing
//
// [Handle.PutStr], [Handle.PutStrLn], and [Handle.PutSeq] write text
// through a buffer of [DefaultBufferSize] characters. PutSeq consumes
// an [iter.Seq] of runes, so arbitrarily large text can be produced on
// the fly. The [BufferMode] decides when output is handed on:
//
//   - [BlockBuffering] writes to the device whenever the buffer fills.
//   - [LineBuffering] also flushes the device after every newline.
//   - [NoBuffering] writes and flushes every character on its own.
//
// # Buffers
//
// Buffers are [CharBuffer] values taken from a [Pool] and given back
// when an operation completes, including when it fails.
// Handles share [DefaultPool] unless given their own with [WithPool].
//
// # Files
//
// [Open] opens a file on any [lesiw.io/fs.FS]. [ReadFile],
// [WriteFile], and [AppendFile] open, transfer, and close in one call.
//
//	fsys := memfs.New()
//	err := textio.WriteFile(ctx, fsys, "notes.txt", "one\ntwo\n",
//	    textio.WithNewline(textio.CRLF),
//	)
//	// notes.txt now holds "one\r\ntwo\r\n".
//	text, err := textio.ReadFile(ctx, fsys, "notes.txt",
//	    textio.WithNewline(textio.CRLF),
//	)
//	// text is "one\ntwo\n".
//
// [lesiw.io/textio/sys] binds these to the local filesystem.
//
// # Standard streams
//
// [Stdin] and [Stdout] are handles on the process standard streams.
// [GetContents], [GetLine], [PutStr], [PutStrLn], and [Interact] use
// them directly. Standard output is line-buffered on a terminal and
// block-buffered otherwise, so remember to flush it.
//
// # Errors
//
// Device failures are returned as [*Error], naming the operation and
// the device. End of input is a bare [io.EOF].
//
// [Trace] can optionally be set to any [io.Writer], including
// [os.Stderr], to log device opens, flushes, and closes.
package textio
