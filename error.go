package textio

// Error is a device failure reported by a [Handle] operation.
//
// End of input is not an Error: it is reported as a bare io.EOF.
type Error struct {
	// Op is the operation that failed, such as "hGetLine" or "hPutStr".
	Op string

	// Name is the name of the handle's device.
	Name string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	s := e.Op
	if e.Name != "" {
		s += " " + e.Name
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }
