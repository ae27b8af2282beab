package textio

// Fail returns a Device that returns err from every read, write,
// and flush. Closing it succeeds.
func Fail(err error) Device { return fail{err} }

type fail struct{ error }

func (f fail) ReadChunk([]rune) (int, error) { return 0, f.error }
func (f fail) WriteChunk([]rune) error       { return f.error }
func (f fail) Flush() error                  { return f.error }
func (fail) Close() error                    { return nil }
