package textio

import "fmt"

// String returns the name of d.
// If d implements [fmt.Stringer], returns the result of String().
// Otherwise, returns the type in angle brackets (e.g., "<*pkg.Type>").
func String(d Device) string {
	if s, ok := d.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("<%T>", d)
}
