package types

import "fmt"

// Diagnostic describes a field write whose input was replaced by a sentinel.
// Writing the sentinel itself produces no diagnostic.
type Diagnostic struct {
	Kind  Kind   // Kind of the record that was written.
	Field string // Dispatch name of the field, e.g. "birth".
	Input string // Raw input as supplied by the caller.
	Err   error  // One of the validation errors (ErrInvalidPhone, ...).
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %v (input %q)", d.Kind, d.Field, d.Err, d.Input)
}

// DiagnosticFunc receives diagnostics as they happen. A nil DiagnosticFunc
// discards them.
type DiagnosticFunc func(Diagnostic)
