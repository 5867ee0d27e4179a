package types

import "errors"

// Validation diagnostics. A validator that returns one of these has already
// replaced the input with the field's sentinel; the write itself succeeds.
var (
	ErrInvalidPhone  = errors.New("wrong number format")
	ErrInvalidDate   = errors.New("bad birth date")
	ErrInvalidGender = errors.New("bad gender")
)

// Catalog errors.
var (
	ErrIndexOutOfRange = errors.New("record index out of range")
	ErrNilRecord       = errors.New("record is nil")
)

// Document errors, returned by the codec and the stores.
var (
	ErrMalformedDocument = errors.New("malformed catalog document")
	ErrUnknownKind       = errors.New("unknown record kind")
	ErrMissingField      = errors.New("missing required field")
)
