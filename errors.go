package boulder

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// ErrorKind classifies decode failures.
type ErrorKind int

const (
	// BitstreamConformance: a decoded value violates a bitstream requirement.
	BitstreamConformance ErrorKind = iota
	// ResourceExhaustion: a bounded structure would overflow. Legal streams never do this.
	ResourceExhaustion
	// InternalInvariant: the decoder itself is inconsistent.
	InternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case BitstreamConformance:
		return "bitstream conformance"
	case ResourceExhaustion:
		return "resource exhaustion"
	case InternalInvariant:
		return "internal invariant"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// DecodeError reports a fatal tile failure with its location in mode info units.
type DecodeError struct {
	Kind  ErrorKind
	Field string
	MiRow int
	MiCol int
	Msg   string
	Err   error
}

func (e *DecodeError) Error() string {
	s := fmt.Sprintf("%s: %s at mi (%d, %d): %s", e.Kind, e.Field, e.MiRow, e.MiCol, e.Msg)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError extracts the *DecodeError from a possibly wrapped error.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// abort unwinds the current tile. It is recovered in Tile.Decode.
func abort(kind ErrorKind, field string, row, col int, format string, args ...any) {
	panic(&DecodeError{
		Kind:  kind,
		Field: field,
		MiRow: row,
		MiCol: col,
		Msg:   fmt.Sprintf(format, args...),
	})
}

// recoverDecodeError converts an abort into err. Runtime errors raised while
// decoding (a table index out of range, say) become InternalInvariant failures;
// any other panic is re-raised.
func recoverDecodeError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *DecodeError:
		*err = errors.WithStack(v)
	case runtime.Error:
		*err = errors.WithStack(&DecodeError{Kind: InternalInvariant, Field: "tile", Msg: "runtime error", Err: v})
	default:
		panic(r)
	}
}
