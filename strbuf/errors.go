package strbuf

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidBuffer ErrKind = iota // nil, released or corrupt buffer
	ErrKindCapacity                     // capacity below the current size
	ErrKindAllocation                   // storage growth could not be satisfied
	ErrKindArgument                     // structurally invalid argument
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidBuffer:
		return "invalid buffer"
	case ErrKindCapacity:
		return "capacity too small"
	case ErrKindAllocation:
		return "allocation failed"
	case ErrKindArgument:
		return "invalid argument"
	default:
		return "unknown"
	}
}

// Error is a typed error carrying the failing operation and an optional cause.
type Error struct {
	Kind ErrKind
	Op   string // operation name, e.g. "reserve"
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := "strbuf: "
	if e.Op != "" {
		s += e.Op + ": "
	}
	s += e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrCapacityTooSmall) holds for any capacity failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is comparisons.
var (
	// ErrInvalidBuffer indicates a nil, released or corrupt buffer (size > capacity).
	ErrInvalidBuffer = &Error{Kind: ErrKindInvalidBuffer, Msg: ErrKindInvalidBuffer.String()}
	// ErrCapacityTooSmall indicates a Reserve below the buffer's current size.
	ErrCapacityTooSmall = &Error{Kind: ErrKindCapacity, Msg: ErrKindCapacity.String()}
	// ErrAllocationFailed indicates storage growth beyond what the registry allows.
	ErrAllocationFailed = &Error{Kind: ErrKindAllocation, Msg: ErrKindAllocation.String()}
	// ErrArgument indicates an argument the operation cannot work with.
	ErrArgument = &Error{Kind: ErrKindArgument, Msg: ErrKindArgument.String()}
)
