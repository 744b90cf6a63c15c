// Package strbuf provides growable byte-string buffers with explicit size and
// capacity tracking.
//
// # Overview
//
// A Buffer holds a logical size (the number of bytes currently stored) and a
// reserved capacity (the number of bytes of storage backing it). Capacity
// counts one terminator slot, so a buffer created from "test" has Len() == 4
// and Cap() == 5. Any byte at or beyond Len() reads back as zero.
//
// Buffers are created by a Registry, which tracks every buffer it hands out so
// that all of them can be released in one call:
//
//	b, err := strbuf.From("THE CarmesiM PROJECT.")
//	if err != nil {
//	    return err
//	}
//	lower, err := b.ToLower()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(lower) // the carmesim project.
//
//	strbuf.ReleaseAll()
//
// The package-level functions New, From, FromBytes, Load and ReleaseAll use
// the Default registry. Independent registries can be created with
// NewRegistry.
//
// # Growth
//
// Reserve sets a buffer's capacity to an exact value. It never drops content:
// asking for less than Len() fails with ErrCapacityTooSmall, and asking for
// more than Options.MaxCapacity fails with ErrAllocationFailed, leaving the
// buffer untouched. Operations that need more room (Append, Set, Replace) grow
// through Reserve.
//
// # Operations
//
// Non-mutating operations return a new buffer from the same registry:
//
//   - ToLower, ToUpper: ASCII-only case conversion
//   - Concat: b + suffix
//   - Mid, Left, Right: substrings, clipped to Len()
//   - Reverse
//
// Mutating operations work in place:
//
//   - Append, Set
//   - ReplaceChar, Replace
//   - SetAt
//   - Swap (exchanges the storage of two buffers)
//
// Tokenize splits a byte slice on a delimiter string and returns a cursor, so
// two inputs can be tokenized independently.
//
// # Errors
//
// Every operation checks its buffers first (see Buffer.Valid) and reports
// problems through *Error values that match the sentinels ErrInvalidBuffer,
// ErrCapacityTooSmall, ErrAllocationFailed and ErrArgument with errors.Is.
// Failures are also logged at warn level through the logger installed with
// SetLogger or Options.Logger.
//
// # Thread Safety
//
// A Registry may be shared between goroutines. Buffers may not: callers must
// serialize access to each buffer themselves.
package strbuf
