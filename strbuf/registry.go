package strbuf

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/carmesim/libstring/internal/buf"
	"github.com/carmesim/libstring/internal/mmfile"
	"github.com/carmesim/libstring/internal/textenc"
)

// Registry creates buffers and keeps track of every one of them until
// ReleaseAll. Buffers cannot be removed individually.
type Registry struct {
	mu   sync.Mutex
	live []*Buffer
	opts Options
}

// Stats summarizes the buffers currently held by a registry.
type Stats struct {
	Live     int // number of registered buffers
	Size     int // sum of Len() over live buffers
	Reserved int // sum of Cap() over live buffers
}

// Default is the registry behind the package-level New, From, FromBytes,
// Load and ReleaseAll.
var Default = NewRegistry(nil)

// NewRegistry returns an empty registry. A nil opts means DefaultOptions().
func NewRegistry(opts *Options) *Registry {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return &Registry{opts: o}
}

// New returns an empty buffer with room for the terminator only.
func (r *Registry) New() *Buffer {
	b, _ := r.alloc("new", 0, 1)
	return b
}

// From returns a buffer holding a copy of s, sized to fit it exactly
// (Cap() == len(s)+1). An empty s behaves like New.
func (r *Registry) From(s string) (*Buffer, error) {
	b, err := r.allocFit("from", len(s))
	if err != nil {
		return nil, err
	}
	copy(b.value, s)
	return b, nil
}

// FromBytes is like From but copies from a byte slice.
func (r *Registry) FromBytes(p []byte) (*Buffer, error) {
	b, err := r.allocFit("from", len(p))
	if err != nil {
		return nil, err
	}
	copy(b.value, p)
	return b, nil
}

// Load returns a buffer holding the contents of the file at path. When
// charset names a legacy 8-bit encoding (e.g. "windows-1252"), the contents
// are decoded to UTF-8 first; "" and "utf-8" copy the bytes unchanged.
func (r *Registry) Load(path, charset string) (*Buffer, error) {
	const op = "load"
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, r.fail(op, ErrKindArgument, "cannot read "+path, err)
	}
	defer m.Close()

	data, err := textenc.Decode(m.Bytes(), charset)
	if err != nil {
		return nil, r.fail(op, ErrKindArgument, "cannot decode "+path, err)
	}
	return r.FromBytes(data)
}

// ReleaseAll releases every registered buffer and empties the registry. It
// returns the number of buffers released. Released buffers fail Valid and
// every operation on them returns ErrInvalidBuffer.
func (r *Registry) ReleaseAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.live)
	for _, b := range r.live {
		b.value = nil
		b.size = 0
		b.reserved = 0
		b.released = true
	}
	r.live = nil
	if n > 0 {
		r.logger().Debug("released buffers", slog.Int("count", n))
	}
	return n
}

// Len returns the number of registered buffers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Stats returns a snapshot of the registry's buffers.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Stats{Live: len(r.live)}
	for _, b := range r.live {
		s.Size += b.size
		s.Reserved += b.reserved
	}
	return s
}

// allocFit allocates a buffer of size n with capacity n+1.
func (r *Registry) allocFit(op string, n int) (*Buffer, error) {
	capacity, ok := buf.AddOverflowSafe(n, 1)
	if !ok {
		return nil, r.fail(op, ErrKindAllocation, "size overflows int", nil)
	}
	return r.alloc(op, n, capacity)
}

// alloc allocates and registers a zeroed buffer of the given size and
// capacity. Callers fill value[:size].
func (r *Registry) alloc(op string, size, capacity int) (*Buffer, error) {
	if size < 0 || capacity < size {
		return nil, r.fail(op, ErrKindArgument,
			fmt.Sprintf("bad allocation size=%d capacity=%d", size, capacity), nil)
	}
	if limit := r.opts.maxCapacity(); capacity > limit {
		return nil, r.fail(op, ErrKindAllocation,
			fmt.Sprintf("capacity %d exceeds limit %d", capacity, limit), nil)
	}

	b := &Buffer{
		value:    make([]byte, capacity),
		size:     size,
		reserved: capacity,
		reg:      r,
	}

	r.mu.Lock()
	r.live = append(r.live, b)
	r.mu.Unlock()
	return b, nil
}

func (r *Registry) logger() *slog.Logger {
	if r.opts.Logger != nil {
		return r.opts.Logger
	}
	return pkgLogger
}

func (r *Registry) fail(op string, kind ErrKind, msg string, cause error, extra ...any) error {
	attrs := append([]any{slog.String("op", op), slog.String("kind", kind.String())}, extra...)
	if cause != nil {
		attrs = append(attrs, slog.Any("cause", cause))
	}
	r.logger().Warn(msg, attrs...)
	return &Error{Kind: kind, Op: op, Msg: msg, Err: cause}
}

// New returns an empty buffer from the Default registry.
func New() *Buffer { return Default.New() }

// From returns a buffer holding s from the Default registry.
func From(s string) (*Buffer, error) { return Default.From(s) }

// FromBytes returns a buffer holding a copy of p from the Default registry.
func FromBytes(p []byte) (*Buffer, error) { return Default.FromBytes(p) }

// Load reads a file into a buffer from the Default registry.
func Load(path, charset string) (*Buffer, error) { return Default.Load(path, charset) }

// ReleaseAll releases every buffer of the Default registry.
func ReleaseAll() int { return Default.ReleaseAll() }
