package strbuf

import (
	"io"
	"log/slog"
)

// DefaultMaxCapacity is the largest capacity a registry hands out unless
// configured otherwise (1 GiB).
const DefaultMaxCapacity = 1 << 30

// Options configures a Registry.
type Options struct {
	// MaxCapacity bounds the capacity of any buffer the registry creates or
	// grows. Requests above it fail with ErrAllocationFailed. Values <= 0 mean
	// DefaultMaxCapacity.
	MaxCapacity int

	// Logger receives failure diagnostics. Nil means the package logger (see
	// SetLogger).
	Logger *slog.Logger
}

// DefaultOptions returns the options used by NewRegistry(nil) and Default.
func DefaultOptions() Options {
	return Options{MaxCapacity: DefaultMaxCapacity}
}

func (o Options) maxCapacity() int {
	if o.MaxCapacity <= 0 {
		return DefaultMaxCapacity
	}
	return o.MaxCapacity
}

var pkgLogger = discardLogger()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger installs the package logger used by registries without their own
// Options.Logger. Passing nil discards all output, which is the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	pkgLogger = l
}
