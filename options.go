package dupencode

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMarkers   = errors.New("markers must be two distinct printable ASCII bytes")
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
)

type Option func(*Encoder) error

// WithMarkers replaces the default '(' and ')' marker pair.
// Both markers must be printable ASCII and must differ from each other.
func WithMarkers(unique, duplicate byte) Option {
	return func(e *Encoder) error {
		if unique == duplicate || !printable(unique) || !printable(duplicate) {
			return fmt.Errorf("%w: got %q and %q", ErrInvalidMarkers, unique, duplicate)
		}
		e.unique = unique
		e.duplicate = duplicate
		return nil
	}
}

// WithSequential emits the output in a single pass on the calling goroutine.
// This is the default strategy.
func WithSequential() Option {
	return func(e *Encoder) error {
		e.chunkSize = 0
		return nil
	}
}

// WithParallel splits the output buffer into chunks of chunkSize markers,
// each written by its own goroutine. The frequency pass stays sequential.
// Worth it only for inputs much larger than the chunk size.
func WithParallel(chunkSize int) Option {
	return func(e *Encoder) error {
		if chunkSize < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
		}
		e.chunkSize = chunkSize
		return nil
	}
}

func printable(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
