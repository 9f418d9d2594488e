// Package dupencode marks which characters of a string repeat.
//
// Each rune of the input maps to exactly one output marker: '(' when the
// rune occurs once in the input ignoring case, ')' when it occurs again
// elsewhere. "Success" encodes to ")())())".
package dupencode

import (
	"context"
	"sync"

	"github.com/tener/dupencode/internal/fold"
	"github.com/tener/dupencode/internal/freq"
)

// Default marker symbols.
const (
	MarkerUnique    byte = '('
	MarkerDuplicate byte = ')'
)

// Encode returns the duplicate encoding of src using the default markers.
// This is a convenience function that creates an Encoder and calls its
// Encode method; it is total and never fails.
func Encode(src string) string {
	e, _ := New()
	out, _ := e.Encode(context.Background(), src)
	return out
}

// Encoder produces duplicate encodings with a configurable marker pair
// and emit strategy. The zero configuration encodes sequentially with
// '(' and ')'.
type Encoder struct {
	unique    byte
	duplicate byte
	// chunkSize > 0 switches the emit pass to a goroutine fan-out over
	// fixed-size chunks of the output buffer.
	chunkSize int
}

// New initializes an Encoder with the given options.
func New(opts ...Option) (*Encoder, error) {
	e := new(Encoder)
	if err := e.init(opts...); err != nil {
		return nil, err
	}
	return e, nil
}

// Encode maps every rune of src to one marker byte.
//
// Process:
//  1. Counts occurrences of every case-folded rune in a single pass.
//  2. Iterates src again, emitting the unique marker for count 1 and the
//     duplicate marker otherwise.
//
// The output has exactly one byte per input rune, so for ASCII input its
// length equals len(src). The context is observed only by the parallel
// strategy, between chunks.
func (e *Encoder) Encode(ctx context.Context, src string) (string, error) {
	if len(src) == 0 {
		return "", nil
	}
	table := freq.Count(src)
	if e.chunkSize > 0 {
		return e.encodeParallel(ctx, src, table)
	}
	return e.encodeSequential(src, table), nil
}

func (e *Encoder) init(opts ...Option) error {
	e.unique = MarkerUnique
	e.duplicate = MarkerDuplicate
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) marker(count int) byte {
	if count == 1 {
		return e.unique
	}
	return e.duplicate
}

func (e *Encoder) encodeSequential(src string, table *freq.Table) string {
	if fold.IsASCII(src) {
		out := make([]byte, len(src))
		for i := 0; i < len(src); i++ {
			out[i] = e.marker(table.OfByte(src[i]))
		}
		return string(out)
	}
	out := make([]byte, 0, len(src))
	for _, r := range src {
		out = append(out, e.marker(table.Of(r)))
	}
	return string(out)
}

// encodeParallel writes disjoint chunks of the output buffer from separate
// goroutines. Non-ASCII input is decoded to runes first so a chunk boundary
// cannot split a rune.
func (e *Encoder) encodeParallel(ctx context.Context, src string, table *freq.Table) (string, error) {
	ascii := fold.IsASCII(src)
	var runes []rune
	n := len(src)
	if !ascii {
		runes = []rune(src)
		n = len(runes)
	}
	out := make([]byte, n)

	var wg sync.WaitGroup
	var canceled bool
	for lo := 0; lo < n; lo += e.chunkSize {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		hi := min(lo+e.chunkSize, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			if ascii {
				for i := lo; i < hi; i++ {
					out[i] = e.marker(table.OfByte(src[i]))
				}
				return
			}
			for i := lo; i < hi; i++ {
				out[i] = e.marker(table.Of(runes[i]))
			}
		}(lo, hi)
	}
	wg.Wait()
	if canceled {
		return "", ctx.Err()
	}
	return string(out), nil
}
