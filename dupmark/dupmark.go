// Package dupmark packs duplicate encodings into bit masks.
//
// A duplicate encoding carries one bit per rune, so the marker string
// packs 8:1 into uint64 words. WithGolay additionally protects the packed
// words with a Golay code and a seeded bit shuffle, for masks that travel
// over channels that may flip bits.
package dupmark

import (
	"errors"
	"fmt"

	"github.com/tener/dupencode"
	"github.com/tener/dupencode/internal/freq"
	"github.com/yyyoichi/bitstream-go"
)

var (
	// DefaultShuffleSeed seeds WithGolay when callers have no seed of
	// their own.
	DefaultShuffleSeed int64 = 1234567890

	ErrSizeMismatch = errors.New("packed words do not match mask size")
)

// Encode returns the duplicate mask of src: true at positions whose rune
// repeats in src ignoring case.
func Encode(src string) []bool {
	table := freq.Count(src)
	mask := make([]bool, 0, len(src))
	for _, r := range src {
		mask = append(mask, table.Of(r) > 1)
	}
	return mask
}

// Decode renders a mask in its marker-string form.
func Decode(mask []bool) string {
	out := make([]byte, len(mask))
	for i, dup := range mask {
		if dup {
			out[i] = dupencode.MarkerDuplicate
		} else {
			out[i] = dupencode.MarkerUnique
		}
	}
	return string(out)
}

// Mask is the duplicate mask of one input string together with the codec
// used to pack it into words.
type Mask struct {
	mask []bool
	mf   maskFactory
}

// New computes the duplicate mask of src.
// The mask packs raw by default; pass WithGolay for error correction.
func New(src string, opts ...Option) *Mask {
	m := &Mask{mask: Encode(src)}
	m.mf.init(opts...)
	return m
}

// Size returns the mask length in bits, one per input rune.
func (m *Mask) Size() int {
	return len(m.mask)
}

// Len returns the number of bits Words carries, including any ECC overhead.
func (m *Mask) Len() int {
	return m.mf.c.encodedBits(len(m.mask))
}

// Bit reports whether the rune at position at repeats.
func (m *Mask) Bit(at int) bool {
	return m.mask[at]
}

// Markers renders the mask as a duplicate-encoded marker string.
func (m *Mask) Markers() string {
	return Decode(m.mask)
}

// Words packs the mask through the configured codec.
func (m *Mask) Words() []uint64 {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range m.mask {
		w.WriteBool(v)
	}
	words, _ := m.mf.c.encode(w.Data(), len(m.mask))
	return words
}

// Unpack reverses Words. size is the original mask length in bits, and the
// options must match the ones the words were packed with.
func Unpack(words []uint64, size int, opts ...Option) (*Mask, error) {
	var mf maskFactory
	mf.init(opts...)
	if need := (mf.c.encodedBits(size) + 63) / 64; len(words) < need {
		return nil, fmt.Errorf("%w: have %d words, need %d", ErrSizeMismatch, len(words), need)
	}
	r := mf.c.decode(words, size)
	mask := make([]bool, size)
	for i := range mask {
		bit, err := r.ReadBitAt(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read mask bit %d: %w", i, err)
		}
		mask[i] = bit
	}
	return &Mask{mask: mask, mf: mf}, nil
}
