package dupmark

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

type (
	// Option selects the codec applied when a mask is packed into words.
	Option func(*maskFactory)

	maskFactory struct {
		c codec
	}

	codec interface {
		encode(words []uint64, size int) ([]uint64, int)
		decode(words []uint64, size int) *bitstream.BitReader[uint64]
		encodedBits(size int) int
	}
)

func (mf *maskFactory) init(opts ...Option) {
	for _, opt := range opts {
		opt(mf)
	}
	if mf.c == nil {
		mf.c = rawCodec{}
	}
}

// WithoutECC packs the mask bits as-is. This is the default.
func WithoutECC() Option {
	return func(mf *maskFactory) {
		mf.c = rawCodec{}
	}
}

// WithGolay protects the packed mask with a Golay code and shuffles the
// encoded bits deterministically with the given seed so burst errors spread
// across code words.
func WithGolay(seed int64) Option {
	return func(mf *maskFactory) {
		mf.c = golayCodec(seed)
	}
}

var _ codec = (*rawCodec)(nil)

type rawCodec struct{}

func (rawCodec) encode(words []uint64, size int) ([]uint64, int) {
	return words, size
}

func (rawCodec) decode(words []uint64, size int) *bitstream.BitReader[uint64] {
	r := bitstream.NewBitReader(words, 0, 0)
	r.SetBits(size)
	return r
}

func (rawCodec) encodedBits(size int) int {
	return size
}

var _ codec = (*golayCodec)(nil)

type golayCodec int64

func (gc golayCodec) encode(words []uint64, size int) ([]uint64, int) {
	if size == 0 {
		return nil, 0
	}
	if size > len(words)*64 {
		panic("size exceeds word data length")
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(words, size)
	bits := enc.Bits()

	// Apply permutation
	index := gc.permutation(bits)
	r := bitstream.NewBitReader(encoded, 0, 0)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		bit, _ := r.ReadBitAt(index[i])
		w.WriteBitAt(i, bit)
	}
	return w.Data(), bits
}

func (gc golayCodec) decode(words []uint64, size int) *bitstream.BitReader[uint64] {
	if size == 0 {
		r := bitstream.NewBitReader([]uint64{}, 0, 0)
		r.SetBits(0)
		return r
	}
	bits := gc.encodedBits(size)

	// Apply inverse permutation
	index := gc.permutation(bits)
	r := bitstream.NewBitReader(words, 0, 0)
	r.SetBits(bits)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		bit, _ := r.ReadBitAt(i)
		w.WriteBitAt(index[i], bit)
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	rd := bitstream.NewBitReader(decoded, 0, 0)
	rd.SetBits(size)
	return rd
}

func (gc golayCodec) encodedBits(size int) int {
	return golay.EncodedBits(size)
}

func (gc golayCodec) permutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(gc)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
