package bench_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/tener/dupencode"
)

// BenchmarkEncode_1MB compares the emit strategies on a 1 MiB ASCII input.
func BenchmarkEncode_1MB(b *testing.B) {
	test := []struct {
		name string
		opts []dupencode.Option
	}{
		{name: "sequential", opts: []dupencode.Option{
			dupencode.WithSequential(),
		}},
		{name: "parallel_16k", opts: []dupencode.Option{
			dupencode.WithParallel(16 << 10),
		}},
		{name: "parallel_64k", opts: []dupencode.Option{
			dupencode.WithParallel(64 << 10),
		}},
		{name: "parallel_256k", opts: []dupencode.Option{
			dupencode.WithParallel(256 << 10),
		}},
	}

	input := randomASCII(1 << 20)
	ctx := b.Context()

	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			e, err := dupencode.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Encoder (%s): %v", tt.name, err)
			}
			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := e.Encode(ctx, input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEncode_Multibyte exercises the rune path on non-ASCII input.
func BenchmarkEncode_Multibyte(b *testing.B) {
	test := []struct {
		name string
		opts []dupencode.Option
	}{
		{name: "sequential", opts: []dupencode.Option{
			dupencode.WithSequential(),
		}},
		{name: "parallel_64k", opts: []dupencode.Option{
			dupencode.WithParallel(64 << 10),
		}},
	}

	input := strings.Repeat("Übermäßig schneller Fuchs, 素早い茶色の狐。", 8<<10)
	ctx := b.Context()

	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			e, err := dupencode.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Encoder (%s): %v", tt.name, err)
			}
			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := e.Encode(ctx, input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func randomASCII(n int) string {
	rd := rand.New(rand.NewSource(42))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0') + byte(rd.Intn(int('z'-'0')+1))
	}
	return string(b)
}
