// Command dupetime cross-checks and times the encode strategies on a large
// generated input.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/tener/dupencode"
	"gonum.org/v1/gonum/stat"
)

type variant struct {
	name string
	enc  *dupencode.Encoder
}

var fixtures = []struct {
	in, want string
}{
	{"din", "((("},
	{"recede", "()()()"},
	{"Success", ")())())"},
	{"(( @", "))(("},
}

func main() {
	size := flag.Int("size", 1_000_000, "length of the generated input")
	runs := flag.Int("runs", 10, "timed repetitions per variant")
	seed := flag.Int64("seed", 42, "seed for the input generator")
	chunk := flag.Int("chunk", 64<<10, "chunk size for the parallel variant")
	flag.Parse()

	variants := []variant{
		mustVariant("sequential", dupencode.WithSequential()),
		mustVariant("parallel", dupencode.WithParallel(*chunk)),
		mustVariant("parallel_small", dupencode.WithParallel(max(*chunk/8, 1))),
	}

	ctx := context.Background()

	// Every variant has to pass the reference fixtures before it is timed.
	for _, v := range variants {
		for _, f := range fixtures {
			got, err := v.enc.Encode(ctx, f.in)
			if err != nil {
				log.Fatalf("%s: encode %q: %v", v.name, f.in, err)
			}
			if got != f.want {
				log.Fatalf("%s: encode %q = %q, want %q", v.name, f.in, got, f.want)
			}
		}
	}

	log.Printf("generating %d random characters (seed %d)", *size, *seed)
	input := randomInput(*seed, *size)

	// All variants must agree on the generated input.
	control, err := variants[0].enc.Encode(ctx, input)
	if err != nil {
		log.Fatalf("%s: %v", variants[0].name, err)
	}
	for _, v := range variants[1:] {
		got, err := v.enc.Encode(ctx, input)
		if err != nil {
			log.Fatalf("%s: %v", v.name, err)
		}
		if got != control {
			log.Fatalf("%s disagrees with %s on the generated input", v.name, variants[0].name)
		}
	}

	fmt.Printf("timing %d runs of %d characters per variant\n", *runs, *size)
	for _, v := range variants {
		secs := make([]float64, *runs)
		for r := range secs {
			start := time.Now()
			_, _ = v.enc.Encode(ctx, input)
			secs[r] = time.Since(start).Seconds()
		}
		fmt.Printf("%-16s | mean %8.4fs | stddev %8.4fs\n",
			v.name, stat.Mean(secs, nil), stat.StdDev(secs, nil))
	}
}

func mustVariant(name string, opts ...dupencode.Option) variant {
	enc, err := dupencode.New(opts...)
	if err != nil {
		log.Fatalf("failed to build %s encoder: %v", name, err)
	}
	return variant{name: name, enc: enc}
}

// randomInput generates size characters drawn uniformly from '0'..'z',
// deterministically for a given seed.
func randomInput(seed int64, size int) string {
	rd := rand.New(rand.NewSource(seed))
	b := make([]byte, size)
	for i := range b {
		b[i] = byte('0') + byte(rd.Intn(int('z'-'0')+1))
	}
	return string(b)
}
