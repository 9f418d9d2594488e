package freq

import "github.com/tener/dupencode/internal/fold"

const asciiMax = 256

// Table counts case-folded rune occurrences in a single input string.
// Runes below asciiMax are counted in a fixed array; anything wider lands
// in the overflow map.
type Table struct {
	ascii [asciiMax]int
	other map[rune]int
}

// Count builds the frequency table of src in one pass.
func Count(src string) *Table {
	t := new(Table)
	if fold.IsASCII(src) {
		for i := 0; i < len(src); i++ {
			t.ascii[fold.Byte(src[i])]++
		}
		return t
	}
	t.other = make(map[rune]int)
	for _, r := range src {
		r = fold.Rune(r)
		if r < asciiMax {
			t.ascii[r]++
		} else {
			t.other[r]++
		}
	}
	return t
}

// Of returns the number of occurrences of the case-folded form of r.
func (t *Table) Of(r rune) int {
	r = fold.Rune(r)
	if r < asciiMax {
		return t.ascii[r]
	}
	if t.other == nil {
		return 0
	}
	return t.other[r]
}

// OfByte is the fast path of Of for inputs known to be pure ASCII.
func (t *Table) OfByte(b byte) int {
	return t.ascii[fold.Byte(b)]
}

// Distinct returns the number of distinct case-folded runes counted.
func (t *Table) Distinct() int {
	n := len(t.other)
	for _, c := range t.ascii {
		if c > 0 {
			n++
		}
	}
	return n
}
