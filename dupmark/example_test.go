package dupmark_test

import (
	"fmt"

	"github.com/tener/dupencode/dupmark"
)

func Example() {
	// Pack the duplicate mask with error correction for transport.
	m := dupmark.New("Success", dupmark.WithGolay(dupmark.DefaultShuffleSeed))
	words := m.Words()

	// The receiver reconstructs the mask from the words alone.
	got, err := dupmark.Unpack(words, m.Size(), dupmark.WithGolay(dupmark.DefaultShuffleSeed))
	if err != nil {
		fmt.Printf("Error unpacking mask: %v\n", err)
		return
	}
	fmt.Println(got.Markers())
	// Output: )())())
}
