package dupencode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tener/dupencode"
)

func TestOptions(t *testing.T) {
	t.Run("WithMarkers", func(t *testing.T) {
		test := []struct {
			name              string
			unique, duplicate byte
			wantErr           error
		}{
			{"valid", '1', '0', nil},
			{"equal markers", 'x', 'x', dupencode.ErrInvalidMarkers},
			{"control character", '\n', ')', dupencode.ErrInvalidMarkers},
			{"non-ascii", 0xff, ')', dupencode.ErrInvalidMarkers},
		}
		for _, tt := range test {
			t.Run(tt.name, func(t *testing.T) {
				_, err := dupencode.New(dupencode.WithMarkers(tt.unique, tt.duplicate))
				if tt.wantErr == nil {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("WithParallel", func(t *testing.T) {
		for _, chunk := range []int{0, -1} {
			_, err := dupencode.New(dupencode.WithParallel(chunk))
			assert.ErrorIs(t, err, dupencode.ErrInvalidChunkSize)
		}
		_, err := dupencode.New(dupencode.WithParallel(1))
		assert.NoError(t, err)
	})
}
