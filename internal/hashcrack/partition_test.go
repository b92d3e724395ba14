package hashcrack_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykhdr/dict-crack/internal/hashcrack"
)

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("word-%d", i)
	}
	return out
}

func TestPartition_reassembles_list(t *testing.T) {
	t.Parallel()

	for l := 0; l <= 40; l++ {
		for w := 1; w <= 12; w++ {
			list := words(l)
			slices := hashcrack.Partition(list, w)

			var joined []string
			for i, sl := range slices {
				assert.Equal(t, i, sl.Index)
				assert.NotEmpty(t, sl.Words, "L=%d W=%d slice %d", l, w, i)
				joined = append(joined, sl.Words...)
			}
			assert.Equal(t, l, len(joined), "L=%d W=%d", l, w)
			if l > 0 {
				assert.Equal(t, list, joined, "L=%d W=%d", l, w)
			}
			assert.LessOrEqual(t, len(slices), w, "L=%d W=%d", l, w)
		}
	}
}

func TestPartition_slice_sizes(t *testing.T) {
	t.Parallel()

	slices := hashcrack.Partition(words(10), 4)

	require.Len(t, slices, 4)
	assert.Len(t, slices[0].Words, 3)
	assert.Len(t, slices[1].Words, 3)
	assert.Len(t, slices[2].Words, 3)
	assert.Len(t, slices[3].Words, 1)
}

func TestPartition_fewer_slices_than_workers(t *testing.T) {
	t.Parallel()

	assert.Len(t, hashcrack.Partition(words(3), 8), 3)
	// ceil(5/4) = 2 leaves only three chunks for four workers
	assert.Len(t, hashcrack.Partition(words(5), 4), 3)
}

func TestPartition_huge_worker_count(t *testing.T) {
	t.Parallel()

	var slices []hashcrack.Slice
	require.NotPanics(t, func() {
		slices = hashcrack.Partition([]string{"a", "b", "c"}, math.MaxInt)
	})
	require.Len(t, slices, 3)
	for i, sl := range slices {
		assert.Len(t, sl.Words, 1, "slice %d", i)
	}
}

func TestPartition_empty_and_degenerate(t *testing.T) {
	t.Parallel()

	assert.Empty(t, hashcrack.Partition(nil, 4))
	assert.Empty(t, hashcrack.Partition([]string{}, 1))

	slices := hashcrack.Partition(words(7), 0)
	require.Len(t, slices, 1)
	assert.Len(t, slices[0].Words, 7)
}

func TestPartition_slices_do_not_grow_into_neighbours(t *testing.T) {
	t.Parallel()

	list := words(6)
	slices := hashcrack.Partition(list, 3)

	first := append(slices[0].Words, "extra")
	assert.Equal(t, "extra", first[2])
	assert.Equal(t, "word-2", list[2])
}
