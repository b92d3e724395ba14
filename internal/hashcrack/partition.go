package hashcrack

// Slice is a contiguous run of candidates handed to a single worker. Words
// shares its backing array with the full candidate list.
type Slice struct {
	Index int
	Words []string
}

// Partition splits words into at most workers contiguous slices of
// ceil(len(words)/workers) candidates each. The last slice takes the
// remainder, no slice is empty, and an empty list yields no slices.
func Partition(words []string, workers int) []Slice {
	if len(words) == 0 {
		return nil
	}
	workers = max(1, min(workers, len(words)))
	size := (len(words) + workers - 1) / workers
	slices := make([]Slice, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		slices = append(slices, Slice{
			Index: len(slices),
			Words: words[start:end:end],
		})
	}
	return slices
}
