package hashcrack

import (
	"time"

	"github.com/ykhdr/dict-crack/internal/digest"
)

// Result describes one finished run. WinnerSlice is the index of the slice
// that produced Word, -1 if none did.
type Result struct {
	RunID       string
	Algorithm   digest.Algorithm
	Found       bool
	Word        string
	WinnerSlice int
	Attempts    uint64
	Words       int
	Slices      int
	Elapsed     time.Duration
}

// Throughput returns hashes per second. ok is false when no time elapsed.
func (r *Result) Throughput() (rate float64, ok bool) {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0, false
	}
	return float64(r.Attempts) / secs, true
}

type sliceResult struct {
	word  string
	found bool
}

// resolve picks the match of the lowest slice index.
func resolve(results []sliceResult) (string, int) {
	for i, res := range results {
		if res.found {
			return res.word, i
		}
	}
	return "", -1
}
