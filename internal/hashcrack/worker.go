package hashcrack

import (
	"sync/atomic"

	"github.com/ykhdr/dict-crack/internal/digest"
)

// Race is the state shared by every worker of one run: the found flag and the
// attempt counter. The zero value is ready to use.
type Race struct {
	found    atomic.Bool
	attempts atomic.Uint64
}

func (r *Race) Found() bool {
	return r.found.Load()
}

// Stop raises the found flag without a winner so that workers halt at their
// next candidate.
func (r *Race) Stop() {
	r.found.Store(true)
}

func (r *Race) Attempts() uint64 {
	return r.attempts.Load()
}

// Crack scans s in order and returns the first word whose digest equals
// target. It gives up as soon as another worker has raised the found flag.
// target must be lowercase.
func Crack(s Slice, target string, algo digest.Algorithm, r *Race) (string, bool) {
	for _, word := range s.Words {
		if r.found.Load() {
			return "", false
		}
		r.attempts.Add(1)
		if algo.Match(word, target) {
			r.found.Store(true)
			return word, true
		}
	}
	return "", false
}
