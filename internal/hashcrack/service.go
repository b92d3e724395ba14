package hashcrack

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ykhdr/dict-crack/config"
	"github.com/ykhdr/dict-crack/internal/digest"
)

// Service coordinates one dictionary attack per Run: it partitions the
// candidates, races one worker per slice and joins them into a Result.
type Service struct {
	l       zerolog.Logger
	cfg     *config.CrackConfig
	onPhase func(Phase)
}

func NewService(cfg *config.CrackConfig) *Service {
	return &Service{
		cfg: cfg,
		l: log.With().
			Str("domain", "hashcrack").
			Logger(),
	}
}

// Run searches words for a candidate hashing to target under algo. It blocks
// until every worker has returned. When ctx is cancelled the workers are
// stopped, and the partial Result is returned together with the context error
// unless a match was found or every candidate was already tried.
func (s *Service) Run(ctx context.Context, target string, algo digest.Algorithm, words []string) (*Result, error) {
	res := &Result{
		RunID:       uuid.NewString(),
		Algorithm:   algo,
		WinnerSlice: -1,
		Words:       len(words),
	}
	l := s.l.With().
		Str("run-id", res.RunID).
		Str("algorithm", algo.String()).
		Logger()
	target = strings.ToLower(strings.TrimSpace(target))

	s.enter(PhasePartitioning)
	slices := Partition(words, s.cfg.Threads)
	res.Slices = len(slices)
	l.Debug().
		Int("words", len(words)).
		Int("threads", s.cfg.Threads).
		Int("slices", len(slices)).
		Msg("candidates partitioned")

	var race Race
	var group errgroup.Group
	results := make([]sliceResult, len(slices))
	joined := make(chan struct{})
	if ctx.Err() != nil {
		race.Stop()
	}
	go func() {
		select {
		case <-ctx.Done():
			race.Stop()
		case <-joined:
		}
	}()

	s.enter(PhaseRunning)
	start := time.Now()
	for _, sl := range slices {
		sl := sl
		group.Go(func() error {
			word, ok := Crack(sl, target, algo, &race)
			results[sl.Index] = sliceResult{word: word, found: ok}
			return nil
		})
	}
	if s.cfg.ProgressInterval > 0 {
		go s.reportProgress(l, &race, len(words), start, joined)
	}
	s.enter(PhaseJoining)
	// workers never return an error
	_ = group.Wait()
	res.Elapsed = time.Since(start)
	close(joined)

	s.enter(PhaseReporting)
	res.Attempts = race.Attempts()
	res.Word, res.WinnerSlice = resolve(results)
	res.Found = res.WinnerSlice >= 0

	event := l.Debug()
	if res.Found {
		event = event.Str("word", res.Word).Int("slice", res.WinnerSlice)
	}
	event.
		Bool("found", res.Found).
		Uint64("attempts", res.Attempts).
		Dur("elapsed", res.Elapsed).
		Msg("workers joined")

	exhausted := res.Attempts >= uint64(res.Words)
	if err := ctx.Err(); err != nil && !res.Found && !exhausted {
		l.Warn().Err(err).Uint64("attempts", res.Attempts).Msg("Crack run interrupted")
		return res, errors.Wrap(err, "crack run interrupted")
	}
	return res, nil
}
