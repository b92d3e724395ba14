package hashcrack

import (
	"time"

	"github.com/rs/zerolog"
)

func (s *Service) reportProgress(l zerolog.Logger, race *Race, total int, start time.Time, done <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.ProgressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			attempts := race.Attempts()
			event := l.Info().
				Uint64("attempts", attempts).
				Int("words", total)
			if total > 0 {
				event = event.Float64("percent", float64(attempts)*100/float64(total))
			}
			if secs := time.Since(start).Seconds(); secs > 0 {
				event = event.Float64("rate", float64(attempts)/secs)
			}
			event.Msg("cracking in progress")
		}
	}
}
