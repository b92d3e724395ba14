package app

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ykhdr/dict-crack/config"
	"github.com/ykhdr/dict-crack/internal/digest"
	"github.com/ykhdr/dict-crack/internal/hashcrack"
	"github.com/ykhdr/dict-crack/internal/report"
	"github.com/ykhdr/dict-crack/internal/wordlist"
)

// App runs a single dictionary attack described by a CrackConfig and writes
// the report to out.
type App struct {
	l       zerolog.Logger
	cfg     *config.CrackConfig
	printer *report.Printer
	service *hashcrack.Service
	phase   hashcrack.Phase
}

func New(cfg *config.CrackConfig, out io.Writer) *App {
	a := &App{
		cfg:     cfg,
		printer: report.New(out, cfg.NoFormatting, cfg.Quiet),
		service: hashcrack.NewService(cfg),
		l: log.With().
			Str("domain", "app").
			Logger(),
	}
	a.service.OnPhase(func(p hashcrack.Phase) { a.phase = p })
	return a
}

// Phase returns the last phase the app entered, empty before Run.
func (a *App) Phase() hashcrack.Phase {
	return a.phase
}

// Run executes the attack. Algorithm and wordlist errors are returned before
// any worker is started. An interrupted run still reports its partial
// statistics, then the context error is returned.
func (a *App) Run(ctx context.Context) (*hashcrack.Result, error) {
	a.phase = hashcrack.PhaseLoading
	algo, err := digest.Resolve(a.cfg.Hash, a.cfg.Algorithm)
	if err != nil {
		a.l.Warn().Err(err).Int("length", len(a.cfg.Hash)).Msg("Unsupported hash")
		return nil, errors.Wrap(err, "detect algorithm")
	}
	a.printer.Banner()
	a.printer.Header(report.Header{
		Target:    a.cfg.Hash,
		Algorithm: algo,
		Wordlist:  a.cfg.WordlistPath,
		Threads:   a.cfg.Threads,
	})

	words, stats, err := wordlist.Load(a.cfg.WordlistPath)
	if err != nil {
		a.l.Warn().Err(err).Str("path", a.cfg.WordlistPath).Msg("Error load wordlist")
		return nil, errors.Wrap(err, "load wordlist")
	}
	a.l.Debug().
		Int("words", len(words)).
		Int("skipped", stats.Skipped).
		Msg("wordlist loaded")
	a.printer.Loaded(len(words), stats.Skipped)

	res, err := a.service.Run(ctx, a.cfg.Hash, algo, words)
	if err != nil {
		a.printer.Interrupted()
		a.printer.Statistics(res)
		return res, err
	}
	a.printer.Result(res, a.cfg.Hash)
	return res, nil
}
