package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ykhdr/dict-crack/config"
	"github.com/ykhdr/dict-crack/internal/app"
	"github.com/ykhdr/dict-crack/internal/report"
)

const (
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.InitializeConfig(args)
	if err != nil {
		p := report.New(stderr, true, false)
		p.Failure(err)
		if errors.Is(err, config.ErrUsage) {
			p.Usage(config.FlagUsages())
		}
		return exitFailure
	}
	if cfg.Help {
		report.New(stdout, cfg.NoFormatting, false).Usage(config.FlagUsages())
		return 0
	}

	_, err = app.New(cfg, stdout).Run(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		log.Warn().Msg("Interrupted")
		return exitInterrupted
	default:
		log.Error().Err(err).Msg("Crack failed")
		report.New(stderr, cfg.NoFormatting, false).Failure(err)
		return exitFailure
	}
}
