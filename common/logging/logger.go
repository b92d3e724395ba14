package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Level zerolog.Level

const InfoLevel = Level(zerolog.InfoLevel)

// Output receives every log line. Standard output is reserved for the report.
var Output io.Writer = os.Stderr

func (l Level) toZerolog() zerolog.Level {
	return zerolog.Level(l)
}

func Setup(level Level) {
	zerolog.SetGlobalLevel(level.toZerolog())
	ctx := zerolog.
		New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = Output
			w.TimeFormat = time.TimeOnly
			if level.toZerolog() <= zerolog.DebugLevel {
				w.TimeFormat = time.RFC3339
			}
		})).
		With().
		Timestamp()
	if level.toZerolog() <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
}

func ParseLevel(lvl string) Level {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(lvl))
	if err != nil || parsedLevel == zerolog.NoLevel {
		return Level(zerolog.InfoLevel)
	}
	return Level(parsedLevel)
}
