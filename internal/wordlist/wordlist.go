package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// StdinPath makes Load read candidates from standard input.
const StdinPath = "-"

var ErrUnreadable = errors.New("wordlist unreadable")

// readError keeps the underlying I/O error in the chain and matches
// ErrUnreadable.
type readError struct {
	err error
}

func (e *readError) Error() string {
	return ErrUnreadable.Error() + ": " + e.err.Error()
}

func (e *readError) Unwrap() error {
	return e.err
}

func (e *readError) Is(target error) bool {
	return target == ErrUnreadable
}

type Stats struct {
	Lines   int
	Skipped int
}

// Load reads one candidate per line from the file at path. The list is either
// complete or an error wrapping ErrUnreadable is returned.
func Load(path string) ([]string, Stats, error) {
	if path == StdinPath {
		return Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, errors.WithStack(&readError{err: err})
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// Read splits r into candidates. "\n" and "\r\n" terminators are stripped,
// empty lines are kept and lines that are not valid UTF-8 are skipped.
func Read(r io.Reader) ([]string, Stats, error) {
	var (
		words []string
		stats Stats
	)
	l := log.With().Str("domain", "wordlist").Logger()
	br := bufio.NewReaderSize(r, 64<<10)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, stats, errors.WithStack(&readError{err: err})
		}
		if line == "" && err == io.EOF {
			break
		}
		stats.Lines++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			stats.Skipped++
			l.Debug().Int("line", stats.Lines).Msg("skipping undecodable line")
		} else {
			words = append(words, line)
		}
		if err == io.EOF {
			break
		}
	}
	return words, stats, nil
}
