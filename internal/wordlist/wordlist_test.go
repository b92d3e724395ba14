package wordlist_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykhdr/dict-crack/internal/wordlist"
)

func TestRead_line_terminators(t *testing.T) {
	t.Parallel()

	words, stats, err := wordlist.Read(strings.NewReader("alpha\r\nbeta\n\ngamma"))

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "", "gamma"}, words)
	assert.Equal(t, 4, stats.Lines)
	assert.Zero(t, stats.Skipped)
}

func TestRead_trailing_newline(t *testing.T) {
	t.Parallel()

	words, _, err := wordlist.Read(strings.NewReader("one\ntwo\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, words)
}

func TestRead_empty(t *testing.T) {
	t.Parallel()

	words, stats, err := wordlist.Read(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, words)
	assert.Zero(t, stats.Lines)
}

func TestRead_skips_invalid_utf8(t *testing.T) {
	t.Parallel()

	words, stats, err := wordlist.Read(strings.NewReader("good\n\xff\xfebad\nmore good\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"good", "more good"}, words)
	assert.Equal(t, 3, stats.Lines)
	assert.Equal(t, 1, stats.Skipped)
}

func TestRead_keeps_surrounding_spaces(t *testing.T) {
	t.Parallel()

	words, _, err := wordlist.Read(strings.NewReader(" pass word \n"))

	require.NoError(t, err)
	assert.Equal(t, []string{" pass word "}, words)
}

func TestRead_io_failure(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk on fire")
	_, _, err := wordlist.Read(iotest.ErrReader(cause))

	require.Error(t, err)
	assert.True(t, errors.Is(err, wordlist.ErrUnreadable))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestLoad_file(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("123456\npassword\nletmein\n"), 0o600))

	words, stats, err := wordlist.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"123456", "password", "letmein"}, words)
	assert.Equal(t, 3, stats.Lines)
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, _, err := wordlist.Load(filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, wordlist.ErrUnreadable))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "no such file")
}
