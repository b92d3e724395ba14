package kdl_test

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykhdr/dict-crack/common/internal/kdl"
)

type settings struct {
	Threads int    `kdl:"threads"`
	Level   string `kdl:"log-level"`
}

func TestDecode_keeps_defaults(t *testing.T) {
	t.Parallel()

	got, err := kdl.Decode(strings.NewReader("threads 8\n"), settings{Threads: 4, Level: "info"})

	require.NoError(t, err)
	assert.Equal(t, settings{Threads: 8, Level: "info"}, got)
}

func TestDecode_empty_document(t *testing.T) {
	t.Parallel()

	got, err := kdl.Decode(strings.NewReader("  \n"), settings{Threads: 4})

	require.NoError(t, err)
	assert.Equal(t, 4, got.Threads)
}

func TestDecode_read_error(t *testing.T) {
	t.Parallel()

	_, err := kdl.Decode(iotest.ErrReader(assert.AnError), settings{})

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUnmarshal_missing_file(t *testing.T) {
	t.Parallel()

	_, err := kdl.Unmarshal(t.TempDir()+"/absent.kdl", settings{})

	assert.Error(t, err)
}
