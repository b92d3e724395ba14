package kdl

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sblinch/kdl-go"
)

// Unmarshal reads the KDL document at path and decodes it over defaults.
// Nodes missing from the document keep their default values.
func Unmarshal[T any](path string, defaults T) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return Decode(f, defaults)
}

func Decode[T any](r io.Reader, defaults T) (T, error) {
	var zero T
	data, err := io.ReadAll(r)
	if err != nil {
		return zero, errors.Wrap(err, "read config")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return defaults, nil
	}
	if err := kdl.Unmarshal(data, &defaults); err != nil {
		return zero, errors.Wrap(err, "decode config")
	}
	return defaults, nil
}
