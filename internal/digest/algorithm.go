package digest

import (
	"strings"

	"github.com/pkg/errors"
)

type Algorithm int

const (
	Unknown Algorithm = iota
	MD5
	SHA1
	SHA256
	SHA512
	SHA224
	SHA384
	SHA3_256
	SHA3_512
	BLAKE2b256
	BLAKE2b512
	BLAKE3
	XXH3_128
)

var ErrUnrecognized = errors.New("unrecognized hash algorithm")

var names = map[Algorithm]string{
	MD5:        "MD5",
	SHA1:       "SHA1",
	SHA256:     "SHA256",
	SHA512:     "SHA512",
	SHA224:     "SHA224",
	SHA384:     "SHA384",
	SHA3_256:   "SHA3-256",
	SHA3_512:   "SHA3-512",
	BLAKE2b256: "BLAKE2b-256",
	BLAKE2b512: "BLAKE2b-512",
	BLAKE3:     "BLAKE3",
	XXH3_128:   "XXH3-128",
}

// hex digest length of every supported algorithm
var hexLens = map[Algorithm]int{
	MD5:        32,
	SHA1:       40,
	SHA256:     64,
	SHA512:     128,
	SHA224:     56,
	SHA384:     96,
	SHA3_256:   64,
	SHA3_512:   128,
	BLAKE2b256: 64,
	BLAKE2b512: 128,
	BLAKE3:     64,
	XXH3_128:   32,
}

func (a Algorithm) String() string {
	if name, ok := names[a]; ok {
		return name
	}
	return "UNKNOWN"
}

func (a Algorithm) HexLen() int {
	return hexLens[a]
}

func (a Algorithm) Valid() bool {
	_, ok := names[a]
	return ok
}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, 0, len(names))
	for a := MD5; a <= XXH3_128; a++ {
		all = append(all, a)
	}
	return all
}

// Detect maps a hex digest to an algorithm by its length alone. Only MD5, SHA1,
// SHA256 and SHA512 are ever detected; the other algorithms share lengths with
// these and must be requested by name.
func Detect(hash string) (Algorithm, error) {
	switch len(hash) {
	case 32:
		return MD5, nil
	case 40:
		return SHA1, nil
	case 64:
		return SHA256, nil
	case 128:
		return SHA512, nil
	default:
		return Unknown, errors.Wrapf(ErrUnrecognized, "hash length %d", len(hash))
	}
}

// Parse resolves an algorithm name. Case and dashes are ignored, so "sha-256",
// "SHA256" and "sha256" are the same algorithm.
func Parse(name string) (Algorithm, error) {
	key := normalizeName(name)
	for a, n := range names {
		if normalizeName(n) == key {
			return a, nil
		}
	}
	return Unknown, errors.Wrapf(ErrUnrecognized, "algorithm %q", name)
}

// Resolve returns the named algorithm when name is set, checking that hash has
// the matching length, and falls back to Detect otherwise.
func Resolve(hash, name string) (Algorithm, error) {
	if strings.TrimSpace(name) == "" {
		return Detect(hash)
	}
	a, err := Parse(name)
	if err != nil {
		return Unknown, err
	}
	if len(hash) != a.HexLen() {
		return Unknown, errors.Wrapf(ErrUnrecognized,
			"hash length %d does not match %s (%d)", len(hash), a, a.HexLen())
	}
	return a, nil
}

func normalizeName(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}
