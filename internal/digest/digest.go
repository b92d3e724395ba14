package digest

import (
	"crypto/md5"
	"crypto/sha1"
	stdsha256 "crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Sum returns the lowercase hex digest of the raw bytes of candidate. It holds
// no state and is safe to call from any number of goroutines. An invalid
// algorithm yields an empty string.
func Sum(candidate string, algo Algorithm) string {
	data := []byte(candidate)
	switch algo {
	case MD5:
		h := md5.Sum(data)
		return hex.EncodeToString(h[:])
	case SHA1:
		h := sha1.Sum(data)
		return hex.EncodeToString(h[:])
	case SHA256:
		h := sha256.Sum256(data)
		return hex.EncodeToString(h[:])
	case SHA512:
		h := sha512.Sum512(data)
		return hex.EncodeToString(h[:])
	case SHA224:
		h := stdsha256.Sum224(data)
		return hex.EncodeToString(h[:])
	case SHA384:
		h := sha512.Sum384(data)
		return hex.EncodeToString(h[:])
	case SHA3_256:
		h := sha3.Sum256(data)
		return hex.EncodeToString(h[:])
	case SHA3_512:
		h := sha3.Sum512(data)
		return hex.EncodeToString(h[:])
	case BLAKE2b256:
		h := blake2b.Sum256(data)
		return hex.EncodeToString(h[:])
	case BLAKE2b512:
		h := blake2b.Sum512(data)
		return hex.EncodeToString(h[:])
	case BLAKE3:
		h := blake3.Sum256(data)
		return hex.EncodeToString(h[:])
	case XXH3_128:
		h := xxh3.Hash128(data).Bytes()
		return hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// Match reports whether candidate hashes to target. target must already be
// lowercase. An invalid algorithm matches nothing.
func (a Algorithm) Match(candidate, target string) bool {
	return a.Valid() && Sum(candidate, a) == target
}
