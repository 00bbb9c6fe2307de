package digest

import (
	"crypto/md5" //nolint:gosec // used for fingerprinting only

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
)

// ErrInvalidKey is returned if a key can not be used for a keyed Hasher.
var ErrInvalidKey = errors.New("invalid hasher key")

// Hasher computes the Digest of a blob of data.
type Hasher interface {
	Sum(data []byte) Digest
}

// HasherFunc is an adapter that allows to use an ordinary function as a Hasher.
type HasherFunc func(data []byte) Digest

// Sum calls f(data).
func (f HasherFunc) Sum(data []byte) Digest {
	return f(data)
}

var (
	// MD5 computes MD5 digests. It is not meant for integrity protection.
	MD5 Hasher = HasherFunc(func(data []byte) Digest {
		return md5.Sum(data) //nolint:gosec // used for fingerprinting only
	})

	// BLAKE2b128 computes unkeyed BLAKE2b digests with a 16 byte output.
	BLAKE2b128 Hasher = &blake2bHasher{}

	// DefaultHasher is the Hasher used by Sum and SumString.
	DefaultHasher = MD5
)

// NewKeyedBLAKE2b128 returns a Hasher that computes keyed BLAKE2b digests with a 16 byte output.
// The key must not be longer than 64 bytes.
func NewKeyedBLAKE2b128(key []byte) (Hasher, error) {
	if len(key) > blake2b.Size {
		return nil, errors.Wrapf(ErrInvalidKey, "key must not be longer than %d bytes, got %d", blake2b.Size, len(key))
	}

	return &blake2bHasher{key: append([]byte(nil), key...)}, nil
}

// HasherByName returns one of the unkeyed Hashers of this package by its name ("md5" or "blake2b").
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "md5":
		return MD5, nil
	case "blake2b":
		return BLAKE2b128, nil
	default:
		return nil, errors.Errorf("unknown hasher: %s", name)
	}
}

type blake2bHasher struct {
	key []byte
}

func (b *blake2bHasher) Sum(data []byte) (digest Digest) {
	hash, err := blake2b.New(Length, b.key)
	if err != nil {
		// the size and the key length are validated upfront
		panic(err)
	}

	// hash.Hash never returns an error on Write
	_, _ = hash.Write(data)
	copy(digest[:], hash.Sum(nil))

	return digest
}
