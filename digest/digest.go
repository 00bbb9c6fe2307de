package digest

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/mr-tron/base58"
)

var (
	// ErrInvalidLength is returned if the decoded data does not have the size of a Digest.
	ErrInvalidLength = errors.New("invalid digest length")
	// ErrHexDecodeFailed is returned if a hex encoded string can not be decoded.
	ErrHexDecodeFailed = errors.New("failed to decode hex encoded string")
	// ErrBase58DecodeFailed is returned if a base58 encoded string can not be decoded.
	ErrBase58DecodeFailed = errors.New("failed to decode base58 encoded string")
)

// region Digest ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Length contains the byte length of a Digest.
const Length = 16

// Digest is a 16 byte fingerprint of some blob of data.
type Digest [Length]byte

// Sum returns the Digest of the given data using the DefaultHasher.
func Sum(data []byte) Digest {
	return DefaultHasher.Sum(data)
}

// SumString returns the Digest of the given string using the DefaultHasher.
func SumString(s string) Digest {
	return Sum([]byte(s))
}

// FromBytes creates a Digest from its raw bytes.
func FromBytes(data []byte) (digest Digest, err error) {
	if len(data) != Length {
		return digest, errors.Wrapf(ErrInvalidLength, "expected %d bytes, got %d", Length, len(data))
	}
	copy(digest[:], data)

	return digest, nil
}

// FromHex un-serializes a Digest from a hex encoded string.
func FromHex(hexString string) (digest Digest, err error) {
	decodedBytes, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, errors.Wrapf(ErrHexDecodeFailed, "error while decoding hex encoded Digest (%v)", err)
	}

	if digest, err = FromBytes(decodedBytes); err != nil {
		return digest, errors.Wrap(err, "failed to parse Digest from bytes")
	}

	return digest, nil
}

// FromBase58 un-serializes a Digest from a base58 encoded string.
func FromBase58(base58String string) (digest Digest, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		return digest, errors.Wrapf(ErrBase58DecodeFailed, "error while decoding base58 encoded Digest (%v)", err)
	}

	if digest, err = FromBytes(decodedBytes); err != nil {
		return digest, errors.Wrap(err, "failed to parse Digest from bytes")
	}

	return digest, nil
}

// Bytes returns the raw bytes of the Digest.
func (d Digest) Bytes() []byte {
	return d[:]
}

// Hex returns the lower case, zero padded hex representation of the Digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Base58 returns a base58 encoded version of the Digest.
func (d Digest) Base58() string {
	return base58.Encode(d[:])
}

// IsEmpty returns true if the Digest consists of zero bytes only.
func (d Digest) IsEmpty() bool {
	return d == Digest{}
}

// String returns a human-readable version of the Digest.
func (d Digest) String() string {
	return "Digest(" + d.Hex() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
