package hashing

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinIterations is the smallest iteration count an encoded hash may carry.
	MinIterations = 1

	// MaxIterations is the largest iteration count an encoded hash may carry
	// (2^28). Larger values are rejected as tampered rather than clamped.
	MaxIterations = 1 << 28

	// Delimiter separates the three fields of an encoded hash.
	Delimiter = ":"

	encodedFieldCount = 3
)

// EncodedHash is a validated (iterations, salt, derived key) triple and its
// canonical text form:
//
//	<iterations>:<SALT-HEX>:<DERIVED-KEY-HEX>
//
// An EncodedHash is immutable: constructors copy their inputs and accessors
// return copies. The zero value is not a valid hash; obtain one from
// [NewEncodedHash] or [ParseEncodedHash].
type EncodedHash struct {
	iterations int
	salt       []byte
	key        []byte
}

// NewEncodedHash validates and copies its arguments.
//
// It returns a [*FormatError] when iterations lies outside
// [MinIterations, MaxIterations] or when salt or key is nil or empty.
func NewEncodedHash(iterations int, salt, key []byte) (EncodedHash, error) {
	if iterations < MinIterations || iterations > MaxIterations {
		return EncodedHash{}, formatErr(FormatIterationRange,
			fmt.Sprintf("must be between %d and %d, got %d", MinIterations, MaxIterations, iterations), nil)
	}
	if len(salt) == 0 {
		return EncodedHash{}, formatErr(FormatEmptySalt, "", nil)
	}
	if len(key) == 0 {
		return EncodedHash{}, formatErr(FormatEmptyKey, "", nil)
	}
	return EncodedHash{
		iterations: iterations,
		salt:       bytes.Clone(salt),
		key:        bytes.Clone(key),
	}, nil
}

// ParseEncodedHash decodes text produced by [EncodedHash.String].
//
// The record must contain exactly three fields; trailing or embedded extra
// delimiters are rejected, never truncated. Hex is accepted in either case.
// Every failure is a [*FormatError].
func ParseEncodedHash(text string) (EncodedHash, error) {
	parts := strings.Split(text, Delimiter)
	if len(parts) != encodedFieldCount {
		return EncodedHash{}, formatErr(FormatFieldCount,
			fmt.Sprintf("expected %d fields, got %d", encodedFieldCount, len(parts)), nil)
	}

	// 32-bit to match the range of records written by older versions.
	n, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return EncodedHash{}, formatErr(FormatIterations, "", err)
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return EncodedHash{}, formatErr(FormatSaltHex, "", err)
	}

	key, err := hex.DecodeString(parts[2])
	if err != nil {
		return EncodedHash{}, formatErr(FormatKeyHex, "", err)
	}

	return NewEncodedHash(int(n), salt, key)
}

// String returns the canonical encoding. Hex digits are upper case.
func (h EncodedHash) String() string {
	var b strings.Builder
	b.Grow(12 + 2*len(h.salt) + 2*len(h.key))
	b.WriteString(strconv.Itoa(h.iterations))
	b.WriteString(Delimiter)
	b.WriteString(upperHex(h.salt))
	b.WriteString(Delimiter)
	b.WriteString(upperHex(h.key))
	return b.String()
}

// Iterations returns the KDF work factor recorded in the hash.
func (h EncodedHash) Iterations() int { return h.iterations }

// Salt returns a copy of the salt.
func (h EncodedHash) Salt() []byte { return bytes.Clone(h.salt) }

// DerivedKey returns a copy of the derived key.
func (h EncodedHash) DerivedKey() []byte { return bytes.Clone(h.key) }

// DerivedKeyBitLength returns the derived key length in bits. It is the
// output length to request when re-deriving a key for comparison.
func (h EncodedHash) DerivedKeyBitLength() int { return 8 * len(h.key) }

// Equal reports whether h and other carry the same iterations, salt and key.
// It is not constant-time and must not be used to check passwords.
func (h EncodedHash) Equal(other EncodedHash) bool {
	return h.iterations == other.iterations &&
		bytes.Equal(h.salt, other.salt) &&
		bytes.Equal(h.key, other.key)
}

// MarshalText implements [encoding.TextMarshaler].
func (h EncodedHash) MarshalText() ([]byte, error) {
	if h.iterations == 0 {
		return nil, formatErr(FormatIterationRange, "zero EncodedHash", nil)
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseEncodedHash].
func (h *EncodedHash) UnmarshalText(text []byte) error {
	parsed, err := ParseEncodedHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
