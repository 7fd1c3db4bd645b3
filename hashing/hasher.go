package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
)

const (
	// DefaultIterations is the PBKDF2 iteration count used for new hashes.
	DefaultIterations = 101021

	// DefaultSaltLen is the random salt length in bytes.
	DefaultSaltLen = 16

	// DefaultKeyLen is the derived key length in bytes (512 bits).
	DefaultKeyLen = 64

	// maxLen bounds SaltLen and KeyLen.
	maxLen = 1024

	// Algorithm names the key derivation function behind every hash.
	Algorithm = "pbkdf2-sha1"
)

// Hasher is satisfied by [*PasswordHasher]. Callers that only hash and verify
// can depend on it rather than the concrete type.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Hash derives a key for password under a fresh random salt and returns
	// the encoded record. Two calls with the same password produce different
	// records.
	Hash(password string) (string, error)

	// Verify reports whether guess matches the stored record.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if stored is not a valid record.
	Verify(guess, stored string) (bool, error)

	// NeedsRehash reports whether stored was produced with parameters that
	// differ from the hasher's current options.
	NeedsRehash(stored string) (bool, error)

	// Info extracts the parameters of stored without verifying anything.
	Info(stored string) (HashInfo, error)
}

// HashInfo carries the parameters recorded in an encoded hash.
type HashInfo struct {
	Algorithm  string
	Iterations int
	SaltLen    int // bytes
	KeyLen     int // bytes
}

// Options configures a [PasswordHasher]. They only affect newly produced
// hashes: verification always uses the parameters stored in the record.
type Options struct {
	// Iterations is the PBKDF2 work factor.
	// Range: [MinIterations, MaxIterations]. Default: [DefaultIterations].
	Iterations int

	// SaltLen is the random salt length in bytes.
	// Range: [1, 1024]. Default: [DefaultSaltLen].
	SaltLen int

	// KeyLen is the derived key length in bytes.
	// Range: [1, 1024]. Default: [DefaultKeyLen].
	KeyLen int
}

// DefaultOptions returns the parameters used for new hashes unless overridden.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		SaltLen:    DefaultSaltLen,
		KeyLen:     DefaultKeyLen,
	}
}

func validateOptions(opts Options) error {
	if opts.Iterations < MinIterations || opts.Iterations > MaxIterations {
		return fmt.Errorf("%w: iterations must be in [%d, %d], got %d",
			ErrInvalidOption, MinIterations, MaxIterations, opts.Iterations)
	}
	if opts.SaltLen < 1 || opts.SaltLen > maxLen {
		return fmt.Errorf("%w: salt_len must be in [1, %d], got %d", ErrInvalidOption, maxLen, opts.SaltLen)
	}
	if opts.KeyLen < 1 || opts.KeyLen > maxLen {
		return fmt.Errorf("%w: key_len must be in [1, %d], got %d", ErrInvalidOption, maxLen, opts.KeyLen)
	}
	return nil
}

// PasswordHasher hashes passwords with PBKDF2-HMAC-SHA1 and verifies guesses
// against records produced by this or any earlier parameter set.
//
// # Thread safety
//
// PasswordHasher is immutable after construction and safe for concurrent use
// provided its random source is. The default source, crypto/rand.Reader, is.
type PasswordHasher struct {
	opts   Options
	random io.Reader
}

// NewPasswordHasher constructs a PasswordHasher.
//
// random supplies salt bytes; nil selects crypto/rand.Reader. A source that
// is not safe for concurrent use should be wrapped with [NewLockedReader].
//
// NewPasswordHasher returns [ErrInvalidOption] for out-of-range options and
// [ErrKDFUnavailable] if the key derivation function fails its self-test.
func NewPasswordHasher(opts Options, random io.Reader) (*PasswordHasher, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := checkKDF(); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}
	return &PasswordHasher{opts: opts, random: random}, nil
}

// NewDefaultPasswordHasher returns a PasswordHasher with [DefaultOptions]
// drawing salts from crypto/rand.Reader.
func NewDefaultPasswordHasher() (*PasswordHasher, error) {
	return NewPasswordHasher(DefaultOptions(), nil)
}

// Options returns the parameters used for new hashes.
func (h *PasswordHasher) Options() Options { return h.opts }

// Hash returns the encoded hash of password. It returns [ErrEmptyPassword]
// for an empty password; the caller must then refuse the password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	salt, err := randomSalt(h.random, h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	key := DeriveKey(password, salt, h.opts.Iterations, h.opts.KeyLen)
	enc, err := NewEncodedHash(h.opts.Iterations, salt, key)
	if err != nil {
		// Options are validated at construction.
		return "", fmt.Errorf("hashing: encode: %w", err)
	}
	return enc.String(), nil
}

// Verify reports whether guess is the password behind stored.
//
// stored is decoded first, so a malformed record yields a [*FormatError]
// whatever the guess. An empty guess is never valid and returns false
// without deriving a key. Otherwise the key is re-derived with the
// iterations, salt and key length recorded in stored, not the hasher's
// options, and compared in constant time.
func (h *PasswordHasher) Verify(guess, stored string) (bool, error) {
	enc, err := ParseEncodedHash(stored)
	if err != nil {
		return false, err
	}
	if guess == "" {
		return false, nil
	}
	computed := DeriveKey(guess, enc.salt, enc.iterations, len(enc.key))
	return subtle.ConstantTimeCompare(computed, enc.key) == 1, nil
}

// NeedsRehash returns true if any parameter recorded in stored differs from
// the hasher's options. Callers should re-hash the password after the next
// successful Verify when this returns true.
func (h *PasswordHasher) NeedsRehash(stored string) (bool, error) {
	enc, err := ParseEncodedHash(stored)
	if err != nil {
		return false, err
	}
	return enc.iterations != h.opts.Iterations ||
		len(enc.salt) != h.opts.SaltLen ||
		len(enc.key) != h.opts.KeyLen, nil
}

// Info parses stored and returns its parameters.
func (h *PasswordHasher) Info(stored string) (HashInfo, error) {
	enc, err := ParseEncodedHash(stored)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Algorithm:  Algorithm,
		Iterations: enc.iterations,
		SaltLen:    len(enc.salt),
		KeyLen:     len(enc.key),
	}, nil
}

var _ Hasher = (*PasswordHasher)(nil)
