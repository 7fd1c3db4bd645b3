package hashing

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Verify(guess, stored)
//	if errors.Is(err, hashing.ErrInvalidFormat) {
//	    // stored record is malformed; treat as "no valid credential"
//	}
var (
	// ErrInvalidFormat is returned when an encoded hash cannot be parsed or
	// carries out-of-range values. Every [*FormatError] unwraps to it.
	ErrInvalidFormat = errors.New("hashing: invalid hash format")

	// ErrEmptyPassword is returned by [PasswordHasher.Hash] when asked to hash
	// an empty password. Callers must refuse to use the password.
	ErrEmptyPassword = errors.New("hashing: password must not be empty")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrKDFUnavailable is returned by [NewPasswordHasher] when the key
	// derivation function fails its startup self-test.
	ErrKDFUnavailable = errors.New("hashing: PBKDF2-HMAC-SHA1 unavailable")
)

// FormatErrorKind classifies why an encoded hash was rejected.
type FormatErrorKind int

const (
	// FormatFieldCount means the record did not split into exactly three fields.
	FormatFieldCount FormatErrorKind = iota + 1
	// FormatIterations means the iteration field is not a decimal integer.
	FormatIterations
	// FormatIterationRange means the iteration count is outside [MinIterations, MaxIterations].
	FormatIterationRange
	// FormatSaltHex means the salt field is not valid even-length hex.
	FormatSaltHex
	// FormatKeyHex means the derived-key field is not valid even-length hex.
	FormatKeyHex
	// FormatEmptySalt means the salt is nil or zero-length.
	FormatEmptySalt
	// FormatEmptyKey means the derived key is nil or zero-length.
	FormatEmptyKey
)

var formatErrorKindNames = map[FormatErrorKind]string{
	FormatFieldCount:     "field count",
	FormatIterations:     "iterations",
	FormatIterationRange: "iteration range",
	FormatSaltHex:        "salt hex",
	FormatKeyHex:         "key hex",
	FormatEmptySalt:      "empty salt",
	FormatEmptyKey:       "empty key",
}

func (k FormatErrorKind) String() string {
	if s, ok := formatErrorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("FormatErrorKind(%d)", int(k))
}

// FormatError reports a structurally or semantically invalid encoded hash.
//
// It matches [ErrInvalidFormat] under [errors.Is]; use [errors.As] to branch
// on Kind:
//
//	var fe *hashing.FormatError
//	if errors.As(err, &fe) && fe.Kind == hashing.FormatIterationRange {
//	    ...
//	}
type FormatError struct {
	Kind   FormatErrorKind
	Detail string
	Err    error // underlying parse error, if any
}

func (e *FormatError) Error() string {
	msg := "hashing: invalid hash format: " + e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying parse error, if any.
func (e *FormatError) Unwrap() error { return e.Err }

// Is makes every FormatError match [ErrInvalidFormat].
func (e *FormatError) Is(target error) bool { return target == ErrInvalidFormat }

func formatErr(kind FormatErrorKind, detail string, cause error) error {
	return &FormatError{Kind: kind, Detail: detail, Err: cause}
}
