// Package hashing computes and verifies salted, iterated password hashes
// using PBKDF2 with HMAC-SHA1.
//
// # Architecture
//
// Two types do the work:
//
//   - [EncodedHash] — an immutable (iterations, salt, derived key) triple and
//     its self-describing text form. [ParseEncodedHash] validates untrusted
//     records strictly.
//   - [PasswordHasher] — generates salts, derives keys and encodes them
//     ([PasswordHasher.Hash]), and checks guesses against stored records
//     ([PasswordHasher.Verify]).
//
// # Quick start
//
//	h, err := hashing.NewDefaultPasswordHasher()
//	if err != nil { log.Fatal(err) }
//
//	stored, _ := h.Hash("my-secret-password")
//	ok, _ := h.Verify("my-secret-password", stored) // true
//
// # Hash format
//
// Records are stored as three colon-separated fields:
//
//	101021:8FB39CDB3BAAB0E266352BBAD7C9472F:3DEB8539070548B8...
//
// The iteration count is decimal in [1, 2^28]; salt and derived key are
// non-empty hex strings (upper case on output, either case on input).
// Records with more or fewer than three fields are rejected.
//
// Because every parameter is carried in the record, changing [Options] only
// affects new hashes. Records written with older parameters keep verifying;
// [PasswordHasher.NeedsRehash] reports when one should be upgraded.
//
// # Errors
//
// Malformed records yield a [*FormatError] (matching [ErrInvalidFormat]).
// A wrong guess is reported only as a false result, never as an error.
// Hashing an empty password yields [ErrEmptyPassword].
//
// # Security defaults
//
//   - 101021 iterations, 16-byte salt, 64-byte derived key.
//   - Salts come from crypto/rand.Reader unless another source is injected.
//   - Derived keys are compared with crypto/subtle in constant time.
package hashing
