package hashing

import (
	"bytes"
	"crypto/sha1" // #nosec G505 -- PBKDF2-HMAC-SHA1 is the stored-hash format; HMAC-SHA1 is not affected by SHA-1 collisions.
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey runs PBKDF2-HMAC-SHA1 over the UTF-8 bytes of password and
// returns keyLen bytes. It is deterministic for fixed inputs.
func DeriveKey(password string, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha1.New)
}

// RFC 6070, test vector 2.
var kdfSelfTest = struct {
	password   string
	salt       []byte
	iterations int
	want       []byte
}{
	password:   "password",
	salt:       []byte("salt"),
	iterations: 2,
	want: []byte{
		0xea, 0x6c, 0x01, 0x4d, 0xc7, 0x2d, 0x6f, 0x8c, 0xcd, 0x1e,
		0xd9, 0x2a, 0xce, 0x1d, 0x41, 0xf0, 0xd8, 0xde, 0x89, 0x57,
	},
}

// checkKDF fails when the linked PBKDF2 implementation does not reproduce
// the published vector.
func checkKDF() error {
	v := kdfSelfTest
	got := DeriveKey(v.password, v.salt, v.iterations, len(v.want))
	if !bytes.Equal(got, v.want) {
		return fmt.Errorf("%w: self-test mismatch", ErrKDFUnavailable)
	}
	return nil
}
