package hashing_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/cmosher01/Strong-Password-Hash/hashing"
)

// RFC 6070 PBKDF2-HMAC-SHA1 test vectors (the 16777216-iteration vector is
// omitted for speed).
func TestDeriveKey_RFC6070(t *testing.T) {
	tests := []struct {
		password   string
		salt       string
		iterations int
		keyLen     int
		want       string
	}{
		{"password", "salt", 1, 20, "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{"password", "salt", 2, 20, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
		{"password", "salt", 4096, 20, "4b007901b765489abead49d926f721d065a429c1"},
		{"passwordPASSWORDpassword", "saltSALTsaltSALTsaltSALTsaltSALTsalt", 4096, 25,
			"3d2eec4fe41c849b80c8d83662c0e44a8b291a964cf2f07038"},
		{"pass\x00word", "sa\x00lt", 4096, 16, "56fa6aa75548099dcc37d7f03425e0c3"},
	}
	for _, tt := range tests {
		got := hashing.DeriveKey(tt.password, []byte(tt.salt), tt.iterations, tt.keyLen)
		if hex.EncodeToString(got) != tt.want {
			t.Errorf("DeriveKey(%q, %q, %d, %d) = %x, want %s",
				tt.password, tt.salt, tt.iterations, tt.keyLen, got, tt.want)
		}
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("fixed salt value")
	a := hashing.DeriveKey("pw", salt, 100, 64)
	b := hashing.DeriveKey("pw", salt, 100, 64)
	if !bytes.Equal(a, b) {
		t.Error("repeated derivation produced different keys")
	}
	if len(a) != 64 {
		t.Errorf("len = %d, want 64", len(a))
	}
}
