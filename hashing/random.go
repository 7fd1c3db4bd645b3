package hashing

import (
	"fmt"
	"io"
	"sync"
)

// NewLockedReader returns an [io.Reader] that serialises calls to r.
//
// crypto/rand.Reader is already safe for concurrent use and needs no
// wrapping. Use NewLockedReader for a source that is not, such as a
// deterministic reader in tests shared by several goroutines.
func NewLockedReader(r io.Reader) io.Reader {
	return &lockedReader{r: r}
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// randomSalt returns n bytes read from r.
func randomSalt(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("hashing: failed to generate salt: %w", err)
	}
	return b, nil
}
