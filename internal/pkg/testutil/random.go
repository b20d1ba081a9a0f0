package testutil

import (
	"errors"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// ErrInjected is returned by FailingReader.
var ErrInjected = errors.New("injected read failure")

// deterministicReader is a reproducible random source: the ChaCha20 keystream of a
// key filled with seed.
type deterministicReader struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// NewDeterministicReader returns a random source that yields the same bytes for the same seed.
func NewDeterministicReader(seed byte) io.Reader {
	key := make([]byte, chacha20.KeySize)
	for i := range key {
		key[i] = seed
	}
	stream, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		panic(err)
	}
	return &deterministicReader{stream: stream}
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}

// FailingReader returns Data and then fails with ErrInjected.
type FailingReader struct {
	Data []byte
}

func (r *FailingReader) Read(p []byte) (int, error) {
	if len(r.Data) == 0 {
		return 0, ErrInjected
	}
	n := copy(p, r.Data)
	r.Data = r.Data[n:]
	return n, nil
}
