package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlgorithmLabel(t *testing.T) {
	assert.Equal(t, "AES-256-GCM", AESGCM.Label())
	assert.Equal(t, "ChaCha20-Poly1305", ChaCha20.Label())
	assert.Equal(t, "rot13", Algorithm("rot13").Label())
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	Zero(nil) // must not panic
}

func TestEncryptionKeyZero(t *testing.T) {
	key := EncryptionKey{Bytes: []byte{9, 9, 9}, Algorithm: AESGCM}
	key.Zero()
	assert.Equal(t, []byte{0, 0, 0}, key.Bytes)
}
