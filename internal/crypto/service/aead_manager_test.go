package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
)

func TestAEADManager_CreateCipher(t *testing.T) {
	manager := NewAEADManager()
	key := newTestKey(t)

	tests := []struct {
		name string
		alg  cryptoDomain.Algorithm
	}{
		{"aes-gcm", cryptoDomain.AESGCM},
		{"chacha20-poly1305", cryptoDomain.ChaCha20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cipher, err := manager.CreateCipher(key, tt.alg)
			require.NoError(t, err)

			ciphertext, nonce, err := cipher.Encrypt([]byte("payload"), nil)
			require.NoError(t, err)

			plaintext, err := cipher.Decrypt(ciphertext, nonce, nil)
			require.NoError(t, err)
			assert.Equal(t, []byte("payload"), plaintext)
		})
	}
}

func TestAEADManager_CreateCipher_InvalidKeySize(t *testing.T) {
	manager := NewAEADManager()

	_, err := manager.CreateCipher(make([]byte, 31), cryptoDomain.AESGCM)
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
}

func TestAEADManager_CreateCipher_UnsupportedAlgorithm(t *testing.T) {
	manager := NewAEADManager()

	_, err := manager.CreateCipher(newTestKey(t), cryptoDomain.Algorithm("des"))
	assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
}

func TestChaCha20Poly1305_TamperDetection(t *testing.T) {
	cipher, err := NewChaCha20Poly1305(newTestKey(t))
	require.NoError(t, err)

	ciphertext, nonce, err := cipher.Encrypt([]byte("secret"), nil)
	require.NoError(t, err)
	assert.Len(t, nonce, 12)

	ciphertext[len(ciphertext)-1] ^= 0x01
	_, err = cipher.Decrypt(ciphertext, nonce, nil)
	assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
}
