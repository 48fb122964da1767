package service

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestLocalKeyWrapper_RoundTrip(t *testing.T) {
	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			wrapper, err := NewLocalKeyWrapper(
				cryptoService.NewAEADManager(), randomBytes(t, 32), alg,
			)
			require.NoError(t, err)
			assert.Equal(t, keysDomain.ProviderLocal, wrapper.Provider())

			documentKey := randomBytes(t, 32)
			ciphertext, nonce, err := wrapper.Wrap(context.Background(), documentKey)
			require.NoError(t, err)
			require.NotEmpty(t, nonce)
			assert.NotEqual(t, documentKey, ciphertext)

			unwrapped, err := wrapper.Unwrap(context.Background(), ciphertext, nonce)
			require.NoError(t, err)
			assert.Equal(t, documentKey, unwrapped)
		})
	}
}

func TestLocalKeyWrapper_UnwrapWithWrongWrapKey(t *testing.T) {
	manager := cryptoService.NewAEADManager()

	first, err := NewLocalKeyWrapper(manager, randomBytes(t, 32), cryptoDomain.AESGCM)
	require.NoError(t, err)
	second, err := NewLocalKeyWrapper(manager, randomBytes(t, 32), cryptoDomain.AESGCM)
	require.NoError(t, err)

	ciphertext, nonce, err := first.Wrap(context.Background(), randomBytes(t, 32))
	require.NoError(t, err)

	_, err = second.Unwrap(context.Background(), ciphertext, nonce)
	require.Error(t, err)
	assert.ErrorIs(t, err, keysDomain.ErrUnwrapFailed)
}

func TestNewLocalKeyWrapper_InvalidWrapKeySize(t *testing.T) {
	_, err := NewLocalKeyWrapper(
		cryptoService.NewAEADManager(), randomBytes(t, 16), cryptoDomain.AESGCM,
	)
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
}
