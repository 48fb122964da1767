package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
)

func TestKeyManager_Generate(t *testing.T) {
	km := NewKeyManager()

	key, err := km.Generate(cryptoDomain.AESGCM)
	require.NoError(t, err)
	assert.Len(t, key.Bytes, cryptoDomain.KeySize)
	assert.Equal(t, cryptoDomain.AESGCM, key.Algorithm)

	other, err := km.Generate(cryptoDomain.AESGCM)
	require.NoError(t, err)
	assert.NotEqual(t, key.Bytes, other.Bytes)
}

func TestKeyManager_ExportImportRoundTrip(t *testing.T) {
	km := NewKeyManager()

	key, err := km.Generate(cryptoDomain.AESGCM)
	require.NoError(t, err)

	exported := km.Export(key)
	imported, err := km.Import(exported, cryptoDomain.AESGCM)
	require.NoError(t, err)

	assert.Equal(t, key.Bytes, imported.Bytes)
	assert.Equal(t, km.Fingerprint(key), km.Fingerprint(imported))
}

func TestKeyManager_Import_InvalidBase64(t *testing.T) {
	km := NewKeyManager()

	_, err := km.Import("not base64!!!", cryptoDomain.AESGCM)
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyFormat)
}

func TestKeyManager_Import_WrongSize(t *testing.T) {
	km := NewKeyManager()

	// "c2hvcnQ=" decodes to "short", well under 32 bytes.
	_, err := km.Import("c2hvcnQ=", cryptoDomain.AESGCM)
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyFormat)
}

func TestKeyManager_Fingerprint(t *testing.T) {
	km := NewKeyManager()

	key := cryptoDomain.EncryptionKey{
		Bytes:     make([]byte, cryptoDomain.KeySize),
		Algorithm: cryptoDomain.AESGCM,
	}

	fingerprint := km.Fingerprint(key)
	assert.Len(t, fingerprint, cryptoDomain.FingerprintLength)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), fingerprint)

	// SHA-256 of 32 zero bytes, truncated.
	assert.Equal(t, "66687aadf862bd77", fingerprint)
}

func TestKeyManager_Fingerprint_DiffersPerKey(t *testing.T) {
	km := NewKeyManager()

	first, err := km.Generate(cryptoDomain.AESGCM)
	require.NoError(t, err)
	second, err := km.Generate(cryptoDomain.AESGCM)
	require.NoError(t, err)

	assert.NotEqual(t, km.Fingerprint(first), km.Fingerprint(second))
}
