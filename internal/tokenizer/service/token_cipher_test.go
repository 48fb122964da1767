package service

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	tokenizerDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/tokenizer/domain"
)

func newTestKey(t *testing.T) cryptoDomain.EncryptionKey {
	t.Helper()
	keyBytes := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(keyBytes)
	require.NoError(t, err)
	return cryptoDomain.EncryptionKey{Bytes: keyBytes, Algorithm: cryptoDomain.AESGCM}
}

func TestTokenCipher_EncryptDecryptRoundTrip(t *testing.T) {
	cipher := NewTokenCipher(cryptoService.NewAEADManager())
	key := newTestKey(t)

	literal, err := cipher.EncryptMatch(key, "123-45-6789")
	require.NoError(t, err)

	tokens := ExtractTokens(literal)
	require.Len(t, tokens, 1)
	assert.Equal(t, literal, tokens[0].Literal)

	plaintext, err := cipher.DecryptToken(key, tokens[0])
	require.NoError(t, err)
	assert.Equal(t, "123-45-6789", plaintext)
}

func TestTokenCipher_EncryptMatch_FreshIVPerCall(t *testing.T) {
	cipher := NewTokenCipher(cryptoService.NewAEADManager())
	key := newTestKey(t)

	first, err := cipher.EncryptMatch(key, "same text")
	require.NoError(t, err)
	second, err := cipher.EncryptMatch(key, "same text")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenCipher_DecryptToken_WrongKey(t *testing.T) {
	cipher := NewTokenCipher(cryptoService.NewAEADManager())

	literal, err := cipher.EncryptMatch(newTestKey(t), "secret")
	require.NoError(t, err)

	tokens := ExtractTokens(literal)
	require.Len(t, tokens, 1)

	_, err = cipher.DecryptToken(newTestKey(t), tokens[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, tokenizerDomain.ErrAuthenticationFailed)
}

func TestTokenCipher_DecryptToken_MalformedPayloads(t *testing.T) {
	cipher := NewTokenCipher(cryptoService.NewAEADManager())
	key := newTestKey(t)

	validIV := base64.StdEncoding.EncodeToString(make([]byte, 12))

	tests := []struct {
		name  string
		token tokenizerDomain.Token
	}{
		{
			name:  "ciphertext not base64",
			token: tokenizerDomain.Token{CiphertextB64: "!!!", IVB64: validIV},
		},
		{
			name:  "iv not base64",
			token: tokenizerDomain.Token{CiphertextB64: "dGVzdA==", IVB64: "???"},
		},
		{
			name: "iv wrong length",
			token: tokenizerDomain.Token{
				CiphertextB64: "dGVzdA==",
				IVB64:         base64.StdEncoding.EncodeToString(make([]byte, 8)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cipher.DecryptToken(key, tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tokenizerDomain.ErrMalformedToken)
		})
	}
}

func TestTokenCipher_DecryptToken_TamperedCiphertext(t *testing.T) {
	cipher := NewTokenCipher(cryptoService.NewAEADManager())
	key := newTestKey(t)

	literal, err := cipher.EncryptMatch(key, "secret")
	require.NoError(t, err)
	tokens := ExtractTokens(literal)
	require.Len(t, tokens, 1)

	raw, err := base64.StdEncoding.DecodeString(tokens[0].CiphertextB64)
	require.NoError(t, err)
	raw[0] ^= 0xff
	tokens[0].CiphertextB64 = base64.StdEncoding.EncodeToString(raw)

	_, err = cipher.DecryptToken(key, tokens[0])
	assert.ErrorIs(t, err, tokenizerDomain.ErrAuthenticationFailed)
}

func TestTokenCipher_DecryptToken_InvalidUTF8(t *testing.T) {
	key := newTestKey(t)

	// Seal bytes that are not valid UTF-8 and wrap them in a token by hand.
	aead, err := cryptoService.NewAESGCM(key.Bytes)
	require.NoError(t, err)
	ciphertext, nonce, err := aead.Encrypt([]byte{0xff, 0xfe, 0xfd}, nil)
	require.NoError(t, err)

	token := tokenizerDomain.Token{
		CiphertextB64: base64.StdEncoding.EncodeToString(ciphertext),
		IVB64:         base64.StdEncoding.EncodeToString(nonce),
	}

	cipher := NewTokenCipher(cryptoService.NewAEADManager())
	_, err = cipher.DecryptToken(key, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, tokenizerDomain.ErrInvalidUTF8)
}
