// Package service implements token encryption, extraction, and offset-safe
// splicing of encrypted placeholders into document content.
package service

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	tokenizerDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/tokenizer/domain"
)

const nonceSize = 12

// TokenCipher seals detected PII into inline tokens and opens them back up.
//
// Each sealed match gets a fresh nonce, so encrypting identical text twice
// yields distinct tokens. The instance is stateless and safe for concurrent
// use.
type TokenCipher struct {
	aeadManager cryptoService.AEADManager
}

// NewTokenCipher creates a TokenCipher backed by the given AEADManager.
func NewTokenCipher(aeadManager cryptoService.AEADManager) *TokenCipher {
	return &TokenCipher{aeadManager: aeadManager}
}

// EncryptMatch seals a piece of detected text with the document key and
// returns the token literal to splice into the content.
func (c *TokenCipher) EncryptMatch(key cryptoDomain.EncryptionKey, plaintext string) (string, error) {
	aead, err := c.aeadManager.CreateCipher(key.Bytes, key.Algorithm)
	if err != nil {
		return "", err
	}

	ciphertext, nonce, err := aead.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt match: %w", err)
	}

	return tokenizerDomain.FormatToken(
		base64.StdEncoding.EncodeToString(ciphertext),
		base64.StdEncoding.EncodeToString(nonce),
	), nil
}

// DecryptToken opens a single token with the document key.
//
// Failures are local to the token so callers can continue with the rest of
// the document:
//   - ErrMalformedToken for invalid base64 payloads or a wrong-size nonce
//   - ErrAuthenticationFailed for a wrong key or tampered ciphertext
//   - ErrInvalidUTF8 when the recovered plaintext is not valid UTF-8
func (c *TokenCipher) DecryptToken(
	key cryptoDomain.EncryptionKey,
	token tokenizerDomain.Token,
) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(token.CiphertextB64)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext: %v", tokenizerDomain.ErrMalformedToken, err)
	}

	nonce, err := base64.StdEncoding.DecodeString(token.IVB64)
	if err != nil {
		return "", fmt.Errorf("%w: iv: %v", tokenizerDomain.ErrMalformedToken, err)
	}
	if len(nonce) != nonceSize {
		return "", fmt.Errorf(
			"%w: iv must be %d bytes, got %d",
			tokenizerDomain.ErrMalformedToken, nonceSize, len(nonce),
		)
	}

	aead, err := c.aeadManager.CreateCipher(key.Bytes, key.Algorithm)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return "", tokenizerDomain.ErrAuthenticationFailed
	}

	if !utf8.Valid(plaintext) {
		return "", tokenizerDomain.ErrInvalidUTF8
	}

	return string(plaintext), nil
}
