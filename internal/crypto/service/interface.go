// Package service provides the cryptographic primitives behind PII
// tokenization: AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), document key
// lifecycle management, and KMS-backed key wrapping.
package service

import (
	"context"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyManager defines the interface for the document key lifecycle.
type KeyManager interface {
	// Generate creates a fresh random 32-byte encryption key.
	Generate(alg cryptoDomain.Algorithm) (cryptoDomain.EncryptionKey, error)

	// Export serializes a key as standard base64 for transport to the caller.
	Export(key cryptoDomain.EncryptionKey) string

	// Import parses an exported key, validating format and size.
	Import(encoded string, alg cryptoDomain.Algorithm) (cryptoDomain.EncryptionKey, error)

	// Fingerprint derives a short non-reversible identifier for a key.
	Fingerprint(key cryptoDomain.EncryptionKey) string
}

// KMSService opens secret keepers for wrapping stored document keys.
type KMSService interface {
	// OpenKeeper opens a keeper for the configured KMS provider.
	// Returns an error if the KMS provider URI is invalid or connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (Keeper, error)
}

// Keeper is the subset of a KMS keeper used by the key wrapping layer.
type Keeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
