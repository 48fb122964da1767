package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
)

// KeyManagerService implements the KeyManager interface for document keys.
//
// Every processing run gets a fresh random 32-byte key. The key is exported
// to the caller as base64 exactly once; the service itself never persists raw
// key material, the wrapping layer handles storage.
type KeyManagerService struct{}

// NewKeyManager creates a new KeyManagerService instance.
func NewKeyManager() *KeyManagerService {
	return &KeyManagerService{}
}

// Generate creates a fresh random encryption key for the given algorithm.
//
// Returns ErrRandomSourceUnavailable if the operating system entropy source
// fails. Callers must treat that as fatal for the whole operation.
func (km *KeyManagerService) Generate(alg cryptoDomain.Algorithm) (cryptoDomain.EncryptionKey, error) {
	keyBytes := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(keyBytes); err != nil {
		return cryptoDomain.EncryptionKey{}, fmt.Errorf(
			"%w: %v", cryptoDomain.ErrRandomSourceUnavailable, err,
		)
	}

	return cryptoDomain.EncryptionKey{Bytes: keyBytes, Algorithm: alg}, nil
}

// Export serializes the raw key bytes as standard base64.
//
// The exported form is what callers store to decrypt their documents later.
// Export and Import are exact inverses for any valid key.
func (km *KeyManagerService) Export(key cryptoDomain.EncryptionKey) string {
	return base64.StdEncoding.EncodeToString(key.Bytes)
}

// Import parses an exported key.
//
// Returns ErrInvalidKeyFormat if the string is not valid standard base64 or
// does not decode to exactly 32 bytes.
func (km *KeyManagerService) Import(
	encoded string,
	alg cryptoDomain.Algorithm,
) (cryptoDomain.EncryptionKey, error) {
	keyBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return cryptoDomain.EncryptionKey{}, fmt.Errorf(
			"%w: %v", cryptoDomain.ErrInvalidKeyFormat, err,
		)
	}
	if len(keyBytes) != cryptoDomain.KeySize {
		cryptoDomain.Zero(keyBytes)
		return cryptoDomain.EncryptionKey{}, fmt.Errorf(
			"%w: key must be %d bytes, got %d",
			cryptoDomain.ErrInvalidKeyFormat, cryptoDomain.KeySize, len(keyBytes),
		)
	}

	return cryptoDomain.EncryptionKey{Bytes: keyBytes, Algorithm: alg}, nil
}

// Fingerprint derives a short identifier for a key: the SHA-256 digest of the
// raw key bytes, hex encoded and truncated to 16 lowercase characters.
//
// The fingerprint identifies which key a document was encrypted with without
// revealing key material. Two imports of the same exported key always produce
// the same fingerprint.
func (km *KeyManagerService) Fingerprint(key cryptoDomain.EncryptionKey) string {
	digest := sha256.Sum256(key.Bytes)
	return hex.EncodeToString(digest[:])[:cryptoDomain.FingerprintLength]
}
