// Package service implements wrapping of document keys for storage, either
// with a locally configured wrap key or an external KMS keeper.
package service

import (
	"context"
	"fmt"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
)

// KeyWrapper seals exported document keys for persistence and opens them
// again on download.
type KeyWrapper interface {
	// Wrap seals plaintext key bytes. Nonce is nil for providers that
	// manage nonces internally.
	Wrap(ctx context.Context, plaintext []byte) (ciphertext, nonce []byte, err error)

	// Unwrap recovers plaintext key bytes from storage form.
	Unwrap(ctx context.Context, ciphertext, nonce []byte) ([]byte, error)

	// Provider names the wrap provider recorded on each stored key.
	Provider() string
}

// LocalKeyWrapper wraps document keys with a configured 32-byte wrap key
// using an in-process AEAD cipher. The wrap algorithm is configurable so
// hosts without AES-NI can run ChaCha20-Poly1305.
type LocalKeyWrapper struct {
	aeadManager cryptoService.AEADManager
	wrapKey     []byte
	algorithm   cryptoDomain.Algorithm
}

// NewLocalKeyWrapper creates a LocalKeyWrapper.
// Returns ErrInvalidKeySize if the wrap key is not 32 bytes.
func NewLocalKeyWrapper(
	aeadManager cryptoService.AEADManager,
	wrapKey []byte,
	algorithm cryptoDomain.Algorithm,
) (*LocalKeyWrapper, error) {
	if len(wrapKey) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	return &LocalKeyWrapper{
		aeadManager: aeadManager,
		wrapKey:     wrapKey,
		algorithm:   algorithm,
	}, nil
}

// Wrap seals plaintext key bytes with the wrap key.
func (w *LocalKeyWrapper) Wrap(_ context.Context, plaintext []byte) ([]byte, []byte, error) {
	cipher, err := w.aeadManager.CreateCipher(w.wrapKey, w.algorithm)
	if err != nil {
		return nil, nil, err
	}

	ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to wrap key: %w", err)
	}
	return ciphertext, nonce, nil
}

// Unwrap opens stored key bytes with the wrap key.
func (w *LocalKeyWrapper) Unwrap(_ context.Context, ciphertext, nonce []byte) ([]byte, error) {
	cipher, err := w.aeadManager.CreateCipher(w.wrapKey, w.algorithm)
	if err != nil {
		return nil, err
	}

	plaintext, err := cipher.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return nil, keysDomain.ErrUnwrapFailed
	}
	return plaintext, nil
}

// Provider returns the local provider name.
func (w *LocalKeyWrapper) Provider() string {
	return keysDomain.ProviderLocal
}

// KMSKeyWrapper wraps document keys with an external KMS keeper opened via
// its provider URI (gcpkms://, awskms://, azurekeyvault://, hashivault://,
// base64key://).
type KMSKeyWrapper struct {
	keeper cryptoService.Keeper
}

// NewKMSKeyWrapper creates a KMSKeyWrapper around an open keeper.
func NewKMSKeyWrapper(keeper cryptoService.Keeper) *KMSKeyWrapper {
	return &KMSKeyWrapper{keeper: keeper}
}

// Wrap seals plaintext key bytes with the KMS keeper.
func (w *KMSKeyWrapper) Wrap(ctx context.Context, plaintext []byte) ([]byte, []byte, error) {
	ciphertext, err := w.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to wrap key with KMS: %w", err)
	}
	return ciphertext, nil, nil
}

// Unwrap opens stored key bytes with the KMS keeper.
func (w *KMSKeyWrapper) Unwrap(ctx context.Context, ciphertext, _ []byte) ([]byte, error) {
	plaintext, err := w.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, keysDomain.ErrUnwrapFailed
	}
	return plaintext, nil
}

// Provider returns the KMS provider name.
func (w *KMSKeyWrapper) Provider() string {
	return keysDomain.ProviderKMS
}
