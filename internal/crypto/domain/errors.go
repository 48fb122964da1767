package domain

import (
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. All errors are mapped to
// appropriate HTTP status codes by the error handling layer.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305).
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	//
	// All document keys and wrap keys must be exactly 32 bytes (256 bits).
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidKeyFormat indicates an exported key could not be imported.
	//
	// Returned when the supplied string is not valid standard base64 or does
	// not decode to exactly 32 bytes.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrInvalidKeyFormat = errors.Wrap(errors.ErrInvalidInput, "invalid key format")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to a wrong key, a tampered ciphertext, or an
	// invalid nonce. For security reasons, the specific cause is not disclosed.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrRandomSourceUnavailable indicates the operating system entropy source failed.
	//
	// Key and nonce generation cannot proceed without secure randomness, so
	// the whole operation is aborted rather than degraded.
	//
	// HTTP Status: 503 Service Unavailable
	ErrRandomSourceUnavailable = errors.Wrap(errors.ErrUnavailable, "random source unavailable")
)
