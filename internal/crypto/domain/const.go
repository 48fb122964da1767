package domain

// Algorithm represents the AEAD algorithm used for field-level encryption.
//
// Both supported algorithms provide Authenticated Encryption with Associated
// Data (AEAD), ensuring confidentiality and authenticity of encrypted PII.
// Document content is always encrypted with AES-256-GCM; ChaCha20-Poly1305 is
// available for wrapping stored document keys on hosts without AES-NI.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits, randomly generated per encryption)
	//   - 16-byte authentication tag appended to the ciphertext
	//   - Hardware acceleration on CPUs with AES-NI
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Constant-time software implementation
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Label returns the presentation name recorded in document metadata.
func (a Algorithm) Label() string {
	switch a {
	case AESGCM:
		return "AES-256-GCM"
	case ChaCha20:
		return "ChaCha20-Poly1305"
	default:
		return string(a)
	}
}

// KeySize is the required key length in bytes for all supported algorithms.
const KeySize = 32

// FingerprintLength is the number of hex characters in a key fingerprint.
const FingerprintLength = 16
