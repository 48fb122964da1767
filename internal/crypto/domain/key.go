package domain

// EncryptionKey represents a symmetric key used for field-level encryption.
//
// Keys are generated with a cryptographically secure random source and are
// held in memory only for the duration of a processing or decryption
// operation. Persistent storage always goes through the key wrapping layer,
// never as raw bytes.
//
// Fields:
//   - Bytes: The raw 32-byte key material
//   - Algorithm: The AEAD algorithm this key is used with
type EncryptionKey struct {
	Bytes     []byte
	Algorithm Algorithm
}

// Zero clears the key material from memory.
func (k *EncryptionKey) Zero() {
	Zero(k.Bytes)
}
