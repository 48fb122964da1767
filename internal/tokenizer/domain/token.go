// Package domain defines the token grammar used to embed encrypted PII
// inline in processed documents.
package domain

import "fmt"

// Token represents one encrypted placeholder found in document content.
//
// The wire form is [ENCRYPTED:<ciphertext-b64>:<iv-b64>] where both payloads
// are standard base64. The ciphertext carries the GCM authentication tag, so
// a token is self-contained: together with the document key it is everything
// needed to recover the original text.
//
// Fields:
//   - Literal: The full bracketed literal as found in the content
//   - Start, End: Byte offsets of the literal within the content
//   - CiphertextB64: Base64 ciphertext (including the 16-byte auth tag)
//   - IVB64: Base64 12-byte nonce
type Token struct {
	Literal       string
	Start         int
	End           int
	CiphertextB64 string
	IVB64         string
}

// FormatToken renders the wire form of a token from its base64 payloads.
func FormatToken(ciphertextB64, ivB64 string) string {
	return fmt.Sprintf("[ENCRYPTED:%s:%s]", ciphertextB64, ivB64)
}
