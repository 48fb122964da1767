package domain

import (
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

var (
	// ErrMalformedToken indicates a token payload is not valid base64 or the
	// decoded nonce has the wrong length.
	ErrMalformedToken = errors.Wrap(errors.ErrInvalidInput, "malformed token")

	// ErrAuthenticationFailed indicates the authentication tag check failed
	// during token decryption. Caused by a wrong key or a tampered token.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "authentication failed")

	// ErrInvalidUTF8 indicates a token decrypted successfully but the
	// plaintext is not valid UTF-8. Treated as corruption.
	ErrInvalidUTF8 = errors.Wrap(errors.ErrInvalidInput, "decrypted payload is not valid utf-8")
)
