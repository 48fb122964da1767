package domain

import (
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

var (
	// ErrKeyNotFound indicates no stored key exists for the document.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "document key not found")

	// ErrUnwrapFailed indicates the stored key could not be unwrapped,
	// usually a wrap key rotation done without re-wrapping stored keys.
	ErrUnwrapFailed = errors.Wrap(errors.ErrInvalidInput, "failed to unwrap document key")
)
