package domain

import (
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

var (
	// ErrDocumentNotFound indicates the document was not found.
	ErrDocumentNotFound = errors.Wrap(errors.ErrNotFound, "document not found")

	// ErrEmptyContent indicates the submitted document has no content.
	ErrEmptyContent = errors.Wrap(errors.ErrInvalidInput, "document content is empty")
)
