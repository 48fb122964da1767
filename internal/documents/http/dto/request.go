// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/validation"
)

// ProcessDocumentRequest contains the parameters for processing a document.
type ProcessDocumentRequest struct {
	Filename string `json:"filename" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Tier     string `json:"tier" binding:"required"`
}

// Validate checks if the process document request is valid.
func (r *ProcessDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Filename,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.Filename,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Tier,
			validation.Required,
			customValidation.Tier,
		),
	)
}

// DecryptDocumentRequest contains the caller-supplied key for decrypting a
// stored document. The key travels in the request body, never in the URL.
type DecryptDocumentRequest struct {
	Key string `json:"key" binding:"required"`
}

// Validate checks if the decrypt document request is valid.
func (r *DecryptDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key,
			validation.Required,
			customValidation.Base64,
		),
	)
}
