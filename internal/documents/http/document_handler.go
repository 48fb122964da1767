// Package http provides HTTP handlers for document processing operations.
// Submitted content is scanned for PII, detected spans are replaced with
// encrypted tokens, and the tokenized document is stored alongside a wrapped
// copy of its key.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/http/dto"
	documentsUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/usecase"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/httputil"
	customValidation "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/validation"
)

// DocumentHandler handles HTTP requests for document processing operations.
type DocumentHandler struct {
	documentUseCase documentsUseCase.DocumentUseCase
	logger          *slog.Logger
}

// NewDocumentHandler creates a new document handler with required dependencies.
func NewDocumentHandler(
	documentUseCase documentsUseCase.DocumentUseCase,
	logger *slog.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		documentUseCase: documentUseCase,
		logger:          logger,
	}
}

// parseDocumentID extracts and validates the document ID URL parameter.
func parseDocumentID(c *gin.Context) (uuid.UUID, error) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid document id: must be a valid UUID")
	}
	return documentID, nil
}

// ProcessHandler scans content for PII and stores the tokenized document.
// POST /v1/documents
// Returns 201 Created with the document, the exported key, and per-match
// outcomes. SECURITY: This is the only time the key is returned in full.
func (h *DocumentHandler) ProcessHandler(c *gin.Context) {
	var req dto.ProcessDocumentRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Tier is validated above, parse cannot fail here
	tier, err := detectionDomain.ParseTier(req.Tier)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	result, err := h.documentUseCase.Process(c.Request.Context(), req.Filename, req.Content, tier)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapProcessResultToResponse(result)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves a stored document by ID.
// GET /v1/documents/:id
// Returns 200 OK with the tokenized document.
func (h *DocumentHandler) GetHandler(c *gin.Context) {
	documentID, err := parseDocumentID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	document, err := h.documentUseCase.Get(c.Request.Context(), documentID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapDocumentToResponse(document)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves stored documents with pagination support.
// GET /v1/documents?offset=0&limit=50
// Returns 200 OK with document metadata, newest first. Content is excluded.
func (h *DocumentHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	documents, err := h.documentUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapDocumentsToListResponse(documents)
	c.JSON(http.StatusOK, response)
}

// DecryptHandler restores a stored document's plaintext with the supplied key.
// POST /v1/documents/:id/decrypt
// Returns 200 OK with the restored text and per-token outcomes. Tokens that
// fail authentication stay in tokenized form and are reported per token.
func (h *DocumentHandler) DecryptHandler(c *gin.Context) {
	documentID, err := parseDocumentID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.DecryptDocumentRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// The stored fingerprint is returned with the report so callers can
	// compare it against the key they supplied.
	document, err := h.documentUseCase.Get(c.Request.Context(), documentID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	report, err := h.documentUseCase.Decrypt(c.Request.Context(), documentID, req.Key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapReportToResponse(report, document.KeyFingerprint)
	c.JSON(http.StatusOK, response)
}

// ListAuditHandler retrieves the audit trail of a document.
// GET /v1/documents/:id/audit?offset=0&limit=50
// Returns 200 OK with audit entries, newest first.
func (h *DocumentHandler) ListAuditHandler(c *gin.Context) {
	documentID, err := parseDocumentID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	entries, err := h.documentUseCase.ListAudit(c.Request.Context(), documentID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapEntriesToListResponse(entries)
	c.JSON(http.StatusOK, response)
}
