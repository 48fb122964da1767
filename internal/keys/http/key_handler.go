// Package http provides HTTP handlers for wrapped key operations. Keys are
// addressed by the document they belong to; every download is recorded in the
// document's audit trail.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/httputil"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/http/dto"
	keysUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/usecase"
)

// KeyHandler handles HTTP requests for wrapped key operations.
type KeyHandler struct {
	keyUseCase keysUseCase.KeyUseCase
	logger     *slog.Logger
}

// NewKeyHandler creates a new key handler with required dependencies.
func NewKeyHandler(keyUseCase keysUseCase.KeyUseCase, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		keyUseCase: keyUseCase,
		logger:     logger,
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

// GetHandler retrieves wrapped key metadata for a document.
// GET /v1/documents/:id/key
// Returns 200 OK with metadata only; the key material is never included.
func (h *KeyHandler) GetHandler(c *gin.Context) {
	documentID, err := parseDocumentID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	key, err := h.keyUseCase.Get(c.Request.Context(), documentID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapKeyToMetadataResponse(key)
	c.JSON(http.StatusOK, response)
}

// DownloadHandler unwraps and returns a document's key in exported form.
// POST /v1/documents/:id/key/download
// Returns 200 OK with the exported key. The download is recorded in the
// audit trail and the first download time is kept on the wrapped key.
func (h *KeyHandler) DownloadHandler(c *gin.Context) {
	documentID, err := parseDocumentID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	download, err := h.keyUseCase.Download(c.Request.Context(), documentID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapDownloadToResponse(download)
	c.JSON(http.StatusOK, response)
}
