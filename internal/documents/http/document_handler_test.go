package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	documentsDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/domain"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/http/dto"
	documentsUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/usecase"
	pipelineDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/domain"
)

// fakeDocumentUseCase returns canned results for handler tests.
type fakeDocumentUseCase struct {
	processResult *documentsUseCase.ProcessResult
	processErr    error
	document      *documentsDomain.Document
	documentErr   error
	documents     []*documentsDomain.Document
	report        *pipelineDomain.DecryptionReport
	reportErr     error
	entries       []*auditDomain.Entry

	lastFilename string
	lastContent  string
	lastTier     detectionDomain.Tier
	lastKey      string
}

func (f *fakeDocumentUseCase) Process(
	_ context.Context,
	filename, content string,
	tier detectionDomain.Tier,
) (*documentsUseCase.ProcessResult, error) {
	f.lastFilename = filename
	f.lastContent = content
	f.lastTier = tier
	return f.processResult, f.processErr
}

func (f *fakeDocumentUseCase) Get(
	_ context.Context,
	_ uuid.UUID,
) (*documentsDomain.Document, error) {
	if f.documentErr != nil {
		return nil, f.documentErr
	}
	if f.document == nil {
		return nil, documentsDomain.ErrDocumentNotFound
	}
	return f.document, nil
}

func (f *fakeDocumentUseCase) List(
	_ context.Context,
	_, _ int,
) ([]*documentsDomain.Document, error) {
	return f.documents, nil
}

func (f *fakeDocumentUseCase) Decrypt(
	_ context.Context,
	_ uuid.UUID,
	exportedKey string,
) (*pipelineDomain.DecryptionReport, error) {
	f.lastKey = exportedKey
	return f.report, f.reportErr
}

func (f *fakeDocumentUseCase) ListAudit(
	_ context.Context,
	_ uuid.UUID,
	_, _ int,
) ([]*auditDomain.Entry, error) {
	return f.entries, nil
}

// setupTestHandler creates a test handler with a fake use case.
func setupTestHandler(t *testing.T) (*DocumentHandler, *fakeDocumentUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	fake := &fakeDocumentUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewDocumentHandler(fake, logger), fake
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func sampleDocument() *documentsDomain.Document {
	return &documentsDomain.Document{
		ID:             uuid.Must(uuid.NewV7()),
		Filename:       "report.txt",
		Tier:           detectionDomain.TierStandard,
		Status:         documentsDomain.StatusCompleted,
		Content:        "Contact [ENCRYPTED:abc:def] for details",
		MatchCount:     1,
		EncryptedCount: 1,
		RiskScore:      20,
		KeyFingerprint: "66687aadf862bd77",
		Algorithm:      "AES-256-GCM",
		CreatedAt:      time.Now().UTC(),
	}
}

func TestDocumentHandler_ProcessHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, fake := setupTestHandler(t)

		document := sampleDocument()
		fake.processResult = &documentsUseCase.ProcessResult{
			Document:    document,
			ExportedKey: "ZXhwb3J0ZWQta2V5",
			Outcomes: []pipelineDomain.MatchOutcome{
				{Category: detectionDomain.CategoryName, Confidence: 0.8, Encrypted: true},
			},
		}

		request := dto.ProcessDocumentRequest{
			Filename: "report.txt",
			Content:  "Contact John Smith for details",
			Tier:     "standard",
		}

		c, w := createTestContext(http.MethodPost, "/v1/documents", request)
		handler.ProcessHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "report.txt", fake.lastFilename)
		assert.Equal(t, detectionDomain.TierStandard, fake.lastTier)

		var response dto.ProcessDocumentResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, document.ID.String(), response.Document.ID)
		assert.Equal(t, "ZXhwb3J0ZWQta2V5", response.Key)
		require.Len(t, response.Outcomes, 1)
		assert.Equal(t, "name", response.Outcomes[0].Category)
		assert.True(t, response.Outcomes[0].Encrypted)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/documents", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.ProcessHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_UnknownTier", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.ProcessDocumentRequest{
			Filename: "report.txt",
			Content:  "some content",
			Tier:     "paranoid",
		}

		c, w := createTestContext(http.MethodPost, "/v1/documents", request)
		handler.ProcessHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_BlankContent", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.ProcessDocumentRequest{
			Filename: "report.txt",
			Content:  "   ",
			Tier:     "standard",
		}

		c, w := createTestContext(http.MethodPost, "/v1/documents", request)
		handler.ProcessHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_FilenameWithPath", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.ProcessDocumentRequest{
			Filename: "../etc/passwd",
			Content:  "some content",
			Tier:     "standard",
		}

		c, w := createTestContext(http.MethodPost, "/v1/documents", request)
		handler.ProcessHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDocumentHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, fake := setupTestHandler(t)

		document := sampleDocument()
		fake.document = document

		c, w := createTestContext(http.MethodGet, "/v1/documents/"+document.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: document.ID.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.DocumentResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, document.ID.String(), response.ID)
		assert.Equal(t, document.Content, response.Content)
		assert.Equal(t, "completed", response.Status)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/documents/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, fake := setupTestHandler(t)
		fake.documentErr = documentsDomain.ErrDocumentNotFound

		documentID := uuid.Must(uuid.NewV7())
		c, w := createTestContext(http.MethodGet, "/v1/documents/"+documentID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: documentID.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDocumentHandler_ListHandler(t *testing.T) {
	t.Run("Success_ContentExcluded", func(t *testing.T) {
		handler, fake := setupTestHandler(t)
		fake.documents = []*documentsDomain.Document{sampleDocument()}

		c, w := createTestContext(http.MethodGet, "/v1/documents", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListDocumentsResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		require.Len(t, response.Data, 1)
		assert.Empty(t, response.Data[0].Content)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/documents?offset=abc", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDocumentHandler_DecryptHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, fake := setupTestHandler(t)

		fake.document = sampleDocument()
		fake.report = &pipelineDomain.DecryptionReport{
			RestoredText: "Contact John Smith for details",
			Outcomes: []pipelineDomain.TokenOutcome{
				{TokenLiteral: "[ENCRYPTED:abc:def]", Success: true, Recovered: "John Smith"},
			},
			SuccessCount: 1,
			TotalCount:   1,
		}

		documentID := uuid.Must(uuid.NewV7())
		request := dto.DecryptDocumentRequest{Key: "ZXhwb3J0ZWQta2V5"}

		c, w := createTestContext(
			http.MethodPost, "/v1/documents/"+documentID.String()+"/decrypt", request,
		)
		c.Params = gin.Params{{Key: "id", Value: documentID.String()}}

		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ZXhwb3J0ZWQta2V5", fake.lastKey)

		var response dto.DecryptDocumentResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "Contact John Smith for details", response.RestoredText)
		assert.Equal(t, "66687aadf862bd77", response.KeyFingerprint)
		assert.Equal(t, 1, response.SuccessCount)
		require.Len(t, response.Outcomes, 1)
		assert.True(t, response.Outcomes[0].Success)
	})

	t.Run("Error_InvalidKeyEncoding", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		documentID := uuid.Must(uuid.NewV7())
		request := dto.DecryptDocumentRequest{Key: "not-base64!!!"}

		c, w := createTestContext(
			http.MethodPost, "/v1/documents/"+documentID.String()+"/decrypt", request,
		)
		c.Params = gin.Params{{Key: "id", Value: documentID.String()}}

		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, fake := setupTestHandler(t)
		fake.reportErr = documentsDomain.ErrDocumentNotFound

		documentID := uuid.Must(uuid.NewV7())
		request := dto.DecryptDocumentRequest{Key: "ZXhwb3J0ZWQta2V5"}

		c, w := createTestContext(
			http.MethodPost, "/v1/documents/"+documentID.String()+"/decrypt", request,
		)
		c.Params = gin.Params{{Key: "id", Value: documentID.String()}}

		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDocumentHandler_ListAuditHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, fake := setupTestHandler(t)

		documentID := uuid.Must(uuid.NewV7())
		fake.entries = []*auditDomain.Entry{
			{
				ID:         uuid.Must(uuid.NewV7()),
				DocumentID: documentID,
				Action:     auditDomain.ActionDocumentProcessed,
				Detail:     "tier=standard status=completed matches=1 encrypted=1 risk_score=20.0",
				CreatedAt:  time.Now().UTC(),
			},
		}

		c, w := createTestContext(
			http.MethodGet, "/v1/documents/"+documentID.String()+"/audit", nil,
		)
		c.Params = gin.Params{{Key: "id", Value: documentID.String()}}

		handler.ListAuditHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListAuditResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		require.Len(t, response.Data, 1)
		assert.Equal(t, "document.processed", response.Data[0].Action)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/documents/nope/audit", nil)
		c.Params = gin.Params{{Key: "id", Value: "nope"}}

		handler.ListAuditHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
