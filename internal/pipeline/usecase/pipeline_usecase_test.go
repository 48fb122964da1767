package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	detectionService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/service"
	tokenizerDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/tokenizer/domain"
	tokenizerService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/tokenizer/service"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newPipeline() *PipelineUsecase {
	aeadManager := cryptoService.NewAEADManager()
	return NewPipelineUsecase(
		detectionService.NewDetector(detectionService.NewRegistry()),
		detectionService.NewRiskScorer(),
		cryptoService.NewKeyManager(),
		tokenizerService.NewTokenCipher(aeadManager),
	)
}

func TestPipelineUsecase_EncryptDocument_StandardScenario(t *testing.T) {
	pipeline := newPipeline()
	text := "Contact John Smith at john.smith@email.com or 555-123-4567"

	doc, err := pipeline.EncryptDocument(context.Background(), text, detectionDomain.TierStandard)
	require.NoError(t, err)

	assert.Equal(t, 3, doc.MatchCount)
	assert.Equal(t, 3, doc.EncryptedCount)
	assert.LessOrEqual(t, doc.RiskScore, 40.0)
	assert.Equal(t, detectionDomain.ClassificationCompleted, doc.Classification)
	assert.Len(t, doc.Key.Bytes, cryptoDomain.KeySize)
	assert.Len(t, doc.Fingerprint, cryptoDomain.FingerprintLength)

	tokens := tokenizerService.ExtractTokens(doc.TransformedText)
	assert.Len(t, tokens, 3)

	assert.NotContains(t, doc.TransformedText, "john.smith@email.com")
	assert.NotContains(t, doc.TransformedText, "555-123-4567")
	assert.NotContains(t, doc.TransformedText, "Contact John")
	assert.Contains(t, doc.TransformedText, " Smith at ")
}

func TestPipelineUsecase_RoundTrip(t *testing.T) {
	pipeline := newPipeline()
	keyManager := cryptoService.NewKeyManager()
	text := "Contact John Smith at john.smith@email.com or 555-123-4567"

	doc, err := pipeline.EncryptDocument(context.Background(), text, detectionDomain.TierStandard)
	require.NoError(t, err)

	report, err := pipeline.DecryptDocument(
		context.Background(), doc.TransformedText, keyManager.Export(doc.Key),
	)
	require.NoError(t, err)

	assert.Equal(t, text, report.RestoredText)
	assert.Equal(t, 3, report.TotalCount)
	assert.Equal(t, 3, report.SuccessCount)
	for _, outcome := range report.Outcomes {
		assert.True(t, outcome.Success)
		assert.NoError(t, outcome.Err)
	}
}

func TestPipelineUsecase_EncryptDocument_NoMatches(t *testing.T) {
	pipeline := newPipeline()
	text := "nothing sensitive in here"

	doc, err := pipeline.EncryptDocument(context.Background(), text, detectionDomain.TierEnhanced)
	require.NoError(t, err)

	assert.Equal(t, text, doc.TransformedText)
	assert.Equal(t, 0, doc.MatchCount)
	assert.Equal(t, float64(0), doc.RiskScore)
	assert.Equal(t, detectionDomain.ClassificationCompleted, doc.Classification)
	// A key is still generated so the caller API is uniform.
	assert.Len(t, doc.Key.Bytes, cryptoDomain.KeySize)
}

func TestPipelineUsecase_EncryptDocument_RepeatedPIIGetsDistinctTokens(t *testing.T) {
	pipeline := newPipeline()
	text := "first jane@corp.com then jane@corp.com again"

	doc, err := pipeline.EncryptDocument(context.Background(), text, detectionDomain.TierStandard)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.MatchCount)

	tokens := tokenizerService.ExtractTokens(doc.TransformedText)
	require.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0].Literal, tokens[1].Literal)
	assert.NotEqual(t, tokens[0].IVB64, tokens[1].IVB64)

	keyManager := cryptoService.NewKeyManager()
	report, err := pipeline.DecryptDocument(
		context.Background(), doc.TransformedText, keyManager.Export(doc.Key),
	)
	require.NoError(t, err)
	assert.Equal(t, text, report.RestoredText)
}

func TestPipelineUsecase_EncryptDocument_EnhancedQuarantine(t *testing.T) {
	pipeline := newPipeline()

	// Five enhanced-tier matches: even at the minimum confidence the score
	// is 95*0.6 + 5*5 = 82.
	text := "SSN 123-45-6789, card 4111-1111-1111-1111, MRN-12345678, john@x.com, 555-123-4567"

	doc, err := pipeline.EncryptDocument(context.Background(), text, detectionDomain.TierEnhanced)
	require.NoError(t, err)

	assert.Equal(t, 5, doc.MatchCount)
	assert.Greater(t, doc.RiskScore, 80.0)
	assert.LessOrEqual(t, doc.RiskScore, 100.0)
	assert.Equal(t, detectionDomain.ClassificationQuarantined, doc.Classification)
	assert.NotContains(t, doc.TransformedText, "123-45-6789")
}

func TestPipelineUsecase_DecryptDocument_WrongKey(t *testing.T) {
	pipeline := newPipeline()
	keyManager := cryptoService.NewKeyManager()

	doc, err := pipeline.EncryptDocument(
		context.Background(),
		"reach me at jane@corp.com or 555-123-4567",
		detectionDomain.TierStandard,
	)
	require.NoError(t, err)
	require.Equal(t, 2, doc.MatchCount)

	wrongKey, err := keyManager.Generate(cryptoDomain.AESGCM)
	require.NoError(t, err)

	report, err := pipeline.DecryptDocument(
		context.Background(), doc.TransformedText, keyManager.Export(wrongKey),
	)
	require.NoError(t, err)

	assert.Equal(t, doc.TransformedText, report.RestoredText)
	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 0, report.SuccessCount)
	for _, outcome := range report.Outcomes {
		assert.False(t, outcome.Success)
		assert.ErrorIs(t, outcome.Err, tokenizerDomain.ErrAuthenticationFailed)
	}
}

func TestPipelineUsecase_DecryptDocument_InvalidKeyFormat(t *testing.T) {
	pipeline := newPipeline()

	_, err := pipeline.DecryptDocument(context.Background(), "whatever", "too-short")
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyFormat)
}

func TestPipelineUsecase_DecryptDocument_MixedTokens(t *testing.T) {
	pipeline := newPipeline()
	keyManager := cryptoService.NewKeyManager()

	doc, err := pipeline.EncryptDocument(
		context.Background(), "mail jane@corp.com now", detectionDomain.TierStandard,
	)
	require.NoError(t, err)
	require.Equal(t, 1, doc.MatchCount)

	// Append a token with garbage payloads next to the real one.
	mangled := doc.TransformedText + " [ENCRYPTED:!!!:???]"

	report, err := pipeline.DecryptDocument(
		context.Background(), mangled, keyManager.Export(doc.Key),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 1, report.SuccessCount)
	assert.True(t, strings.HasPrefix(report.RestoredText, "mail jane@corp.com now"))
	assert.Contains(t, report.RestoredText, "[ENCRYPTED:!!!:???]")
	assert.ErrorIs(t, report.Outcomes[1].Err, tokenizerDomain.ErrMalformedToken)
}

func TestPipelineUsecase_DecryptDocument_NoTokens(t *testing.T) {
	pipeline := newPipeline()
	keyManager := cryptoService.NewKeyManager()

	key, err := keyManager.Generate(cryptoDomain.AESGCM)
	require.NoError(t, err)

	report, err := pipeline.DecryptDocument(
		context.Background(), "plain text", keyManager.Export(key),
	)
	require.NoError(t, err)
	assert.Equal(t, "plain text", report.RestoredText)
	assert.Equal(t, 0, report.TotalCount)
	assert.Equal(t, 0, report.SuccessCount)
}
