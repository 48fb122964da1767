package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	detectionService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/service"
	pipelineUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/usecase"
	tokenizerService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/tokenizer/service"
)

func newTestPipeline() (*pipelineUseCase.PipelineUsecase, *cryptoService.KeyManagerService) {
	registry := detectionService.NewRegistry()
	keyManager := cryptoService.NewKeyManager()
	tokenCipher := tokenizerService.NewTokenCipher(cryptoService.NewAEADManager())
	pipeline := pipelineUseCase.NewPipelineUsecase(
		detectionService.NewDetector(registry),
		detectionService.NewRiskScorer(),
		keyManager,
		tokenCipher,
	)
	return pipeline, keyManager
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunProcessFile(t *testing.T) {
	ctx := context.Background()
	pipeline, keyManager := newTestPipeline()

	t.Run("text-format", func(t *testing.T) {
		path := writeTempFile(t, "Reach me at alice@example.com for details.")

		var out bytes.Buffer
		err := RunProcessFile(ctx, pipeline, keyManager, &out, path, "standard", "text")
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "# Tier: standard")
		assert.Contains(t, output, "# Matches: 1 (encrypted 1)")
		assert.Contains(t, output, "DOCUMENT_KEY=\"")
		assert.Contains(t, output, "[ENCRYPTED:")
		assert.NotContains(t, output, "alice@example.com")
	})

	t.Run("json-format-round-trip", func(t *testing.T) {
		original := "Reach me at alice@example.com or 555-123-4567."
		path := writeTempFile(t, original)

		var out bytes.Buffer
		err := RunProcessFile(ctx, pipeline, keyManager, &out, path, "standard", "json")
		require.NoError(t, err)

		var processed processFileResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &processed))
		assert.Equal(t, "standard", processed.Tier)
		assert.Equal(t, 2, processed.MatchCount)
		assert.Equal(t, 2, processed.EncryptedCount)
		assert.NotEmpty(t, processed.Key)
		assert.Len(t, processed.KeyFingerprint, 16)

		tokenized := writeTempFile(t, processed.Content)
		var restored bytes.Buffer
		err = RunDecryptFile(ctx, pipeline, &restored, tokenized, processed.Key, "json")
		require.NoError(t, err)

		var report decryptFileResult
		require.NoError(t, json.Unmarshal(restored.Bytes(), &report))
		assert.Equal(t, 2, report.TotalTokens)
		assert.Equal(t, 2, report.RecoveredTokens)
		assert.Empty(t, report.Failures)
		assert.Equal(t, original, report.Content)
	})

	t.Run("invalid-tier", func(t *testing.T) {
		path := writeTempFile(t, "some content")
		err := RunProcessFile(ctx, pipeline, keyManager, nil, path, "paranoid", "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid tier")
	})

	t.Run("missing-file", func(t *testing.T) {
		err := RunProcessFile(ctx, pipeline, keyManager, nil, filepath.Join(t.TempDir(), "absent.txt"), "standard", "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read input file")
	})

	t.Run("empty-file", func(t *testing.T) {
		path := writeTempFile(t, "  \n\t")
		err := RunProcessFile(ctx, pipeline, keyManager, nil, path, "standard", "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "is empty")
	})
}

func TestRunDecryptFile(t *testing.T) {
	ctx := context.Background()
	pipeline, keyManager := newTestPipeline()

	t.Run("wrong-key-reports-failures", func(t *testing.T) {
		path := writeTempFile(t, "Contact bob@example.com today.")

		var out bytes.Buffer
		require.NoError(t, RunProcessFile(ctx, pipeline, keyManager, &out, path, "standard", "json"))

		var processed processFileResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &processed))

		tokenized := writeTempFile(t, processed.Content)
		otherKey, err := keyManager.Generate("aes-gcm")
		require.NoError(t, err)

		var restored bytes.Buffer
		err = RunDecryptFile(ctx, pipeline, &restored, tokenized, keyManager.Export(otherKey), "json")
		require.NoError(t, err)

		var report decryptFileResult
		require.NoError(t, json.Unmarshal(restored.Bytes(), &report))
		assert.Equal(t, 1, report.TotalTokens)
		assert.Equal(t, 0, report.RecoveredTokens)
		assert.Len(t, report.Failures, 1)
		assert.Contains(t, report.Content, "[ENCRYPTED:")
	})

	t.Run("plain-text-passthrough", func(t *testing.T) {
		path := writeTempFile(t, "nothing tokenized here")

		key, err := keyManager.Generate("aes-gcm")
		require.NoError(t, err)

		var out bytes.Buffer
		err = RunDecryptFile(ctx, pipeline, &out, path, keyManager.Export(key), "text")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "# Tokens: 0 (recovered 0)")
		assert.Contains(t, out.String(), "nothing tokenized here")
	})

	t.Run("invalid-key", func(t *testing.T) {
		path := writeTempFile(t, "anything")
		err := RunDecryptFile(ctx, pipeline, nil, path, "not-base64!!", "text")
		require.Error(t, err)
	})
}
