package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	pipelineUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/usecase"
)

// processFileResult is the machine-readable output of RunProcessFile.
type processFileResult struct {
	Tier           string  `json:"tier"`
	MatchCount     int     `json:"match_count"`
	EncryptedCount int     `json:"encrypted_count"`
	RiskScore      float64 `json:"risk_score"`
	Classification string  `json:"classification"`
	KeyFingerprint string  `json:"key_fingerprint"`
	Key            string  `json:"key"`
	Content        string  `json:"content"`
}

// RunProcessFile runs the detection and encryption pipeline over a file
// without persisting anything. The tokenized content and the exported
// document key are written to w in text or JSON format.
//
// The printed key is the only way to recover the plaintext. The caller is
// responsible for storing it securely.
func RunProcessFile(
	ctx context.Context,
	pipeline *pipelineUseCase.PipelineUsecase,
	keyManager cryptoService.KeyManager,
	w io.Writer,
	path string,
	tierName string,
	format string,
) error {
	tier, err := detectionDomain.ParseTier(tierName)
	if err != nil {
		return fmt.Errorf("invalid tier: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return fmt.Errorf("input file %s is empty", path)
	}

	result, err := pipeline.EncryptDocument(ctx, string(content), tier)
	if err != nil {
		return fmt.Errorf("failed to process file: %w", err)
	}
	defer result.Key.Zero()

	exportedKey := keyManager.Export(result.Key)

	if format == "json" {
		return outputProcessJSON(w, result.Tier, result.MatchCount, result.EncryptedCount,
			result.RiskScore, string(result.Classification), result.Fingerprint, exportedKey, result.TransformedText)
	}

	fmt.Fprintf(w, "# Processed %s\n", path)
	fmt.Fprintf(w, "# Tier: %s\n", result.Tier)
	fmt.Fprintf(w, "# Matches: %d (encrypted %d)\n", result.MatchCount, result.EncryptedCount)
	fmt.Fprintf(w, "# Risk score: %.1f (%s)\n", result.RiskScore, result.Classification)
	fmt.Fprintf(w, "# Key fingerprint: %s\n", result.Fingerprint)
	fmt.Fprintf(w, "DOCUMENT_KEY=\"%s\"\n", exportedKey)
	fmt.Fprintln(w)
	fmt.Fprintln(w, result.TransformedText)

	return nil
}

func outputProcessJSON(
	w io.Writer,
	tier detectionDomain.Tier,
	matchCount, encryptedCount int,
	riskScore float64,
	classification, fingerprint, key, content string,
) error {
	result := processFileResult{
		Tier:           string(tier),
		MatchCount:     matchCount,
		EncryptedCount: encryptedCount,
		RiskScore:      riskScore,
		Classification: classification,
		KeyFingerprint: fingerprint,
		Key:            key,
		Content:        content,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
