package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	pipelineUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/usecase"
)

// decryptFileResult is the machine-readable output of RunDecryptFile.
type decryptFileResult struct {
	TotalTokens     int      `json:"total_tokens"`
	RecoveredTokens int      `json:"recovered_tokens"`
	Failures        []string `json:"failures,omitempty"`
	Content         string   `json:"content"`
}

// RunDecryptFile restores a tokenized file using the supplied exported
// document key and writes the restored content to w in text or JSON format.
//
// Individual token failures do not abort the run. Failed tokens keep their
// literal form in the restored content and are reported alongside it.
func RunDecryptFile(
	ctx context.Context,
	pipeline *pipelineUseCase.PipelineUsecase,
	w io.Writer,
	path string,
	exportedKey string,
	format string,
) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	report, err := pipeline.DecryptDocument(ctx, string(content), exportedKey)
	if err != nil {
		return fmt.Errorf("failed to decrypt file: %w", err)
	}

	var failures []string
	for _, outcome := range report.Outcomes {
		if !outcome.Success {
			failures = append(failures, outcome.Err.Error())
		}
	}

	if format == "json" {
		result := decryptFileResult{
			TotalTokens:     report.TotalCount,
			RecoveredTokens: report.SuccessCount,
			Failures:        failures,
			Content:         report.RestoredText,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return nil
	}

	fmt.Fprintf(w, "# Decrypted %s\n", path)
	fmt.Fprintf(w, "# Tokens: %d (recovered %d)\n", report.TotalCount, report.SuccessCount)
	for _, failure := range failures {
		fmt.Fprintf(w, "# Failure: %s\n", failure)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, report.RestoredText)

	return nil
}
