// Package usecase composes detection, risk scoring, key management, and the
// token cipher into the two document operations: encrypt and decrypt.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	detectionService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/service"
	pipelineDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/domain"
	tokenizerService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/tokenizer/service"
)

// encryptWorkers bounds the per-match encryption goroutines within one call.
const encryptWorkers = 8

// PipelineUsecase orchestrates the tokenize-encrypt-detokenize pipeline.
//
// Both operations are stateless and side-effect free with respect to the
// pipeline itself; persistence of results belongs to the documents context.
// The usecase is safe for concurrent use across independent documents.
type PipelineUsecase struct {
	detector    *detectionService.Detector
	riskScorer  *detectionService.RiskScorer
	keyManager  cryptoService.KeyManager
	tokenCipher *tokenizerService.TokenCipher
}

// NewPipelineUsecase creates a new PipelineUsecase instance.
func NewPipelineUsecase(
	detector *detectionService.Detector,
	riskScorer *detectionService.RiskScorer,
	keyManager cryptoService.KeyManager,
	tokenCipher *tokenizerService.TokenCipher,
) *PipelineUsecase {
	return &PipelineUsecase{
		detector:    detector,
		riskScorer:  riskScorer,
		keyManager:  keyManager,
		tokenCipher: tokenCipher,
	}
}

// EncryptDocument detects PII in text, scores the document, generates a
// fresh key, and replaces every successfully encrypted match with an inline
// token.
//
// Matches are encrypted concurrently since each carries its own IV and has
// no ordering dependency; splicing runs once all outcomes are in. A match
// whose encryption fails stays as plaintext in the output and is flagged in
// the outcomes. Only an entropy source failure aborts the whole operation.
func (u *PipelineUsecase) EncryptDocument(
	ctx context.Context,
	text string,
	tier detectionDomain.Tier,
) (pipelineDomain.EncryptedDocument, error) {
	matches := u.detector.Detect(text, tier)
	riskScore, classification := u.riskScorer.Score(matches, tier)

	key, err := u.keyManager.Generate(cryptoDomain.AESGCM)
	if err != nil {
		return pipelineDomain.EncryptedDocument{}, fmt.Errorf("failed to generate document key: %w", err)
	}
	fingerprint := u.keyManager.Fingerprint(key)

	outcomes := make([]pipelineDomain.MatchOutcome, len(matches))
	literals := make([]string, len(matches))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(encryptWorkers)
	for i, match := range matches {
		g.Go(func() error {
			outcomes[i] = pipelineDomain.MatchOutcome{
				Category:   match.Category,
				Confidence: match.Confidence,
			}

			literal, err := u.tokenCipher.EncryptMatch(key, match.Text)
			if err != nil {
				if errors.Is(err, cryptoDomain.ErrRandomSourceUnavailable) {
					return err
				}
				outcomes[i].Err = err
				return nil
			}

			outcomes[i].Encrypted = true
			literals[i] = literal
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return pipelineDomain.EncryptedDocument{}, fmt.Errorf("failed to encrypt matches: %w", err)
	}

	replacements := make([]tokenizerService.Replacement, 0, len(matches))
	encrypted := 0
	for i, match := range matches {
		if !outcomes[i].Encrypted {
			continue
		}
		encrypted++
		replacements = append(replacements, tokenizerService.Replacement{
			Start: match.Start,
			End:   match.End,
			Text:  literals[i],
		})
	}

	return pipelineDomain.EncryptedDocument{
		TransformedText: tokenizerService.Splice(text, replacements),
		Key:             key,
		Fingerprint:     fingerprint,
		Tier:            tier,
		MatchCount:      len(matches),
		EncryptedCount:  encrypted,
		RiskScore:       riskScore,
		Classification:  classification,
		Matches:         outcomes,
	}, nil
}

// DecryptDocument extracts every token from encrypted text and attempts to
// open each one with the supplied exported key.
//
// Token failures are independent: a wrong key yields an authentication
// failure per token while the rest of the document is still processed, so a
// caller can probe a candidate key against a multi-token document. Only an
// invalid key format aborts before any cryptographic attempt.
func (u *PipelineUsecase) DecryptDocument(
	ctx context.Context,
	encryptedText string,
	exportedKey string,
) (pipelineDomain.DecryptionReport, error) {
	key, err := u.keyManager.Import(exportedKey, cryptoDomain.AESGCM)
	if err != nil {
		return pipelineDomain.DecryptionReport{}, fmt.Errorf("failed to import document key: %w", err)
	}

	tokens := tokenizerService.ExtractTokens(encryptedText)
	outcomes := make([]pipelineDomain.TokenOutcome, len(tokens))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(encryptWorkers)
	for i, token := range tokens {
		g.Go(func() error {
			outcomes[i] = pipelineDomain.TokenOutcome{TokenLiteral: token.Literal}

			recovered, err := u.tokenCipher.DecryptToken(key, token)
			if err != nil {
				outcomes[i].Err = err
				return nil
			}

			outcomes[i].Success = true
			outcomes[i].Recovered = recovered
			return nil
		})
	}
	// Goroutines above never return an error; Wait is the completion barrier.
	_ = g.Wait()

	replacements := make([]tokenizerService.Replacement, 0, len(tokens))
	succeeded := 0
	for i, token := range tokens {
		if !outcomes[i].Success {
			continue
		}
		succeeded++
		replacements = append(replacements, tokenizerService.Replacement{
			Start: token.Start,
			End:   token.End,
			Text:  outcomes[i].Recovered,
		})
	}

	return pipelineDomain.DecryptionReport{
		RestoredText: tokenizerService.Splice(encryptedText, replacements),
		Outcomes:     outcomes,
		SuccessCount: succeeded,
		TotalCount:   len(tokens),
	}, nil
}
