package service

import (
	"regexp"

	tokenizerDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/tokenizer/domain"
)

// tokenPattern matches the [ENCRYPTED:<ciphertext>:<iv>] wire form. The
// payloads never contain ':' or ']' because they are standard base64, so the
// character classes cannot run past a token boundary.
var tokenPattern = regexp.MustCompile(`\[ENCRYPTED:([^:\]]+):([^\]]+)\]`)

// ExtractTokens scans content left to right and returns every well-formed
// token with its byte range. Text that merely resembles a token is left
// alone; validation of the payloads happens at decryption time.
func ExtractTokens(content string) []tokenizerDomain.Token {
	indexes := tokenPattern.FindAllStringSubmatchIndex(content, -1)
	if len(indexes) == 0 {
		return nil
	}

	tokens := make([]tokenizerDomain.Token, 0, len(indexes))
	for _, idx := range indexes {
		tokens = append(tokens, tokenizerDomain.Token{
			Literal:       content[idx[0]:idx[1]],
			Start:         idx[0],
			End:           idx[1],
			CiphertextB64: content[idx[2]:idx[3]],
			IVB64:         content[idx[4]:idx[5]],
		})
	}
	return tokens
}
