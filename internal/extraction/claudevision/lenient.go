package claudevision

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// Model replies are supposed to be bare JSON but often arrive wrapped in
// markdown fences, console decorations, or prose. DecodeLenient peels those
// layers off until a JSON object parses, or fails with ErrMalformedResponse.

var (
	decorationPattern  = regexp.MustCompile(`(?m)^[●❯>\s]+`)
	fencePattern       = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	objectPattern      = regexp.MustCompile(`\{[\s\S]*\}`)
	controlCharPattern = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)
)

// DecodeLenient extracts and decodes the JSON object buried in a raw reply.
func DecodeLenient(raw string, out any) error {
	text := strings.TrimSpace(raw)
	text = decorationPattern.ReplaceAllString(text, "")

	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}

	// Fall back to the outermost brace pair.
	if m := objectPattern.FindString(text); m != "" {
		if err := json.Unmarshal([]byte(m), out); err == nil {
			return nil
		}
	}

	// Last resort: strip control characters that break the decoder.
	cleaned := controlCharPattern.ReplaceAllString(text, "")
	if m := objectPattern.FindString(cleaned); m != "" {
		if err := json.Unmarshal([]byte(m), out); err == nil {
			return nil
		}
	}

	return domain.ErrMalformedResponse
}
