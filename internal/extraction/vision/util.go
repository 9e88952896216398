package vision

import "strings"

// normalizeText collapses whitespace and replaces newlines/tabs.
func normalizeText(t string) string {
	t = strings.ReplaceAll(t, "\n", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	return strings.Join(strings.Fields(t), " ")
}

func joinTexts(texts []string) string {
	return strings.Join(texts, " ")
}

// countDigits is the quality proxy for picking between OCR passes: on this
// content, more recognized digits means a better read.
func countDigits(t string) int {
	n := 0
	for _, r := range t {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
